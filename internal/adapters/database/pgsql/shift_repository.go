package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kudzaim/shopmate_backend/internal/apperrors"
	"github.com/kudzaim/shopmate_backend/internal/core/domain"
	portsrepo "github.com/kudzaim/shopmate_backend/internal/core/ports/repositories"
	"github.com/kudzaim/shopmate_backend/internal/utils/pagination"
)

type PgxShiftRepository struct {
	BaseRepository
}

// newPgxShiftRepository creates a new repository for shift records.
func newPgxShiftRepository(pool *pgxpool.Pool) portsrepo.ShiftRepositoryWithTx {
	return &PgxShiftRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxShiftRepository implements portsrepo.ShiftRepositoryWithTx
var _ portsrepo.ShiftRepositoryWithTx = (*PgxShiftRepository)(nil)

const shiftSelectColumns = `
	shift_id, business_id, shift_date, start_time, end_time, status,
	opening_cash, expected_cash, actual_cash, cash_discrepancy,
	cash_sales, card_sales, mobile_money_sales, bank_transfer_sales,
	total_sales, transaction_count, receipt_count, total_discounts,
	currency_code, notes, discrepancy_notes,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanShift(row pgx.Row) (*domain.ShiftRecord, error) {
	var s domain.ShiftRecord
	err := row.Scan(
		&s.ShiftID,
		&s.BusinessID,
		&s.ShiftDate,
		&s.StartTime,
		&s.EndTime,
		&s.Status,
		&s.OpeningCash,
		&s.ExpectedCash,
		&s.ActualCash,
		&s.CashDiscrepancy,
		&s.CashSales,
		&s.CardSales,
		&s.MobileMoneySales,
		&s.BankTransferSales,
		&s.TotalSales,
		&s.TransactionCount,
		&s.ReceiptCount,
		&s.TotalDiscounts,
		&s.CurrencyCode,
		&s.Notes,
		&s.DiscrepancyNotes,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PgxShiftRepository) SaveShift(ctx context.Context, shift domain.ShiftRecord) error {
	query := `
		INSERT INTO pos_shifts (
			shift_id, business_id, shift_date, start_time, end_time, status,
			opening_cash, expected_cash, actual_cash, cash_discrepancy,
			cash_sales, card_sales, mobile_money_sales, bank_transfer_sales,
			total_sales, transaction_count, receipt_count, total_discounts,
			currency_code, notes, discrepancy_notes,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25);
	`
	_, err := r.Pool.Exec(ctx, query,
		shift.ShiftID,
		shift.BusinessID,
		shift.ShiftDate,
		shift.StartTime,
		shift.EndTime,
		shift.Status,
		shift.OpeningCash,
		shift.ExpectedCash,
		shift.ActualCash,
		shift.CashDiscrepancy,
		shift.CashSales,
		shift.CardSales,
		shift.MobileMoneySales,
		shift.BankTransferSales,
		shift.TotalSales,
		shift.TransactionCount,
		shift.ReceiptCount,
		shift.TotalDiscounts,
		shift.CurrencyCode,
		shift.Notes,
		shift.DiscrepancyNotes,
		shift.CreatedAt,
		shift.CreatedBy,
		shift.LastUpdatedAt,
		shift.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation, including the open-shift-per-day index
				return fmt.Errorf("%w: an open shift already exists for business %s on %s",
					apperrors.ErrConflict, shift.BusinessID, shift.ShiftDate.Format("2006-01-02"))
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("business does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save shift "+shift.ShiftID, err)
	}
	return nil
}

func (r *PgxShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.ShiftRecord, error) {
	query := `SELECT ` + shiftSelectColumns + ` FROM pos_shifts WHERE shift_id = $1;`
	shift, err := scanShift(r.Pool.QueryRow(ctx, query, shiftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find shift "+shiftID, err)
	}
	return shift, nil
}

func (r *PgxShiftRepository) FindOpenShift(ctx context.Context, businessID string, shiftDate time.Time) (*domain.ShiftRecord, error) {
	query := `SELECT ` + shiftSelectColumns + `
		FROM pos_shifts
		WHERE business_id = $1 AND shift_date = $2 AND status = $3;`
	shift, err := scanShift(r.Pool.QueryRow(ctx, query, businessID, shiftDate, domain.ShiftOpen))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find open shift for business "+businessID, err)
	}
	return shift, nil
}

func (r *PgxShiftRepository) FindLatestClosedShift(ctx context.Context, businessID string) (*domain.ShiftRecord, error) {
	query := `SELECT ` + shiftSelectColumns + `
		FROM pos_shifts
		WHERE business_id = $1 AND status = $2
		ORDER BY end_time DESC
		LIMIT 1;`
	shift, err := scanShift(r.Pool.QueryRow(ctx, query, businessID, domain.ShiftClosed))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find latest closed shift for business "+businessID, err)
	}
	return shift, nil
}

func (r *PgxShiftRepository) UpdateShiftTotals(ctx context.Context, shift domain.ShiftRecord) error {
	// Guarded on status so totals never change under a closed shift.
	query := `
		UPDATE pos_shifts
		SET cash_sales = $2, card_sales = $3, mobile_money_sales = $4, bank_transfer_sales = $5,
		    total_sales = $6, transaction_count = $7, receipt_count = $8, total_discounts = $9,
		    expected_cash = $10, last_updated_at = $11, last_updated_by = $12
		WHERE shift_id = $1 AND status = $13;
	`
	result, err := r.Pool.Exec(ctx, query,
		shift.ShiftID,
		shift.CashSales,
		shift.CardSales,
		shift.MobileMoneySales,
		shift.BankTransferSales,
		shift.TotalSales,
		shift.TransactionCount,
		shift.ReceiptCount,
		shift.TotalDiscounts,
		shift.ExpectedCash,
		shift.LastUpdatedAt,
		shift.LastUpdatedBy,
		domain.ShiftOpen,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update totals for shift "+shift.ShiftID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: shift %s is not open", apperrors.ErrInvalidOperation, shift.ShiftID)
	}
	return nil
}

func (r *PgxShiftRepository) CloseShift(ctx context.Context, shift domain.ShiftRecord) error {
	// The status guard makes closing terminal: only one close can ever win.
	query := `
		UPDATE pos_shifts
		SET status = $2, end_time = $3, actual_cash = $4, cash_discrepancy = $5,
		    expected_cash = $6, cash_sales = $7, card_sales = $8, mobile_money_sales = $9,
		    bank_transfer_sales = $10, total_sales = $11, transaction_count = $12,
		    receipt_count = $13, total_discounts = $14, notes = $15, discrepancy_notes = $16,
		    last_updated_at = $17, last_updated_by = $18
		WHERE shift_id = $1 AND status = $19;
	`
	result, err := r.Pool.Exec(ctx, query,
		shift.ShiftID,
		domain.ShiftClosed,
		shift.EndTime,
		shift.ActualCash,
		shift.CashDiscrepancy,
		shift.ExpectedCash,
		shift.CashSales,
		shift.CardSales,
		shift.MobileMoneySales,
		shift.BankTransferSales,
		shift.TotalSales,
		shift.TransactionCount,
		shift.ReceiptCount,
		shift.TotalDiscounts,
		shift.Notes,
		shift.DiscrepancyNotes,
		shift.LastUpdatedAt,
		shift.LastUpdatedBy,
		domain.ShiftOpen,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to close shift "+shift.ShiftID, err)
	}
	if result.RowsAffected() == 0 {
		if _, findErr := r.FindShiftByID(ctx, shift.ShiftID); errors.Is(findErr, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: shift %s", apperrors.ErrNotFound, shift.ShiftID)
		}
		return fmt.Errorf("%w: shift %s is already closed", apperrors.ErrInvalidOperation, shift.ShiftID)
	}
	return nil
}

func (r *PgxShiftRepository) ListShiftsByBusiness(ctx context.Context, businessID string, limit int, nextToken *string) ([]domain.ShiftRecord, *string, error) {
	// Default limit handling
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + shiftSelectColumns + ` FROM pos_shifts`
	filterClause := `WHERE business_id = $1`

	// Ordering must be stable: shift_date DESC with created_at DESC as tie-breaker.
	orderByClause := `ORDER BY shift_date DESC, created_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{businessID}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}

		// Tuple comparison is concise and efficient in Postgres
		cursorClause := `AND (shift_date, created_at) < ($2, $3)`
		args = append(args, lastDate, lastCreatedAt)

		query := baseQuery + " " + filterClause + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}

	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query shifts for business "+businessID, err)
	}
	defer rows.Close()

	shifts := make([]domain.ShiftRecord, 0, fetchLimit)
	for rows.Next() {
		shift, scanErr := scanShift(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan shift row for business "+businessID, scanErr)
		}
		shifts = append(shifts, *shift)
	}
	if rows.Err() != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating shift rows", rows.Err())
	}

	var nextTokenVal *string
	if len(shifts) > limit {
		shifts = shifts[:limit]
		lastShift := shifts[len(shifts)-1]
		newToken := pagination.EncodeToken(lastShift.ShiftDate, lastShift.CreatedAt)
		nextTokenVal = &newToken
	}

	return shifts, nextTokenVal, nil
}

// RecomputeShiftTotals sums the shift's sales per tender in one pass.
// Receipts are counted distinct because several line items may share one.
func (r *PgxShiftRepository) RecomputeShiftTotals(ctx context.Context, shiftID string) (*domain.ShiftTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE tender_type = $2), 0) AS cash_sales,
			COALESCE(SUM(amount) FILTER (WHERE tender_type = $3), 0) AS card_sales,
			COALESCE(SUM(amount) FILTER (WHERE tender_type = $4), 0) AS mobile_money_sales,
			COALESCE(SUM(amount) FILTER (WHERE tender_type = $5), 0) AS bank_transfer_sales,
			COALESCE(SUM(amount), 0) AS total_sales,
			COUNT(*) AS transaction_count,
			COUNT(DISTINCT receipt_number) FILTER (WHERE receipt_number <> '') AS receipt_count,
			COALESCE(SUM(discount), 0) AS total_discounts
		FROM sales
		WHERE shift_id = $1;
	`
	var totals domain.ShiftTotals
	err := r.Pool.QueryRow(ctx, query, shiftID,
		domain.TenderCash, domain.TenderCard, domain.TenderMobileMoney, domain.TenderBankTransfer,
	).Scan(
		&totals.CashSales,
		&totals.CardSales,
		&totals.MobileMoneySales,
		&totals.BankTransferSales,
		&totals.TotalSales,
		&totals.TransactionCount,
		&totals.ReceiptCount,
		&totals.TotalDiscounts,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate totals for shift "+shiftID, err)
	}
	return &totals, nil
}
