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

type PgxSaleRepository struct {
	db *pgxpool.Pool
}

// newPgxSaleRepository creates a new repository for sales.
func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{db: pool}
}

// Ensure PgxSaleRepository implements portsrepo.SaleRepositoryFacade
var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

const saleSelectColumns = `
	sale_id, business_id, shift_id, amount, discount, tender_type, receipt_number, note,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanSale(row pgx.Row) (*domain.Sale, error) {
	var s domain.Sale
	err := row.Scan(
		&s.SaleID,
		&s.BusinessID,
		&s.ShiftID,
		&s.Amount,
		&s.Discount,
		&s.TenderType,
		&s.ReceiptNumber,
		&s.Note,
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

func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	query := `
		INSERT INTO sales (
			sale_id, business_id, shift_id, amount, discount, tender_type, receipt_number, note,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.db.Exec(ctx, query,
		sale.SaleID,
		sale.BusinessID,
		sale.ShiftID,
		sale.Amount,
		sale.Discount,
		sale.TenderType,
		sale.ReceiptNumber,
		sale.Note,
		sale.CreatedAt,
		sale.CreatedBy,
		sale.LastUpdatedAt,
		sale.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return fmt.Errorf("%w: sale %s already exists", apperrors.ErrConflict, sale.SaleID)
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("shift or business does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save sale "+sale.SaleID, err)
	}
	return nil
}

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleSelectColumns + ` FROM sales WHERE sale_id = $1;`
	sale, err := scanSale(r.db.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find sale "+saleID, err)
	}
	return sale, nil
}

func (r *PgxSaleRepository) ListSalesByShift(ctx context.Context, shiftID string, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + saleSelectColumns + ` FROM sales`
	filterClause := `WHERE shift_id = $1`
	orderByClause := `ORDER BY created_at DESC, sale_id DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{shiftID}

	if nextToken != nil && *nextToken != "" {
		fields, decodeErr := pagination.DecodeMultiFieldToken(*nextToken)
		if decodeErr != nil || len(fields) != 2 {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		lastCreatedAt, parseErr := time.Parse(time.RFC3339Nano, fields[0])
		if parseErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", parseErr)
		}
		lastSaleID := fields[1]

		cursorClause := `AND (created_at, sale_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastSaleID)

		query := baseQuery + " " + filterClause + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.db.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.db.Query(ctx, query, args...)
	}

	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query sales for shift "+shiftID, err)
	}
	defer rows.Close()

	sales := make([]domain.Sale, 0, fetchLimit)
	for rows.Next() {
		sale, scanErr := scanSale(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan sale row for shift "+shiftID, scanErr)
		}
		sales = append(sales, *sale)
	}
	if rows.Err() != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating sale rows", rows.Err())
	}

	var nextTokenVal *string
	if len(sales) > limit {
		sales = sales[:limit]
		lastSale := sales[len(sales)-1]
		newToken := pagination.EncodeMultiFieldToken(lastSale.CreatedAt.Format(time.RFC3339Nano), lastSale.SaleID)
		nextTokenVal = &newToken
	}

	return sales, nextTokenVal, nil
}
