package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/kudzaim/shopmate_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider creates and initializes all repositories backed by the
// shared pgx connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		BusinessRepo: newPgxBusinessRepository(dbPool),
		PlanRepo:     newPgxPlanRepository(dbPool),
		ShiftRepo:    newPgxShiftRepository(dbPool),
		SaleRepo:     newPgxSaleRepository(dbPool),
	}
}
