package services

import (
	"log/slog"
	"time"

	portsrepo "github.com/kudzaim/shopmate_backend/internal/core/ports/repositories"
	portssvc "github.com/kudzaim/shopmate_backend/internal/core/ports/services"
	"github.com/kudzaim/shopmate_backend/internal/events"
	"github.com/kudzaim/shopmate_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized
// dependencies. The publisher may be nil when event streaming is disabled.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher events.Publisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The shift ledger needs to know where the business day rolls over.
	loc, err := time.LoadLocation(cfg.POSTimezone)
	if err != nil {
		slog.Warn("Invalid POS timezone, falling back to UTC", slog.String("timezone", cfg.POSTimezone))
		loc = time.UTC
	}

	container.User = NewUserService(repos.UserRepo)

	// Token and Google auth services sit on top of the user service.
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleAuth = NewGoogleOAuthHandlerService(cfg)

	// Business service first since shift and sale services authorize through it.
	container.Business = NewBusinessService(repos.BusinessRepo, repos.PlanRepo, publisher)

	businessReader := container.Business.(portssvc.BusinessReaderSvc)
	container.Shift = NewShiftService(repos.ShiftRepo, businessReader, publisher, loc)
	container.Sale = NewSaleService(repos.SaleRepo, container.Shift, publisher)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.BusinessSvcFacade = (*businessService)(nil)
	_ portssvc.ShiftSvcFacade    = (*shiftService)(nil)
	_ portssvc.SaleSvcFacade     = (*saleService)(nil)
)
