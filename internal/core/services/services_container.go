package services

import (
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Business service first since every other service authorizes through it
	container.Business = NewBusinessService(repos.BusinessRepo)
	authorizer := container.Business.(portssvc.BusinessAuthorizerSvc)

	container.Ledger = NewLedgerService(
		repos.LedgerRepo,
		WithLedgerAuthorizer(authorizer),
		WithLedgerCache(repos.LedgerCache),
	)

	container.Voucher = NewVoucherService(
		repos.VoucherRepo,
		repos.LedgerRepo,
		WithVoucherAuthorizer(authorizer),
		WithVoucherSeriesReader(repos.SeriesRepo),
		WithVoucherLocation(cfg.SeriesLocation),
	)

	container.NumberingSeries = NewNumberingSeriesService(
		repos.SeriesRepo,
		WithSeriesAuthorizer(authorizer),
		WithSeriesLocation(cfg.SeriesLocation),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.BusinessSvcFacade        = (*businessService)(nil)
	_ portssvc.LedgerSvcFacade          = (*ledgerService)(nil)
	_ portssvc.VoucherSvcFacade         = (*voucherService)(nil)
	_ portssvc.NumberingSeriesSvcFacade = (*numberingSeriesService)(nil)
)
