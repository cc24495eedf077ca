package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	BusinessRepo BusinessRepositoryFacade
	LedgerRepo   LedgerRepositoryFacade
	VoucherRepo  VoucherRepositoryFacade
	SeriesRepo   NumberingSeriesRepositoryFacade
	LedgerCache  LedgerListCache // nil disables caching
}
