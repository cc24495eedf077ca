package repositories

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// LedgerReader defines read operations for ledger data
type LedgerReader interface {
	FindLedgerByID(ctx context.Context, businessID, ledgerID string) (*domain.Ledger, error)

	// FindLedgersByIDs returns the ledgers found, keyed by ID. Missing IDs are simply absent.
	FindLedgersByIDs(ctx context.Context, businessID string, ledgerIDs []string) (map[string]domain.Ledger, error)

	// ListLedgersByBusiness returns the active ledgers of a business ordered by name.
	ListLedgersByBusiness(ctx context.Context, businessID string) ([]domain.Ledger, error)
}

// LedgerWriter defines write operations for ledger data
type LedgerWriter interface {
	SaveLedger(ctx context.Context, ledger domain.Ledger) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}

// LedgerRepositoryWithTx extends LedgerRepositoryFacade with transaction capabilities
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}

// LedgerListCache caches a business's ledger list.
type LedgerListCache interface {
	// FetchLedgers returns the cached list or fills it from loader.
	FetchLedgers(ctx context.Context, businessID string, loader func(context.Context) ([]domain.Ledger, error)) ([]domain.Ledger, error)

	// InvalidateLedgers drops the cached list for a business.
	InvalidateLedgers(ctx context.Context, businessID string) error
}
