package pgsql

import (
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the postgres repositories. ledgerCache may be nil.
func NewRepositoryProvider(dbPool *pgxpool.Pool, ledgerCache portsrepo.LedgerListCache) portsrepo.RepositoryProvider {
	businessRepo := newPgxBusinessRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	voucherRepo := newPgxVoucherRepository(dbPool)
	seriesRepo := newPgxNumberingSeriesRepository(dbPool)

	return portsrepo.RepositoryProvider{
		BusinessRepo: businessRepo,
		LedgerRepo:   ledgerRepo,
		VoucherRepo:  voucherRepo,
		SeriesRepo:   seriesRepo,
		LedgerCache:  ledgerCache,
	}
}
