package repositories

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// NumberingSeriesReader defines read operations for numbering series
type NumberingSeriesReader interface {
	FindSeriesByID(ctx context.Context, businessID, seriesID string) (*domain.NumberingSeries, error)

	// ListSeriesByBusiness lists the active series of a business, optionally for one voucher type.
	ListSeriesByBusiness(ctx context.Context, businessID string, voucherType *domain.VoucherType) ([]domain.NumberingSeries, error)

	// FindDefaultSeries returns the default active series for a voucher type, or apperrors.ErrNotFound.
	FindDefaultSeries(ctx context.Context, businessID string, voucherType domain.VoucherType) (*domain.NumberingSeries, error)
}

// NumberingSeriesWriter defines write operations for numbering series.
// Saving a series with IsDefault clears the flag on the other series of the same voucher type.
type NumberingSeriesWriter interface {
	SaveSeries(ctx context.Context, series domain.NumberingSeries) error

	// UpdateSeries uses optimistic locking on version.
	UpdateSeries(ctx context.Context, series domain.NumberingSeries) error
}

// NumberingSeriesRepositoryFacade combines all numbering-series repository interfaces
type NumberingSeriesRepositoryFacade interface {
	NumberingSeriesReader
	NumberingSeriesWriter
}

// NumberingSeriesRepositoryWithTx extends NumberingSeriesRepositoryFacade with transaction capabilities
type NumberingSeriesRepositoryWithTx interface {
	NumberingSeriesRepositoryFacade
	TransactionManager
}
