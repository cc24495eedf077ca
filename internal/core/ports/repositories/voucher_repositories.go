package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// NumberIssuer is handed the locked default series of a voucher type and returns the number to
// stamp on the voucher and the series state to persist afterwards.
type NumberIssuer func(series domain.NumberingSeries) (number string, next domain.NumberingSeries)

// VoucherReader defines read operations for voucher data
type VoucherReader interface {
	// FindVoucherByID returns the voucher with its entries.
	FindVoucherByID(ctx context.Context, businessID, voucherID string) (*domain.Voucher, error)

	// ListVouchersByBusiness pages through vouchers newest first. Entries are not loaded.
	ListVouchersByBusiness(ctx context.Context, businessID string, voucherType *domain.VoucherType, limit int, nextToken *string) ([]domain.Voucher, *string, error)
}

// VoucherWriter defines write operations for voucher data
type VoucherWriter interface {
	// SaveVoucher inserts the voucher and its entries in one transaction. When a default active
	// series exists for the voucher type it is locked and issue decides the voucher number;
	// otherwise the voucher is saved without a number. The saved voucher is returned.
	SaveVoucher(ctx context.Context, voucher domain.Voucher, issue NumberIssuer) (*domain.Voucher, error)

	// UpdateVoucherStatus changes the status using optimistic locking on version.
	UpdateVoucherStatus(ctx context.Context, voucher domain.Voucher, status domain.VoucherStatus, updatedBy string, updatedAt time.Time) error
}

// VoucherRepositoryFacade combines all voucher-related repository interfaces
type VoucherRepositoryFacade interface {
	VoucherReader
	VoucherWriter
}

// VoucherRepositoryWithTx extends VoucherRepositoryFacade with transaction capabilities
type VoucherRepositoryWithTx interface {
	VoucherRepositoryFacade
	TransactionManager
}
