package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/utils/accounting"
)

// VoucherReaderSvc defines read operations for vouchers
type VoucherReaderSvc interface {
	GetVoucherByID(ctx context.Context, businessID, voucherID, userID string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context, businessID, userID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error)
}

// VoucherWriterSvc defines write operations for vouchers
type VoucherWriterSvc interface {
	// CreateVoucher validates the entries, assigns the next number of the default series and saves the voucher.
	// A failed balance check is returned as *VoucherDraftError.
	CreateVoucher(ctx context.Context, businessID string, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error)

	// CancelVoucher marks a voucher cancelled; cancelling twice is a conflict.
	CancelVoucher(ctx context.Context, businessID, voucherID, userID string) (*domain.Voucher, error)
}

// VoucherDraftValidatorSvc checks voucher editor rows without touching storage.
type VoucherDraftValidatorSvc interface {
	ValidateDraft(ctx context.Context, req dto.ValidateVoucherDraftRequest) accounting.DraftValidation
}

// VoucherSvcFacade combines all voucher-related service interfaces
type VoucherSvcFacade interface {
	VoucherReaderSvc
	VoucherWriterSvc
	VoucherDraftValidatorSvc
}

// VoucherDraftError carries the failed draft validation so callers can show both totals.
type VoucherDraftError struct {
	Validation accounting.DraftValidation
}

func (e *VoucherDraftError) Error() string {
	return e.Validation.Err().Error()
}

func (e *VoucherDraftError) Unwrap() error {
	return e.Validation.Err()
}
