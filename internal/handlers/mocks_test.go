package handlers_test

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/utils/accounting"
	"github.com/stretchr/testify/mock"
)

// --- Mock BusinessService ---
type MockBusinessService struct {
	mock.Mock
}

var _ portssvc.BusinessSvcFacade = (*MockBusinessService)(nil)

func (m *MockBusinessService) FindBusinessByID(ctx context.Context, businessID, userID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessService) ListUserBusinesses(ctx context.Context, userID string) ([]domain.Business, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Business), args.Error(1)
}

func (m *MockBusinessService) CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, creatorUserID string) (*domain.Business, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessService) AuthorizeUserAction(ctx context.Context, userID, businessID string, requiredRole domain.UserBusinessRole) error {
	args := m.Called(ctx, userID, businessID, requiredRole)
	return args.Error(0)
}

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) GetLedgerByID(ctx context.Context, businessID, ledgerID, userID string) (*domain.Ledger, error) {
	args := m.Called(ctx, businessID, ledgerID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}

func (m *MockLedgerService) ListLedgers(ctx context.Context, businessID, userID string, purpose domain.LedgerPurpose) ([]domain.Ledger, error) {
	args := m.Called(ctx, businessID, userID, purpose)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ledger), args.Error(1)
}

func (m *MockLedgerService) CreateLedger(ctx context.Context, businessID string, req dto.CreateLedgerRequest, userID string) (*domain.Ledger, error) {
	args := m.Called(ctx, businessID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}

// --- Mock VoucherService ---
type MockVoucherService struct {
	mock.Mock
}

var _ portssvc.VoucherSvcFacade = (*MockVoucherService)(nil)

func (m *MockVoucherService) ValidateDraft(ctx context.Context, req dto.ValidateVoucherDraftRequest) accounting.DraftValidation {
	args := m.Called(ctx, req)
	return args.Get(0).(accounting.DraftValidation)
}

func (m *MockVoucherService) CreateVoucher(ctx context.Context, businessID string, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error) {
	args := m.Called(ctx, businessID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherService) GetVoucherByID(ctx context.Context, businessID, voucherID, userID string) (*domain.Voucher, error) {
	args := m.Called(ctx, businessID, voucherID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherService) ListVouchers(ctx context.Context, businessID, userID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error) {
	args := m.Called(ctx, businessID, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListVouchersResponse), args.Error(1)
}

func (m *MockVoucherService) CancelVoucher(ctx context.Context, businessID, voucherID, userID string) (*domain.Voucher, error) {
	args := m.Called(ctx, businessID, voucherID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

// --- Mock NumberingSeriesService ---
type MockNumberingSeriesService struct {
	mock.Mock
}

var _ portssvc.NumberingSeriesSvcFacade = (*MockNumberingSeriesService)(nil)

func (m *MockNumberingSeriesService) GetSeriesByID(ctx context.Context, businessID, seriesID, userID string) (*domain.NumberingSeries, error) {
	args := m.Called(ctx, businessID, seriesID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NumberingSeries), args.Error(1)
}

func (m *MockNumberingSeriesService) ListSeries(ctx context.Context, businessID, userID string, params dto.ListNumberingSeriesParams) ([]domain.NumberingSeries, error) {
	args := m.Called(ctx, businessID, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NumberingSeries), args.Error(1)
}

func (m *MockNumberingSeriesService) CreateSeries(ctx context.Context, businessID string, req dto.CreateNumberingSeriesRequest, userID string) (*domain.NumberingSeries, error) {
	args := m.Called(ctx, businessID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NumberingSeries), args.Error(1)
}

func (m *MockNumberingSeriesService) UpdateSeries(ctx context.Context, businessID, seriesID string, req dto.UpdateNumberingSeriesRequest, userID string) (*domain.NumberingSeries, error) {
	args := m.Called(ctx, businessID, seriesID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NumberingSeries), args.Error(1)
}

func (m *MockNumberingSeriesService) DeactivateSeries(ctx context.Context, businessID, seriesID, userID string) error {
	args := m.Called(ctx, businessID, seriesID, userID)
	return args.Error(0)
}

func (m *MockNumberingSeriesService) PreviewSeries(ctx context.Context, req dto.PreviewNumberingSeriesRequest) (*dto.PreviewNumberingSeriesResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PreviewNumberingSeriesResponse), args.Error(1)
}

func (m *MockNumberingSeriesService) PreviewNextNumber(ctx context.Context, businessID, seriesID, userID string) (string, error) {
	args := m.Called(ctx, businessID, seriesID, userID)
	return args.String(0), args.Error(1)
}
