package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock BusinessRepository ---
type MockBusinessRepository struct {
	mock.Mock
}

var _ portsrepo.BusinessRepositoryFacade = (*MockBusinessRepository)(nil)

func (m *MockBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) ListBusinessesByUserID(ctx context.Context, userID string) ([]domain.Business, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business, owner domain.UserBusiness) error {
	args := m.Called(ctx, business, owner)
	return args.Error(0)
}

func (m *MockBusinessRepository) AddUserToBusiness(ctx context.Context, membership domain.UserBusiness) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockBusinessRepository) FindUserBusinessRole(ctx context.Context, userID, businessID string) (*domain.UserBusiness, error) {
	args := m.Called(ctx, userID, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserBusiness), args.Error(1)
}

// --- Mock BusinessAuthorizer ---
type MockBusinessAuthorizer struct {
	mock.Mock
}

var _ portssvc.BusinessAuthorizerSvc = (*MockBusinessAuthorizer)(nil)

func (m *MockBusinessAuthorizer) AuthorizeUserAction(ctx context.Context, userID, businessID string, requiredRole domain.UserBusinessRole) error {
	args := m.Called(ctx, userID, businessID, requiredRole)
	return args.Error(0)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) FindLedgerByID(ctx context.Context, businessID, ledgerID string) (*domain.Ledger, error) {
	args := m.Called(ctx, businessID, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) FindLedgersByIDs(ctx context.Context, businessID string, ledgerIDs []string) (map[string]domain.Ledger, error) {
	args := m.Called(ctx, businessID, ledgerIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) ListLedgersByBusiness(ctx context.Context, businessID string) ([]domain.Ledger, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) SaveLedger(ctx context.Context, ledger domain.Ledger) error {
	args := m.Called(ctx, ledger)
	return args.Error(0)
}

// --- Mock LedgerListCache ---
type MockLedgerCache struct {
	mock.Mock
}

var _ portsrepo.LedgerListCache = (*MockLedgerCache)(nil)

// FetchLedgers calls the loader when the expectation returns nil ledgers.
func (m *MockLedgerCache) FetchLedgers(ctx context.Context, businessID string, loader func(context.Context) ([]domain.Ledger, error)) ([]domain.Ledger, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		if err := args.Error(1); err != nil {
			return nil, err
		}
		return loader(ctx)
	}
	return args.Get(0).([]domain.Ledger), args.Error(1)
}

func (m *MockLedgerCache) InvalidateLedgers(ctx context.Context, businessID string) error {
	args := m.Called(ctx, businessID)
	return args.Error(0)
}

// --- Mock VoucherRepository ---
type MockVoucherRepository struct {
	mock.Mock
}

var _ portsrepo.VoucherRepositoryFacade = (*MockVoucherRepository)(nil)

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, businessID, voucherID string) (*domain.Voucher, error) {
	args := m.Called(ctx, businessID, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchersByBusiness(ctx context.Context, businessID string, voucherType *domain.VoucherType, limit int, nextToken *string) ([]domain.Voucher, *string, error) {
	args := m.Called(ctx, businessID, voucherType, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Voucher), returnedNextToken, args.Error(2)
}

// SaveVoucher runs the issuer against the series given to the expectation, the way the
// repository does under its row lock. A nil series saves the voucher unnumbered.
func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher, issue portsrepo.NumberIssuer) (*domain.Voucher, error) {
	args := m.Called(ctx, voucher)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	if series, ok := args.Get(0).(*domain.NumberingSeries); ok && series != nil {
		number, next := issue(*series)
		*series = next
		voucher.VoucherNumber = number
		voucher.SeriesID = &next.SeriesID
	}
	voucher.Version = 1
	return &voucher, nil
}

func (m *MockVoucherRepository) UpdateVoucherStatus(ctx context.Context, voucher domain.Voucher, status domain.VoucherStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, voucher.VoucherID, status, updatedBy)
	return args.Error(0)
}

// --- Mock NumberingSeriesRepository ---
type MockSeriesRepository struct {
	mock.Mock
}

var _ portsrepo.NumberingSeriesRepositoryFacade = (*MockSeriesRepository)(nil)

func (m *MockSeriesRepository) FindSeriesByID(ctx context.Context, businessID, seriesID string) (*domain.NumberingSeries, error) {
	args := m.Called(ctx, businessID, seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NumberingSeries), args.Error(1)
}

func (m *MockSeriesRepository) ListSeriesByBusiness(ctx context.Context, businessID string, voucherType *domain.VoucherType) ([]domain.NumberingSeries, error) {
	args := m.Called(ctx, businessID, voucherType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NumberingSeries), args.Error(1)
}

func (m *MockSeriesRepository) FindDefaultSeries(ctx context.Context, businessID string, voucherType domain.VoucherType) (*domain.NumberingSeries, error) {
	args := m.Called(ctx, businessID, voucherType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NumberingSeries), args.Error(1)
}

func (m *MockSeriesRepository) SaveSeries(ctx context.Context, series domain.NumberingSeries) error {
	args := m.Called(ctx, series)
	return args.Error(0)
}

func (m *MockSeriesRepository) UpdateSeries(ctx context.Context, series domain.NumberingSeries) error {
	args := m.Called(ctx, series)
	return args.Error(0)
}
