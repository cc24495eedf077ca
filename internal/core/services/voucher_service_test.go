package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/core/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type VoucherServiceTestSuite struct {
	suite.Suite
	mockVoucherRepo *MockVoucherRepository
	mockLedgerRepo  *MockLedgerRepository
	mockSeriesRepo  *MockSeriesRepository
	mockAuth        *MockBusinessAuthorizer
	service         portssvc.VoucherSvcFacade
	now             time.Time
	ist             *time.Location
	businessID      string
	userID          string
	ledgers         map[string]domain.Ledger
}

func (suite *VoucherServiceTestSuite) SetupTest() {
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockSeriesRepo = new(MockSeriesRepository)
	suite.mockAuth = new(MockBusinessAuthorizer)
	suite.ist = time.FixedZone("IST", 5*3600+1800)
	// 2024-03-31 20:00 UTC is already April 1st in IST
	suite.now = time.Date(2024, 3, 31, 20, 0, 0, 0, time.UTC)
	suite.businessID = "biz-1"
	suite.userID = "user-1"

	suite.service = services.NewVoucherService(
		suite.mockVoucherRepo,
		suite.mockLedgerRepo,
		services.WithVoucherAuthorizer(suite.mockAuth),
		services.WithVoucherSeriesReader(suite.mockSeriesRepo),
		services.WithVoucherLocation(suite.ist),
		services.WithVoucherClock(func() time.Time { return suite.now }),
	)

	suite.ledgers = map[string]domain.Ledger{
		"l-cash":  {LedgerID: "l-cash", Name: "Cash", GroupName: "Cash-in-Hand", IsActive: true},
		"l-bank":  {LedgerID: "l-bank", Name: "HDFC", GroupName: "Bank Accounts", IsActive: true},
		"l-sales": {LedgerID: "l-sales", Name: "Sales", GroupName: "Sales Accounts", IsActive: true},
		"l-old":   {LedgerID: "l-old", Name: "Old Sales", GroupName: "Sales Accounts", IsActive: false},
	}
}

func TestVoucherService(t *testing.T) {
	suite.Run(t, new(VoucherServiceTestSuite))
}

func amount(s string) dto.FlexibleAmount {
	return dto.NewFlexibleAmount(accounting.ParseAmount(s))
}

func (suite *VoucherServiceTestSuite) entry(ledgerID, debit, credit string) dto.LedgerEntryRequest {
	return dto.LedgerEntryRequest{LedgerID: ledgerID, DebitAmount: amount(debit), CreditAmount: amount(credit)}
}

func (suite *VoucherServiceTestSuite) allowMember() {
	suite.mockAuth.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.businessID, domain.RoleMember).Return(nil)
}

func (suite *VoucherServiceTestSuite) ledgersFound(ids ...string) {
	found := make(map[string]domain.Ledger)
	for _, id := range ids {
		if l, ok := suite.ledgers[id]; ok {
			found[id] = l
		}
	}
	suite.mockLedgerRepo.On("FindLedgersByIDs", mock.Anything, suite.businessID, ids).Return(found, nil).Once()
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_IssuesNumberFromDefaultSeries() {
	ctx := context.Background()
	suite.allowMember()
	suite.ledgersFound("l-cash", "l-sales")

	lastIssued := time.Date(2024, 3, 10, 9, 0, 0, 0, suite.ist)
	series := &domain.NumberingSeries{
		SeriesID:        "s-1",
		VoucherType:     domain.VoucherSalesInvoice,
		Prefix:          "INV",
		Separator:       "-",
		Format:          "{PREFIX}{SEPARATOR}{YEAR}{MM}{SEPARATOR}{SEQUENCE}",
		SequenceLength:  4,
		StartNumber:     1,
		CurrentSequence: 57,
		ResetFrequency:  domain.ResetMonthly,
		IsDefault:       true,
		IsActive:        true,
		LastIssuedAt:    &lastIssued,
	}
	suite.mockSeriesRepo.On("FindDefaultSeries", mock.Anything, suite.businessID, domain.VoucherSalesInvoice).Return(series, nil).Once()
	suite.mockVoucherRepo.On("SaveVoucher", ctx, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.VoucherType == domain.VoucherSalesInvoice && len(v.Entries) == 2 && v.Status == domain.VoucherPosted
	})).Return(series, nil).Once()

	req := dto.CreateVoucherRequest{
		VoucherType: "Sales Invoice",
		VoucherDate: "2024-04-01",
		Narration:   "Counter sale",
		LedgerEntries: []dto.LedgerEntryRequest{
			suite.entry("l-cash", "1180", ""),
			suite.entry("l-sales", "", "1180"),
		},
	}

	voucher, err := suite.service.CreateVoucher(ctx, suite.businessID, req, suite.userID)
	suite.Require().NoError(err)

	// Monthly reset in IST: the clock says April, the series last issued in March
	suite.Equal("INV-202404-0001", voucher.VoucherNumber)
	suite.Require().NotNil(voucher.SeriesID)
	suite.Equal("s-1", *voucher.SeriesID)
	suite.Equal(int64(2), series.CurrentSequence)
	suite.True(voucher.TotalAmount.Equal(decimal.NewFromInt(1180)))
	suite.Equal("2024-04-01", voucher.VoucherDate.Format(dto.VoucherDateLayout))

	suite.Require().Len(voucher.Entries, 2)
	suite.Equal("l-cash", voucher.Entries[0].LedgerID)
	suite.True(voucher.Entries[0].IsDebit())
	suite.Equal("Counter sale", voucher.Entries[1].Narration)
	suite.Equal(voucher.VoucherID, voucher.Entries[1].VoucherID)
	suite.NotEmpty(voucher.Entries[1].EntryID)

	suite.mockVoucherRepo.AssertExpectations(suite.T())
	suite.mockSeriesRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_WithoutSeriesIsUnnumbered() {
	ctx := context.Background()
	suite.allowMember()
	suite.ledgersFound("l-cash", "l-sales")
	suite.mockSeriesRepo.On("FindDefaultSeries", mock.Anything, suite.businessID, domain.VoucherJournal).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockVoucherRepo.On("SaveVoucher", ctx, mock.Anything).Return(nil, nil).Once()

	req := dto.CreateVoucherRequest{
		VoucherType: "JOURNAL",
		VoucherDate: "2024-04-01",
		Status:      "DRAFT",
		LedgerEntries: []dto.LedgerEntryRequest{
			suite.entry("l-cash", "10", ""),
			suite.entry("l-sales", "", "10"),
		},
	}

	voucher, err := suite.service.CreateVoucher(ctx, suite.businessID, req, suite.userID)
	suite.Require().NoError(err)
	suite.Empty(voucher.VoucherNumber)
	suite.Nil(voucher.SeriesID)
	suite.Equal(domain.VoucherDraft, voucher.Status)
	suite.Equal("Debit entry", voucher.Entries[0].Narration)
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_UnbalancedReturnsDraftError() {
	suite.allowMember()

	req := dto.CreateVoucherRequest{
		VoucherType: "JOURNAL",
		VoucherDate: "2024-04-01",
		LedgerEntries: []dto.LedgerEntryRequest{
			suite.entry("l-cash", "100", ""),
			suite.entry("l-sales", "", "99.50"),
		},
	}

	_, err := suite.service.CreateVoucher(context.Background(), suite.businessID, req, suite.userID)
	var draftErr *portssvc.VoucherDraftError
	suite.Require().True(errors.As(err, &draftErr))
	suite.Equal(accounting.DraftUnbalanced, draftErr.Validation.Failure)
	suite.Equal("0.50", draftErr.Validation.Difference().StringFixed(2))
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "FindLedgersByIDs", mock.Anything, mock.Anything, mock.Anything)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SaveVoucher", mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_DraftFailures() {
	tests := []struct {
		name    string
		entries []dto.LedgerEntryRequest
		want    accounting.DraftFailure
	}{
		{name: "no entries", entries: nil, want: accounting.DraftMissingAmounts},
		{name: "credit side missing", entries: []dto.LedgerEntryRequest{suite.entry("l-cash", "10", "")}, want: accounting.DraftMissingAmounts},
		{name: "ledger missing on a balanced voucher", entries: []dto.LedgerEntryRequest{
			suite.entry("l-cash", "100", ""),
			suite.entry("l-sales", "", "60"),
			suite.entry("", "", "40"),
		}, want: accounting.DraftIncompleteEntry},
		{name: "both sides on one line", entries: []dto.LedgerEntryRequest{
			suite.entry("l-cash", "100", "100"),
		}, want: accounting.DraftIncompleteEntry},
	}

	suite.allowMember()
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := dto.CreateVoucherRequest{VoucherType: "JOURNAL", VoucherDate: "2024-04-01", LedgerEntries: tt.entries}
			_, err := suite.service.CreateVoucher(context.Background(), suite.businessID, req, suite.userID)
			var draftErr *portssvc.VoucherDraftError
			suite.Require().True(errors.As(err, &draftErr))
			suite.Equal(tt.want, draftErr.Validation.Failure)
		})
	}
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_ReferenceChecks() {
	tests := []struct {
		name        string
		voucherType string
		entries     []dto.LedgerEntryRequest
		ledgerIDs   []string
		errContains string
	}{
		{
			name:        "unknown ledger",
			voucherType: "JOURNAL",
			entries:     []dto.LedgerEntryRequest{suite.entry("l-cash", "5", ""), suite.entry("l-ghost", "", "5")},
			ledgerIDs:   []string{"l-cash", "l-ghost"},
			errContains: "l-ghost not found",
		},
		{
			name:        "inactive ledger",
			voucherType: "JOURNAL",
			entries:     []dto.LedgerEntryRequest{suite.entry("l-cash", "5", ""), suite.entry("l-old", "", "5")},
			ledgerIDs:   []string{"l-cash", "l-old"},
			errContains: "Old Sales is inactive",
		},
		{
			name:        "contra with a sales ledger",
			voucherType: "CONTRA",
			entries:     []dto.LedgerEntryRequest{suite.entry("l-bank", "5", ""), suite.entry("l-sales", "", "5")},
			ledgerIDs:   []string{"l-bank", "l-sales"},
			errContains: "cash and bank",
		},
	}

	suite.allowMember()
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.ledgersFound(tt.ledgerIDs...)
			suite.mockSeriesRepo.On("FindDefaultSeries", mock.Anything, suite.businessID, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

			req := dto.CreateVoucherRequest{VoucherType: tt.voucherType, VoucherDate: "2024-04-01", LedgerEntries: tt.entries}
			_, err := suite.service.CreateVoucher(context.Background(), suite.businessID, req, suite.userID)
			suite.ErrorIs(err, apperrors.ErrValidation)
			suite.ErrorContains(err, tt.errContains)
		})
	}
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SaveVoucher", mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_ContraBetweenCashAndBank() {
	ctx := context.Background()
	suite.allowMember()
	suite.ledgersFound("l-bank", "l-cash")
	suite.mockSeriesRepo.On("FindDefaultSeries", mock.Anything, suite.businessID, domain.VoucherContra).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockVoucherRepo.On("SaveVoucher", ctx, mock.Anything).Return(nil, nil).Once()

	req := dto.CreateVoucherRequest{
		VoucherType:   "contra",
		VoucherDate:   "2024-04-01",
		LedgerEntries: []dto.LedgerEntryRequest{suite.entry("l-bank", "5000", ""), suite.entry("l-cash", "", "5000")},
	}
	voucher, err := suite.service.CreateVoucher(ctx, suite.businessID, req, suite.userID)
	suite.Require().NoError(err)
	suite.Equal(domain.VoucherContra, voucher.VoucherType)
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_InputErrors() {
	suite.allowMember()
	balanced := []dto.LedgerEntryRequest{suite.entry("l-cash", "10", ""), suite.entry("l-sales", "", "10")}
	mismatch := amount("12")

	tests := []struct {
		name string
		req  dto.CreateVoucherRequest
	}{
		{name: "unknown type", req: dto.CreateVoucherRequest{VoucherType: "GIFT", VoucherDate: "2024-04-01", LedgerEntries: balanced}},
		{name: "bad date", req: dto.CreateVoucherRequest{VoucherType: "JOURNAL", VoucherDate: "01/04/2024", LedgerEntries: balanced}},
		{name: "total mismatch", req: dto.CreateVoucherRequest{VoucherType: "JOURNAL", VoucherDate: "2024-04-01", TotalAmount: &mismatch, LedgerEntries: balanced}},
		{name: "cancelled on create", req: dto.CreateVoucherRequest{VoucherType: "JOURNAL", VoucherDate: "2024-04-01", Status: "CANCELLED", LedgerEntries: balanced}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.CreateVoucher(context.Background(), suite.businessID, tt.req, suite.userID)
			suite.ErrorIs(err, apperrors.ErrValidation)
			var draftErr *portssvc.VoucherDraftError
			suite.False(errors.As(err, &draftErr))
		})
	}
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_Forbidden() {
	suite.mockAuth.On("AuthorizeUserAction", mock.Anything, "viewer", suite.businessID, domain.RoleMember).Return(apperrors.ErrForbidden).Once()

	_, err := suite.service.CreateVoucher(context.Background(), suite.businessID, dto.CreateVoucherRequest{}, "viewer")
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *VoucherServiceTestSuite) TestCancelVoucher() {
	ctx := context.Background()
	suite.allowMember()

	posted := &domain.Voucher{VoucherID: "v-1", BusinessID: suite.businessID, Status: domain.VoucherPosted, AuditFields: domain.AuditFields{Version: 1}}
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.businessID, "v-1").Return(posted, nil).Once()
	suite.mockVoucherRepo.On("UpdateVoucherStatus", ctx, "v-1", domain.VoucherCancelled, suite.userID).Return(nil).Once()

	cancelled, err := suite.service.CancelVoucher(ctx, suite.businessID, "v-1", suite.userID)
	suite.Require().NoError(err)
	suite.Equal(domain.VoucherCancelled, cancelled.Status)
	suite.Equal(int64(2), cancelled.Version)

	again := &domain.Voucher{VoucherID: "v-1", BusinessID: suite.businessID, Status: domain.VoucherCancelled}
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.businessID, "v-1").Return(again, nil).Once()

	_, err = suite.service.CancelVoucher(ctx, suite.businessID, "v-1", suite.userID)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockVoucherRepo.AssertNumberOfCalls(suite.T(), "UpdateVoucherStatus", 1)
}

func (suite *VoucherServiceTestSuite) TestListVouchers() {
	ctx := context.Background()
	suite.mockAuth.On("AuthorizeUserAction", ctx, suite.userID, suite.businessID, domain.RoleReadOnly).Return(nil)

	vt := domain.VoucherReceipt
	suite.mockVoucherRepo.On("ListVouchersByBusiness", ctx, suite.businessID, &vt, 2, (*string)(nil)).
		Return([]domain.Voucher{{VoucherID: "v-2", VoucherType: vt}, {VoucherID: "v-1", VoucherType: vt}}, "tok", nil).Once()

	resp, err := suite.service.ListVouchers(ctx, suite.businessID, suite.userID, dto.ListVouchersParams{VoucherType: "receipt", Limit: 2})
	suite.Require().NoError(err)
	suite.Len(resp.Vouchers, 2)
	suite.Equal("Receipt", resp.Vouchers[0].VoucherTypeLabel)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("tok", *resp.NextToken)

	_, err = suite.service.ListVouchers(ctx, suite.businessID, suite.userID, dto.ListVouchersParams{VoucherType: "bogus"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *VoucherServiceTestSuite) TestValidateDraft() {
	req := dto.ValidateVoucherDraftRequest{
		Narration: "Rent",
		DebitEntries: []dto.DraftEntryRequest{
			{LedgerID: "l-rent", Amount: amount("150.75")},
		},
		CreditEntries: []dto.DraftEntryRequest{
			{LedgerID: "l-cash", Amount: amount("100.25")},
			{LedgerID: "l-bank", Amount: amount("50.50"), Narration: "Cheque"},
		},
	}

	result := suite.service.ValidateDraft(context.Background(), req)
	suite.Require().True(result.Valid())
	suite.Len(result.Entries, 3)
	suite.Equal("Rent", result.Entries[1].Narration)
	suite.Equal("Cheque", result.Entries[2].Narration)
	suite.True(result.IsBalanced())
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_RepeatingSeriesReusesNumber() {
	ctx := context.Background()
	suite.allowMember()

	series := &domain.NumberingSeries{
		SeriesID:        "s-cn",
		VoucherType:     domain.VoucherCreditNote,
		Prefix:          "CN",
		Format:          "{PREFIX}{YEAR}",
		SequenceLength:  4,
		StartNumber:     1,
		CurrentSequence: 1,
		ResetFrequency:  domain.ResetNever,
		IsDefault:       true,
		IsActive:        true,
	}
	suite.mockSeriesRepo.On("FindDefaultSeries", mock.Anything, suite.businessID, domain.VoucherCreditNote).Return(series, nil).Twice()
	suite.mockVoucherRepo.On("SaveVoucher", ctx, mock.Anything).Return(series, nil).Twice()

	req := dto.CreateVoucherRequest{
		VoucherType: "CREDIT_NOTE",
		VoucherDate: "2024-04-01",
		LedgerEntries: []dto.LedgerEntryRequest{
			suite.entry("l-sales", "50", ""),
			suite.entry("l-cash", "", "50"),
		},
	}

	var numbers []string
	for i := 0; i < 2; i++ {
		suite.ledgersFound("l-sales", "l-cash")
		voucher, err := suite.service.CreateVoucher(ctx, suite.businessID, req, suite.userID)
		suite.Require().NoError(err)
		numbers = append(numbers, voucher.VoucherNumber)
	}

	suite.Equal([]string{"CN2024", "CN2024"}, numbers)
	suite.Equal(int64(3), series.CurrentSequence)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_MonthlyResetWithoutMonthRepeatsEarlierNumber() {
	ctx := context.Background()
	suite.allowMember()
	suite.ledgersFound("l-cash", "l-sales")

	// Issued INV0001 and INV0002 in March; April starts over
	lastIssued := time.Date(2024, 3, 20, 12, 0, 0, 0, suite.ist)
	series := &domain.NumberingSeries{
		SeriesID:        "s-inv",
		VoucherType:     domain.VoucherSalesInvoice,
		Prefix:          "INV",
		Format:          "{PREFIX}{SEQUENCE}",
		SequenceLength:  4,
		StartNumber:     1,
		CurrentSequence: 3,
		ResetFrequency:  domain.ResetMonthly,
		IsDefault:       true,
		IsActive:        true,
		LastIssuedAt:    &lastIssued,
	}
	suite.mockSeriesRepo.On("FindDefaultSeries", mock.Anything, suite.businessID, domain.VoucherSalesInvoice).Return(series, nil).Once()
	suite.mockVoucherRepo.On("SaveVoucher", ctx, mock.Anything).Return(series, nil).Once()

	req := dto.CreateVoucherRequest{
		VoucherType: "SALES_INVOICE",
		VoucherDate: "2024-04-01",
		LedgerEntries: []dto.LedgerEntryRequest{
			suite.entry("l-cash", "10", ""),
			suite.entry("l-sales", "", "10"),
		},
	}

	voucher, err := suite.service.CreateVoucher(ctx, suite.businessID, req, suite.userID)
	suite.Require().NoError(err)
	suite.Equal("INV0001", voucher.VoucherNumber)
	suite.Equal(int64(2), series.CurrentSequence)
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_DefaultSeriesLookupFailureDoesNotBlock() {
	ctx := context.Background()
	suite.allowMember()
	suite.ledgersFound("l-cash", "l-sales")
	suite.mockSeriesRepo.On("FindDefaultSeries", mock.Anything, suite.businessID, domain.VoucherReceipt).Return(nil, errors.New("connection reset")).Once()
	suite.mockVoucherRepo.On("SaveVoucher", ctx, mock.Anything).Return(nil, nil).Once()

	req := dto.CreateVoucherRequest{
		VoucherType: "RECEIPT",
		VoucherDate: "2024-04-01",
		LedgerEntries: []dto.LedgerEntryRequest{
			suite.entry("l-cash", "25", ""),
			suite.entry("l-sales", "", "25"),
		},
	}

	voucher, err := suite.service.CreateVoucher(ctx, suite.businessID, req, suite.userID)
	suite.Require().NoError(err)
	suite.Empty(voucher.VoucherNumber)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
	suite.mockSeriesRepo.AssertExpectations(suite.T())
}
