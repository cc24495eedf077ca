package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/utils/accounting"
	"github.com/SscSPs/bizbooks/internal/utils/numbering"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type voucherService struct {
	BaseService
	voucherRepo  portsrepo.VoucherRepositoryFacade
	ledgerRepo   portsrepo.LedgerReader
	seriesReader portsrepo.NumberingSeriesReader
	location     *time.Location
	now          clock
}

// VoucherServiceOption is a functional option for configuring the voucher service
type VoucherServiceOption func(*voucherService)

func WithVoucherAuthorizer(authorizer portssvc.BusinessAuthorizerSvc) VoucherServiceOption {
	return func(s *voucherService) {
		s.BusinessAuthorizer = authorizer
	}
}

// WithVoucherSeriesReader lets the service warn about default series that repeat numbers.
func WithVoucherSeriesReader(reader portsrepo.NumberingSeriesReader) VoucherServiceOption {
	return func(s *voucherService) {
		s.seriesReader = reader
	}
}

// WithVoucherLocation sets the zone voucher dates and {YEAR}/{MONTH} tokens are evaluated in.
func WithVoucherLocation(loc *time.Location) VoucherServiceOption {
	return func(s *voucherService) {
		if loc != nil {
			s.location = loc
		}
	}
}

func WithVoucherClock(now func() time.Time) VoucherServiceOption {
	return func(s *voucherService) {
		s.now = now
	}
}

func NewVoucherService(voucherRepo portsrepo.VoucherRepositoryFacade, ledgerRepo portsrepo.LedgerReader, options ...VoucherServiceOption) portssvc.VoucherSvcFacade {
	svc := &voucherService{
		voucherRepo: voucherRepo,
		ledgerRepo:  ledgerRepo,
		location:    time.UTC,
		now:         utcNow,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

func (s *voucherService) ValidateDraft(ctx context.Context, req dto.ValidateVoucherDraftRequest) accounting.DraftValidation {
	result := accounting.ValidateJournalDraft(dto.ToDomainDrafts(req.DebitEntries), dto.ToDomainDrafts(req.CreditEntries), req.Narration)
	if !result.Valid() {
		s.LogDebug(ctx, "Voucher draft rejected",
			slog.String("reason", string(result.Failure)),
			slog.String("total_debit", result.TotalDebit.String()),
			slog.String("total_credit", result.TotalCredit.String()))
	}
	return result
}

// CreateVoucher runs the draft checks, verifies every ledger, then saves the voucher. The number is
// issued by the repository from the locked default series so concurrent creates never share one.
func (s *voucherService) CreateVoucher(ctx context.Context, businessID string, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleMember); err != nil {
		return nil, err
	}

	voucherType, ok := domain.ParseVoucherType(req.VoucherType)
	if !ok {
		return nil, fmt.Errorf("%w: unknown voucher type %q", apperrors.ErrValidation, req.VoucherType)
	}

	voucherDate, err := time.ParseInLocation(dto.VoucherDateLayout, req.VoucherDate, s.location)
	if err != nil {
		return nil, fmt.Errorf("%w: voucher_date must be formatted as YYYY-MM-DD", apperrors.ErrValidation)
	}

	debits, credits := accounting.SplitEntries(req.ToDomainLedgerEntries())
	result := accounting.ValidateJournalDraft(debits, credits, req.Narration)
	if !result.Valid() {
		return nil, &portssvc.VoucherDraftError{Validation: result}
	}

	if req.TotalAmount != nil && !req.TotalAmount.IsZero() &&
		req.TotalAmount.Sub(result.TotalDebit).Abs().GreaterThan(accounting.BalanceTolerance) {
		return nil, fmt.Errorf("%w: total_amount %s does not match the debit total %s", apperrors.ErrValidation,
			req.TotalAmount.StringFixed(2), result.TotalDebit.StringFixed(2))
	}

	status := domain.VoucherPosted
	if req.Status != "" {
		status = domain.VoucherStatus(strings.ToUpper(req.Status))
		if status != domain.VoucherPosted && status != domain.VoucherDraft {
			return nil, fmt.Errorf("%w: a new voucher must be DRAFT or POSTED", apperrors.ErrValidation)
		}
	}

	if err := s.checkReferences(ctx, businessID, voucherType, result.Entries); err != nil {
		return nil, err
	}

	now := s.now()
	voucherID := uuid.NewString()
	entries := make([]domain.LedgerEntry, len(result.Entries))
	for i, e := range result.Entries {
		e.EntryID = uuid.NewString()
		e.VoucherID = voucherID
		entries[i] = e
	}

	voucher := domain.Voucher{
		VoucherID:   voucherID,
		BusinessID:  businessID,
		VoucherType: voucherType,
		VoucherDate: voucherDate,
		Narration:   req.Narration,
		TotalAmount: result.TotalDebit,
		Status:      status,
		Entries:     entries,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	issuedAt := now.In(s.location)
	saved, err := s.voucherRepo.SaveVoucher(ctx, voucher, func(series domain.NumberingSeries) (string, domain.NumberingSeries) {
		return numbering.Advance(series, issuedAt)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save voucher",
			slog.String("business_id", businessID),
			slog.String("voucher_type", string(voucherType)))
		return nil, err
	}

	if saved.VoucherNumber == "" {
		s.LogInfo(ctx, "Voucher saved without a number; no default series for its type",
			slog.String("voucher_id", saved.VoucherID),
			slog.String("voucher_type", string(voucherType)))
	} else {
		s.LogInfo(ctx, "Voucher created successfully",
			slog.String("voucher_id", saved.VoucherID),
			slog.String("voucher_number", saved.VoucherNumber))
	}
	return saved, nil
}

// checkReferences loads the referenced ledgers and the default series concurrently.
func (s *voucherService) checkReferences(ctx context.Context, businessID string, voucherType domain.VoucherType, entries []domain.LedgerEntry) error {
	ledgerIDs := make([]string, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.LedgerID]; dup {
			continue
		}
		seen[e.LedgerID] = struct{}{}
		ledgerIDs = append(ledgerIDs, e.LedgerID)
	}

	var ledgers map[string]domain.Ledger
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.ledgerRepo.FindLedgersByIDs(gctx, businessID, ledgerIDs)
		if err != nil {
			return err
		}
		ledgers = found
		return nil
	})
	if s.seriesReader != nil {
		// Advisory only. SaveVoucher reads the series again under lock.
		g.Go(func() error {
			series, err := s.seriesReader.FindDefaultSeries(gctx, businessID, voucherType)
			if err != nil {
				if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, context.Canceled) {
					s.LogWarn(ctx, "Could not check default numbering series",
						slog.String("voucher_type", string(voucherType)),
						slog.String("error", err.Error()))
				}
				return nil
			}
			if numbering.RepeatsNumbers(*series) {
				s.LogWarn(ctx, "Default numbering series will repeat voucher numbers",
					slog.String("series_id", series.SeriesID),
					slog.String("format", series.Format),
					slog.String("reset_frequency", string(series.ResetFrequency)))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load voucher references",
			slog.String("business_id", businessID))
		return err
	}

	for _, id := range ledgerIDs {
		ledger, ok := ledgers[id]
		if !ok {
			return fmt.Errorf("%w: ledger %s not found", apperrors.ErrValidation, id)
		}
		if !ledger.IsActive {
			return fmt.Errorf("%w: ledger %s is inactive", apperrors.ErrValidation, ledger.Name)
		}
		if voucherType == domain.VoucherContra && !ledger.IsCashOrBank() {
			return fmt.Errorf("%w: contra vouchers only move money between cash and bank ledgers; %s is in %s",
				apperrors.ErrValidation, ledger.Name, ledger.GroupName)
		}
	}
	return nil
}

func (s *voucherService) GetVoucherByID(ctx context.Context, businessID, voucherID, userID string) (*domain.Voucher, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	voucher, err := s.voucherRepo.FindVoucherByID(ctx, businessID, voucherID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find voucher",
				slog.String("business_id", businessID),
				slog.String("voucher_id", voucherID))
		}
		return nil, err
	}
	return voucher, nil
}

func (s *voucherService) ListVouchers(ctx context.Context, businessID, userID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	var voucherType *domain.VoucherType
	if params.VoucherType != "" {
		vt, ok := domain.ParseVoucherType(params.VoucherType)
		if !ok {
			return nil, fmt.Errorf("%w: unknown voucher type %q", apperrors.ErrValidation, params.VoucherType)
		}
		voucherType = &vt
	}

	vouchers, nextToken, err := s.voucherRepo.ListVouchersByBusiness(ctx, businessID, voucherType, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vouchers",
			slog.String("business_id", businessID))
		return nil, err
	}

	resp := dto.ToListVouchersResponse(vouchers, nextToken)
	return &resp, nil
}

func (s *voucherService) CancelVoucher(ctx context.Context, businessID, voucherID, userID string) (*domain.Voucher, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleMember); err != nil {
		return nil, err
	}

	voucher, err := s.voucherRepo.FindVoucherByID(ctx, businessID, voucherID)
	if err != nil {
		return nil, err
	}
	if voucher.Status == domain.VoucherCancelled {
		return nil, apperrors.NewAppError(409, "voucher "+voucherID+" is already cancelled", apperrors.ErrConflict)
	}

	now := s.now()
	if err := s.voucherRepo.UpdateVoucherStatus(ctx, *voucher, domain.VoucherCancelled, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to cancel voucher",
			slog.String("voucher_id", voucherID))
		return nil, err
	}

	voucher.Status = domain.VoucherCancelled
	voucher.LastUpdatedAt = now
	voucher.LastUpdatedBy = userID
	voucher.Version++

	s.LogInfo(ctx, "Voucher cancelled",
		slog.String("voucher_id", voucherID),
		slog.String("voucher_number", voucher.VoucherNumber))
	return voucher, nil
}
