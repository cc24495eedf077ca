package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/google/uuid"
)

type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
	cache      portsrepo.LedgerListCache
	now        clock
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerAuthorizer adds business authorizer dependency
func WithLedgerAuthorizer(authorizer portssvc.BusinessAuthorizerSvc) LedgerServiceOption {
	return func(s *ledgerService) {
		s.BusinessAuthorizer = authorizer
	}
}

// WithLedgerCache serves ledger lists through cache. A nil cache is ignored.
func WithLedgerCache(cache portsrepo.LedgerListCache) LedgerServiceOption {
	return func(s *ledgerService) {
		s.cache = cache
	}
}

func NewLedgerService(repo portsrepo.LedgerRepositoryFacade, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		ledgerRepo: repo,
		now:        utcNow,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) GetLedgerByID(ctx context.Context, businessID, ledgerID, userID string) (*domain.Ledger, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	ledger, err := s.ledgerRepo.FindLedgerByID(ctx, businessID, ledgerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find ledger",
				slog.String("business_id", businessID),
				slog.String("ledger_id", ledgerID))
		}
		return nil, err
	}
	return ledger, nil
}

func (s *ledgerService) ListLedgers(ctx context.Context, businessID, userID string, purpose domain.LedgerPurpose) ([]domain.Ledger, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	var ledgers []domain.Ledger
	var err error
	if s.cache != nil {
		ledgers, err = s.cache.FetchLedgers(ctx, businessID, func(ctx context.Context) ([]domain.Ledger, error) {
			return s.ledgerRepo.ListLedgersByBusiness(ctx, businessID)
		})
	} else {
		ledgers, err = s.ledgerRepo.ListLedgersByBusiness(ctx, businessID)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledgers",
			slog.String("business_id", businessID))
		return nil, err
	}

	filtered := domain.FilterLedgers(ledgers, purpose)
	if filtered == nil {
		filtered = []domain.Ledger{}
	}
	return filtered, nil
}

func (s *ledgerService) CreateLedger(ctx context.Context, businessID string, req dto.CreateLedgerRequest, userID string) (*domain.Ledger, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleMember); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	group := strings.TrimSpace(req.GroupName)
	if name == "" || group == "" {
		return nil, fmt.Errorf("%w: ledger name and group are required", apperrors.ErrValidation)
	}

	now := s.now()
	ledger := domain.Ledger{
		LedgerID:       uuid.NewString(),
		BusinessID:     businessID,
		Name:           name,
		GroupName:      group,
		OpeningBalance: req.OpeningBalance.Decimal,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
			Version:       1,
		},
	}

	if err := s.ledgerRepo.SaveLedger(ctx, ledger); err != nil {
		s.LogError(ctx, err, "Failed to save ledger",
			slog.String("business_id", businessID),
			slog.String("ledger_name", name))
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateLedgers(ctx, businessID); err != nil {
			s.LogWarn(ctx, "Failed to invalidate ledger cache",
				slog.String("business_id", businessID),
				slog.String("error", err.Error()))
		}
	}

	s.LogInfo(ctx, "Ledger created successfully",
		slog.String("business_id", businessID),
		slog.String("ledger_id", ledger.LedgerID))
	return &ledger, nil
}
