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

// businessService implements the BusinessSvcFacade interface
type businessService struct {
	BaseService
	businessRepo portsrepo.BusinessRepositoryFacade
	now          clock
}

// NewBusinessService creates a new business service. It authorizes against its own repository.
func NewBusinessService(businessRepo portsrepo.BusinessRepositoryFacade) portssvc.BusinessSvcFacade {
	svc := &businessService{
		businessRepo: businessRepo,
		now:          utcNow,
	}
	svc.BusinessAuthorizer = svc
	return svc
}

var _ portssvc.BusinessSvcFacade = (*businessService)(nil)

func (s *businessService) FindBusinessByID(ctx context.Context, businessID, userID string) (*domain.Business, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find business by ID",
				slog.String("business_id", businessID))
		}
		return nil, err
	}
	return business, nil
}

func (s *businessService) ListUserBusinesses(ctx context.Context, userID string) ([]domain.Business, error) {
	businesses, err := s.businessRepo.ListBusinessesByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list businesses for user",
			slog.String("user_id", userID))
		return nil, err
	}
	if businesses == nil {
		return []domain.Business{}, nil
	}

	s.LogDebug(ctx, "Businesses listed successfully",
		slog.Int("count", len(businesses)),
		slog.String("user_id", userID))
	return businesses, nil
}

// CreateBusiness saves the business and its creator's ADMIN membership together.
func (s *businessService) CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, creatorUserID string) (*domain.Business, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: business name is required", apperrors.ErrValidation)
	}

	now := s.now()
	business := domain.Business{
		BusinessID:  uuid.NewString(),
		Name:        name,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
			Version:       1,
		},
	}
	if req.GSTIN != nil && strings.TrimSpace(*req.GSTIN) != "" {
		gstin := strings.ToUpper(strings.TrimSpace(*req.GSTIN))
		business.GSTIN = &gstin
	}

	owner := domain.UserBusiness{
		UserID:     creatorUserID,
		BusinessID: business.BusinessID,
		Role:       domain.RoleAdmin,
		JoinedAt:   now,
	}

	if err := s.businessRepo.SaveBusiness(ctx, business, owner); err != nil {
		s.LogError(ctx, err, "Failed to save business",
			slog.String("business_id", business.BusinessID))
		return nil, err
	}

	s.LogInfo(ctx, "Business created successfully",
		slog.String("business_id", business.BusinessID),
		slog.String("creator_id", creatorUserID))
	return &business, nil
}

func (s *businessService) AuthorizeUserAction(ctx context.Context, userID, businessID string, requiredRole domain.UserBusinessRole) error {
	membership, err := s.businessRepo.FindUserBusinessRole(ctx, userID, businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of business",
				slog.String("user_id", userID),
				slog.String("business_id", businessID))
			return apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to find user business role",
			slog.String("user_id", userID),
			slog.String("business_id", businessID))
		return err
	}

	if !membership.Role.Satisfies(requiredRole) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("business_id", businessID),
			slog.String("user_role", string(membership.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}
	return nil
}
