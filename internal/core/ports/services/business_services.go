package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
)

// BusinessReaderSvc defines read operations for business data
type BusinessReaderSvc interface {
	// FindBusinessByID retrieves a business the user is a member of.
	FindBusinessByID(ctx context.Context, businessID, userID string) (*domain.Business, error)

	// ListUserBusinesses retrieves the businesses a user belongs to.
	ListUserBusinesses(ctx context.Context, userID string) ([]domain.Business, error)
}

// BusinessWriterSvc defines write operations for business data
type BusinessWriterSvc interface {
	// CreateBusiness persists a new business and makes the creator its admin.
	CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, creatorUserID string) (*domain.Business, error)
}

// BusinessAuthorizerSvc defines operations for business authorization
type BusinessAuthorizerSvc interface {
	// AuthorizeUserAction returns apperrors.ErrForbidden unless the user holds requiredRole or higher.
	AuthorizeUserAction(ctx context.Context, userID, businessID string, requiredRole domain.UserBusinessRole) error
}

// BusinessSvcFacade combines all business-related service interfaces
type BusinessSvcFacade interface {
	BusinessReaderSvc
	BusinessWriterSvc
	BusinessAuthorizerSvc
}
