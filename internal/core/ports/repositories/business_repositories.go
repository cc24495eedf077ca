package repositories

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// BusinessReader defines read operations for business data
type BusinessReader interface {
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)

	// ListBusinessesByUserID retrieves the active businesses a user belongs to.
	ListBusinessesByUserID(ctx context.Context, userID string) ([]domain.Business, error)
}

// BusinessWriter defines write operations for business data
type BusinessWriter interface {
	// SaveBusiness persists a new business together with its first member, atomically.
	SaveBusiness(ctx context.Context, business domain.Business, owner domain.UserBusiness) error
}

// BusinessMembershipManager defines operations for managing business memberships
type BusinessMembershipManager interface {
	AddUserToBusiness(ctx context.Context, membership domain.UserBusiness) error

	// FindUserBusinessRole returns apperrors.ErrNotFound when the user is not a member.
	FindUserBusinessRole(ctx context.Context, userID, businessID string) (*domain.UserBusiness, error)
}

// BusinessRepositoryFacade combines all business-related repository interfaces
type BusinessRepositoryFacade interface {
	BusinessReader
	BusinessWriter
	BusinessMembershipManager
}

// BusinessRepositoryWithTx extends BusinessRepositoryFacade with transaction capabilities
type BusinessRepositoryWithTx interface {
	BusinessRepositoryFacade
	TransactionManager
}
