package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/models"
	"github.com/SscSPs/bizbooks/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBusinessRepository struct {
	BaseRepository
}

// newPgxBusinessRepository creates a new repository for business data.
func newPgxBusinessRepository(pool *pgxpool.Pool) portsrepo.BusinessRepositoryWithTx {
	return &PgxBusinessRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BusinessRepositoryWithTx = (*PgxBusinessRepository)(nil)

const fullBusinessSelectQuery = `
SELECT
	b.business_id, b.name, b.description, b.gstin, b.is_active,
	b.created_at, b.created_by, b.last_updated_at, b.last_updated_by, b.version
FROM businesses b
`

const upsertMembershipQuery = `
	INSERT INTO user_businesses (user_id, business_id, role, joined_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (user_id, business_id) DO UPDATE SET role = EXCLUDED.role;
`

// getBusinesses runs the shared select with the given filter.
func (r *PgxBusinessRepository) getBusinesses(ctx context.Context, filterQuery string, args ...any) ([]domain.Business, error) {
	rows, err := r.Pool.Query(ctx, fullBusinessSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query businesses", err)
	}
	defer rows.Close()

	businesses, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Business])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect business rows", err)
	}
	return mapping.ToDomainBusinessSlice(businesses), nil
}

func (r *PgxBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business, owner domain.UserBusiness) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelBusiness(business)
	query := `
		INSERT INTO businesses (
			business_id, name, description, gstin, is_active,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		m.BusinessID,
		m.Name,
		m.Description,
		m.GSTIN,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		1,
	)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgUniqueViolation {
			return apperrors.NewConflictError("business " + m.BusinessID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save business "+m.BusinessID, err)
	}

	if _, err := tx.Exec(ctx, upsertMembershipQuery, owner.UserID, m.BusinessID, owner.Role, owner.JoinedAt); err != nil {
		return apperrors.NewAppError(500, "failed to add owner "+owner.UserID+" to business "+m.BusinessID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	businesses, err := r.getBusinesses(ctx, `WHERE b.business_id = $1`, businessID)
	if err != nil {
		return nil, err
	}
	if len(businesses) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &businesses[0], nil
}

func (r *PgxBusinessRepository) ListBusinessesByUserID(ctx context.Context, userID string) ([]domain.Business, error) {
	filter := `
		JOIN user_businesses ub ON ub.business_id = b.business_id
		WHERE ub.user_id = $1 AND b.is_active = TRUE
		ORDER BY b.name;
	`
	return r.getBusinesses(ctx, filter, userID)
}

func (r *PgxBusinessRepository) AddUserToBusiness(ctx context.Context, membership domain.UserBusiness) error {
	_, err := r.Pool.Exec(ctx, upsertMembershipQuery,
		membership.UserID,
		membership.BusinessID,
		membership.Role,
		membership.JoinedAt,
	)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
			return apperrors.NewNotFoundError("business " + membership.BusinessID + " not found")
		}
		return apperrors.NewAppError(500, "failed to add/update user "+membership.UserID+" in business "+membership.BusinessID, err)
	}
	return nil
}

func (r *PgxBusinessRepository) FindUserBusinessRole(ctx context.Context, userID, businessID string) (*domain.UserBusiness, error) {
	query := `
		SELECT user_id, business_id, role, joined_at
		FROM user_businesses
		WHERE user_id = $1 AND business_id = $2;
	`
	var ub models.UserBusiness
	err := r.Pool.QueryRow(ctx, query, userID, businessID).Scan(
		&ub.UserID,
		&ub.BusinessID,
		&ub.Role,
		&ub.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find role for user "+userID+" in business "+businessID, err)
	}

	membership := mapping.ToDomainUserBusiness(ub)
	return &membership, nil
}
