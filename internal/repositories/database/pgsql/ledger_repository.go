package pgsql

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/models"
	"github.com/SscSPs/bizbooks/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryWithTx {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

const fullLedgerSelectQuery = `
SELECT
	l.ledger_id, l.business_id, l.name, l.group_name, l.opening_balance, l.is_active,
	l.created_at, l.created_by, l.last_updated_at, l.last_updated_by, l.version
FROM ledgers l
`

func (r *PgxLedgerRepository) getLedgers(ctx context.Context, filterQuery string, args ...any) ([]domain.Ledger, error) {
	rows, err := r.Pool.Query(ctx, fullLedgerSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledgers", err)
	}
	defer rows.Close()

	ledgers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Ledger])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect ledger rows", err)
	}
	return mapping.ToDomainLedgerSlice(ledgers), nil
}

func (r *PgxLedgerRepository) SaveLedger(ctx context.Context, ledger domain.Ledger) error {
	m := mapping.ToModelLedger(ledger)
	query := `
		INSERT INTO ledgers (
			ledger_id, business_id, name, group_name, opening_balance, is_active,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LedgerID,
		m.BusinessID,
		m.Name,
		m.GroupName,
		m.OpeningBalance,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		1,
	)
	if err != nil {
		code, constraint := pgErrorCode(err)
		switch {
		case code == pgUniqueViolation && constraint == "uq_ledgers_business_name":
			return apperrors.NewConflictError("a ledger named " + m.Name + " already exists")
		case code == pgUniqueViolation:
			return apperrors.NewConflictError("ledger " + m.LedgerID + " already exists")
		case code == pgForeignKeyViolation:
			return apperrors.NewNotFoundError("business " + m.BusinessID + " not found")
		}
		return apperrors.NewAppError(500, "failed to save ledger "+m.LedgerID, err)
	}
	return nil
}

func (r *PgxLedgerRepository) FindLedgerByID(ctx context.Context, businessID, ledgerID string) (*domain.Ledger, error) {
	ledgers, err := r.getLedgers(ctx, `WHERE l.business_id = $1 AND l.ledger_id = $2`, businessID, ledgerID)
	if err != nil {
		return nil, err
	}
	if len(ledgers) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &ledgers[0], nil
}

func (r *PgxLedgerRepository) FindLedgersByIDs(ctx context.Context, businessID string, ledgerIDs []string) (map[string]domain.Ledger, error) {
	found := make(map[string]domain.Ledger, len(ledgerIDs))
	if len(ledgerIDs) == 0 {
		return found, nil
	}
	ledgers, err := r.getLedgers(ctx, `WHERE l.business_id = $1 AND l.ledger_id = ANY($2)`, businessID, ledgerIDs)
	if err != nil {
		return nil, err
	}
	for _, l := range ledgers {
		found[l.LedgerID] = l
	}
	return found, nil
}

func (r *PgxLedgerRepository) ListLedgersByBusiness(ctx context.Context, businessID string) ([]domain.Ledger, error) {
	return r.getLedgers(ctx, `WHERE l.business_id = $1 AND l.is_active = TRUE ORDER BY l.name;`, businessID)
}
