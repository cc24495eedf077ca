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

type PgxNumberingSeriesRepository struct {
	BaseRepository
}

// newPgxNumberingSeriesRepository creates a new repository for numbering series.
func newPgxNumberingSeriesRepository(pool *pgxpool.Pool) portsrepo.NumberingSeriesRepositoryWithTx {
	return &PgxNumberingSeriesRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.NumberingSeriesRepositoryWithTx = (*PgxNumberingSeriesRepository)(nil)

const fullSeriesSelectQuery = `
SELECT
	s.series_id, s.business_id, s.voucher_type, s.series_name, s.prefix, s.separator, s.format,
	s.sequence_length, s.start_number, s.current_sequence, s.reset_frequency,
	s.is_default, s.is_active, s.last_issued_at,
	s.created_at, s.created_by, s.last_updated_at, s.last_updated_by, s.version
FROM numbering_series s
`

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func getSeries(ctx context.Context, q querier, filterQuery string, args ...any) ([]domain.NumberingSeries, error) {
	rows, err := q.Query(ctx, fullSeriesSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query numbering series", err)
	}
	defer rows.Close()

	series, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.NumberingSeries])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect numbering series rows", err)
	}
	return mapping.ToDomainNumberingSeriesSlice(series), nil
}

// clearOtherDefaults removes the default flag from the other series of the same voucher type.
func clearOtherDefaults(ctx context.Context, tx pgx.Tx, s models.NumberingSeries) error {
	query := `
		UPDATE numbering_series
		SET is_default = FALSE, last_updated_at = $4, last_updated_by = $5, version = version + 1
		WHERE business_id = $1 AND voucher_type = $2 AND series_id <> $3 AND is_default = TRUE;
	`
	if _, err := tx.Exec(ctx, query, s.BusinessID, s.VoucherType, s.SeriesID, s.LastUpdatedAt, s.LastUpdatedBy); err != nil {
		return apperrors.NewAppError(500, "failed to clear default numbering series for "+s.VoucherType, err)
	}
	return nil
}

func seriesWriteError(err error, s models.NumberingSeries) error {
	code, constraint := pgErrorCode(err)
	switch {
	case code == pgUniqueViolation && constraint == "uq_numbering_series_name":
		return apperrors.NewConflictError("a numbering series named " + s.SeriesName + " already exists")
	case code == pgUniqueViolation:
		return apperrors.NewConflictError("numbering series " + s.SeriesID + " conflicts with an existing series")
	case code == pgForeignKeyViolation:
		return apperrors.NewNotFoundError("business " + s.BusinessID + " not found")
	}
	return apperrors.NewAppError(500, "failed to save numbering series "+s.SeriesID, err)
}

func (r *PgxNumberingSeriesRepository) SaveSeries(ctx context.Context, series domain.NumberingSeries) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelNumberingSeries(series)
	if m.IsDefault {
		if err := clearOtherDefaults(ctx, tx, m); err != nil {
			return err
		}
	}

	query := `
		INSERT INTO numbering_series (
			series_id, business_id, voucher_type, series_name, prefix, separator, format,
			sequence_length, start_number, current_sequence, reset_frequency,
			is_default, is_active, last_issued_at,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err = tx.Exec(ctx, query,
		m.SeriesID,
		m.BusinessID,
		m.VoucherType,
		m.SeriesName,
		m.Prefix,
		m.Separator,
		m.Format,
		m.SequenceLength,
		m.StartNumber,
		m.CurrentSequence,
		m.ResetFrequency,
		m.IsDefault,
		m.IsActive,
		m.LastIssuedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		1,
	)
	if err != nil {
		return seriesWriteError(err, m)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxNumberingSeriesRepository) UpdateSeries(ctx context.Context, series domain.NumberingSeries) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelNumberingSeries(series)
	if m.IsDefault && m.IsActive {
		if err := clearOtherDefaults(ctx, tx, m); err != nil {
			return err
		}
	}

	query := `
		UPDATE numbering_series
		SET series_name = $3, prefix = $4, separator = $5, format = $6,
			sequence_length = $7, start_number = $8, current_sequence = $9, reset_frequency = $10,
			is_default = $11, is_active = $12,
			last_updated_at = $13, last_updated_by = $14, version = version + 1
		WHERE business_id = $1 AND series_id = $2 AND version = $15;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.BusinessID,
		m.SeriesID,
		m.SeriesName,
		m.Prefix,
		m.Separator,
		m.Format,
		m.SequenceLength,
		m.StartNumber,
		m.CurrentSequence,
		m.ResetFrequency,
		m.IsDefault && m.IsActive,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		return seriesWriteError(err, m)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "numbering series "+m.SeriesID+" was modified concurrently", apperrors.ErrConflict)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxNumberingSeriesRepository) FindSeriesByID(ctx context.Context, businessID, seriesID string) (*domain.NumberingSeries, error) {
	series, err := getSeries(ctx, r.Pool, `WHERE s.business_id = $1 AND s.series_id = $2`, businessID, seriesID)
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &series[0], nil
}

func (r *PgxNumberingSeriesRepository) ListSeriesByBusiness(ctx context.Context, businessID string, voucherType *domain.VoucherType) ([]domain.NumberingSeries, error) {
	if voucherType != nil {
		return getSeries(ctx, r.Pool,
			`WHERE s.business_id = $1 AND s.voucher_type = $2 AND s.is_active = TRUE ORDER BY s.is_default DESC, s.series_name;`,
			businessID, string(*voucherType))
	}
	return getSeries(ctx, r.Pool,
		`WHERE s.business_id = $1 AND s.is_active = TRUE ORDER BY s.voucher_type, s.is_default DESC, s.series_name;`,
		businessID)
}

func (r *PgxNumberingSeriesRepository) FindDefaultSeries(ctx context.Context, businessID string, voucherType domain.VoucherType) (*domain.NumberingSeries, error) {
	series, err := getSeries(ctx, r.Pool,
		`WHERE s.business_id = $1 AND s.voucher_type = $2 AND s.is_default = TRUE AND s.is_active = TRUE`,
		businessID, string(voucherType))
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &series[0], nil
}
