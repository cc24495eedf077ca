package pgsql

import (
	"context"
	"strconv"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/models"
	"github.com/SscSPs/bizbooks/internal/utils/mapping"
	"github.com/SscSPs/bizbooks/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVoucherRepository struct {
	BaseRepository
}

// newPgxVoucherRepository creates a new repository for vouchers and their ledger entries.
func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepositoryWithTx {
	return &PgxVoucherRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VoucherRepositoryWithTx = (*PgxVoucherRepository)(nil)

const fullVoucherSelectQuery = `
SELECT
	v.voucher_id, v.business_id, v.voucher_type, v.voucher_number, v.series_id, v.voucher_date,
	v.narration, v.total_amount, v.status,
	v.created_at, v.created_by, v.last_updated_at, v.last_updated_by, v.version
FROM vouchers v
`

// SaveVoucher numbers the voucher from the locked default series, then inserts it and its entries.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher, issue portsrepo.NumberIssuer) (*domain.Voucher, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	// 1. Lock the default series so concurrent vouchers get distinct numbers
	series, err := getSeries(ctx, tx,
		`WHERE s.business_id = $1 AND s.voucher_type = $2 AND s.is_default = TRUE AND s.is_active = TRUE FOR UPDATE;`,
		voucher.BusinessID, string(voucher.VoucherType))
	if err != nil {
		return nil, err
	}

	if len(series) > 0 && issue != nil {
		number, next := issue(series[0])
		voucher.VoucherNumber = number
		seriesID := series[0].SeriesID
		voucher.SeriesID = &seriesID

		updateSeries := `
			UPDATE numbering_series
			SET current_sequence = $3, last_issued_at = $4, version = version + 1
			WHERE business_id = $1 AND series_id = $2;
		`
		if _, err := tx.Exec(ctx, updateSeries, voucher.BusinessID, seriesID, next.CurrentSequence, next.LastIssuedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to advance numbering series "+seriesID, err)
		}
	}

	// 2. Insert the voucher
	m := mapping.ToModelVoucher(voucher)
	voucherQuery := `
		INSERT INTO vouchers (
			voucher_id, business_id, voucher_type, voucher_number, series_id, voucher_date,
			narration, total_amount, status,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, voucherQuery,
		m.VoucherID,
		m.BusinessID,
		m.VoucherType,
		m.VoucherNumber,
		m.SeriesID,
		m.VoucherDate,
		m.Narration,
		m.TotalAmount,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		1,
	)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgUniqueViolation {
			return nil, apperrors.NewConflictError("voucher " + m.VoucherID + " already exists")
		}
		return nil, apperrors.NewAppError(500, "failed to insert voucher "+m.VoucherID, err)
	}

	// 3. Insert the entries in one batch, keeping their order
	batch := &pgx.Batch{}
	entryQuery := `
		INSERT INTO ledger_entries (entry_id, voucher_id, ledger_id, debit_amount, credit_amount, narration, line_no)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for i := range voucher.Entries {
		if voucher.Entries[i].EntryID == "" {
			voucher.Entries[i].EntryID = uuid.NewString()
		}
		voucher.Entries[i].VoucherID = voucher.VoucherID
		e := mapping.ToModelLedgerEntry(voucher.Entries[i], i+1)
		batch.Queue(entryQuery, e.EntryID, e.VoucherID, e.LedgerID, e.DebitAmount, e.CreditAmount, e.Narration, e.LineNo)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
			return nil, apperrors.NewValidationFailedError("voucher references a ledger that does not exist")
		}
		return nil, apperrors.NewAppError(500, "failed to insert ledger entries for voucher "+m.VoucherID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	voucher.Version = 1
	return &voucher, nil
}

func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, businessID, voucherID string) (*domain.Voucher, error) {
	rows, err := r.Pool.Query(ctx, fullVoucherSelectQuery+`WHERE v.business_id = $1 AND v.voucher_id = $2`, businessID, voucherID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query voucher "+voucherID, err)
	}
	vouchers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Voucher])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect voucher rows", err)
	}
	if len(vouchers) == 0 {
		return nil, apperrors.ErrNotFound
	}

	entryRows, err := r.Pool.Query(ctx, `
		SELECT entry_id, voucher_id, ledger_id, debit_amount, credit_amount, narration, line_no
		FROM ledger_entries
		WHERE voucher_id = $1
		ORDER BY line_no;
	`, voucherID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries for voucher "+voucherID, err)
	}
	entries, err := pgx.CollectRows(entryRows, pgx.RowToStructByName[models.LedgerEntry])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect entry rows for voucher "+voucherID, err)
	}

	voucher := mapping.ToDomainVoucher(vouchers[0])
	voucher.Entries = mapping.ToDomainLedgerEntrySlice(entries)
	return &voucher, nil
}

// ListVouchersByBusiness pages by (voucher_date DESC, created_at DESC).
func (r *PgxVoucherRepository) ListVouchersByBusiness(ctx context.Context, businessID string, voucherType *domain.VoucherType, limit int, nextToken *string) ([]domain.Voucher, *string, error) {
	limit = pagination.NormalizeLimit(limit)
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	query := fullVoucherSelectQuery + `WHERE v.business_id = $1`
	args := []any{businessID}

	if voucherType != nil {
		args = append(args, string(*voucherType))
		query += ` AND v.voucher_type = $` + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastDate, lastCreatedAt)
		query += ` AND (v.voucher_date, v.created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query += ` ORDER BY v.voucher_date DESC, v.created_at DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query vouchers for business "+businessID, err)
	}
	vouchers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Voucher])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to collect voucher rows", err)
	}

	var nextTokenVal *string
	if len(vouchers) > limit {
		// The token points to the last item included in this page.
		last := vouchers[limit-1]
		token := pagination.EncodeToken(last.VoucherDate, last.CreatedAt)
		nextTokenVal = &token
		vouchers = vouchers[:limit]
	}

	return mapping.ToDomainVoucherSlice(vouchers), nextTokenVal, nil
}

func (r *PgxVoucherRepository) UpdateVoucherStatus(ctx context.Context, voucher domain.Voucher, status domain.VoucherStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE vouchers
		SET status = $3, last_updated_at = $4, last_updated_by = $5, version = version + 1
		WHERE business_id = $1 AND voucher_id = $2 AND version = $6;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, voucher.BusinessID, voucher.VoucherID, string(status), updatedAt, updatedBy, voucher.Version)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of voucher "+voucher.VoucherID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "voucher "+voucher.VoucherID+" was modified concurrently", apperrors.ErrConflict)
	}
	return nil
}
