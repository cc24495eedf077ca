package models

import "time"

// NumberingSeries represents a row of the numbering_series table.
type NumberingSeries struct {
	SeriesID        string     `db:"series_id"`
	BusinessID      string     `db:"business_id"`
	VoucherType     string     `db:"voucher_type"`
	SeriesName      string     `db:"series_name"`
	Prefix          string     `db:"prefix"`
	Separator       string     `db:"separator"`
	Format          string     `db:"format"`
	SequenceLength  int        `db:"sequence_length"`
	StartNumber     int64      `db:"start_number"`
	CurrentSequence int64      `db:"current_sequence"`
	ResetFrequency  string     `db:"reset_frequency"`
	IsDefault       bool       `db:"is_default"`
	IsActive        bool       `db:"is_active"`
	LastIssuedAt    *time.Time `db:"last_issued_at"`
	AuditFields
}
