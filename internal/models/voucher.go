package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherStatus mirrors the voucher_status column.
type VoucherStatus string

const (
	VoucherDraft     VoucherStatus = "DRAFT"
	VoucherPosted    VoucherStatus = "POSTED"
	VoucherCancelled VoucherStatus = "CANCELLED"
)

// Voucher represents a row of the vouchers table.
type Voucher struct {
	VoucherID     string          `db:"voucher_id"`
	BusinessID    string          `db:"business_id"`
	VoucherType   string          `db:"voucher_type"`
	VoucherNumber *string         `db:"voucher_number"` // NULL when issued without a series
	SeriesID      *string         `db:"series_id"`
	VoucherDate   time.Time       `db:"voucher_date"`
	Narration     string          `db:"narration"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	Status        VoucherStatus   `db:"status"`
	AuditFields
}

// LedgerEntry represents a row of the ledger_entries table.
type LedgerEntry struct {
	EntryID      string          `db:"entry_id"`
	VoucherID    string          `db:"voucher_id"`
	LedgerID     string          `db:"ledger_id"`
	DebitAmount  decimal.Decimal `db:"debit_amount"`
	CreditAmount decimal.Decimal `db:"credit_amount"`
	Narration    string          `db:"narration"`
	LineNo       int             `db:"line_no"`
}
