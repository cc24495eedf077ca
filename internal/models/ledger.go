package models

import "github.com/shopspring/decimal"

// Ledger represents a row of the ledgers table.
type Ledger struct {
	LedgerID       string          `db:"ledger_id"`
	BusinessID     string          `db:"business_id"`
	Name           string          `db:"name"`
	GroupName      string          `db:"group_name"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}
