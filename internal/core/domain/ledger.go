package domain

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// Ledger is an account that vouchers post debits and credits against.
type Ledger struct {
	LedgerID       string          `json:"ledgerID"`
	BusinessID     string          `json:"businessID"`
	Name           string          `json:"name"`
	GroupName      string          `json:"groupName"` // Account group, e.g. "Cash-in-Hand", "Bank Accounts", "Sundry Debtors"
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}

// LedgerPurpose narrows a ledger listing to the ledgers usable for a given kind of voucher.
type LedgerPurpose string

const (
	LedgerPurposeAny    LedgerPurpose = ""
	LedgerPurposeContra LedgerPurpose = "contra"
)

// IsCashOrBankGroup reports whether an account-group name contains "cash" or "bank", ignoring case.
func IsCashOrBankGroup(groupName string) bool {
	folded := cases.Fold().String(groupName)
	return strings.Contains(folded, "cash") || strings.Contains(folded, "bank")
}

// IsCashOrBank reports whether the ledger may take part in a contra voucher.
func (l Ledger) IsCashOrBank() bool {
	return IsCashOrBankGroup(l.GroupName)
}

// FilterLedgers returns the ledgers usable for purpose, preserving order.
func FilterLedgers(ledgers []Ledger, purpose LedgerPurpose) []Ledger {
	if purpose != LedgerPurposeContra {
		return ledgers
	}
	filtered := make([]Ledger, 0, len(ledgers))
	for _, l := range ledgers {
		if l.IsCashOrBank() {
			filtered = append(filtered, l)
		}
	}
	return filtered
}
