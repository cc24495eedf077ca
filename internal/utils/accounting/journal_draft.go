package accounting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the largest debit/credit difference still accepted as balanced.
var BalanceTolerance = decimal.New(1, -2)

const (
	defaultDebitNarration  = "Debit entry"
	defaultCreditNarration = "Credit entry"
)

// DraftFailure names the first check a voucher draft failed. The zero value means the draft is valid.
type DraftFailure string

const (
	DraftOK              DraftFailure = ""
	DraftMissingAmounts  DraftFailure = "missing_amounts"
	DraftUnbalanced      DraftFailure = "unbalanced"
	DraftIncompleteEntry DraftFailure = "incomplete_entry"
)

var (
	ErrMissingAmounts  = errors.New("please enter amounts for both debit and credit entries")
	ErrUnbalanced      = errors.New("debit and credit totals must be equal")
	ErrIncompleteEntry = errors.New("please complete all entry details")
)

// DraftValidation is the outcome of ValidateJournalDraft.
// Totals are always populated; Entries only when Failure is DraftOK.
type DraftValidation struct {
	Failure     DraftFailure
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Entries     []domain.LedgerEntry
}

// Valid reports whether the draft may be submitted.
func (v DraftValidation) Valid() bool {
	return v.Failure == DraftOK
}

// Difference is TotalDebit - TotalCredit.
func (v DraftValidation) Difference() decimal.Decimal {
	return v.TotalDebit.Sub(v.TotalCredit)
}

// IsBalanced is the display flag: strictly within the tolerance.
// A difference of exactly 0.01 passes validation but is not shown as balanced.
func (v DraftValidation) IsBalanced() bool {
	return v.Difference().Abs().LessThan(BalanceTolerance)
}

// Err converts a failed validation into an error wrapping apperrors.ErrValidation
// and the failure-specific sentinel. It returns nil for a valid draft.
func (v DraftValidation) Err() error {
	switch v.Failure {
	case DraftOK:
		return nil
	case DraftMissingAmounts:
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrMissingAmounts)
	case DraftUnbalanced:
		return fmt.Errorf("%w: %w (debit %s, credit %s, difference %s)", apperrors.ErrValidation, ErrUnbalanced,
			v.TotalDebit.StringFixed(2), v.TotalCredit.StringFixed(2), v.Difference().StringFixed(2))
	default:
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrIncompleteEntry)
	}
}

// ValidateJournalDraft checks debit and credit drafts in a fixed order and returns at the first failure:
// a zero total on either side, a difference above BalanceTolerance, then any entry without a ledger or
// without a positive amount. On success the drafts are flattened into ledger entries, debits first.
func ValidateJournalDraft(debitEntries, creditEntries []domain.LedgerEntryDraft, voucherNarration string) DraftValidation {
	result := DraftValidation{
		TotalDebit:  sumAmounts(debitEntries),
		TotalCredit: sumAmounts(creditEntries),
	}

	if result.TotalDebit.IsZero() || result.TotalCredit.IsZero() {
		result.Failure = DraftMissingAmounts
		return result
	}

	if result.Difference().Abs().GreaterThan(BalanceTolerance) {
		result.Failure = DraftUnbalanced
		return result
	}

	if hasIncompleteEntry(debitEntries) || hasIncompleteEntry(creditEntries) {
		result.Failure = DraftIncompleteEntry
		return result
	}

	entries := make([]domain.LedgerEntry, 0, len(debitEntries)+len(creditEntries))
	for _, d := range debitEntries {
		entries = append(entries, domain.LedgerEntry{
			LedgerID:     d.LedgerID,
			DebitAmount:  d.Amount,
			CreditAmount: decimal.Zero,
			Narration:    narrationFor(d, voucherNarration, defaultDebitNarration),
		})
	}
	for _, c := range creditEntries {
		entries = append(entries, domain.LedgerEntry{
			LedgerID:     c.LedgerID,
			DebitAmount:  decimal.Zero,
			CreditAmount: c.Amount,
			Narration:    narrationFor(c, voucherNarration, defaultCreditNarration),
		})
	}
	result.Entries = entries
	return result
}

// SplitEntries turns flattened ledger entries back into debit and credit drafts.
// An entry with both sides set loses its ledger id and an entry with neither side set
// keeps a zero amount, so validation reports either one as incomplete.
func SplitEntries(entries []domain.LedgerEntry) (debits, credits []domain.LedgerEntryDraft) {
	for _, e := range entries {
		debitSet := e.DebitAmount.IsPositive()
		creditSet := e.CreditAmount.IsPositive()
		switch {
		case debitSet && !creditSet:
			debits = append(debits, domain.LedgerEntryDraft{LedgerID: e.LedgerID, Amount: e.DebitAmount, Narration: e.Narration})
		case creditSet && !debitSet:
			credits = append(credits, domain.LedgerEntryDraft{LedgerID: e.LedgerID, Amount: e.CreditAmount, Narration: e.Narration})
		case debitSet && creditSet:
			// Both sides keep their amount so the totals stay truthful; the blank ledger marks it incomplete.
			debits = append(debits, domain.LedgerEntryDraft{LedgerID: "", Amount: e.DebitAmount, Narration: e.Narration})
			credits = append(credits, domain.LedgerEntryDraft{LedgerID: "", Amount: e.CreditAmount, Narration: e.Narration})
		default:
			debits = append(debits, domain.LedgerEntryDraft{LedgerID: e.LedgerID, Amount: decimal.Zero, Narration: e.Narration})
		}
	}
	return debits, credits
}

// ParseAmount reads a user-entered decimal string. Blank or unparseable input is zero.
func ParseAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func sumAmounts(drafts []domain.LedgerEntryDraft) decimal.Decimal {
	total := decimal.Zero
	for _, d := range drafts {
		total = total.Add(d.Amount)
	}
	return total
}

func hasIncompleteEntry(drafts []domain.LedgerEntryDraft) bool {
	for _, d := range drafts {
		if strings.TrimSpace(d.LedgerID) == "" || !d.Amount.IsPositive() {
			return true
		}
	}
	return false
}

func narrationFor(d domain.LedgerEntryDraft, voucherNarration, fallback string) string {
	if d.Narration != "" {
		return d.Narration
	}
	if voucherNarration != "" {
		return voucherNarration
	}
	return fallback
}
