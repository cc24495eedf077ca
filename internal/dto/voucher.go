package dto

import (
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// VoucherDateLayout is the wire format of voucher dates.
const VoucherDateLayout = "2006-01-02"

// LedgerEntryRequest is one flattened entry of a voucher; one of the two amounts is zero.
type LedgerEntryRequest struct {
	LedgerID     string         `json:"ledger_id"`
	DebitAmount  FlexibleAmount `json:"debit_amount"`
	CreditAmount FlexibleAmount `json:"credit_amount"`
	Narration    string         `json:"narration"`
}

// CreateVoucherRequest is the voucher submission payload.
type CreateVoucherRequest struct {
	VoucherType   string               `json:"voucher_type" binding:"required"`
	VoucherDate   string               `json:"voucher_date" binding:"required,datetime=2006-01-02"`
	Narration     string               `json:"narration" binding:"max=1000"`
	TotalAmount   *FlexibleAmount      `json:"total_amount"`
	Status        string               `json:"status" binding:"omitempty,oneof=DRAFT POSTED"`
	LedgerEntries []LedgerEntryRequest `json:"ledger_entries"`
}

// ToDomainLedgerEntries converts the request entries without validating them.
func (r CreateVoucherRequest) ToDomainLedgerEntries() []domain.LedgerEntry {
	entries := make([]domain.LedgerEntry, len(r.LedgerEntries))
	for i, e := range r.LedgerEntries {
		entries[i] = domain.LedgerEntry{
			LedgerID:     e.LedgerID,
			DebitAmount:  e.DebitAmount.Decimal,
			CreditAmount: e.CreditAmount.Decimal,
			Narration:    e.Narration,
		}
	}
	return entries
}

// DraftEntryRequest is one row of the voucher editor.
type DraftEntryRequest struct {
	LedgerID  string         `json:"ledger_id"`
	Amount    FlexibleAmount `json:"amount"`
	Narration string         `json:"narration"`
}

// ValidateVoucherDraftRequest carries the debit and credit rows of the voucher editor.
type ValidateVoucherDraftRequest struct {
	Narration     string              `json:"narration"`
	DebitEntries  []DraftEntryRequest `json:"debit_entries"`
	CreditEntries []DraftEntryRequest `json:"credit_entries"`
}

// ToDomainDrafts converts editor rows to drafts.
func ToDomainDrafts(rows []DraftEntryRequest) []domain.LedgerEntryDraft {
	drafts := make([]domain.LedgerEntryDraft, len(rows))
	for i, r := range rows {
		drafts[i] = domain.LedgerEntryDraft{
			LedgerID:  r.LedgerID,
			Amount:    r.Amount.Decimal,
			Narration: r.Narration,
		}
	}
	return drafts
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID      string          `json:"entry_id,omitempty"`
	LedgerID     string          `json:"ledger_id"`
	DebitAmount  decimal.Decimal `json:"debit_amount"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
	Narration    string          `json:"narration"`
}

func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = LedgerEntryResponse{
			EntryID:      e.EntryID,
			LedgerID:     e.LedgerID,
			DebitAmount:  e.DebitAmount,
			CreditAmount: e.CreditAmount,
			Narration:    e.Narration,
		}
	}
	return responses
}

// ValidateVoucherDraftResponse reports the outcome of a draft check.
type ValidateVoucherDraftResponse struct {
	Valid         bool                  `json:"valid"`
	Reason        string                `json:"reason,omitempty"`
	Message       string                `json:"message,omitempty"`
	TotalDebit    decimal.Decimal       `json:"total_debit"`
	TotalCredit   decimal.Decimal       `json:"total_credit"`
	Difference    decimal.Decimal       `json:"difference"`
	IsBalanced    bool                  `json:"is_balanced"`
	LedgerEntries []LedgerEntryResponse `json:"ledger_entries,omitempty"`
}

func ToValidateVoucherDraftResponse(v accounting.DraftValidation) ValidateVoucherDraftResponse {
	resp := ValidateVoucherDraftResponse{
		Valid:       v.Valid(),
		Reason:      string(v.Failure),
		TotalDebit:  v.TotalDebit,
		TotalCredit: v.TotalCredit,
		Difference:  v.Difference(),
		IsBalanced:  v.IsBalanced(),
	}
	if v.Valid() {
		resp.LedgerEntries = ToLedgerEntryResponses(v.Entries)
	} else {
		resp.Message = FailureMessage(v.Failure)
	}
	return resp
}

// FailureMessage is the single user-facing message for a draft failure.
func FailureMessage(f accounting.DraftFailure) string {
	switch f {
	case accounting.DraftMissingAmounts:
		return "Please enter amounts for both debit and credit entries"
	case accounting.DraftUnbalanced:
		return "Debit and credit totals must be equal"
	case accounting.DraftIncompleteEntry:
		return "Please complete all entry details"
	default:
		return ""
	}
}

// VoucherValidationErrorResponse is returned with 422 when a submitted voucher does not balance.
type VoucherValidationErrorResponse struct {
	Error       string          `json:"error"`
	Reason      string          `json:"reason"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	Difference  decimal.Decimal `json:"difference"`
}

func ToVoucherValidationErrorResponse(v accounting.DraftValidation) VoucherValidationErrorResponse {
	return VoucherValidationErrorResponse{
		Error:       FailureMessage(v.Failure),
		Reason:      string(v.Failure),
		TotalDebit:  v.TotalDebit,
		TotalCredit: v.TotalCredit,
		Difference:  v.Difference(),
	}
}

// VoucherResponse defines the data returned for a voucher.
type VoucherResponse struct {
	VoucherID        string                `json:"voucher_id"`
	BusinessID       string                `json:"business_id"`
	VoucherType      string                `json:"voucher_type"`
	VoucherTypeLabel string                `json:"voucher_type_label"`
	VoucherNumber    string                `json:"voucher_number"`
	SeriesID         *string               `json:"series_id,omitempty"`
	VoucherDate      string                `json:"voucher_date"`
	Narration        string                `json:"narration"`
	TotalAmount      decimal.Decimal       `json:"total_amount"`
	Status           string                `json:"status"`
	LedgerEntries    []LedgerEntryResponse `json:"ledger_entries,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	CreatedBy        string                `json:"created_by"`
	LastUpdatedAt    time.Time             `json:"last_updated_at"`
	LastUpdatedBy    string                `json:"last_updated_by"`
}

func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	resp := VoucherResponse{
		VoucherID:        v.VoucherID,
		BusinessID:       v.BusinessID,
		VoucherType:      string(v.VoucherType),
		VoucherTypeLabel: v.VoucherType.Label(),
		VoucherNumber:    v.VoucherNumber,
		SeriesID:         v.SeriesID,
		VoucherDate:      v.VoucherDate.Format(VoucherDateLayout),
		Narration:        v.Narration,
		TotalAmount:      v.TotalAmount,
		Status:           string(v.Status),
		CreatedAt:        v.CreatedAt,
		CreatedBy:        v.CreatedBy,
		LastUpdatedAt:    v.LastUpdatedAt,
		LastUpdatedBy:    v.LastUpdatedBy,
	}
	if len(v.Entries) > 0 {
		resp.LedgerEntries = ToLedgerEntryResponses(v.Entries)
	}
	return resp
}

// ListVouchersParams are the query parameters of the voucher list endpoint.
type ListVouchersParams struct {
	VoucherType string  `form:"voucher_type"`
	Limit       int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken   *string `form:"next_token"`
}

// ListVouchersResponse is one page of vouchers.
type ListVouchersResponse struct {
	Vouchers  []VoucherResponse `json:"vouchers"`
	NextToken *string           `json:"next_token,omitempty"`
}

func ToListVouchersResponse(vs []domain.Voucher, nextToken *string) ListVouchersResponse {
	list := make([]VoucherResponse, len(vs))
	for i := range vs {
		list[i] = ToVoucherResponse(&vs[i])
	}
	return ListVouchersResponse{Vouchers: list, NextToken: nextToken}
}
