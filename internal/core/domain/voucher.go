package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType enumerates the accounting documents a business can issue.
type VoucherType string

const (
	VoucherSalesInvoice    VoucherType = "SALES_INVOICE"
	VoucherPurchaseInvoice VoucherType = "PURCHASE_INVOICE"
	VoucherPayment         VoucherType = "PAYMENT"
	VoucherReceipt         VoucherType = "RECEIPT"
	VoucherJournal         VoucherType = "JOURNAL"
	VoucherContra          VoucherType = "CONTRA"
	VoucherDebitNote       VoucherType = "DEBIT_NOTE"
	VoucherCreditNote      VoucherType = "CREDIT_NOTE"
	VoucherDeliveryChallan VoucherType = "DELIVERY_CHALLAN"
	VoucherProformaInvoice VoucherType = "PROFORMA_INVOICE"
)

var voucherTypeLabels = map[VoucherType]string{
	VoucherSalesInvoice:    "Sales Invoice",
	VoucherPurchaseInvoice: "Purchase Invoice",
	VoucherPayment:         "Payment",
	VoucherReceipt:         "Receipt",
	VoucherJournal:         "Journal",
	VoucherContra:          "Contra",
	VoucherDebitNote:       "Debit Note",
	VoucherCreditNote:      "Credit Note",
	VoucherDeliveryChallan: "Delivery Challan",
	VoucherProformaInvoice: "Proforma Invoice",
}

// IsValid reports whether t is one of the known voucher types.
func (t VoucherType) IsValid() bool {
	_, ok := voucherTypeLabels[t]
	return ok
}

// ParseVoucherType accepts the enum value or its label in any case, e.g. "SALES_INVOICE",
// "sales_invoice", "Sales Invoice" or "sales-invoice".
func ParseVoucherType(raw string) (VoucherType, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	t := VoucherType(normalized)
	return t, t.IsValid()
}

// Label is the human-readable name, e.g. "Sales Invoice".
func (t VoucherType) Label() string {
	return voucherTypeLabels[t]
}

// VoucherStatus indicates the state of a voucher.
type VoucherStatus string

const (
	VoucherDraft     VoucherStatus = "DRAFT"
	VoucherPosted    VoucherStatus = "POSTED"
	VoucherCancelled VoucherStatus = "CANCELLED"
)

func (s VoucherStatus) IsValid() bool {
	switch s {
	case VoucherDraft, VoucherPosted, VoucherCancelled:
		return true
	}
	return false
}

// Voucher is a balanced accounting document made of ledger entries.
type Voucher struct {
	VoucherID     string          `json:"voucherID"`
	BusinessID    string          `json:"businessID"`
	VoucherType   VoucherType     `json:"voucherType"`
	VoucherNumber string          `json:"voucherNumber"` // Empty when no default numbering series exists for the type
	SeriesID      *string         `json:"seriesID"`
	VoucherDate   time.Time       `json:"voucherDate"`
	Narration     string          `json:"narration"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        VoucherStatus   `json:"status"`
	Entries       []LedgerEntry   `json:"entries"`
	AuditFields
}

// LedgerEntry is one posting of a voucher; exactly one of DebitAmount/CreditAmount is non-zero.
type LedgerEntry struct {
	EntryID      string          `json:"entryID"`
	VoucherID    string          `json:"voucherID"`
	LedgerID     string          `json:"ledgerID"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Narration    string          `json:"narration"`
}

// IsDebit reports whether the entry posts to the debit side.
func (e LedgerEntry) IsDebit() bool {
	return e.DebitAmount.IsPositive()
}

// LedgerEntryDraft is user input for one side of a voucher before it is validated.
// Whether it is a debit or a credit depends on which list it sits in.
type LedgerEntryDraft struct {
	LedgerID  string
	Amount    decimal.Decimal
	Narration string
}
