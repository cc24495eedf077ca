package mapping

import (
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/models"
)

// ToModelVoucher converts a domain Voucher to a model Voucher. Entries are mapped separately.
func ToModelVoucher(d domain.Voucher) models.Voucher {
	var number *string
	if d.VoucherNumber != "" {
		n := d.VoucherNumber
		number = &n
	}
	return models.Voucher{
		VoucherID:     d.VoucherID,
		BusinessID:    d.BusinessID,
		VoucherType:   string(d.VoucherType),
		VoucherNumber: number,
		SeriesID:      d.SeriesID,
		VoucherDate:   d.VoucherDate,
		Narration:     d.Narration,
		TotalAmount:   d.TotalAmount,
		Status:        models.VoucherStatus(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucher converts a model Voucher to a domain Voucher without entries.
func ToDomainVoucher(m models.Voucher) domain.Voucher {
	d := domain.Voucher{
		VoucherID:   m.VoucherID,
		BusinessID:  m.BusinessID,
		VoucherType: domain.VoucherType(m.VoucherType),
		SeriesID:    m.SeriesID,
		VoucherDate: m.VoucherDate,
		Narration:   m.Narration,
		TotalAmount: m.TotalAmount,
		Status:      domain.VoucherStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.VoucherNumber != nil {
		d.VoucherNumber = *m.VoucherNumber
	}
	return d
}

func ToDomainVoucherSlice(ms []models.Voucher) []domain.Voucher {
	ds := make([]domain.Voucher, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVoucher(m)
	}
	return ds
}

// ToModelLedgerEntry converts a domain LedgerEntry; lineNo keeps the debit-first order of the voucher.
func ToModelLedgerEntry(d domain.LedgerEntry, lineNo int) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:      d.EntryID,
		VoucherID:    d.VoucherID,
		LedgerID:     d.LedgerID,
		DebitAmount:  d.DebitAmount,
		CreditAmount: d.CreditAmount,
		Narration:    d.Narration,
		LineNo:       lineNo,
	}
}

func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:      m.EntryID,
		VoucherID:    m.VoucherID,
		LedgerID:     m.LedgerID,
		DebitAmount:  m.DebitAmount,
		CreditAmount: m.CreditAmount,
		Narration:    m.Narration,
	}
}

func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
