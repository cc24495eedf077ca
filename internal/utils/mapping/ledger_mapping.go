package mapping

import (
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/models"
)

// ToModelLedger converts a domain Ledger to a model Ledger
func ToModelLedger(d domain.Ledger) models.Ledger {
	return models.Ledger{
		LedgerID:       d.LedgerID,
		BusinessID:     d.BusinessID,
		Name:           d.Name,
		GroupName:      d.GroupName,
		OpeningBalance: d.OpeningBalance,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedger converts a model Ledger to a domain Ledger
func ToDomainLedger(m models.Ledger) domain.Ledger {
	return domain.Ledger{
		LedgerID:       m.LedgerID,
		BusinessID:     m.BusinessID,
		Name:           m.Name,
		GroupName:      m.GroupName,
		OpeningBalance: m.OpeningBalance,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainLedgerSlice(ms []models.Ledger) []domain.Ledger {
	ds := make([]domain.Ledger, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedger(m)
	}
	return ds
}
