package mapping

import (
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/models"
)

// ToModelNumberingSeries converts a domain NumberingSeries to a model NumberingSeries
func ToModelNumberingSeries(d domain.NumberingSeries) models.NumberingSeries {
	return models.NumberingSeries{
		SeriesID:        d.SeriesID,
		BusinessID:      d.BusinessID,
		VoucherType:     string(d.VoucherType),
		SeriesName:      d.SeriesName,
		Prefix:          d.Prefix,
		Separator:       d.Separator,
		Format:          d.Format,
		SequenceLength:  d.SequenceLength,
		StartNumber:     d.StartNumber,
		CurrentSequence: d.CurrentSequence,
		ResetFrequency:  string(d.ResetFrequency),
		IsDefault:       d.IsDefault,
		IsActive:        d.IsActive,
		LastIssuedAt:    d.LastIssuedAt,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainNumberingSeries converts a model NumberingSeries to a domain NumberingSeries
func ToDomainNumberingSeries(m models.NumberingSeries) domain.NumberingSeries {
	return domain.NumberingSeries{
		SeriesID:        m.SeriesID,
		BusinessID:      m.BusinessID,
		VoucherType:     domain.VoucherType(m.VoucherType),
		SeriesName:      m.SeriesName,
		Prefix:          m.Prefix,
		Separator:       m.Separator,
		Format:          m.Format,
		SequenceLength:  m.SequenceLength,
		StartNumber:     m.StartNumber,
		CurrentSequence: m.CurrentSequence,
		ResetFrequency:  domain.ResetFrequency(m.ResetFrequency),
		IsDefault:       m.IsDefault,
		IsActive:        m.IsActive,
		LastIssuedAt:    m.LastIssuedAt,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainNumberingSeriesSlice(ms []models.NumberingSeries) []domain.NumberingSeries {
	ds := make([]domain.NumberingSeries, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainNumberingSeries(m)
	}
	return ds
}
