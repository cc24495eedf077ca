package mapping

import (
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/models"
)

func ToModelBusiness(d domain.Business) models.Business {
	return models.Business{
		BusinessID:  d.BusinessID,
		Name:        d.Name,
		Description: d.Description,
		GSTIN:       d.GSTIN,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainBusiness(m models.Business) domain.Business {
	return domain.Business{
		BusinessID:  m.BusinessID,
		Name:        m.Name,
		Description: m.Description,
		GSTIN:       m.GSTIN,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainBusinessSlice(ms []models.Business) []domain.Business {
	ds := make([]domain.Business, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBusiness(m)
	}
	return ds
}

func ToDomainUserBusiness(m models.UserBusiness) domain.UserBusiness {
	return domain.UserBusiness{
		UserID:     m.UserID,
		BusinessID: m.BusinessID,
		Role:       domain.UserBusinessRole(m.Role),
		JoinedAt:   m.JoinedAt,
	}
}
