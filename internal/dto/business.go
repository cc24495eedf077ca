package dto

import (
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// CreateBusinessRequest defines data for creating a new business.
type CreateBusinessRequest struct {
	Name        string  `json:"name" binding:"required,notblank,max=100"`
	Description string  `json:"description" binding:"max=500"`
	GSTIN       *string `json:"gstin" binding:"omitempty,len=15,alphanum"`
}

// BusinessResponse defines data returned for a business.
type BusinessResponse struct {
	BusinessID    string    `json:"business_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	GSTIN         *string   `json:"gstin,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	CreatedBy     string    `json:"created_by"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
	LastUpdatedBy string    `json:"last_updated_by"`
}

// ToBusinessResponse converts domain.Business to DTO.
func ToBusinessResponse(b *domain.Business) BusinessResponse {
	return BusinessResponse{
		BusinessID:    b.BusinessID,
		Name:          b.Name,
		Description:   b.Description,
		GSTIN:         b.GSTIN,
		IsActive:      b.IsActive,
		CreatedAt:     b.CreatedAt,
		CreatedBy:     b.CreatedBy,
		LastUpdatedAt: b.LastUpdatedAt,
		LastUpdatedBy: b.LastUpdatedBy,
	}
}

// ListBusinessesResponse wraps a list of businesses.
type ListBusinessesResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
}

func ToListBusinessesResponse(bs []domain.Business) ListBusinessesResponse {
	list := make([]BusinessResponse, len(bs))
	for i := range bs {
		list[i] = ToBusinessResponse(&bs[i])
	}
	return ListBusinessesResponse{Businesses: list}
}
