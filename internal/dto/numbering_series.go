package dto

import (
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// CreateNumberingSeriesRequest defines data for creating a numbering series.
// Omitted numeric fields take their defaults: sequence length 4, start number 1.
type CreateNumberingSeriesRequest struct {
	VoucherType    string `json:"voucher_type" binding:"required"`
	SeriesName     string `json:"series_name" binding:"required,notblank,max=50"`
	Prefix         string `json:"prefix" binding:"max=20"`
	Separator      string `json:"separator" binding:"max=2"`
	Format         string `json:"format" binding:"required,notblank,max=100"`
	SequenceLength *int   `json:"sequence_length" binding:"omitempty,min=1,max=18"`
	StartNumber    *int64 `json:"start_number" binding:"omitempty,min=1"`
	ResetFrequency string `json:"reset_frequency" binding:"omitempty,oneof=never yearly monthly"`
	IsDefault      bool   `json:"is_default"`
}

// UpdateNumberingSeriesRequest changes only the fields that are present.
type UpdateNumberingSeriesRequest struct {
	SeriesName      *string `json:"series_name" binding:"omitempty,notblank,max=50"`
	Prefix          *string `json:"prefix" binding:"omitempty,max=20"`
	Separator       *string `json:"separator" binding:"omitempty,max=2"`
	Format          *string `json:"format" binding:"omitempty,notblank,max=100"`
	SequenceLength  *int    `json:"sequence_length" binding:"omitempty,min=1,max=18"`
	StartNumber     *int64  `json:"start_number" binding:"omitempty,min=1"`
	CurrentSequence *int64  `json:"current_sequence" binding:"omitempty,min=1"`
	ResetFrequency  *string `json:"reset_frequency" binding:"omitempty,oneof=never yearly monthly"`
	IsDefault       *bool   `json:"is_default"`
	IsActive        *bool   `json:"is_active"`
}

// ListNumberingSeriesParams are the query parameters of the series list endpoint.
type ListNumberingSeriesParams struct {
	VoucherType string `form:"voucher_type"`
}

// PreviewNumberingSeriesRequest renders unsaved series form values.
type PreviewNumberingSeriesRequest struct {
	SeriesName     string     `json:"series_name"`
	Prefix         string     `json:"prefix" binding:"max=20"`
	Separator      string     `json:"separator" binding:"max=2"`
	Format         string     `json:"format" binding:"required,notblank,max=100"`
	SequenceLength *int       `json:"sequence_length" binding:"omitempty,min=1,max=18"`
	StartNumber    *int64     `json:"start_number" binding:"omitempty,min=1"`
	At             *time.Time `json:"at"` // Defaults to now
}

// PreviewNumberingSeriesResponse is the rendered preview.
type PreviewNumberingSeriesResponse struct {
	Preview     string `json:"preview"`
	HasSequence bool   `json:"has_sequence"`
}

// NextNumberResponse is the number the series would issue right now.
type NextNumberResponse struct {
	SeriesID   string `json:"series_id"`
	NextNumber string `json:"next_number"`
}

// NumberingSeriesResponse defines the data returned for a numbering series.
type NumberingSeriesResponse struct {
	SeriesID         string     `json:"series_id"`
	BusinessID       string     `json:"business_id"`
	VoucherType      string     `json:"voucher_type"`
	VoucherTypeLabel string     `json:"voucher_type_label"`
	SeriesName       string     `json:"series_name"`
	Prefix           string     `json:"prefix"`
	Separator        string     `json:"separator"`
	Format           string     `json:"format"`
	SequenceLength   int        `json:"sequence_length"`
	StartNumber      int64      `json:"start_number"`
	CurrentSequence  int64      `json:"current_sequence"`
	ResetFrequency   string     `json:"reset_frequency"`
	IsDefault        bool       `json:"is_default"`
	IsActive         bool       `json:"is_active"`
	LastIssuedAt     *time.Time `json:"last_issued_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	CreatedBy        string     `json:"created_by"`
	LastUpdatedAt    time.Time  `json:"last_updated_at"`
	LastUpdatedBy    string     `json:"last_updated_by"`
}

func ToNumberingSeriesResponse(s *domain.NumberingSeries) NumberingSeriesResponse {
	return NumberingSeriesResponse{
		SeriesID:         s.SeriesID,
		BusinessID:       s.BusinessID,
		VoucherType:      string(s.VoucherType),
		VoucherTypeLabel: s.VoucherType.Label(),
		SeriesName:       s.SeriesName,
		Prefix:           s.Prefix,
		Separator:        s.Separator,
		Format:           s.Format,
		SequenceLength:   s.SequenceLength,
		StartNumber:      s.StartNumber,
		CurrentSequence:  s.CurrentSequence,
		ResetFrequency:   string(s.ResetFrequency),
		IsDefault:        s.IsDefault,
		IsActive:         s.IsActive,
		LastIssuedAt:     s.LastIssuedAt,
		CreatedAt:        s.CreatedAt,
		CreatedBy:        s.CreatedBy,
		LastUpdatedAt:    s.LastUpdatedAt,
		LastUpdatedBy:    s.LastUpdatedBy,
	}
}

// ListNumberingSeriesResponse wraps a list of numbering series.
type ListNumberingSeriesResponse struct {
	Series []NumberingSeriesResponse `json:"series"`
}

func ToListNumberingSeriesResponse(ss []domain.NumberingSeries) ListNumberingSeriesResponse {
	list := make([]NumberingSeriesResponse, len(ss))
	for i := range ss {
		list[i] = ToNumberingSeriesResponse(&ss[i])
	}
	return ListNumberingSeriesResponse{Series: list}
}
