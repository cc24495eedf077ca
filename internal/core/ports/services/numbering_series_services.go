package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
)

// NumberingSeriesReaderSvc defines read operations for numbering series
type NumberingSeriesReaderSvc interface {
	GetSeriesByID(ctx context.Context, businessID, seriesID, userID string) (*domain.NumberingSeries, error)
	ListSeries(ctx context.Context, businessID, userID string, params dto.ListNumberingSeriesParams) ([]domain.NumberingSeries, error)
}

// NumberingSeriesWriterSvc defines write operations for numbering series
type NumberingSeriesWriterSvc interface {
	CreateSeries(ctx context.Context, businessID string, req dto.CreateNumberingSeriesRequest, userID string) (*domain.NumberingSeries, error)
	UpdateSeries(ctx context.Context, businessID, seriesID string, req dto.UpdateNumberingSeriesRequest, userID string) (*domain.NumberingSeries, error)

	// DeactivateSeries hides the series and drops its default flag. Issued numbers are unaffected.
	DeactivateSeries(ctx context.Context, businessID, seriesID, userID string) error
}

// NumberingSeriesPreviewSvc renders numbers without consuming them.
type NumberingSeriesPreviewSvc interface {
	// PreviewSeries renders unsaved form values with their start number.
	PreviewSeries(ctx context.Context, req dto.PreviewNumberingSeriesRequest) (*dto.PreviewNumberingSeriesResponse, error)

	// PreviewNextNumber renders what the saved series would issue now.
	PreviewNextNumber(ctx context.Context, businessID, seriesID, userID string) (string, error)
}

// NumberingSeriesSvcFacade combines all numbering-series service interfaces
type NumberingSeriesSvcFacade interface {
	NumberingSeriesReaderSvc
	NumberingSeriesWriterSvc
	NumberingSeriesPreviewSvc
}
