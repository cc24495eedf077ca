package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/utils/numbering"
	"github.com/google/uuid"
)

const (
	defaultSequenceLength = 4
	defaultStartNumber    = 1
)

type numberingSeriesService struct {
	BaseService
	seriesRepo portsrepo.NumberingSeriesRepositoryFacade
	location   *time.Location
	now        clock
}

// SeriesServiceOption is a functional option for configuring the numbering series service
type SeriesServiceOption func(*numberingSeriesService)

func WithSeriesAuthorizer(authorizer portssvc.BusinessAuthorizerSvc) SeriesServiceOption {
	return func(s *numberingSeriesService) {
		s.BusinessAuthorizer = authorizer
	}
}

// WithSeriesLocation sets the zone previews are rendered in. It must match the voucher service.
func WithSeriesLocation(loc *time.Location) SeriesServiceOption {
	return func(s *numberingSeriesService) {
		if loc != nil {
			s.location = loc
		}
	}
}

func WithSeriesClock(now func() time.Time) SeriesServiceOption {
	return func(s *numberingSeriesService) {
		s.now = now
	}
}

func NewNumberingSeriesService(repo portsrepo.NumberingSeriesRepositoryFacade, options ...SeriesServiceOption) portssvc.NumberingSeriesSvcFacade {
	svc := &numberingSeriesService{
		seriesRepo: repo,
		location:   time.UTC,
		now:        utcNow,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.NumberingSeriesSvcFacade = (*numberingSeriesService)(nil)

func (s *numberingSeriesService) warnIfRepeating(ctx context.Context, series domain.NumberingSeries) {
	if numbering.RepeatsNumbers(series) {
		s.LogWarn(ctx, "Numbering series can issue the same number more than once",
			slog.String("series_name", series.SeriesName),
			slog.String("format", series.Format),
			slog.String("reset_frequency", string(series.ResetFrequency)))
	}
}

func (s *numberingSeriesService) CreateSeries(ctx context.Context, businessID string, req dto.CreateNumberingSeriesRequest, userID string) (*domain.NumberingSeries, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	voucherType, ok := domain.ParseVoucherType(req.VoucherType)
	if !ok {
		return nil, fmt.Errorf("%w: unknown voucher type %q", apperrors.ErrValidation, req.VoucherType)
	}
	if err := numbering.ValidateSeriesForm(req.SeriesName, req.Format); err != nil {
		return nil, err
	}

	now := s.now()
	series := domain.NumberingSeries{
		SeriesID:       uuid.NewString(),
		BusinessID:     businessID,
		VoucherType:    voucherType,
		SeriesName:     strings.TrimSpace(req.SeriesName),
		Prefix:         req.Prefix,
		Separator:      req.Separator,
		Format:         req.Format,
		SequenceLength: defaultSequenceLength,
		StartNumber:    defaultStartNumber,
		ResetFrequency: domain.ResetNever,
		IsDefault:      req.IsDefault,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
			Version:       1,
		},
	}
	if req.SequenceLength != nil {
		series.SequenceLength = *req.SequenceLength
	}
	if req.StartNumber != nil {
		series.StartNumber = *req.StartNumber
	}
	if req.ResetFrequency != "" {
		series.ResetFrequency = domain.ResetFrequency(req.ResetFrequency)
	}
	series.CurrentSequence = series.StartNumber

	if err := numbering.ValidateSeries(series); err != nil {
		return nil, err
	}
	s.warnIfRepeating(ctx, series)

	if err := s.seriesRepo.SaveSeries(ctx, series); err != nil {
		s.LogError(ctx, err, "Failed to save numbering series",
			slog.String("business_id", businessID),
			slog.String("series_name", series.SeriesName))
		return nil, err
	}

	s.LogInfo(ctx, "Numbering series created successfully",
		slog.String("series_id", series.SeriesID),
		slog.String("voucher_type", string(series.VoucherType)),
		slog.Bool("is_default", series.IsDefault))
	return &series, nil
}

// UpdateSeries applies the fields present in req. Moving the start number of a series that has
// not issued anything yet also moves its current sequence.
func (s *numberingSeriesService) UpdateSeries(ctx context.Context, businessID, seriesID string, req dto.UpdateNumberingSeriesRequest, userID string) (*domain.NumberingSeries, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	series, err := s.seriesRepo.FindSeriesByID(ctx, businessID, seriesID)
	if err != nil {
		return nil, err
	}

	updated := *series
	if req.SeriesName != nil {
		updated.SeriesName = strings.TrimSpace(*req.SeriesName)
	}
	if req.Prefix != nil {
		updated.Prefix = *req.Prefix
	}
	if req.Separator != nil {
		updated.Separator = *req.Separator
	}
	if req.Format != nil {
		updated.Format = *req.Format
	}
	if req.SequenceLength != nil {
		updated.SequenceLength = *req.SequenceLength
	}
	if req.StartNumber != nil {
		updated.StartNumber = *req.StartNumber
		if series.LastIssuedAt == nil && req.CurrentSequence == nil {
			updated.CurrentSequence = updated.StartNumber
		}
	}
	if req.CurrentSequence != nil {
		updated.CurrentSequence = *req.CurrentSequence
	}
	if req.ResetFrequency != nil {
		updated.ResetFrequency = domain.ResetFrequency(*req.ResetFrequency)
	}
	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}
	if req.IsDefault != nil {
		updated.IsDefault = *req.IsDefault
	}
	if !updated.IsActive {
		updated.IsDefault = false
	}

	if err := numbering.ValidateSeries(updated); err != nil {
		return nil, err
	}
	if req.Format != nil || req.ResetFrequency != nil {
		s.warnIfRepeating(ctx, updated)
	}

	updated.LastUpdatedAt = s.now()
	updated.LastUpdatedBy = userID
	if err := s.seriesRepo.UpdateSeries(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update numbering series",
			slog.String("series_id", seriesID))
		return nil, err
	}
	updated.Version++

	s.LogInfo(ctx, "Numbering series updated successfully",
		slog.String("series_id", seriesID))
	return &updated, nil
}

func (s *numberingSeriesService) DeactivateSeries(ctx context.Context, businessID, seriesID, userID string) error {
	inactive := false
	_, err := s.UpdateSeries(ctx, businessID, seriesID, dto.UpdateNumberingSeriesRequest{IsActive: &inactive}, userID)
	return err
}

func (s *numberingSeriesService) GetSeriesByID(ctx context.Context, businessID, seriesID, userID string) (*domain.NumberingSeries, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	series, err := s.seriesRepo.FindSeriesByID(ctx, businessID, seriesID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find numbering series",
				slog.String("series_id", seriesID))
		}
		return nil, err
	}
	return series, nil
}

func (s *numberingSeriesService) ListSeries(ctx context.Context, businessID, userID string, params dto.ListNumberingSeriesParams) ([]domain.NumberingSeries, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	var voucherType *domain.VoucherType
	if params.VoucherType != "" {
		vt, ok := domain.ParseVoucherType(params.VoucherType)
		if !ok {
			return nil, fmt.Errorf("%w: unknown voucher type %q", apperrors.ErrValidation, params.VoucherType)
		}
		voucherType = &vt
	}

	series, err := s.seriesRepo.ListSeriesByBusiness(ctx, businessID, voucherType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list numbering series",
			slog.String("business_id", businessID))
		return nil, err
	}
	if series == nil {
		return []domain.NumberingSeries{}, nil
	}
	return series, nil
}

// PreviewSeries renders unsaved form values. Nothing is stored and no membership is needed.
func (s *numberingSeriesService) PreviewSeries(ctx context.Context, req dto.PreviewNumberingSeriesRequest) (*dto.PreviewNumberingSeriesResponse, error) {
	if strings.TrimSpace(req.Format) == "" {
		return nil, fmt.Errorf("%w: format is required", apperrors.ErrValidation)
	}

	series := domain.NumberingSeries{
		SeriesName:     req.SeriesName,
		Prefix:         req.Prefix,
		Separator:      req.Separator,
		Format:         req.Format,
		SequenceLength: defaultSequenceLength,
		StartNumber:    defaultStartNumber,
	}
	if req.SequenceLength != nil {
		series.SequenceLength = *req.SequenceLength
	}
	if req.StartNumber != nil {
		series.StartNumber = *req.StartNumber
	}

	at := s.now()
	if req.At != nil {
		at = *req.At
	}

	return &dto.PreviewNumberingSeriesResponse{
		Preview:     numbering.Preview(series, at.In(s.location)),
		HasSequence: numbering.HasSequenceToken(series.Format),
	}, nil
}

// PreviewNextNumber renders the number the series would issue now without consuming it.
func (s *numberingSeriesService) PreviewNextNumber(ctx context.Context, businessID, seriesID, userID string) (string, error) {
	series, err := s.GetSeriesByID(ctx, businessID, seriesID, userID)
	if err != nil {
		return "", err
	}
	return numbering.Issue(*series, s.now().In(s.location)), nil
}
