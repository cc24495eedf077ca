package numbering

import (
	"errors"
	"strings"
	"testing"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidateSeriesForm(t *testing.T) {
	tests := []struct {
		name       string
		seriesName string
		format     string
		wantErr    string
	}{
		{name: "ok", seriesName: "Sales", format: "{PREFIX}{SEQUENCE}"},
		{name: "blank name", seriesName: "   ", format: "{SEQUENCE}", wantErr: "series name is required"},
		{name: "name too long", seriesName: strings.Repeat("a", 51), format: "{SEQUENCE}", wantErr: "at most 50"},
		{name: "fifty multibyte characters", seriesName: strings.Repeat("é", 50), format: "{SEQUENCE}"},
		{name: "blank format", seriesName: "Sales", format: " ", wantErr: "format is required"},
		{name: "format without sequence is accepted", seriesName: "Sales", format: "{PREFIX}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeriesForm(tt.seriesName, tt.format)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateSeries(t *testing.T) {
	valid := invoiceSeries()
	assert.NoError(t, ValidateSeries(valid))

	mutations := map[string]func(s *domain.NumberingSeries){
		"separator too long":   func(s *domain.NumberingSeries) { s.Separator = "---" },
		"zero sequence length": func(s *domain.NumberingSeries) { s.SequenceLength = 0 },
		"zero start number":    func(s *domain.NumberingSeries) { s.StartNumber = 0 },
		"unknown reset":        func(s *domain.NumberingSeries) { s.ResetFrequency = "weekly" },
		"unknown voucher type": func(s *domain.NumberingSeries) { s.VoucherType = "GST_RETURN" },
		"format too long":      func(s *domain.NumberingSeries) { s.Format = strings.Repeat("{PREFIX}", 13) },
		"prefix too long":      func(s *domain.NumberingSeries) { s.Prefix = strings.Repeat("P", 21) },
		"sequence too wide":    func(s *domain.NumberingSeries) { s.SequenceLength = 19 },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			s := invoiceSeries()
			mutate(&s)
			assert.ErrorIs(t, ValidateSeries(s), apperrors.ErrValidation)
		})
	}
}
