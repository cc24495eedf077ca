package numbering

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
)

const (
	MaxSeriesNameLength = 50
	MaxSeparatorLength  = 2
	MaxPrefixLength     = 20
	MaxFormatLength     = 100
	MaxSequenceLength   = 18

	// MaxNumberLength is the width of vouchers.voucher_number. Within the limits above the longest
	// rendering is twelve {PREFIX} tokens of a full prefix plus four literal characters: 244.
	MaxNumberLength = 255
)

// ValidateSeriesForm gates series create and update: name required and at most 50 characters,
// format required. Token correctness is not checked.
func ValidateSeriesForm(seriesName, format string) error {
	if strings.TrimSpace(seriesName) == "" {
		return fmt.Errorf("%w: series name is required", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(seriesName) > MaxSeriesNameLength {
		return fmt.Errorf("%w: series name must be at most %d characters", apperrors.ErrValidation, MaxSeriesNameLength)
	}
	if strings.TrimSpace(format) == "" {
		return fmt.Errorf("%w: format is required", apperrors.ErrValidation)
	}
	return nil
}

// ValidateSeries checks the remaining numeric and enum fields of a series.
func ValidateSeries(series domain.NumberingSeries) error {
	if err := ValidateSeriesForm(series.SeriesName, series.Format); err != nil {
		return err
	}
	if !series.VoucherType.IsValid() {
		return fmt.Errorf("%w: unknown voucher type %q", apperrors.ErrValidation, series.VoucherType)
	}
	if utf8.RuneCountInString(series.Format) > MaxFormatLength {
		return fmt.Errorf("%w: format must be at most %d characters", apperrors.ErrValidation, MaxFormatLength)
	}
	if utf8.RuneCountInString(series.Prefix) > MaxPrefixLength {
		return fmt.Errorf("%w: prefix must be at most %d characters", apperrors.ErrValidation, MaxPrefixLength)
	}
	if utf8.RuneCountInString(series.Separator) > MaxSeparatorLength {
		return fmt.Errorf("%w: separator must be at most %d characters", apperrors.ErrValidation, MaxSeparatorLength)
	}
	if series.SequenceLength < 1 {
		return fmt.Errorf("%w: sequence length must be positive", apperrors.ErrValidation)
	}
	if series.SequenceLength > MaxSequenceLength {
		return fmt.Errorf("%w: sequence length must be at most %d", apperrors.ErrValidation, MaxSequenceLength)
	}
	if series.StartNumber < 1 {
		return fmt.Errorf("%w: start number must be positive", apperrors.ErrValidation)
	}
	if series.CurrentSequence < 1 {
		return fmt.Errorf("%w: current sequence must be positive", apperrors.ErrValidation)
	}
	if !series.ResetFrequency.IsValid() {
		return fmt.Errorf("%w: unknown reset frequency %q", apperrors.ErrValidation, series.ResetFrequency)
	}
	return nil
}
