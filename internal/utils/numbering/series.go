// Package numbering renders document numbers from a numbering series template.
// The same functions back the preview endpoint and voucher issuance, so a preview
// always matches the number that would be issued at the same instant.
package numbering

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// Recognised template tokens.
const (
	TokenPrefix    = "{PREFIX}"
	TokenSeparator = "{SEPARATOR}"
	TokenYear      = "{YEAR}"
	TokenYY        = "{YY}"
	TokenMonth     = "{MONTH}"
	TokenMM        = "{MM}"
	TokenSequence  = "{SEQUENCE}"
)

// Render substitutes every token in series.Format. Tokens are replaced one kind at a time,
// all occurrences at once, in a fixed order: prefix, separator, year, two-digit year, month,
// sequence. Text outside the recognised tokens, including unknown {...} tokens, is kept as is.
// The sequence is zero-padded to SequenceLength and never truncated.
func Render(series domain.NumberingSeries, now time.Time, sequence int64) string {
	year := fmt.Sprintf("%04d", now.Year())
	month := fmt.Sprintf("%02d", int(now.Month()))

	out := series.Format
	out = strings.ReplaceAll(out, TokenPrefix, series.Prefix)
	out = strings.ReplaceAll(out, TokenSeparator, series.Separator)
	out = strings.ReplaceAll(out, TokenYear, year)
	out = strings.ReplaceAll(out, TokenYY, year[len(year)-2:])
	out = strings.ReplaceAll(out, TokenMonth, month)
	out = strings.ReplaceAll(out, TokenMM, month)
	out = strings.ReplaceAll(out, TokenSequence, padSequence(sequence, series.SequenceLength))
	return out
}

// Preview renders the series with its start number, the way the series editor shows it.
func Preview(series domain.NumberingSeries, now time.Time) string {
	return Render(series, now, series.StartNumber)
}

// Issue renders the number the series would hand out at now, honouring the reset frequency.
func Issue(series domain.NumberingSeries, now time.Time) string {
	return Render(series, now, SequenceForIssue(series, now))
}

// HasSequenceToken reports whether the format contains {SEQUENCE}. A format without it
// renders the same number every time.
func HasSequenceToken(format string) bool {
	return strings.Contains(format, TokenSequence)
}

// RepeatsNumbers reports whether the series can issue a number it has issued before: the format
// has no {SEQUENCE}, or the sequence resets on a period the format does not print.
func RepeatsNumbers(series domain.NumberingSeries) bool {
	if !HasSequenceToken(series.Format) {
		return true
	}
	hasYear := strings.Contains(series.Format, TokenYear) || strings.Contains(series.Format, TokenYY)
	hasMonth := strings.Contains(series.Format, TokenMonth) || strings.Contains(series.Format, TokenMM)
	switch series.ResetFrequency {
	case domain.ResetYearly:
		return !hasYear
	case domain.ResetMonthly:
		return !hasYear || !hasMonth
	default:
		return false
	}
}

func padSequence(sequence int64, width int) string {
	if width < 1 {
		width = 1
	}
	return fmt.Sprintf("%0*d", width, sequence)
}
