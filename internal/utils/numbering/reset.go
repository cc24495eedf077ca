package numbering

import (
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// ShouldReset reports whether the series crosses a reset boundary between its last issue and now.
// Periods are compared in now's location. A series that has never issued a number does not reset.
func ShouldReset(series domain.NumberingSeries, now time.Time) bool {
	if series.LastIssuedAt == nil {
		return false
	}
	last := series.LastIssuedAt.In(now.Location())
	switch series.ResetFrequency {
	case domain.ResetYearly:
		return last.Year() != now.Year()
	case domain.ResetMonthly:
		return last.Year() != now.Year() || last.Month() != now.Month()
	default:
		return false
	}
}

// SequenceForIssue is the sequence value the next issued number uses.
func SequenceForIssue(series domain.NumberingSeries, now time.Time) int64 {
	if ShouldReset(series, now) {
		return series.StartNumber
	}
	return series.CurrentSequence
}

// Advance issues one number from series at now. It returns the rendered number and the series
// as it must be persisted afterwards: CurrentSequence moved past the issued value and
// LastIssuedAt set to now.
func Advance(series domain.NumberingSeries, now time.Time) (string, domain.NumberingSeries) {
	seq := SequenceForIssue(series, now)
	number := Render(series, now, seq)

	next := series
	next.CurrentSequence = seq + 1
	issuedAt := now
	next.LastIssuedAt = &issuedAt
	return number, next
}
