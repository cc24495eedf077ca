package numbering

import (
	"testing"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestShouldReset(t *testing.T) {
	now := time.Date(2025, time.January, 3, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		frequency domain.ResetFrequency
		last      *time.Time
		want      bool
	}{
		{name: "never issued", frequency: domain.ResetYearly, last: nil, want: false},
		{name: "never resets", frequency: domain.ResetNever, last: timePtr(now.AddDate(-2, 0, 0)), want: false},
		{name: "yearly across new year", frequency: domain.ResetYearly, last: timePtr(time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC)), want: true},
		{name: "yearly same year", frequency: domain.ResetYearly, last: timePtr(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)), want: false},
		{name: "monthly same month", frequency: domain.ResetMonthly, last: timePtr(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)), want: false},
		{name: "monthly previous month", frequency: domain.ResetMonthly, last: timePtr(time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC)), want: true},
		{name: "monthly same month last year", frequency: domain.ResetMonthly, last: timePtr(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.NumberingSeries{ResetFrequency: tt.frequency, LastIssuedAt: tt.last}
			assert.Equal(t, tt.want, ShouldReset(s, now))
		})
	}
}

func TestAdvance(t *testing.T) {
	now := time.Date(2025, time.January, 3, 9, 0, 0, 0, time.UTC)
	s := invoiceSeries()
	s.ResetFrequency = domain.ResetYearly
	s.LastIssuedAt = timePtr(time.Date(2024, time.December, 30, 9, 0, 0, 0, time.UTC))

	number, next := Advance(s, now)
	assert.Equal(t, "INV-2025-0001", number)
	assert.Equal(t, int64(2), next.CurrentSequence)
	if assert.NotNil(t, next.LastIssuedAt) {
		assert.True(t, next.LastIssuedAt.Equal(now))
	}

	number, next = Advance(next, now.Add(time.Hour))
	assert.Equal(t, "INV-2025-0002", number)
	assert.Equal(t, int64(3), next.CurrentSequence)

	// the input series is not modified
	assert.Equal(t, int64(17), s.CurrentSequence)
}
