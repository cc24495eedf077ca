package domain

import "time"

// ResetFrequency controls when a series restarts from its start number.
type ResetFrequency string

const (
	ResetNever   ResetFrequency = "never"
	ResetYearly  ResetFrequency = "yearly"
	ResetMonthly ResetFrequency = "monthly"
)

func (f ResetFrequency) IsValid() bool {
	switch f {
	case ResetNever, ResetYearly, ResetMonthly:
		return true
	}
	return false
}

// NumberingSeries is a template plus counter used to number vouchers of one type.
type NumberingSeries struct {
	SeriesID        string         `json:"seriesID"`
	BusinessID      string         `json:"businessID"`
	VoucherType     VoucherType    `json:"voucherType"`
	SeriesName      string         `json:"seriesName"`
	Prefix          string         `json:"prefix"`
	Separator       string         `json:"separator"`
	Format          string         `json:"format"`
	SequenceLength  int            `json:"sequenceLength"`
	StartNumber     int64          `json:"startNumber"`
	CurrentSequence int64          `json:"currentSequence"` // Next number to be issued
	ResetFrequency  ResetFrequency `json:"resetFrequency"`
	IsDefault       bool           `json:"isDefault"`
	IsActive        bool           `json:"isActive"`
	LastIssuedAt    *time.Time     `json:"lastIssuedAt"`
	AuditFields
}
