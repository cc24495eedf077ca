package dto

import (
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerRequest defines data for creating a ledger.
type CreateLedgerRequest struct {
	Name           string         `json:"name" binding:"required,notblank,max=100"`
	GroupName      string         `json:"group_name" binding:"required,notblank,max=100"`
	OpeningBalance FlexibleAmount `json:"opening_balance"`
}

// ListLedgersParams are the query parameters of the ledger list endpoint.
type ListLedgersParams struct {
	// Purpose "contra" keeps only cash and bank ledgers.
	Purpose string `form:"purpose" binding:"omitempty,oneof=contra"`
}

// LedgerResponse defines data returned for a ledger.
type LedgerResponse struct {
	LedgerID       string          `json:"ledger_id"`
	BusinessID     string          `json:"business_id"`
	Name           string          `json:"name"`
	GroupName      string          `json:"group_name"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	IsCashOrBank   bool            `json:"is_cash_or_bank"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	CreatedBy      string          `json:"created_by"`
}

func ToLedgerResponse(l *domain.Ledger) LedgerResponse {
	return LedgerResponse{
		LedgerID:       l.LedgerID,
		BusinessID:     l.BusinessID,
		Name:           l.Name,
		GroupName:      l.GroupName,
		OpeningBalance: l.OpeningBalance,
		IsCashOrBank:   l.IsCashOrBank(),
		IsActive:       l.IsActive,
		CreatedAt:      l.CreatedAt,
		CreatedBy:      l.CreatedBy,
	}
}

// ListLedgersResponse wraps a list of ledgers.
type ListLedgersResponse struct {
	Ledgers []LedgerResponse `json:"ledgers"`
}

func ToListLedgersResponse(ls []domain.Ledger) ListLedgersResponse {
	list := make([]LedgerResponse, len(ls))
	for i := range ls {
		list[i] = ToLedgerResponse(&ls[i])
	}
	return ListLedgersResponse{Ledgers: list}
}
