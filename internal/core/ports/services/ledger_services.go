package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
)

// LedgerReaderSvc defines read operations for ledgers
type LedgerReaderSvc interface {
	GetLedgerByID(ctx context.Context, businessID, ledgerID, userID string) (*domain.Ledger, error)

	// ListLedgers lists active ledgers; LedgerPurposeContra keeps only cash and bank ledgers.
	ListLedgers(ctx context.Context, businessID, userID string, purpose domain.LedgerPurpose) ([]domain.Ledger, error)
}

// LedgerWriterSvc defines write operations for ledgers
type LedgerWriterSvc interface {
	CreateLedger(ctx context.Context, businessID string, req dto.CreateLedgerRequest, userID string) (*domain.Ledger, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
