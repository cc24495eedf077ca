package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want decimal.Decimal
	}{
		{name: "number", body: `{"amount": 100.5}`, want: decimal.RequireFromString("100.5")},
		{name: "string", body: `{"amount": "99.50"}`, want: decimal.RequireFromString("99.5")},
		{name: "empty string", body: `{"amount": ""}`, want: decimal.Zero},
		{name: "garbage", body: `{"amount": "12abc"}`, want: decimal.Zero},
		{name: "null", body: `{"amount": null}`, want: decimal.Zero},
		{name: "missing", body: `{}`, want: decimal.Zero},
		{name: "boolean", body: `{"amount": true}`, want: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var row DraftEntryRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &row))
			assert.True(t, tt.want.Equal(row.Amount.Decimal), "got %s", row.Amount.String())
		})
	}
}

func TestCreateVoucherRequest_ToDomainLedgerEntries(t *testing.T) {
	body := `{
		"voucher_type": "JOURNAL",
		"voucher_date": "2024-04-01",
		"ledger_entries": [
			{"ledger_id": "L1", "debit_amount": "250", "credit_amount": 0},
			{"ledger_id": "L2", "debit_amount": 0, "credit_amount": 250, "narration": "to bank"}
		]
	}`
	var req CreateVoucherRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	entries := req.ToDomainLedgerEntries()
	require.Len(t, entries, 2)
	assert.True(t, entries[0].DebitAmount.Equal(decimal.NewFromInt(250)))
	assert.True(t, entries[0].CreditAmount.IsZero())
	assert.Equal(t, "to bank", entries[1].Narration)
	assert.Nil(t, req.TotalAmount)
}
