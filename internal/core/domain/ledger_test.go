package domain_test

import (
	"testing"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsCashOrBankGroup(t *testing.T) {
	tests := []struct {
		name      string
		groupName string
		want      bool
	}{
		{name: "cash in hand", groupName: "Cash-in-Hand", want: true},
		{name: "bank accounts upper case", groupName: "BANK ACCOUNTS", want: true},
		{name: "substring inside word", groupName: "Petty cashbox", want: true},
		{name: "bank od", groupName: "Bank OD A/c", want: true},
		{name: "debtors", groupName: "Sundry Debtors", want: false},
		{name: "empty", groupName: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsCashOrBankGroup(tt.groupName))
		})
	}
}

func TestFilterLedgers_Contra(t *testing.T) {
	ledgers := []domain.Ledger{
		{LedgerID: "L1", GroupName: "Cash-in-Hand"},
		{LedgerID: "L2", GroupName: "Sales Accounts"},
		{LedgerID: "L3", GroupName: "Bank Accounts"},
	}

	contra := domain.FilterLedgers(ledgers, domain.LedgerPurposeContra)
	assert.Len(t, contra, 2)
	assert.Equal(t, "L1", contra[0].LedgerID)
	assert.Equal(t, "L3", contra[1].LedgerID)

	all := domain.FilterLedgers(ledgers, domain.LedgerPurposeAny)
	assert.Len(t, all, 3)
}

func TestUserBusinessRole_Satisfies(t *testing.T) {
	assert.True(t, domain.RoleAdmin.Satisfies(domain.RoleMember))
	assert.True(t, domain.RoleMember.Satisfies(domain.RoleMember))
	assert.True(t, domain.RoleMember.Satisfies(domain.RoleReadOnly))
	assert.False(t, domain.RoleReadOnly.Satisfies(domain.RoleMember))
	assert.False(t, domain.UserBusinessRole("REMOVED").Satisfies(domain.RoleReadOnly))
}

func TestVoucherType_Label(t *testing.T) {
	assert.Equal(t, "Sales Invoice", domain.VoucherSalesInvoice.Label())
	assert.True(t, domain.VoucherContra.IsValid())
	assert.False(t, domain.VoucherType("GST_RETURN").IsValid())
}

func TestParseVoucherType(t *testing.T) {
	for _, raw := range []string{"SALES_INVOICE", "sales_invoice", "Sales Invoice", " sales-invoice "} {
		vt, ok := domain.ParseVoucherType(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, domain.VoucherSalesInvoice, vt)
	}

	_, ok := domain.ParseVoucherType("stock journal")
	assert.False(t, ok)
}
