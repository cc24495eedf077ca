package dto

import (
	"strconv"
	"strings"

	"github.com/SscSPs/bizbooks/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// FlexibleAmount accepts a JSON number or a numeric string. Anything else, including null,
// an empty string or a malformed number, decodes to zero rather than failing the request,
// so amount problems surface as voucher validation failures.
type FlexibleAmount struct {
	decimal.Decimal
}

// NewFlexibleAmount wraps d.
func NewFlexibleAmount(d decimal.Decimal) FlexibleAmount {
	return FlexibleAmount{Decimal: d}
}

func (a *FlexibleAmount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}
	if raw == "null" {
		raw = ""
	}
	a.Decimal = accounting.ParseAmount(raw)
	return nil
}
