package models

import "github.com/shopspring/decimal"

// DiscountValidation is the outcome of matching a discount code against
// the fixed code table. Matching is exact and case-sensitive.
type DiscountValidation struct {
	IsValid      bool            `json:"is_valid"`
	Code         string          `json:"code,omitempty"`
	Percent      int64           `json:"percent,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	ErrorMessage string          `json:"error_message,omitempty"`
}
