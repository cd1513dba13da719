package handlers

import (
	"github.com/shopspring/decimal"

	"bookery_back_end/internal/models"
)

// discountPercents is the fixed code table. Lookup is exact and
// case-sensitive: "save10" does not match.
var discountPercents = map[string]int64{
	"SAVE10":    10,
	"WELCOME20": 20,
}

// validateDiscount matches a code against the table and computes the
// reduction for the given total.
func validateDiscount(code string, total decimal.Decimal) models.DiscountValidation {
	percent, ok := discountPercents[code]
	if !ok {
		return models.DiscountValidation{
			IsValid:      false,
			ErrorMessage: "Invalid discount code",
		}
	}

	amount := total.Mul(decimal.NewFromInt(percent)).Div(decimal.NewFromInt(100))
	return models.DiscountValidation{
		IsValid: true,
		Code:    code,
		Percent: percent,
		Amount:  amount,
	}
}
