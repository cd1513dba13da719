package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ShippingInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
}

// PaymentRecord is what an order keeps of the payment: the method and
// the gateway transaction id, never the card details.
type PaymentRecord struct {
	Method        string `json:"method"`
	TransactionID string `json:"transaction_id"`
}

// Order is an immutable snapshot taken at checkout completion. Only
// Status may change afterwards.
type Order struct {
	ID             string          `json:"id"`
	UserEmail      string          `json:"user_email"`
	Items          []CartItem      `json:"items"`
	Shipping       ShippingInfo    `json:"shipping"`
	Payment        PaymentRecord   `json:"payment"`
	DiscountCode   string          `json:"discount_code,omitempty"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	CreatedAt      time.Time       `json:"created_at"`
	Status         string          `json:"status"`
}
