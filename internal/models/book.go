package models

import "github.com/shopspring/decimal"

// Book is immutable once the catalog is seeded. Title doubles as the
// catalog key, so it must be unique.
type Book struct {
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
}
