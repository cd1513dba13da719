package models

// PaymentInfo carries the raw checkout form fields handed to the
// gateway.
type PaymentInfo struct {
	Method     string `json:"payment_method"`
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}

type PaymentResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id,omitempty"`
}
