// Package payment implements the mock gateway. There is no network
// call, no retry and no idempotency key: submitting the same form twice
// produces two transactions.
package payment

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"bookery_back_end/internal/models"
)

// processingDelay imitates gateway latency on the success path.
var processingDelay = 100 * time.Millisecond

// ProcessPayment is a pure function of the payment info. Card numbers
// ending in "1111" are declined; everything else succeeds with a
// synthetic transaction id.
func ProcessPayment(info models.PaymentInfo) models.PaymentResult {
	if strings.HasSuffix(info.CardNumber, "1111") {
		return models.PaymentResult{
			Success: false,
			Message: "Payment failed: Invalid card number",
		}
	}

	time.Sleep(processingDelay)

	return models.PaymentResult{
		Success:       true,
		Message:       "Payment processed successfully",
		TransactionID: fmt.Sprintf("TXN%d", 100000+rand.Intn(900000)),
	}
}
