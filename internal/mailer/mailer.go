// Package mailer "sends" order confirmations by writing the composed
// message to the console instead of dialing an SMTP server.
package mailer

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/wneessen/go-mail"

	"bookery_back_end/internal/models"
)

const fromAddress = "noreply@bookery.dev"

// Out receives the rendered message. Swappable in tests.
var Out io.Writer = os.Stdout

// SendOrderConfirmation composes the confirmation email and writes it
// to Out.
func SendOrderConfirmation(order *models.Order) error {
	msg := mail.NewMsg()

	if err := msg.From(fromAddress); err != nil {
		return err
	}
	if err := msg.To(order.Shipping.Email); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("Order Confirmation - Order #%s", order.ID))
	msg.SetBodyString(mail.TypeTextHTML, OrderConfirmationHTML(order))

	fmt.Fprintln(Out, "=== EMAIL SENT ===")
	if _, err := msg.WriteTo(Out); err != nil {
		return err
	}
	fmt.Fprintln(Out, "==================")

	log.Printf("📤 Confirmation email for order %s emitted to %s", order.ID, order.Shipping.Email)
	return nil
}

// OrderConfirmationHTML renders the email body.
func OrderConfirmationHTML(order *models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>$%s</td>
				<td>$%s</td>
			</tr>`, item.Book.Title, item.Quantity,
			item.Book.Price.StringFixed(2), item.TotalPrice().StringFixed(2))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Order Confirmation</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Your order is confirmed</h2>
		<p>Order #%s, placed %s.</p>

		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Book</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Quantity</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Unit price</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>
				%s
			</tbody>
			<tfoot>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right; font-weight: bold;">Total:</td>
					<td style="padding: 10px; font-weight: bold;">$%s</td>
				</tr>
			</tfoot>
		</table>

		<p>Shipping to: %s, %s %s</p>

		<p style="margin-top: 30px; color: #555;">
			Happy reading,<br>
			<strong>The Bookery team</strong>
		</p>
	</div>
</body>
</html>`, order.ID, order.CreatedAt.Format("2006-01-02 15:04:05"), itemsHTML,
		order.TotalAmount.StringFixed(2),
		order.Shipping.Address, order.Shipping.City, order.Shipping.ZipCode)
}
