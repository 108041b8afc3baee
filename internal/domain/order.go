package domain

import (
	"fmt"
	"strings"
)

// PaymentDetails records the manual GPay transfer reference the customer
// entered. The reference is free text and is not verified against any
// payment provider; the shop owner reconciles it by hand.
type PaymentDetails struct {
	Method        string `json:"method"`
	TransactionID string `json:"transaction_id"`
}

// PaymentMethodGPay is the only supported prepaid method.
const PaymentMethodGPay = "GPay"

// Order is the final hand-off artifact for both checkout flows. It is never
// persisted; it exists only long enough to render the WhatsApp transcript.
type Order struct {
	Customer CustomerDetails `json:"customer"`
	Lines    []Line          `json:"lines"`
	Payment  *PaymentDetails `json:"payment,omitempty"`
}

// Total returns the sum of line subtotals in rupees.
func (o *Order) Total() int64 {
	var total int64
	for _, l := range o.Lines {
		total += l.Subtotal()
	}
	return total
}

// Transcript renders the order as the WhatsApp message the customer sends to
// the shop. The layout is fixed; the shop owner's tooling and habits depend
// on these exact labels and separators.
func (o *Order) Transcript() string {
	var b strings.Builder

	b.WriteString("🌿 Hello AMALA ORGANICS Team,\n\n")
	b.WriteString("Thank you for your premium herbal soaps.\n\n")

	b.WriteString("*Customer Details:*\n")
	fmt.Fprintf(&b, "Name: %s\n", o.Customer.Name)
	fmt.Fprintf(&b, "Phone: %s\n", o.Customer.Phone)
	fmt.Fprintf(&b, "Address: %s\n\n", o.Customer.Address)

	b.WriteString("*Order Summary:*\n")
	items := make([]string, len(o.Lines))
	for i, l := range o.Lines {
		items[i] = fmt.Sprintf("%s – Qty: %d – ₹%d", l.Name, l.Quantity, l.Subtotal())
	}
	b.WriteString(strings.Join(items, "\n"))

	fmt.Fprintf(&b, "\n\n*Total Amount: ₹%d*\n\n", o.Total())

	if o.Payment != nil {
		b.WriteString("*Payment Details:*\n")
		fmt.Fprintf(&b, "Payment Method: %s\n", o.Payment.Method)
		fmt.Fprintf(&b, "Transaction ID: %s\n\n", o.Payment.TransactionID)
	}

	b.WriteString("Kindly confirm my order. ✨")

	return b.String()
}
