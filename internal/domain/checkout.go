package domain

import "time"

// Checkout steps for the GPay flow. A session starts at StepDetails, moves to
// StepPaymentPending once customer details validate, and is deleted when the
// order is confirmed or the session is cancelled.
const (
	StepDetails        = "details"
	StepPaymentPending = "payment_pending"
)

// CustomerDetails are the buyer fields collected before hand-off.
type CustomerDetails struct {
	Name    string `json:"name" validate:"notblank"`
	Phone   string `json:"phone" validate:"notblank,inmobile"`
	Address string `json:"address" validate:"notblank"`
}

// CheckoutSession tracks an in-progress GPay checkout. The cart lines are
// snapshotted at session start so a later cart edit cannot change the amount
// the customer was told to transfer.
type CheckoutSession struct {
	ID        string          `json:"id"`
	SessionID string          `json:"session_id"`
	Step      string          `json:"step"`
	Customer  CustomerDetails `json:"customer"`
	Lines     []Line          `json:"lines"`
	AmountDue int64           `json:"amount_due"`
	ItemCount int             `json:"item_count"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry at the given time.
func (s *CheckoutSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
