package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/caffeinepub/amala-organics-1/internal/domain"
	"github.com/caffeinepub/amala-organics-1/internal/event"
	"github.com/caffeinepub/amala-organics-1/internal/repository"
	"github.com/caffeinepub/amala-organics-1/internal/whatsapp"
	apperrors "github.com/caffeinepub/amala-organics-1/pkg/errors"
	"github.com/caffeinepub/amala-organics-1/pkg/validator"
)

// Checkout flow names used in order.submitted events.
const (
	FlowWhatsApp = "whatsapp"
	FlowGPay     = "gpay"
)

// CustomerInput holds the buyer details submitted from either checkout form.
type CustomerInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// trimmed returns the input with surrounding whitespace stripped from every
// field, as domain customer details.
func (in CustomerInput) trimmed() domain.CustomerDetails {
	return domain.CustomerDetails{
		Name:    strings.TrimSpace(in.Name),
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
	}
}

// OrderHandoff is the result of a completed checkout: the pre-filled
// WhatsApp link the customer opens, plus the rendered message for display.
type OrderHandoff struct {
	WhatsAppURL string `json:"whatsapp_url"`
	Transcript  string `json:"transcript"`
	Total       int64  `json:"total"`
	ItemCount   int    `json:"item_count"`
}

// GPaySession is the client view of an in-progress GPay checkout, including
// the transfer instructions shown on the payment screen.
type GPaySession struct {
	ID          string                 `json:"id"`
	Step        string                 `json:"step"`
	Customer    domain.CustomerDetails `json:"customer"`
	PayeeName   string                 `json:"payee_name"`
	PayeeNumber string                 `json:"payee_number"`
	AmountDue   int64                  `json:"amount_due"`
	ItemCount   int                    `json:"item_count"`
	ExpiresAt   time.Time              `json:"expires_at"`
}

// CheckoutService implements both manual checkout flows. Neither flow clears
// the cart: the customer may return from WhatsApp to adjust the order and
// send a corrected message.
type CheckoutService struct {
	carts       repository.CartRepository
	checkouts   repository.CheckoutRepository
	producer    *event.Producer
	logger      *slog.Logger
	checkoutTTL time.Duration

	whatsAppPhone  string
	gpayPayeeName  string
	gpayPayeePhone string
}

// CheckoutConfig holds the hand-off targets for the checkout service.
type CheckoutConfig struct {
	CheckoutTTL    time.Duration
	WhatsAppPhone  string
	GPayPayeeName  string
	GPayPayeePhone string
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	carts repository.CartRepository,
	checkouts repository.CheckoutRepository,
	producer *event.Producer,
	logger *slog.Logger,
	cfg CheckoutConfig,
) *CheckoutService {
	return &CheckoutService{
		carts:          carts,
		checkouts:      checkouts,
		producer:       producer,
		logger:         logger,
		checkoutTTL:    cfg.CheckoutTTL,
		whatsAppPhone:  cfg.WhatsAppPhone,
		gpayPayeeName:  cfg.GPayPayeeName,
		gpayPayeePhone: cfg.GPayPayeePhone,
	}
}

// WhatsAppOrder completes the pay-on-delivery flow: validates customer
// details against the current cart and returns the WhatsApp hand-off.
func (s *CheckoutService) WhatsAppOrder(ctx context.Context, sessionID string, in CustomerInput) (*OrderHandoff, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	customer := in.trimmed()
	if err := validator.Validate(customer); err != nil {
		return nil, err
	}

	cart, err := s.loadNonEmptyCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		Customer: customer,
		Lines:    cart.Lines,
	}

	handoff := s.handoff(order)

	if err := s.producer.PublishOrderSubmitted(ctx, sessionID, FlowWhatsApp, order); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order.submitted event",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "whatsapp order prepared",
		slog.String("session_id", sessionID),
		slog.Int64("total", order.Total()),
		slog.Int("item_count", handoff.ItemCount),
	)

	return handoff, nil
}

// StartGPay begins the prepaid flow: validates customer details, snapshots
// the cart, and returns a payment-pending session with transfer instructions.
func (s *CheckoutService) StartGPay(ctx context.Context, sessionID string, in CustomerInput) (*GPaySession, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	customer := in.trimmed()
	if err := validator.Validate(customer); err != nil {
		return nil, err
	}

	cart, err := s.loadNonEmptyCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &domain.CheckoutSession{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Step:      domain.StepPaymentPending,
		Customer:  customer,
		Lines:     cart.Lines,
		AmountDue: cart.Total(),
		ItemCount: cart.ItemCount(),
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.checkoutTTL),
	}

	if err := s.checkouts.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save checkout session: %w", err)
	}

	s.logger.InfoContext(ctx, "gpay checkout started",
		slog.String("session_id", sessionID),
		slog.String("checkout_id", session.ID),
		slog.Int64("amount_due", session.AmountDue),
	)

	return s.gpayView(session), nil
}

// Back returns a payment-pending session to the details step so the customer
// can edit their information. The snapshot and amount due are kept.
func (s *CheckoutService) Back(ctx context.Context, sessionID, checkoutID string) (*GPaySession, error) {
	session, err := s.loadSession(ctx, sessionID, checkoutID)
	if err != nil {
		return nil, err
	}

	if session.Step != domain.StepPaymentPending {
		return nil, apperrors.Conflict("checkout session is not awaiting payment")
	}

	session.Step = domain.StepDetails
	session.UpdatedAt = time.Now().UTC()

	if err := s.checkouts.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save checkout session: %w", err)
	}

	return s.gpayView(session), nil
}

// ConfirmGPay completes the prepaid flow. The transaction reference is free
// text: it is recorded in the order message but never verified against any
// payment provider.
func (s *CheckoutService) ConfirmGPay(ctx context.Context, sessionID, checkoutID, transactionID string) (*OrderHandoff, error) {
	session, err := s.loadSession(ctx, sessionID, checkoutID)
	if err != nil {
		return nil, err
	}

	if session.Step != domain.StepPaymentPending {
		return nil, apperrors.Conflict("checkout session is not awaiting payment")
	}

	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return nil, apperrors.InvalidInput("transaction id is required")
	}

	order := &domain.Order{
		Customer: session.Customer,
		Lines:    session.Lines,
		Payment: &domain.PaymentDetails{
			Method:        domain.PaymentMethodGPay,
			TransactionID: transactionID,
		},
	}

	handoff := s.handoff(order)

	if err := s.checkouts.Delete(ctx, checkoutID); err != nil {
		return nil, fmt.Errorf("delete checkout session: %w", err)
	}

	if err := s.producer.PublishOrderSubmitted(ctx, sessionID, FlowGPay, order); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order.submitted event",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "gpay order confirmed",
		slog.String("session_id", sessionID),
		slog.String("checkout_id", checkoutID),
		slog.Int64("total", order.Total()),
	)

	return handoff, nil
}

// Cancel abandons an in-progress GPay checkout.
func (s *CheckoutService) Cancel(ctx context.Context, sessionID, checkoutID string) error {
	session, err := s.loadSession(ctx, sessionID, checkoutID)
	if err != nil {
		return err
	}

	if err := s.checkouts.Delete(ctx, session.ID); err != nil {
		return fmt.Errorf("delete checkout session: %w", err)
	}

	s.logger.InfoContext(ctx, "gpay checkout cancelled",
		slog.String("session_id", sessionID),
		slog.String("checkout_id", checkoutID),
	)

	return nil
}

// loadNonEmptyCart fetches the session's cart and rejects checkout when it
// is missing or empty.
func (s *CheckoutService) loadNonEmptyCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.InvalidInput("cart is empty")
		}
		return nil, fmt.Errorf("get cart for checkout: %w", err)
	}
	if cart.IsEmpty() {
		return nil, apperrors.InvalidInput("cart is empty")
	}
	return cart, nil
}

// loadSession fetches a checkout session and verifies it belongs to the
// caller's browser session. Expired sessions are treated as not found.
func (s *CheckoutService) loadSession(ctx context.Context, sessionID, checkoutID string) (*domain.CheckoutSession, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if checkoutID == "" {
		return nil, apperrors.InvalidInput("checkout id is required")
	}

	session, err := s.checkouts.Get(ctx, checkoutID)
	if err != nil {
		return nil, err
	}

	if session.SessionID != sessionID {
		return nil, apperrors.NotFound("checkout session", checkoutID)
	}

	if session.Expired(time.Now().UTC()) {
		if err := s.checkouts.Delete(ctx, checkoutID); err != nil {
			s.logger.ErrorContext(ctx, "failed to delete expired checkout session",
				slog.String("checkout_id", checkoutID),
				slog.String("error", err.Error()),
			)
		}
		return nil, apperrors.NotFound("checkout session", checkoutID)
	}

	return session, nil
}

func (s *CheckoutService) handoff(order *domain.Order) *OrderHandoff {
	transcript := order.Transcript()
	var count int
	for _, l := range order.Lines {
		count += l.Quantity
	}
	return &OrderHandoff{
		WhatsAppURL: whatsapp.OrderLink(s.whatsAppPhone, transcript),
		Transcript:  transcript,
		Total:       order.Total(),
		ItemCount:   count,
	}
}

func (s *CheckoutService) gpayView(session *domain.CheckoutSession) *GPaySession {
	return &GPaySession{
		ID:          session.ID,
		Step:        session.Step,
		Customer:    session.Customer,
		PayeeName:   s.gpayPayeeName,
		PayeeNumber: s.gpayPayeePhone,
		AmountDue:   session.AmountDue,
		ItemCount:   session.ItemCount,
		ExpiresAt:   session.ExpiresAt,
	}
}
