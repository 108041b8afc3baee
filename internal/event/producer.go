package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/caffeinepub/amala-organics-1/internal/domain"
	pkgkafka "github.com/caffeinepub/amala-organics-1/pkg/kafka"
)

// Kafka topics for storefront domain events.
const (
	TopicCartUpdated    = "storefront.cart.updated"
	TopicCartCleared    = "storefront.cart.cleared"
	TopicOrderSubmitted = "storefront.order.submitted"
)

const (
	aggregateTypeCart  = "cart"
	aggregateTypeOrder = "order"
	source             = "storefront"
)

// LineData is the cart line payload within events.
type LineData struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	SessionID string     `json:"session_id"`
	Lines     []LineData `json:"lines"`
	ItemCount int        `json:"item_count"`
	Total     int64      `json:"total"`
}

// CartClearedData is the payload for a cart.cleared event.
type CartClearedData struct {
	SessionID string `json:"session_id"`
}

// OrderSubmittedData is the payload for an order.submitted event. Flow is
// "whatsapp" or "gpay"; TransactionID is set only for GPay orders.
type OrderSubmittedData struct {
	SessionID     string     `json:"session_id"`
	Flow          string     `json:"flow"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	Lines         []LineData `json:"lines"`
	ItemCount     int        `json:"item_count"`
	Total         int64      `json:"total"`
	TransactionID string     `json:"transaction_id,omitempty"`
}

// Producer publishes storefront domain events to Kafka. A nil Producer is
// valid and drops all events, which is how the service runs with
// KAFKA_ENABLED=false.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates an event producer. Pass a nil kafka producer to get a
// no-op instance.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	if kafka == nil {
		return nil
	}
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishCartUpdated publishes a cart.updated event.
func (p *Producer) PublishCartUpdated(ctx context.Context, cart *domain.Cart) error {
	if p == nil {
		return nil
	}

	data := CartUpdatedData{
		SessionID: cart.SessionID,
		Lines:     toLineData(cart.Lines),
		ItemCount: cart.ItemCount(),
		Total:     cart.Total(),
	}

	event, err := pkgkafka.NewEvent(TopicCartUpdated, cart.SessionID, aggregateTypeCart, source, data)
	if err != nil {
		return fmt.Errorf("create cart.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartUpdated, event); err != nil {
		return fmt.Errorf("publish cart.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.updated event",
		slog.String("session_id", cart.SessionID),
		slog.Int("item_count", cart.ItemCount()),
	)

	return nil
}

// PublishCartCleared publishes a cart.cleared event.
func (p *Producer) PublishCartCleared(ctx context.Context, sessionID string) error {
	if p == nil {
		return nil
	}

	data := CartClearedData{SessionID: sessionID}

	event, err := pkgkafka.NewEvent(TopicCartCleared, sessionID, aggregateTypeCart, source, data)
	if err != nil {
		return fmt.Errorf("create cart.cleared event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartCleared, event); err != nil {
		return fmt.Errorf("publish cart.cleared event: %w", err)
	}

	return nil
}

// PublishOrderSubmitted publishes an order.submitted event for either
// checkout flow.
func (p *Producer) PublishOrderSubmitted(ctx context.Context, sessionID, flow string, order *domain.Order) error {
	if p == nil {
		return nil
	}

	data := OrderSubmittedData{
		SessionID:     sessionID,
		Flow:          flow,
		CustomerName:  order.Customer.Name,
		CustomerPhone: order.Customer.Phone,
		Lines:         toLineData(order.Lines),
		ItemCount:     itemCount(order.Lines),
		Total:         order.Total(),
	}
	if order.Payment != nil {
		data.TransactionID = order.Payment.TransactionID
	}

	event, err := pkgkafka.NewEvent(TopicOrderSubmitted, sessionID, aggregateTypeOrder, source, data)
	if err != nil {
		return fmt.Errorf("create order.submitted event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicOrderSubmitted, event); err != nil {
		return fmt.Errorf("publish order.submitted event: %w", err)
	}

	p.logger.InfoContext(ctx, "published order.submitted event",
		slog.String("session_id", sessionID),
		slog.String("flow", flow),
		slog.Int64("total", order.Total()),
	)

	return nil
}

func toLineData(lines []domain.Line) []LineData {
	out := make([]LineData, len(lines))
	for i, l := range lines {
		out[i] = LineData{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  l.Quantity,
		}
	}
	return out
}

func itemCount(lines []domain.Line) int {
	var n int
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}
