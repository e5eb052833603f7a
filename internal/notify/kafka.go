package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
)

const TypeOrderConfirmation = "order_confirmation"

var notificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "storefront_orders",
	Subsystem: "notifications",
	Name:      "published_total",
	Help:      "Order notifications handed to the broker, by result.",
}, []string{"type", "result"})

// Message is consumed by the mailer that renders the confirmation email.
type Message struct {
	Type            string    `json:"type"`
	OrderID         string    `json:"order_id"`
	OrderNumber     string    `json:"order_number"`
	Email           string    `json:"email,omitempty"`
	CustomerID      string    `json:"customer_id,omitempty"`
	Items           []Item    `json:"items"`
	TotalAmount     string    `json:"total_amount"`
	Currency        string    `json:"currency"`
	PaymentMethod   string    `json:"payment_method"`
	ShippingAddress Address   `json:"shipping_address"`
	CreatedAt       time.Time `json:"created_at"`
}

type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaNotifier struct {
	logger  *slog.Logger
	writer  messageWriter
	timeout time.Duration
	now     func() time.Time
}

func NewKafkaNotifier(logger *slog.Logger, cfg config.Kafka) *KafkaNotifier {
	return newKafkaNotifier(logger, &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.NotificationsTopic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}, cfg.WriteTimeout)
}

func newKafkaNotifier(logger *slog.Logger, w messageWriter, timeout time.Duration) *KafkaNotifier {
	return &KafkaNotifier{
		logger:  logger.With(slog.String("service", "notifier")),
		writer:  w,
		timeout: timeout,
		now:     time.Now,
	}
}

// NotifyOrderConfirmed publishes a confirmation for a paid order. The message
// is keyed by order id so a consumer sees notifications of one order in order.
func (n *KafkaNotifier) NotifyOrderConfirmed(ctx context.Context, order entities.Order) error {
	msg := ConfirmationFromOrder(order)
	msg.CreatedAt = n.now().UTC()

	value, err := json.Marshal(msg)
	if err != nil {
		notificationsTotal.WithLabelValues(TypeOrderConfirmation, "error").Inc()
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(TypeOrderConfirmation)},
		},
	})
	if err != nil {
		notificationsTotal.WithLabelValues(TypeOrderConfirmation, "error").Inc()
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	notificationsTotal.WithLabelValues(TypeOrderConfirmation, "ok").Inc()
	n.logger.Debug("confirmation published", slog.String("order_id", order.ID), slog.String("order_number", order.OrderNumber))
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}

func ConfirmationFromOrder(o entities.Order) Message {
	items := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		name := it.ProductName
		if name == "" {
			name = "Product"
		}
		items = append(items, Item{Name: name, Quantity: it.Quantity, Price: it.Price.StringFixed(2)})
	}

	return Message{
		Type:          TypeOrderConfirmation,
		OrderID:       o.ID,
		OrderNumber:   o.OrderNumber,
		Email:         o.Email(),
		CustomerID:    o.CustomerID,
		Items:         items,
		TotalAmount:   o.TotalAmount.StringFixed(2),
		Currency:      o.Payment.Currency,
		PaymentMethod: string(o.PaymentMethod),
		ShippingAddress: Address{
			Street:  o.ShippingAddress.Street,
			City:    o.ShippingAddress.City,
			State:   o.ShippingAddress.State,
			ZipCode: o.ShippingAddress.ZipCode,
			Country: o.ShippingAddress.Country,
		},
	}
}
