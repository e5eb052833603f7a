package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func paidOrder() entities.Order {
	return entities.Order{
		ID:          "6a1f0e0c-1f5e-4b8e-9a55-2d3a4c2f0b10",
		OrderNumber: "10001",
		Guest:       &entities.GuestInfo{Name: "Asha", Email: "asha@example.com", Phone: "+919800000000"},
		Items: []entities.Item{
			{ProductID: "P1", ProductName: "Vase", Quantity: 2, Price: decimal.NewFromInt(100)},
			{ProductID: "P2", Quantity: 1, Price: decimal.RequireFromString("49.5")},
		},
		TotalAmount:     decimal.RequireFromString("249.5"),
		PaymentMethod:   entities.PaymentGateway,
		IsPaid:          true,
		Status:          entities.StatusProcessing,
		ShippingAddress: entities.Address{Street: "1 Main St", City: "Pune", State: "MH", ZipCode: "411001", Country: "India"},
		Payment:         entities.PaymentDetails{Currency: "INR"},
	}
}

func TestKafkaNotifier_NotifyOrderConfirmed(t *testing.T) {
	w := &fakeWriter{}
	n := newKafkaNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)), w, time.Second)
	n.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	order := paidOrder()
	require.NoError(t, n.NotifyOrderConfirmed(context.Background(), order))
	require.Len(t, w.msgs, 1)

	assert.Equal(t, order.ID, string(w.msgs[0].Key))

	var msg Message
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &msg))
	assert.Equal(t, TypeOrderConfirmation, msg.Type)
	assert.Equal(t, "10001", msg.OrderNumber)
	assert.Equal(t, "asha@example.com", msg.Email)
	assert.Equal(t, "249.50", msg.TotalAmount)
	require.Len(t, msg.Items, 2)
	assert.Equal(t, "Product", msg.Items[1].Name)
	assert.Equal(t, "100.00", msg.Items[0].Price)
	assert.Equal(t, "Pune", msg.ShippingAddress.City)
	assert.Equal(t, 2026, msg.CreatedAt.Year())
}

func TestKafkaNotifier_WriteError(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	n := newKafkaNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)), w, time.Second)

	err := n.NotifyOrderConfirmed(context.Background(), paidOrder())
	assert.ErrorContains(t, err, "broker down")
}

func TestConfirmationFromOrder_AccountCustomer(t *testing.T) {
	o := paidOrder()
	o.Guest = nil
	o.CustomerID = "c-1"

	msg := ConfirmationFromOrder(o)
	assert.Empty(t, msg.Email)
	assert.Equal(t, "c-1", msg.CustomerID)
}

func TestKafkaNotifier_LogsUnderServiceKey(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	n := newKafkaNotifier(logger, &fakeWriter{}, time.Second)

	require.NoError(t, n.NotifyOrderConfirmed(context.Background(), paidOrder()))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "notifier", entry["service"])
	assert.Equal(t, "10001", entry["order_number"])
}
