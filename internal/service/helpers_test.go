package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/storefront-orders/internal/auth"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/service"
	txMocks "github.com/SergeyBogomolovv/storefront-orders/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passthroughTx runs callbacks directly, as if inside a transaction.
func passthroughTx(t *testing.T) *txMocks.MockManager {
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	return tx
}

func testAddress() entities.Address {
	return entities.Address{Street: "12 MG Road", City: "Pune", State: "MH", ZipCode: "411001", Country: "India"}
}

func testGuest() entities.GuestInfo {
	return entities.GuestInfo{Name: "Asha Rao", Email: "asha@example.com", Phone: "+919800000000"}
}

func testItems() []entities.Item {
	return []entities.Item{
		{ProductID: "P1", ProductName: "Terracotta vase", Quantity: 2, Price: decimal.NewFromInt(100)},
	}
}

func guestDraft(method entities.PaymentMethod) entities.Order {
	guest := testGuest()
	return entities.Order{
		Items:           testItems(),
		TotalAmount:     decimal.NewFromInt(200),
		PaymentMethod:   method,
		ShippingAddress: testAddress(),
		Guest:           &guest,
	}
}

// mutateOn runs the mutation against a fixed current order, like the real
// service does under the row lock.
func mutateOn(current entities.Order) func(context.Context, auth.Principal, string, service.MutateFunc) (entities.Order, entities.Order, error) {
	return func(_ context.Context, _ auth.Principal, _ string, fn service.MutateFunc) (entities.Order, entities.Order, error) {
		upd, err := fn(current)
		if err != nil {
			return entities.Order{}, entities.Order{}, err
		}
		return current, upd.Apply(current), nil
	}
}
