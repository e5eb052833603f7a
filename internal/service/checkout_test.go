package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/storefront-orders/internal/auth"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/payment"
	"github.com/SergeyBogomolovv/storefront-orders/internal/service"
	mocks "github.com/SergeyBogomolovv/storefront-orders/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testOrderID   = "3f1e9a2c-6b7d-4c1e-8f3a-2d5b6c7e8f90"
	testKeySecret = "key-secret"
)

func checkoutConfig() service.CheckoutConfig {
	return service.CheckoutConfig{
		Shipping:    service.ShippingRule{FreeAbove: decimal.NewFromInt(1000), Fee: decimal.NewFromInt(100)},
		Currency:    "INR",
		KeyID:       "rzp_test_key",
		KeySecret:   testKeySecret,
		CompanyName: "Crafted Corners",
	}
}

func checkoutRequest() service.CheckoutRequest {
	return service.CheckoutRequest{
		Items:           testItems(),
		ShippingAddress: testAddress(),
		Contact:         testGuest(),
	}
}

// createdOrder is what the order service hands back for checkoutRequest.
func createdOrder(method entities.PaymentMethod) entities.Order {
	o := guestDraft(method)
	o.ID = testOrderID
	o.OrderNumber = "10001"
	o.Status = entities.StatusPending
	o.TotalAmount = decimal.NewFromInt(300)
	return o
}

func TestShippingRule_Cost(t *testing.T) {
	rule := service.ShippingRule{FreeAbove: decimal.NewFromInt(1000), Fee: decimal.NewFromInt(100)}

	assert.True(t, rule.Cost(decimal.NewFromInt(200)).Equal(decimal.NewFromInt(100)))
	assert.True(t, rule.Cost(decimal.NewFromInt(1000)).Equal(decimal.NewFromInt(100)))
	assert.True(t, rule.Cost(decimal.RequireFromString("1000.01")).IsZero())
}

func TestCheckoutService_Quote(t *testing.T) {
	svc := service.NewCheckoutService(discardLogger(), mocks.NewMockCheckoutOrders(t), mocks.NewMockPaymentProvider(t), checkoutConfig())

	q := svc.Quote(testItems())
	assert.Equal(t, "200", q.Subtotal.String())
	assert.Equal(t, "100", q.Shipping.String())
	assert.Equal(t, "300", q.Total.String())

	big := []entities.Item{{ProductID: "P2", Quantity: 3, Price: decimal.NewFromInt(400)}}
	q = svc.Quote(big)
	assert.True(t, q.Shipping.IsZero())
	assert.Equal(t, "1200", q.Total.String())
}

func TestCheckoutService_PlaceCODOrder(t *testing.T) {
	orders := mocks.NewMockCheckoutOrders(t)
	orders.EXPECT().
		CreateOrder(mock.Anything, auth.Anonymous(), mock.MatchedBy(func(o entities.Order) bool {
			return o.PaymentMethod == entities.PaymentCOD &&
				o.TotalAmount.Equal(decimal.NewFromInt(300)) &&
				o.Guest != nil && o.Guest.Email == "asha@example.com" &&
				o.CustomerID == ""
		})).
		Return(createdOrder(entities.PaymentCOD), nil).Once()

	svc := service.NewCheckoutService(discardLogger(), orders, mocks.NewMockPaymentProvider(t), checkoutConfig())

	got, err := svc.PlaceCODOrder(context.Background(), auth.Anonymous(), checkoutRequest())
	require.NoError(t, err)
	assert.Equal(t, "10001", got.OrderNumber)
}

func TestCheckoutService_PlaceCODOrder_Account(t *testing.T) {
	orders := mocks.NewMockCheckoutOrders(t)
	orders.EXPECT().
		CreateOrder(mock.Anything, auth.Customer("c-1"), mock.MatchedBy(func(o entities.Order) bool {
			return o.CustomerID == "c-1" && o.Guest == nil
		})).
		Return(createdOrder(entities.PaymentCOD), nil).Once()

	svc := service.NewCheckoutService(discardLogger(), orders, mocks.NewMockPaymentProvider(t), checkoutConfig())

	req := checkoutRequest()
	req.CustomerID = "c-1"
	_, err := svc.PlaceCODOrder(context.Background(), auth.Customer("c-1"), req)
	require.NoError(t, err)
}

func TestCheckoutService_StartGatewayCheckout(t *testing.T) {
	orders := mocks.NewMockCheckoutOrders(t)
	provider := mocks.NewMockPaymentProvider(t)
	created := createdOrder(entities.PaymentGateway)

	createCall := orders.EXPECT().
		CreateOrder(mock.Anything, auth.Anonymous(), mock.MatchedBy(func(o entities.Order) bool {
			return o.PaymentMethod == entities.PaymentGateway
		})).
		Return(created, nil).Once()

	intentCall := provider.EXPECT().
		CreateIntent(mock.Anything, mock.MatchedBy(func(req payment.IntentRequest) bool {
			return req.Amount.Equal(decimal.NewFromInt(300)) &&
				req.Currency == "INR" &&
				req.Receipt != "" &&
				req.Notes[payment.NoteOrderID] == testOrderID &&
				req.Notes[payment.NoteOrderNumber] == "10001"
		})).
		Return(payment.Intent{ID: "order_Q1", Amount: 30000, Currency: "INR"}, nil).Once()
	intentCall.NotBefore(createCall)

	attachCall := orders.EXPECT().
		Mutate(mock.Anything, auth.System(), testOrderID, mock.Anything).
		RunAndReturn(mutateOn(created)).Once()
	attachCall.NotBefore(intentCall)

	svc := service.NewCheckoutService(discardLogger(), orders, provider, checkoutConfig())

	got, err := svc.StartGatewayCheckout(context.Background(), auth.Anonymous(), checkoutRequest())
	require.NoError(t, err)
	assert.Equal(t, "order_Q1", got.IntentID)
	assert.Equal(t, "order_Q1", got.Order.Payment.IntentID)
	assert.NotEmpty(t, got.Order.Payment.Receipt)
	assert.Equal(t, int64(30000), got.Amount)
	assert.Equal(t, "rzp_test_key", got.KeyID)
	assert.Equal(t, "Crafted Corners", got.CompanyName)
	assert.Equal(t, testGuest(), got.Prefill)
}

func TestCheckoutService_StartGatewayCheckout_ProviderDown(t *testing.T) {
	orders := mocks.NewMockCheckoutOrders(t)
	provider := mocks.NewMockPaymentProvider(t)
	created := createdOrder(entities.PaymentGateway)

	orders.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).Return(created, nil).Once()
	provider.EXPECT().CreateIntent(mock.Anything, mock.Anything).Return(payment.Intent{}, errors.New("timeout")).Once()

	svc := service.NewCheckoutService(discardLogger(), orders, provider, checkoutConfig())

	got, err := svc.StartGatewayCheckout(context.Background(), auth.Anonymous(), checkoutRequest())
	assert.ErrorIs(t, err, service.ErrPaymentProvider)
	assert.Equal(t, testOrderID, got.Order.ID, "pending order is kept so the checkout can be resumed")
	assert.Empty(t, got.IntentID)
}

func TestCheckoutService_StartGatewayCheckout_OrderRejected(t *testing.T) {
	orders := mocks.NewMockCheckoutOrders(t)
	orders.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).
		Return(entities.Order{}, entities.ErrInvalidOrder).Once()

	svc := service.NewCheckoutService(discardLogger(), orders, mocks.NewMockPaymentProvider(t), checkoutConfig())

	_, err := svc.StartGatewayCheckout(context.Background(), auth.Anonymous(), checkoutRequest())
	assert.ErrorIs(t, err, entities.ErrInvalidOrder)
}

func TestCheckoutService_ResumeGatewayCheckout(t *testing.T) {
	t.Run("creates missing intent", func(t *testing.T) {
		orders := mocks.NewMockCheckoutOrders(t)
		provider := mocks.NewMockPaymentProvider(t)
		pending := createdOrder(entities.PaymentGateway)

		orders.EXPECT().GetOrder(mock.Anything, auth.System(), testOrderID).Return(pending, nil).Once()
		provider.EXPECT().CreateIntent(mock.Anything, mock.Anything).Return(payment.Intent{ID: "order_Q2"}, nil).Once()
		orders.EXPECT().Mutate(mock.Anything, auth.System(), testOrderID, mock.Anything).RunAndReturn(mutateOn(pending)).Once()

		svc := service.NewCheckoutService(discardLogger(), orders, provider, checkoutConfig())

		got, err := svc.ResumeGatewayCheckout(context.Background(), auth.Anonymous(), testOrderID)
		require.NoError(t, err)
		assert.Equal(t, "order_Q2", got.IntentID)
	})

	t.Run("re-asserts notes on existing intent", func(t *testing.T) {
		orders := mocks.NewMockCheckoutOrders(t)
		provider := mocks.NewMockPaymentProvider(t)
		pending := createdOrder(entities.PaymentGateway)
		pending.Payment.IntentID = "order_Q1"

		orders.EXPECT().GetOrder(mock.Anything, auth.System(), testOrderID).Return(pending, nil).Once()
		provider.EXPECT().
			UpdateIntentNotes(mock.Anything, "order_Q1", mock.MatchedBy(func(n map[string]string) bool {
				return n[payment.NoteOrderID] == testOrderID
			})).
			Return(nil).Once()

		svc := service.NewCheckoutService(discardLogger(), orders, provider, checkoutConfig())

		got, err := svc.ResumeGatewayCheckout(context.Background(), auth.Anonymous(), testOrderID)
		require.NoError(t, err)
		assert.Equal(t, "order_Q1", got.IntentID)
	})

	t.Run("paid order cannot be resumed", func(t *testing.T) {
		orders := mocks.NewMockCheckoutOrders(t)
		paid := createdOrder(entities.PaymentGateway)
		paid.IsPaid = true
		paid.Status = entities.StatusProcessing

		orders.EXPECT().GetOrder(mock.Anything, auth.System(), testOrderID).Return(paid, nil).Once()

		svc := service.NewCheckoutService(discardLogger(), orders, mocks.NewMockPaymentProvider(t), checkoutConfig())

		_, err := svc.ResumeGatewayCheckout(context.Background(), auth.Anonymous(), testOrderID)
		assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	})

	accountOrder := createdOrder(entities.PaymentGateway)
	accountOrder.CustomerID = "c-1"
	accountOrder.Guest = nil
	accountOrder.Payment.IntentID = "order_Q1"

	accessCases := []struct {
		name    string
		p       auth.Principal
		wantErr error
	}{
		{name: "other customer", p: auth.Customer("c-2"), wantErr: auth.ErrForbidden},
		{name: "anonymous", p: auth.Anonymous(), wantErr: auth.ErrUnauthenticated},
	}

	for _, tc := range accessCases {
		t.Run("account order, "+tc.name, func(t *testing.T) {
			orders := mocks.NewMockCheckoutOrders(t)
			orders.EXPECT().GetOrder(mock.Anything, auth.System(), testOrderID).Return(accountOrder, nil).Once()

			// провайдер не должен вызываться
			svc := service.NewCheckoutService(discardLogger(), orders, mocks.NewMockPaymentProvider(t), checkoutConfig())

			got, err := svc.ResumeGatewayCheckout(context.Background(), tc.p, testOrderID)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, got.IntentID)
			assert.Empty(t, got.Order.ID)
		})
	}

	t.Run("account order, owner", func(t *testing.T) {
		orders := mocks.NewMockCheckoutOrders(t)
		provider := mocks.NewMockPaymentProvider(t)

		orders.EXPECT().GetOrder(mock.Anything, auth.System(), testOrderID).Return(accountOrder, nil).Once()
		provider.EXPECT().UpdateIntentNotes(mock.Anything, "order_Q1", mock.Anything).Return(nil).Once()

		svc := service.NewCheckoutService(discardLogger(), orders, provider, checkoutConfig())

		got, err := svc.ResumeGatewayCheckout(context.Background(), auth.Customer("c-1"), testOrderID)
		require.NoError(t, err)
		assert.Equal(t, "order_Q1", got.IntentID)
	})
}

func TestCheckoutService_ConfirmClientPayment(t *testing.T) {
	withIntent := createdOrder(entities.PaymentGateway)
	withIntent.Payment.IntentID = "order_Q1"

	validSig := payment.Sign(testKeySecret, []byte("order_Q1|pay_1"))

	testCases := []struct {
		name         string
		success      service.PaymentSuccess
		wantVerified bool
		wantErr      error
	}{
		{
			name:         "valid signature",
			success:      service.PaymentSuccess{IntentID: "order_Q1", PaymentID: "pay_1", Signature: validSig},
			wantVerified: true,
		},
		{
			name:    "bad signature is acknowledged but unverified",
			success: service.PaymentSuccess{IntentID: "order_Q1", PaymentID: "pay_1", Signature: "00ff"},
		},
		{
			name:    "foreign intent",
			success: service.PaymentSuccess{IntentID: "order_other", PaymentID: "pay_1", Signature: validSig},
			wantErr: entities.ErrIntentMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockCheckoutOrders(t)
			orders.EXPECT().GetOrder(mock.Anything, auth.System(), testOrderID).Return(withIntent, nil).Once()

			svc := service.NewCheckoutService(discardLogger(), orders, mocks.NewMockPaymentProvider(t), checkoutConfig())

			ack, err := svc.ConfirmClientPayment(context.Background(), testOrderID, tc.success)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantVerified, ack.Verified)
			assert.Equal(t, "10001", ack.OrderNumber)
			assert.Equal(t, entities.StatusPending, ack.Status)
			assert.False(t, ack.IsPaid)
		})
	}
}

func TestCheckoutService_FailClientPayment(t *testing.T) {
	pending := createdOrder(entities.PaymentGateway)
	pending.Payment.IntentID = "order_Q1"

	paid := pending
	paid.IsPaid = true
	paid.Status = entities.StatusProcessing

	failure := service.PaymentFailure{IntentID: "order_Q1", PaymentID: "pay_1", Code: "BAD_REQUEST_ERROR", Description: "card declined"}

	testCases := []struct {
		name       string
		current    entities.Order
		failure    service.PaymentFailure
		wantStatus entities.Status
		wantNotes  int
		wantErr    error
	}{
		{name: "cancels pending order", current: pending, failure: failure, wantStatus: entities.StatusCancelled, wantNotes: 1},
		{name: "paid order is left alone", current: paid, failure: failure, wantStatus: entities.StatusProcessing},
		{
			name:    "foreign intent",
			current: pending,
			failure: service.PaymentFailure{IntentID: "order_other"},
			wantErr: entities.ErrIntentMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockCheckoutOrders(t)
			orders.EXPECT().Mutate(mock.Anything, auth.System(), testOrderID, mock.Anything).RunAndReturn(mutateOn(tc.current)).Once()

			svc := service.NewCheckoutService(discardLogger(), orders, mocks.NewMockPaymentProvider(t), checkoutConfig())

			got, err := svc.FailClientPayment(context.Background(), testOrderID, tc.failure)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, got.Status)
			assert.Len(t, got.Notes, tc.wantNotes)
			if tc.wantStatus == entities.StatusCancelled {
				assert.Equal(t, entities.PaymentStateFailed, got.Payment.State)
				assert.Equal(t, "BAD_REQUEST_ERROR", got.Payment.ErrorCode)
			}
		})
	}
}
