package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/storefront-orders/internal/auth"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrPaymentProvider = errors.New("payment provider unavailable")

type CheckoutOrders interface {
	CreateOrder(ctx context.Context, p auth.Principal, draft entities.Order) (entities.Order, error)
	GetOrder(ctx context.Context, p auth.Principal, id string) (entities.Order, error)
	Mutate(ctx context.Context, p auth.Principal, id string, fn MutateFunc) (entities.Order, entities.Order, error)
}

type PaymentProvider interface {
	CreateIntent(ctx context.Context, req payment.IntentRequest) (payment.Intent, error)
	UpdateIntentNotes(ctx context.Context, intentID string, notes map[string]string) error
}

// ShippingRule: shipping is free when the subtotal exceeds FreeAbove,
// otherwise a flat Fee is charged.
type ShippingRule struct {
	FreeAbove decimal.Decimal
	Fee       decimal.Decimal
}

func (r ShippingRule) Cost(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(r.FreeAbove) {
		return decimal.Zero
	}
	return r.Fee
}

type Quote struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

type CheckoutRequest struct {
	Items           []entities.Item
	ShippingAddress entities.Address
	// CustomerID is set for account checkouts; otherwise Contact becomes the guest info.
	CustomerID string
	Contact    entities.GuestInfo
}

// GatewayCheckout is what the client needs to open the provider's payment UI.
type GatewayCheckout struct {
	Order       entities.Order
	IntentID    string
	KeyID       string
	Amount      int64
	Currency    string
	CompanyName string
	Prefill     entities.GuestInfo
}

type PaymentSuccess struct {
	IntentID  string
	PaymentID string
	Signature string
}

type PaymentFailure struct {
	IntentID    string
	PaymentID   string
	Code        string
	Description string
}

// PaymentAck is the provisional answer to a client-side success callback.
// Verified reports whether the checkout signature matched; the order itself
// only changes when the provider's webhook arrives.
type PaymentAck struct {
	OrderID     string
	OrderNumber string
	Status      entities.Status
	IsPaid      bool
	Verified    bool
}

type CheckoutConfig struct {
	Shipping    ShippingRule
	Currency    string
	KeyID       string
	KeySecret   string
	CompanyName string
}

type checkoutService struct {
	logger   *slog.Logger
	orders   CheckoutOrders
	provider PaymentProvider
	cfg      CheckoutConfig
}

func NewCheckoutService(logger *slog.Logger, orders CheckoutOrders, provider PaymentProvider, cfg CheckoutConfig) *checkoutService {
	return &checkoutService{
		logger:   logger.With(slog.String("service", "checkout")),
		orders:   orders,
		provider: provider,
		cfg:      cfg,
	}
}

func (s *checkoutService) Quote(items []entities.Item) Quote {
	subtotal := entities.Order{Items: items}.Subtotal()
	shipping := s.cfg.Shipping.Cost(subtotal)
	return Quote{Subtotal: subtotal, Shipping: shipping, Total: subtotal.Add(shipping)}
}

func (s *checkoutService) draft(req CheckoutRequest, method entities.PaymentMethod) entities.Order {
	o := entities.Order{
		Items:           req.Items,
		TotalAmount:     s.Quote(req.Items).Total,
		PaymentMethod:   method,
		ShippingAddress: req.ShippingAddress,
		CustomerID:      req.CustomerID,
	}
	if req.CustomerID == "" {
		guest := req.Contact
		o.Guest = &guest
	}
	return o
}

// PlaceCODOrder creates a cash-on-delivery order and returns it with its number.
func (s *checkoutService) PlaceCODOrder(ctx context.Context, p auth.Principal, req CheckoutRequest) (entities.Order, error) {
	return s.orders.CreateOrder(ctx, p, s.draft(req, entities.PaymentCOD))
}

// StartGatewayCheckout creates the pending order first, then a provider
// intent carrying the order's id and number in its notes, and records the
// intent id on the order. The payment UI must only be opened after this
// returns without error.
//
// If the provider fails the order stays pending; the returned checkout still
// carries the order so the client can resume it.
func (s *checkoutService) StartGatewayCheckout(ctx context.Context, p auth.Principal, req CheckoutRequest) (GatewayCheckout, error) {
	order, err := s.orders.CreateOrder(ctx, p, s.draft(req, entities.PaymentGateway))
	if err != nil {
		return GatewayCheckout{}, err
	}
	return s.attachIntent(ctx, order, req.Contact)
}

// ResumeGatewayCheckout reopens payment for a pending gateway order: it
// creates the intent if an earlier attempt failed, or re-asserts the
// correlation notes on the existing one. For guest orders the order id is
// the capability; account orders are only resumable by their owner.
func (s *checkoutService) ResumeGatewayCheckout(ctx context.Context, p auth.Principal, orderID string) (GatewayCheckout, error) {
	order, err := s.orders.GetOrder(ctx, auth.System(), orderID)
	if err != nil {
		return GatewayCheckout{}, err
	}
	if order.CustomerID != "" {
		if err := p.CanRead(order.CustomerID); err != nil {
			return GatewayCheckout{}, err
		}
	}
	if order.PaymentMethod != entities.PaymentGateway || order.Status != entities.StatusPending || order.IsPaid {
		return GatewayCheckout{}, fmt.Errorf("%w: order %s is not awaiting payment", entities.ErrInvalidTransition, order.OrderNumber)
	}

	contact := entities.GuestInfo{}
	if order.Guest != nil {
		contact = *order.Guest
	}

	if order.Payment.IntentID == "" {
		return s.attachIntent(ctx, order, contact)
	}

	if err := s.provider.UpdateIntentNotes(ctx, order.Payment.IntentID, s.notes(order, contact)); err != nil {
		s.logger.ErrorContext(ctx, "failed to update intent notes", slog.String("order_id", order.ID), slog.Any("error", err))
		return GatewayCheckout{Order: order}, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}
	return s.checkout(order, order.Payment.IntentID, contact), nil
}

func (s *checkoutService) attachIntent(ctx context.Context, order entities.Order, contact entities.GuestInfo) (GatewayCheckout, error) {
	receipt := uuid.NewString()
	intent, err := s.provider.CreateIntent(ctx, payment.IntentRequest{
		Amount:   order.TotalAmount,
		Currency: s.cfg.Currency,
		Receipt:  receipt,
		Notes:    s.notes(order, contact),
	})
	if err != nil {
		// Заказ остаётся в pending, его подберёт sweeper или повторная попытка
		s.logger.ErrorContext(ctx, "failed to create payment intent, order left pending",
			slog.String("order_id", order.ID), slog.Any("error", err))
		return GatewayCheckout{Order: order}, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	_, order, err = s.orders.Mutate(ctx, auth.System(), order.ID, func(current entities.Order) (entities.OrderUpdate, error) {
		if current.Payment.IntentID != "" && current.Payment.IntentID != intent.ID {
			return entities.OrderUpdate{}, fmt.Errorf("%w: order already has intent %s", entities.ErrInvalidTransition, current.Payment.IntentID)
		}
		details := current.Payment
		details.IntentID = intent.ID
		details.Receipt = receipt
		details.Amount = current.TotalAmount
		details.Currency = s.cfg.Currency
		return entities.OrderUpdate{Payment: &details}, nil
	})
	if err != nil {
		return GatewayCheckout{}, fmt.Errorf("failed to attach intent to order: %w", err)
	}

	s.logger.InfoContext(ctx, "payment intent attached",
		slog.String("order_id", order.ID), slog.String("intent_id", intent.ID))
	return s.checkout(order, intent.ID, contact), nil
}

func (s *checkoutService) notes(order entities.Order, contact entities.GuestInfo) map[string]string {
	notes := map[string]string{
		payment.NoteOrderID:     order.ID,
		payment.NoteOrderNumber: order.OrderNumber,
	}
	if contact.Name != "" {
		notes["customerName"] = contact.Name
	}
	if contact.Email != "" {
		notes["email"] = contact.Email
	}
	if contact.Phone != "" {
		notes["phone"] = contact.Phone
	}
	return notes
}

func (s *checkoutService) checkout(order entities.Order, intentID string, contact entities.GuestInfo) GatewayCheckout {
	return GatewayCheckout{
		Order:       order,
		IntentID:    intentID,
		KeyID:       s.cfg.KeyID,
		Amount:      payment.MajorToMinor(order.TotalAmount),
		Currency:    s.cfg.Currency,
		CompanyName: s.cfg.CompanyName,
		Prefill:     contact,
	}
}

// ConfirmClientPayment acknowledges the payment UI's success callback. It
// never changes the order.
func (s *checkoutService) ConfirmClientPayment(ctx context.Context, orderID string, ps PaymentSuccess) (PaymentAck, error) {
	order, err := s.orders.GetOrder(ctx, auth.System(), orderID)
	if err != nil {
		return PaymentAck{}, err
	}
	if order.Payment.IntentID == "" || order.Payment.IntentID != ps.IntentID {
		return PaymentAck{}, entities.ErrIntentMismatch
	}

	verified := payment.VerifyCheckoutSignature(s.cfg.KeySecret, ps.IntentID, ps.PaymentID, ps.Signature)
	if !verified {
		s.logger.WarnContext(ctx, "client payment callback signature mismatch",
			slog.String("order_id", order.ID), slog.String("payment_id", ps.PaymentID))
	}

	return PaymentAck{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		IsPaid:      order.IsPaid,
		Verified:    verified,
	}, nil
}

// FailClientPayment records a failure reported by the payment UI by
// cancelling the order right away. A later failed webhook writes the same
// state; a captured webhook still wins.
func (s *checkoutService) FailClientPayment(ctx context.Context, orderID string, pf PaymentFailure) (entities.Order, error) {
	_, after, err := s.orders.Mutate(ctx, auth.System(), orderID, func(current entities.Order) (entities.OrderUpdate, error) {
		if current.Payment.IntentID == "" || current.Payment.IntentID != pf.IntentID {
			return entities.OrderUpdate{}, entities.ErrIntentMismatch
		}
		if current.IsPaid || (current.Status != entities.StatusPending && current.Status != entities.StatusProcessing) {
			return entities.OrderUpdate{}, nil
		}

		details := current.Payment
		if pf.PaymentID != "" {
			details.PaymentID = pf.PaymentID
		}
		details.State = entities.PaymentStateFailed
		details.ErrorCode = pf.Code
		details.ErrorDescription = pf.Description

		status := entities.StatusCancelled
		upd := entities.OrderUpdate{Status: &status, Payment: &details}
		if current.Status != entities.StatusCancelled {
			upd.AppendNotes = []string{"payment failed at checkout: " + failureText(pf.Code, pf.Description)}
		}
		return upd, nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.InfoContext(ctx, "order cancelled after client payment failure",
		slog.String("order_id", after.ID), slog.String("code", pf.Code))
	return after, nil
}

func failureText(code, description string) string {
	switch {
	case code != "" && description != "":
		return code + " (" + description + ")"
	case code != "":
		return code
	case description != "":
		return description
	}
	return "unknown error"
}
