package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SergeyBogomolovv/storefront-orders/internal/auth"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/payment"

	"github.com/google/uuid"
)

type WebhookVerifier interface {
	Verify(body []byte, signature string) error
}

type Notifier interface {
	NotifyOrderConfirmed(ctx context.Context, order entities.Order) error
}

type ReconcileOrders interface {
	Mutate(ctx context.Context, p auth.Principal, id string, fn MutateFunc) (entities.Order, entities.Order, error)
}

// Outcome describes what happened to an authenticated, well-formed event.
type Outcome string

const (
	OutcomeApplied      Outcome = "applied"
	OutcomeUnchanged    Outcome = "unchanged"
	OutcomeIgnored      Outcome = "ignored"
	OutcomeUncorrelated Outcome = "uncorrelated"
)

type reconciler struct {
	logger   *slog.Logger
	verifier WebhookVerifier
	orders   ReconcileOrders
	notifier Notifier
}

func NewReconciler(logger *slog.Logger, verifier WebhookVerifier, orders ReconcileOrders, notifier Notifier) *reconciler {
	return &reconciler{
		logger:   logger.With(slog.String("service", "reconciler")),
		verifier: verifier,
		orders:   orders,
		notifier: notifier,
	}
}

// HandleEvent authenticates a raw webhook body and applies it to the order it
// refers to. Signature failures return payment.ErrInvalidSignature before the
// body is parsed; events that cannot be tied to an order are dropped without
// an error so the provider does not redeliver them.
func (r *reconciler) HandleEvent(ctx context.Context, body []byte, signature string) (Outcome, error) {
	if err := r.verifier.Verify(body, signature); err != nil {
		return "", err
	}

	ev, err := payment.ParseEvent(body)
	if err != nil {
		return "", err
	}
	log := r.logger.With(slog.String("event", ev.Event))

	switch ev.Event {
	case payment.EventPaymentAuthorized, payment.EventPaymentCaptured, payment.EventPaymentFailed:
	default:
		log.InfoContext(ctx, "ignoring unsupported webhook event")
		return OutcomeIgnored, nil
	}

	entity := ev.Payment()
	orderID := entity.Notes[payment.NoteOrderID]
	if err := uuid.Validate(orderID); err != nil {
		log.WarnContext(ctx, "webhook event has no order reference, dropping",
			slog.String("payment_id", entity.ID), slog.String("intent_id", entity.OrderID))
		return OutcomeUncorrelated, nil
	}
	log = log.With(slog.String("order_id", orderID), slog.String("payment_id", entity.ID))

	before, after, err := r.orders.Mutate(ctx, auth.System(), orderID, func(current entities.Order) (entities.OrderUpdate, error) {
		return Transition(current, ev)
	})
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		log.WarnContext(ctx, "webhook event refers to unknown order, dropping")
		return OutcomeUncorrelated, nil
	case errors.Is(err, entities.ErrIntentMismatch):
		log.WarnContext(ctx, "webhook event intent does not match order, dropping",
			slog.String("intent_id", entity.OrderID))
		return OutcomeUncorrelated, nil
	case err != nil:
		log.ErrorContext(ctx, "failed to apply webhook event", slog.Any("error", err))
		return "", err
	}

	if ev.Event == payment.EventPaymentCaptured {
		settled := payment.MinorToMajor(entity.Amount)
		if !settled.Equal(after.TotalAmount) {
			log.WarnContext(ctx, "captured amount differs from order total",
				slog.String("captured", settled.String()), slog.String("total", after.TotalAmount.String()))
		}
	}

	// Подтверждение отправляем только при первом переходе в paid
	if !before.IsPaid && after.IsPaid {
		if err := r.notifier.NotifyOrderConfirmed(ctx, after); err != nil {
			log.ErrorContext(ctx, "failed to dispatch order confirmation", slog.Any("error", err))
		}
	}

	if changed(before, after) {
		log.InfoContext(ctx, "webhook event applied",
			slog.String("status", string(after.Status)), slog.Bool("is_paid", after.IsPaid))
		return OutcomeApplied, nil
	}
	log.DebugContext(ctx, "webhook event changed nothing")
	return OutcomeUnchanged, nil
}

// Transition computes the absolute state an event implies for an order.
// Every update sets values rather than incrementing them, so replaying an
// event yields the same order.
func Transition(o entities.Order, ev payment.Event) (entities.OrderUpdate, error) {
	entity := ev.Payment()
	if o.Payment.IntentID != "" && entity.OrderID != "" && o.Payment.IntentID != entity.OrderID {
		return entities.OrderUpdate{}, entities.ErrIntentMismatch
	}

	details := o.Payment
	if details.IntentID == "" {
		details.IntentID = entity.OrderID
	}
	if entity.ID != "" {
		details.PaymentID = entity.ID
	}

	switch ev.Event {
	case payment.EventPaymentAuthorized:
		if o.IsPaid || o.Status == entities.StatusCancelled {
			return entities.OrderUpdate{}, nil
		}
		details.State = entities.PaymentStateAuthorized
		details.Amount = payment.MinorToMajor(entity.Amount)
		details.Currency = entity.Currency
		details.Method = entity.Method

		upd := entities.OrderUpdate{Payment: &details}
		if !o.Status.Fulfilled() {
			upd.Status = statusPtr(entities.StatusProcessing)
		}
		return upd, nil

	case payment.EventPaymentCaptured:
		details.State = entities.PaymentStateCaptured
		details.Amount = payment.MinorToMajor(entity.Amount)
		details.Currency = entity.Currency
		details.Method = entity.Method
		details.Fee = payment.MinorToMajor(entity.Fee)
		details.Tax = payment.MinorToMajor(entity.Tax)
		details.ErrorCode = ""
		details.ErrorDescription = ""

		paid := true
		upd := entities.OrderUpdate{IsPaid: &paid, Payment: &details}
		if !o.Status.Fulfilled() {
			upd.Status = statusPtr(entities.StatusProcessing)
		}
		if o.Status == entities.StatusCancelled {
			upd.AppendNotes = []string{"payment captured after the order was cancelled, review required"}
		}
		return upd, nil

	case payment.EventPaymentFailed:
		if o.IsPaid || o.Status.Fulfilled() {
			return entities.OrderUpdate{}, nil
		}
		details.State = entities.PaymentStateFailed
		details.ErrorCode = entity.ErrorCode
		details.ErrorDescription = entity.ErrorDescription

		upd := entities.OrderUpdate{Status: statusPtr(entities.StatusCancelled), Payment: &details}
		if o.Status != entities.StatusCancelled || o.Payment.State != entities.PaymentStateFailed {
			upd.AppendNotes = []string{"payment failed: " + failureText(entity.ErrorCode, entity.ErrorDescription)}
		}
		return upd, nil
	}

	return entities.OrderUpdate{}, nil
}

func statusPtr(s entities.Status) *entities.Status {
	return &s
}

func changed(before, after entities.Order) bool {
	return before.Status != after.Status ||
		before.IsPaid != after.IsPaid ||
		!before.Payment.Equal(after.Payment) ||
		len(before.Notes) != len(after.Notes)
}
