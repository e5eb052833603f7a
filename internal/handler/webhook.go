package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/payment"
	"github.com/SergeyBogomolovv/storefront-orders/internal/service"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Reconciler interface {
	HandleEvent(ctx context.Context, body []byte, signature string) (service.Outcome, error)
}

type WebhookHandler struct {
	logger          *slog.Logger
	svc             Reconciler
	signatureHeader string
}

func NewWebhookHandler(logger *slog.Logger, svc Reconciler, signatureHeader string) *WebhookHandler {
	return &WebhookHandler{
		logger:          logger.With(slog.String("handler", "webhook")),
		svc:             svc,
		signatureHeader: signatureHeader,
	}
}

func (h *WebhookHandler) Init(r chi.Router) {
	r.Post("/webhooks/payment", h.HandlePayment)
}

// HandlePayment принимает вебхук платёжного провайдера.
// @Summary      Вебхук платёжного провайдера
// @Description  Проверяет подпись по сырому телу запроса и применяет событие к заказу.
// @Description  Событие без ссылки на заказ подтверждается и отбрасывается.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Razorpay-Signature  header    string  true  "HMAC-SHA256 тела запроса"
// @Success      200                   {object}  WebhookResponse
// @Failure      400                   {object}  utils.ErrorResponse "Неверная подпись или формат события"
// @Failure      500                   {object}  utils.ErrorResponse "Внутренняя ошибка, провайдер повторит доставку"
// @Router       /webhooks/payment [post]
func (h *WebhookHandler) HandlePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	defer func() {
		webhookProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := utils.ReadBody(r)
	if err != nil {
		webhookEventsTotal.WithLabelValues("unreadable").Inc()
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	outcome, err := h.svc.HandleEvent(ctx, body, r.Header.Get(h.signatureHeader))
	switch {
	case errors.Is(err, payment.ErrInvalidSignature):
		webhookEventsTotal.WithLabelValues("invalid_signature").Inc()
		h.logger.WarnContext(ctx, "rejected webhook with invalid signature", slog.String("remote", r.RemoteAddr))
		utils.WriteError(w, "invalid signature", http.StatusBadRequest)
		return
	case errors.Is(err, payment.ErrMalformedEvent):
		webhookEventsTotal.WithLabelValues("malformed").Inc()
		utils.WriteError(w, "malformed event", http.StatusBadRequest)
		return
	case err != nil:
		webhookEventsTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "failed to process webhook", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	webhookEventsTotal.WithLabelValues(string(outcome)).Inc()
	utils.WriteJSON(w, WebhookResponse{Status: "ok", Outcome: string(outcome)}, http.StatusOK)
}
