package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-orders/internal/auth"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/service"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CheckoutService interface {
	Quote(items []entities.Item) service.Quote
	PlaceCODOrder(ctx context.Context, p auth.Principal, req service.CheckoutRequest) (entities.Order, error)
	StartGatewayCheckout(ctx context.Context, p auth.Principal, req service.CheckoutRequest) (service.GatewayCheckout, error)
	ResumeGatewayCheckout(ctx context.Context, p auth.Principal, orderID string) (service.GatewayCheckout, error)
	ConfirmClientPayment(ctx context.Context, orderID string, ps service.PaymentSuccess) (service.PaymentAck, error)
	FailClientPayment(ctx context.Context, orderID string, pf service.PaymentFailure) (entities.Order, error)
}

type CheckoutHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CheckoutService
}

func NewCheckoutHandler(logger *slog.Logger, svc CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		logger:   logger.With(slog.String("handler", "checkout")),
		validate: newValidator(),
		svc:      svc,
	}
}

func (h *CheckoutHandler) Init(r chi.Router) {
	r.Route("/checkout", func(r chi.Router) {
		r.Post("/quote", h.Quote)
		r.Post("/cod", h.PlaceCODOrder)
		r.Post("/gateway", h.StartGatewayCheckout)
		r.Post("/gateway/{id}/resume", h.ResumeGatewayCheckout)
		r.Post("/{id}/payment-success", h.PaymentSuccess)
		r.Post("/{id}/payment-failure", h.PaymentFailure)
	})
	r.Post("/payments/intents", h.CreateIntent)
}

const (
	paymentReceivedMessage   = "Payment received, your order is being processed"
	paymentUnverifiedMessage = "Payment could not be verified yet, the order will update once the provider confirms it"
)

func customerID(p auth.Principal) string {
	if p.Role == auth.RoleCustomer {
		return p.CustomerID
	}
	return ""
}

// Quote считает стоимость корзины с доставкой.
// @Summary      Рассчитать стоимость
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        cart  body      QuoteRequest  true  "Корзина"
// @Success      200   {object}  QuoteResponse
// @Failure      400   {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Router       /checkout/quote [post]
func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	q := h.svc.Quote(itemsToEntity(req.Items))
	utils.WriteJSON(w, QuoteResponse{Subtotal: q.Subtotal, Shipping: q.Shipping, Total: q.Total}, http.StatusOK)
}

func (h *CheckoutHandler) decodeCheckout(w http.ResponseWriter, r *http.Request) (service.CheckoutRequest, bool) {
	var req CheckoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return service.CheckoutRequest{}, false
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return service.CheckoutRequest{}, false
	}
	return CheckoutJSONToRequest(req, customerID(auth.FromContext(r.Context()))), true
}

// PlaceCODOrder оформляет заказ с оплатой при получении.
// @Summary      Оформить заказ с оплатой при получении
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        checkout  body      CheckoutRequest  true  "Корзина и доставка"
// @Success      201       {object}  Order
// @Failure      400       {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500       {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /checkout/cod [post]
func (h *CheckoutHandler) PlaceCODOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := h.decodeCheckout(w, r)
	if !ok {
		return
	}

	order, err := h.svc.PlaceCODOrder(ctx, auth.FromContext(ctx), req)
	if err != nil {
		checkoutsTotal.WithLabelValues(string(entities.PaymentCOD), "failed").Inc()
		writeServiceError(ctx, h.logger, w, err, "failed to place cod order")
		return
	}
	checkoutsTotal.WithLabelValues(string(entities.PaymentCOD), "created").Inc()

	utils.WriteJSON(w, OrderEntityToJSON(order, false), http.StatusCreated)
}

// StartGatewayCheckout создаёт заказ и платёжное намерение.
// @Summary      Начать онлайн-оплату
// @Description  Создаёт заказ в статусе pending, затем платёжное намерение с номером заказа в notes.
// @Description  Платёжную форму можно открывать только после успешного ответа.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        checkout  body      CheckoutRequest  true  "Корзина и доставка"
// @Success      201       {object}  GatewayCheckoutResponse
// @Failure      400       {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      502       {object}  CheckoutFailedResponse "Заказ создан, платёжный провайдер недоступен"
// @Failure      500       {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /checkout/gateway [post]
func (h *CheckoutHandler) StartGatewayCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := h.decodeCheckout(w, r)
	if !ok {
		return
	}

	checkout, err := h.svc.StartGatewayCheckout(ctx, auth.FromContext(ctx), req)
	h.writeGatewayCheckout(ctx, w, checkout, err, http.StatusCreated)
}

// ResumeGatewayCheckout повторно открывает оплату заказа.
// @Summary      Продолжить онлайн-оплату
// @Tags         checkout
// @Produce      json
// @Param        id   path      string  true  "ID заказа"
// @Success      200  {object}  GatewayCheckoutResponse
// @Failure      401  {object}  utils.ErrorResponse "Требуется авторизация"
// @Failure      403  {object}  utils.ErrorResponse "Заказ другого покупателя"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ не ожидает оплаты"
// @Failure      502  {object}  CheckoutFailedResponse "Платёжный провайдер недоступен"
// @Router       /checkout/gateway/{id}/resume [post]
func (h *CheckoutHandler) ResumeGatewayCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	checkout, err := h.svc.ResumeGatewayCheckout(ctx, auth.FromContext(ctx), id)
	h.writeGatewayCheckout(ctx, w, checkout, err, http.StatusOK)
}

// CreateIntent создаёт (или переиспользует) платёжное намерение для заказа.
// @Summary      Платёжное намерение для заказа
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        intent  body      CreateIntentRequest  true  "Заказ"
// @Success      200     {object}  GatewayCheckoutResponse
// @Failure      400     {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401     {object}  utils.ErrorResponse "Требуется авторизация"
// @Failure      403     {object}  utils.ErrorResponse "Заказ другого покупателя"
// @Failure      404     {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      502     {object}  CheckoutFailedResponse "Платёжный провайдер недоступен"
// @Router       /payments/intents [post]
func (h *CheckoutHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateIntentRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	checkout, err := h.svc.ResumeGatewayCheckout(ctx, auth.FromContext(ctx), req.OrderID)
	h.writeGatewayCheckout(ctx, w, checkout, err, http.StatusOK)
}

func (h *CheckoutHandler) writeGatewayCheckout(ctx context.Context, w http.ResponseWriter, checkout service.GatewayCheckout, err error, code int) {
	method := string(entities.PaymentGateway)
	switch {
	case errors.Is(err, service.ErrPaymentProvider) && checkout.Order.ID != "":
		checkoutsTotal.WithLabelValues(method, "provider_failed").Inc()
		utils.WriteJSON(w, CheckoutFailedResponse{
			Message:     "payment provider unavailable, retry payment for this order",
			OrderID:     checkout.Order.ID,
			OrderNumber: checkout.Order.OrderNumber,
		}, http.StatusBadGateway)
		return
	case err != nil:
		checkoutsTotal.WithLabelValues(method, "failed").Inc()
		writeServiceError(ctx, h.logger, w, err, "failed to start gateway checkout")
		return
	}

	checkoutsTotal.WithLabelValues(method, "intent_created").Inc()
	utils.WriteJSON(w, GatewayCheckoutToJSON(checkout), code)
}

// PaymentSuccess принимает колбэк платёжной формы об успехе.
// @Summary      Колбэк успешной оплаты
// @Description  Не меняет заказ: окончательный статус устанавливает вебхук провайдера.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "ID заказа"
// @Param        payment  body      PaymentSuccessRequest  true  "Данные платёжной формы"
// @Success      202      {object}  PaymentAckResponse
// @Failure      400      {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404      {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409      {object}  utils.ErrorResponse "Платёж не относится к заказу"
// @Router       /checkout/{id}/payment-success [post]
func (h *CheckoutHandler) PaymentSuccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req PaymentSuccessRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	ack, err := h.svc.ConfirmClientPayment(ctx, id, service.PaymentSuccess{
		IntentID:  req.IntentID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to acknowledge payment")
		return
	}
	clientPaymentCallbacks.WithLabelValues("success").Inc()

	message := paymentReceivedMessage
	if !ack.Verified {
		message = paymentUnverifiedMessage
	}
	utils.WriteJSON(w, PaymentAckResponse{
		OrderID:     ack.OrderID,
		OrderNumber: ack.OrderNumber,
		Status:      string(ack.Status),
		IsPaid:      ack.IsPaid,
		Verified:    ack.Verified,
		Message:     message,
	}, http.StatusAccepted)
}

// PaymentFailure принимает колбэк платёжной формы об ошибке.
// @Summary      Колбэк неуспешной оплаты
// @Description  Сразу отменяет заказ; вебхук провайдера подтвердит или исправит статус.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "ID заказа"
// @Param        failure  body      PaymentFailureRequest  true  "Причина"
// @Success      200      {object}  Order
// @Failure      400      {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404      {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409      {object}  utils.ErrorResponse "Платёж не относится к заказу"
// @Router       /checkout/{id}/payment-failure [post]
func (h *CheckoutHandler) PaymentFailure(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req PaymentFailureRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.FailClientPayment(ctx, id, service.PaymentFailure{
		IntentID:    req.IntentID,
		PaymentID:   req.PaymentID,
		Code:        req.Code,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to record payment failure")
		return
	}
	clientPaymentCallbacks.WithLabelValues("failure").Inc()

	utils.WriteJSON(w, OrderEntityToJSON(order, false), http.StatusOK)
}
