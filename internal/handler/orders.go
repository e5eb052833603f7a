package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-orders/internal/auth"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, p auth.Principal, draft entities.Order) (entities.Order, error)
	GetOrder(ctx context.Context, p auth.Principal, id string) (entities.Order, error)
	UpdateOrder(ctx context.Context, p auth.Principal, id string, upd entities.OrderUpdate) (entities.Order, error)
	DeleteOrder(ctx context.Context, p auth.Principal, id string) error
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewOrderHandler(logger *slog.Logger, svc OrderService) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: newValidator(),
		svc:      svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/{id}", h.GetOrder)
		r.Patch("/{id}", h.UpdateOrder)
		r.Delete("/{id}", h.DeleteOrder)
	})
}

// CreateOrder создаёт заказ.
// @Summary      Создать заказ
// @Description  Создаёт заказ в статусе pending и присваивает ему номер. Доступно без авторизации.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      CreateOrderRequest  true  "Заказ"
// @Success      201    {object}  Order
// @Failure      400    {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401    {object}  utils.ErrorResponse "Требуется авторизация"
// @Failure      500    {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p := auth.FromContext(ctx)

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, p, CreateOrderJSONToEntity(req))
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to create order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order, p.Privileged()), http.StatusCreated)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Description  Доступно владельцу заказа и администратору
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Требуется авторизация"
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p := auth.FromContext(ctx)
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrder(ctx, p, id)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order, p.Privileged()), http.StatusOK)
}

// UpdateOrder частично обновляет заказ.
// @Summary      Обновить заказ
// @Description  Только для администратора
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string              true  "ID заказа"
// @Param        update  body      UpdateOrderRequest  true  "Изменения"
// @Success      200     {object}  Order
// @Failure      400     {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401     {object}  utils.ErrorResponse "Требуется авторизация"
// @Failure      403     {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404     {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409     {object}  utils.ErrorResponse "Недопустимый переход"
// @Router       /orders/{id} [patch]
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req UpdateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.UpdateOrder(ctx, auth.FromContext(ctx), id, UpdateOrderJSONToEntity(req))
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to update order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order, true), http.StatusOK)
}

// DeleteOrder удаляет заказ.
// @Summary      Удалить заказ
// @Description  Только для администратора
// @Tags         orders
// @Security     BearerAuth
// @Param        id   path  string  true  "ID заказа"
// @Success      204
// @Failure      401  {object}  utils.ErrorResponse "Требуется авторизация"
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.DeleteOrder(ctx, auth.FromContext(ctx), id); err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to delete order")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
