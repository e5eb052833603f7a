package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	codeUniqueViolation   = "23505"
	codeInvalidTextFormat = "22P02"

	orderNumberIndex = "orders_order_number_key"
)

var orderColumns = []string{
	"id", "order_number", "customer_id", "guest_name", "guest_email", "guest_phone",
	"total_amount", "payment_method", "is_paid", "status",
	"ship_street", "ship_city", "ship_state", "ship_zip_code", "ship_country",
	"payment", "notes", "created_at", "updated_at",
}

var itemColumns = []string{"order_id", "position", "product_id", "product_name", "quantity", "price"}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	var guestName, guestEmail, guestPhone sql.NullString
	if o.Guest != nil {
		guestName = nullString(o.Guest.Name)
		guestEmail = nullString(o.Guest.Email)
		guestPhone = nullString(o.Guest.Phone)
	}

	notes := o.Notes
	if notes == nil {
		notes = []string{}
	}

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.OrderNumber, nullString(o.CustomerID), guestName, guestEmail, guestPhone,
			o.TotalAmount, string(o.PaymentMethod), o.IsPaid, string(o.Status),
			o.ShippingAddress.Street, o.ShippingAddress.City, o.ShippingAddress.State,
			o.ShippingAddress.ZipCode, o.ShippingAddress.Country,
			PaymentFromEntity(o.Payment), pq.Array(notes), o.CreatedAt, o.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == codeUniqueViolation && pqErr.Constraint == orderNumberIndex {
			return entities.ErrOrderNumberTaken
		}
		return fmt.Errorf("failed to save order: %w", err)
	}

	return r.saveItems(ctx, o.ID, o.Items)
}

func (r *postgresRepo) saveItems(ctx context.Context, orderID string, items []entities.Item) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns(itemColumns...)
	for i, it := range items {
		q = q.Values(orderID, i, it.ProductID, it.ProductName, it.Quantity, it.Price)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	return r.getOrder(ctx, id, false)
}

// GetOrderForUpdate locks the order row until the surrounding transaction ends.
func (r *postgresRepo) GetOrderForUpdate(ctx context.Context, id string) (entities.Order, error) {
	return r.getOrder(ctx, id, true)
}

func (r *postgresRepo) getOrder(ctx context.Context, id string, lock bool) (entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id})
	if lock {
		q = q.Suffix("FOR UPDATE")
	}
	query, args := q.MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) || isCode(err, codeInvalidTextFormat) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": id}).
		OrderBy("position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

func (r *postgresRepo) UpdateOrder(ctx context.Context, id string, upd entities.OrderUpdate) error {
	q := r.qb.Update("orders").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	if upd.Status != nil {
		q = q.Set("status", string(*upd.Status))
	}
	if upd.IsPaid != nil {
		q = q.Set("is_paid", *upd.IsPaid)
	}
	if upd.Payment != nil {
		q = q.Set("payment", PaymentFromEntity(*upd.Payment))
	}
	if len(upd.AppendNotes) > 0 {
		q = q.Set("notes", sq.Expr("notes || ?", pq.Array(upd.AppendNotes)))
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if isCode(err, codeInvalidTextFormat) {
		return entities.ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteOrder(ctx context.Context, id string) error {
	query, args := r.qb.Delete("orders").Where(sq.Eq{"id": id}).MustSql()

	res, err := r.execContext(ctx, query, args...)
	if isCode(err, codeInvalidTextFormat) {
		return entities.ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

// LatestOrderNumber returns the highest numeric order number.
// Synthetic fallback numbers are skipped.
func (r *postgresRepo) LatestOrderNumber(ctx context.Context) (string, error) {
	query, args := r.qb.Select("order_number").
		From("orders").
		Where(sq.Expr("order_number ~ '^[0-9]+$'")).
		OrderBy("order_number::numeric DESC").
		Limit(1).
		MustSql()

	var number string
	err := r.getContext(ctx, &number, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", entities.ErrOrderNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get latest order number: %w", err)
	}
	return number, nil
}

func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	// Получаем товары одним запросом для всех заказов
	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	itemsMap := make(map[string][]Item, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.ID]))
	}
	return result, nil
}

// StalePendingOrders returns ids of unpaid pending orders with the given
// payment method created before the cutoff, oldest first.
func (r *postgresRepo) StalePendingOrders(ctx context.Context, method entities.PaymentMethod, before time.Time, limit int) ([]string, error) {
	query, args := r.qb.Select("id").
		From("orders").
		Where(sq.Eq{"status": string(entities.StatusPending), "is_paid": false, "payment_method": string(method)}).
		Where(sq.Lt{"created_at": before}).
		OrderBy("created_at").
		Limit(uint64(limit)).
		MustSql()

	var ids []string
	if err := r.selectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select stale orders: %w", err)
	}
	return ids, nil
}

func isCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return trm.Conn(ctx, r.db).ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	return trm.Conn(ctx, r.db).GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	return trm.Conn(ctx, r.db).SelectContext(ctx, dest, query, args...)
}
