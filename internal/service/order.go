package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/auth"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/trm"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"

	"github.com/google/uuid"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	// Блокирует строку до конца транзакции
	GetOrderForUpdate(ctx context.Context, id string) (entities.Order, error)
	UpdateOrder(ctx context.Context, id string, upd entities.OrderUpdate) error
	DeleteOrder(ctx context.Context, id string) error
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type Allocator interface {
	Next(ctx context.Context) string
}

// MutateFunc computes an update from the current, row-locked order.
// An empty update leaves the order untouched.
type MutateFunc func(current entities.Order) (entities.OrderUpdate, error)

type orderService struct {
	logger         *slog.Logger
	txManager      trm.Manager
	repo           OrderRepo
	cache          Cache
	numbers        Allocator
	createAttempts int
	now            func() time.Time

	// cacheMu guards cacheGen. A read only fills the cache if no write
	// invalidated any order while it was reading the repo.
	cacheMu  sync.Mutex
	cacheGen uint64
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cache Cache, numbers Allocator, createAttempts int) *orderService {
	return &orderService{
		logger:         logger.With(slog.String("service", "order")),
		txManager:      txManager,
		repo:           repo,
		cache:          cache,
		numbers:        numbers,
		createAttempts: max(createAttempts, 1),
		now:            time.Now,
	}
}

var readRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

// CreateOrder persists a new order in status pending with paid=false and a
// freshly allocated order number. It is open to anonymous callers.
func (s *orderService) CreateOrder(ctx context.Context, p auth.Principal, draft entities.Order) (entities.Order, error) {
	order, err := s.prepare(p, draft)
	if err != nil {
		return entities.Order{}, err
	}
	if err := order.Validate(); err != nil {
		return entities.Order{}, err
	}

	for attempt := 1; ; attempt++ {
		order.OrderNumber = s.numbers.Next(ctx)

		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			return s.repo.CreateOrder(ctx, order)
		})
		if err == nil {
			break
		}
		if errors.Is(err, entities.ErrOrderNumberTaken) && attempt < s.createAttempts {
			s.logger.WarnContext(ctx, "order number collision, reallocating",
				slog.String("order_number", order.OrderNumber), slog.Int("attempt", attempt))
			continue
		}
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	// shipping may only add to the total
	if order.TotalAmount.LessThan(order.Subtotal()) {
		s.logger.WarnContext(ctx, "order total is below item subtotal",
			slog.String("order_id", order.ID),
			slog.String("total", order.TotalAmount.String()),
			slog.String("subtotal", order.Subtotal().String()))
	}

	s.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID),
		slog.String("order_number", order.OrderNumber),
		slog.String("payment_method", string(order.PaymentMethod)))
	return order, nil
}

func (s *orderService) prepare(p auth.Principal, draft entities.Order) (entities.Order, error) {
	switch {
	case p.Privileged():
	case p.Role == auth.RoleCustomer:
		if draft.CustomerID == "" && draft.Guest == nil {
			draft.CustomerID = p.CustomerID
		}
		if draft.CustomerID != "" && draft.CustomerID != p.CustomerID {
			return entities.Order{}, auth.ErrForbidden
		}
	default:
		if draft.CustomerID != "" {
			return entities.Order{}, auth.ErrUnauthenticated
		}
	}

	now := s.now().UTC()
	order := draft
	order.ID = uuid.NewString()
	order.Status = entities.StatusPending
	order.IsPaid = false
	order.Payment = entities.PaymentDetails{}
	order.CreatedAt = now
	order.UpdatedAt = now
	if !p.Privileged() {
		order.Notes = nil
	}
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, p auth.Principal, id string) (entities.Order, error) {
	if p.Role == auth.RoleAnonymous || p.Role == "" {
		return entities.Order{}, auth.ErrUnauthenticated
	}

	order, err := s.getOrder(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if err := p.CanRead(order.CustomerID); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *orderService) getOrder(ctx context.Context, id string) (entities.Order, error) {
	if data, ok := s.cache.Get(id); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.String("order_id", id), slog.Any("error", err))
			s.cache.Delete(id)
		} else {
			return order, nil
		}
	}

	gen := s.cacheGeneration()

	var order entities.Order
	fn := func(ctx context.Context) error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, id)
		return err
	}
	if err := utils.Retry(ctx, readRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", id), slog.Any("error", err))
		return order, nil
	}
	s.fillCache(id, data, gen)
	return order, nil
}

func (s *orderService) cacheGeneration() uint64 {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	return s.cacheGen
}

// fillCache stores a freshly read order unless a write happened after gen
// was taken: the read may predate that write.
func (s *orderService) fillCache(id string, data []byte, gen uint64) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	if s.cacheGen != gen {
		return
	}
	s.cache.Set(id, data)
}

func (s *orderService) invalidate(id string) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	s.cacheGen++
	s.cache.Delete(id)
}

// UpdateOrder applies an administrative partial update.
func (s *orderService) UpdateOrder(ctx context.Context, p auth.Principal, id string, upd entities.OrderUpdate) (entities.Order, error) {
	if upd.Status != nil && !upd.Status.Valid() {
		return entities.Order{}, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidOrder, *upd.Status)
	}

	_, after, err := s.Mutate(ctx, p, id, func(current entities.Order) (entities.OrderUpdate, error) {
		if upd.IsPaid != nil && current.IsPaid && !*upd.IsPaid {
			return entities.OrderUpdate{}, fmt.Errorf("%w: paid flag cannot be cleared", entities.ErrInvalidTransition)
		}
		return upd, nil
	})
	return after, err
}

// Mutate runs a read-modify-write of one order inside a transaction holding
// the row lock. Only privileged principals may mutate orders.
func (s *orderService) Mutate(ctx context.Context, p auth.Principal, id string, fn MutateFunc) (before, after entities.Order, err error) {
	if err := p.CanModify(); err != nil {
		return entities.Order{}, entities.Order{}, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetOrderForUpdate(ctx, id)
		if err != nil {
			return err
		}
		before = current

		upd, err := fn(current)
		if err != nil {
			return err
		}
		if upd.Empty() {
			after = current
			return nil
		}

		if err := s.repo.UpdateOrder(ctx, id, upd); err != nil {
			return err
		}
		after = upd.Apply(current)
		after.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		return entities.Order{}, entities.Order{}, err
	}

	s.invalidate(id)
	return before, after, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, p auth.Principal, id string) error {
	if err := p.CanModify(); err != nil {
		return err
	}
	if err := s.repo.DeleteOrder(ctx, id); err != nil {
		return err
	}
	s.invalidate(id)
	s.logger.InfoContext(ctx, "order deleted", slog.String("order_id", id))
	return nil
}

func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	gen := s.cacheGeneration()
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}

	for _, order := range orders {
		data, err := order.Marshal()
		if err != nil {
			s.logger.Error("failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
			continue
		}
		s.fillCache(order.ID, data, gen)
	}

	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}
