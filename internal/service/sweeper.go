package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/auth"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
)

type StaleFinder interface {
	StalePendingOrders(ctx context.Context, method entities.PaymentMethod, before time.Time, limit int) ([]string, error)
}

type SweeperConfig struct {
	Interval   time.Duration
	PendingTTL time.Duration
	BatchSize  int
}

// Sweeper cancels gateway orders that stayed pending and unpaid past
// PendingTTL, i.e. checkouts whose payment was abandoned.
type Sweeper struct {
	logger *slog.Logger
	finder StaleFinder
	orders ReconcileOrders
	cfg    SweeperConfig
	now    func() time.Time
}

func NewSweeper(logger *slog.Logger, finder StaleFinder, orders ReconcileOrders, cfg SweeperConfig) *Sweeper {
	return &Sweeper{
		logger: logger.With(slog.String("service", "sweeper")),
		finder: finder,
		orders: orders,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Start runs Sweep every Interval until ctx is done. A zero interval or
// pending TTL disables sweeping.
func (s *Sweeper) Start(ctx context.Context) error {
	if s.cfg.Interval <= 0 || s.cfg.PendingTTL <= 0 {
		s.logger.Info("pending order sweeper disabled",
			slog.Duration("interval", s.cfg.Interval), slog.Duration("pending_ttl", s.cfg.PendingTTL))
		return nil
	}

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil && !errors.Is(err, context.Canceled) {
				s.logger.Error("failed to sweep pending orders", slog.Any("error", err))
			}
		}
	}
}

// Sweep cancels one batch of stale pending orders and returns how many were
// cancelled. Orders paid or moved on since they were found are left alone.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	if s.cfg.PendingTTL <= 0 {
		return 0, nil
	}
	cutoff := s.now().Add(-s.cfg.PendingTTL)
	ids, err := s.finder.StalePendingOrders(ctx, entities.PaymentGateway, cutoff, s.cfg.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to find stale orders: %w", err)
	}

	cancelled := 0
	for _, id := range ids {
		before, after, err := s.orders.Mutate(ctx, auth.System(), id, func(current entities.Order) (entities.OrderUpdate, error) {
			if current.IsPaid || current.Status != entities.StatusPending || current.CreatedAt.After(cutoff) {
				return entities.OrderUpdate{}, nil
			}
			return entities.OrderUpdate{
				Status:      statusPtr(entities.StatusCancelled),
				AppendNotes: []string{"cancelled automatically: payment not completed within " + s.cfg.PendingTTL.String()},
			}, nil
		})
		if err != nil {
			if errors.Is(err, entities.ErrOrderNotFound) {
				continue
			}
			return cancelled, fmt.Errorf("failed to cancel order %s: %w", id, err)
		}
		if before.Status != after.Status {
			cancelled++
		}
	}

	if cancelled > 0 {
		s.logger.Info("stale pending orders cancelled", slog.Int("count", cancelled))
	}
	return cancelled, nil
}
