package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
)

type NumberSource interface {
	// LatestOrderNumber returns the highest numeric order number or
	// entities.ErrOrderNotFound when there are no orders yet.
	LatestOrderNumber(ctx context.Context) (string, error)
}

// NumberAllocator hands out human-facing order numbers: the highest existing
// number plus one, starting at floor. It never fails: when the latest number
// cannot be read it falls back to prefix + nanosecond timestamp.
//
// Two concurrent calls may return the same number. The unique index on
// order_number turns that into entities.ErrOrderNumberTaken on insert.
type NumberAllocator struct {
	logger *slog.Logger
	src    NumberSource
	floor  int64
	prefix string
	now    func() time.Time
}

func NewNumberAllocator(logger *slog.Logger, src NumberSource, floor int64, prefix string) *NumberAllocator {
	return &NumberAllocator{
		logger: logger.With(slog.String("service", "order_number")),
		src:    src,
		floor:  floor,
		prefix: prefix,
		now:    time.Now,
	}
}

func (a *NumberAllocator) Next(ctx context.Context) string {
	latest, err := a.src.LatestOrderNumber(ctx)
	if errors.Is(err, entities.ErrOrderNotFound) {
		return strconv.FormatInt(a.floor, 10)
	}
	if err != nil {
		a.logger.WarnContext(ctx, "failed to read latest order number, using fallback", slog.Any("error", err))
		return a.fallback()
	}

	n, err := strconv.ParseInt(latest, 10, 64)
	if err != nil || n == math.MaxInt64 {
		a.logger.WarnContext(ctx, "unusable latest order number, using fallback", slog.String("latest", latest))
		return a.fallback()
	}

	return strconv.FormatInt(max(n+1, a.floor), 10)
}

func (a *NumberAllocator) fallback() string {
	return a.prefix + strconv.FormatInt(a.now().UnixNano(), 10)
}
