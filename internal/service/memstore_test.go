package service_test

import (
	"context"
	"slices"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
)

// memStore is an in-memory order store with the same unique-number and
// not-found semantics as the postgres repo.
type memStore struct {
	mu     sync.Mutex
	orders map[string]entities.Order
	writes int
}

func newMemStore() *memStore {
	return &memStore{orders: make(map[string]entities.Order)}
}

func cloneOrder(o entities.Order) entities.Order {
	o.Items = slices.Clone(o.Items)
	o.Notes = slices.Clone(o.Notes)
	if o.Guest != nil {
		g := *o.Guest
		o.Guest = &g
	}
	return o
}

func (m *memStore) CreateOrder(_ context.Context, o entities.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.orders {
		if existing.OrderNumber == o.OrderNumber {
			return entities.ErrOrderNumberTaken
		}
	}
	m.orders[o.ID] = cloneOrder(o)
	m.writes++
	return nil
}

func (m *memStore) GetOrderByID(_ context.Context, id string) (entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

func (m *memStore) GetOrderForUpdate(ctx context.Context, id string) (entities.Order, error) {
	return m.GetOrderByID(ctx, id)
}

func (m *memStore) UpdateOrder(_ context.Context, id string, upd entities.OrderUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return entities.ErrOrderNotFound
	}
	o = upd.Apply(o)
	o.UpdatedAt = time.Now().UTC()
	m.orders[id] = o
	m.writes++
	return nil
}

func (m *memStore) DeleteOrder(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[id]; !ok {
		return entities.ErrOrderNotFound
	}
	delete(m.orders, id)
	m.writes++
	return nil
}

func (m *memStore) LatestOrders(_ context.Context, count int) ([]entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entities.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, cloneOrder(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > count {
		out = out[:count]
	}
	return out, nil
}

func (m *memStore) LatestOrderNumber(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var best int64 = -1
	for _, o := range m.orders {
		n, err := strconv.ParseInt(o.OrderNumber, 10, 64)
		if err == nil && n > best {
			best = n
		}
	}
	if best < 0 {
		return "", entities.ErrOrderNotFound
	}
	return strconv.FormatInt(best, 10), nil
}

func (m *memStore) StalePendingOrders(_ context.Context, method entities.PaymentMethod, before time.Time, limit int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []string
	for id, o := range m.orders {
		if o.PaymentMethod == method && o.Status == entities.StatusPending && !o.IsPaid && o.CreatedAt.Before(before) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

// backdate moves an order's creation time into the past.
func (m *memStore) backdate(id string, by time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o := m.orders[id]
	o.CreatedAt = o.CreatedAt.Add(-by)
	m.orders[id] = o
}

func (m *memStore) snapshot() (map[string]entities.Order, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]entities.Order, len(m.orders))
	for id, o := range m.orders {
		out[id] = cloneOrder(o)
	}
	return out, m.writes
}
