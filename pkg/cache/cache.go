package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultJanitorInterval = 2 * time.Minute

var (
	lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront_orders",
		Subsystem: "order_cache",
		Name:      "lookups_total",
		Help:      "Cache lookups by result (hit, miss, expired).",
	}, []string{"result"})

	evictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront_orders",
		Subsystem: "order_cache",
		Name:      "evictions_total",
		Help:      "Entries removed by reason (capacity, expired, invalidated).",
	}, []string{"reason"})
)

type entry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

// LRUCache holds serialized orders for the read path. Entries expire after
// ttl and are dropped explicitly whenever the order is mutated, so a hit is
// never older than the last committed write.
type LRUCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	order    *list.List // front = most recently used
	items    map[string]*list.Element

	janitorInterval time.Duration
	now             func() time.Time
}

type Option func(*LRUCache)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *LRUCache) { c.now = now }
}

func WithJanitorInterval(d time.Duration) Option {
	return func(c *LRUCache) { c.janitorInterval = d }
}

func NewLRUCache(capacity int, ttl time.Duration, opts ...Option) *LRUCache {
	c := &LRUCache{
		capacity:        capacity,
		ttl:             ttl,
		order:           list.New(),
		items:           make(map[string]*list.Element, capacity),
		janitorInterval: defaultJanitorInterval,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		lookupsTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	e := el.Value.(*entry)
	if !c.now().Before(e.expiresAt) {
		c.remove(el, "expired")
		lookupsTotal.WithLabelValues("expired").Inc()
		return nil, false
	}

	c.order.MoveToFront(el)
	lookupsTotal.WithLabelValues("hit").Inc()
	return e.value, true
}

// Set stores value and restarts its ttl.
func (c *LRUCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		e := el.Value.(*entry)
		e.value, e.expiresAt = value, expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&entry{key: key, value: value, expiresAt: expiresAt})
	for c.order.Len() > c.capacity {
		c.remove(c.order.Back(), "capacity")
	}
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.remove(el, "invalidated")
	}
}

func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *LRUCache) remove(el *list.Element, reason string) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*entry).key)
	evictionsTotal.WithLabelValues(reason).Inc()
}

// Start runs the janitor until ctx is done.
func (c *LRUCache) Start(ctx context.Context) error {
	ticker := time.NewTicker(c.janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.purgeExpired()
		}
	}
}

// purgeExpired drops expired entries and returns how many were removed.
func (c *LRUCache) purgeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if !now.Before(el.Value.(*entry).expiresAt) {
			c.remove(el, "expired")
			removed++
		}
		el = prev
	}
	return removed
}
