package service_test

import (
	"context"
	"errors"
	"sync"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/trm"
)

type heldLocksKey struct{}

// rowLockTx runs callbacks like a transaction: row locks taken inside Do are
// held until the callback returns, as SELECT ... FOR UPDATE holds them until commit.
type rowLockTx struct{}

func (rowLockTx) BeginTx(context.Context) (context.Context, trm.Transaction, error) {
	return nil, nil, errors.New("rowLockTx: BeginTx is not supported")
}

func (rowLockTx) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	var held []func()
	err := callback(context.WithValue(ctx, heldLocksKey{}, &held))
	for _, unlock := range held {
		unlock()
	}
	return err
}

// lockingStore is a memStore whose GetOrderForUpdate takes a per-row lock.
// The first caller holds its lock until all expected callers have arrived,
// so concurrent updates of one row really do contend.
type lockingStore struct {
	*memStore

	mu       sync.Mutex
	rows     map[string]*sync.Mutex
	arrivals sync.WaitGroup
}

func newLockingStore(callers int) *lockingStore {
	s := &lockingStore{memStore: newMemStore(), rows: make(map[string]*sync.Mutex)}
	s.arrivals.Add(callers)
	return s
}

func (s *lockingStore) row(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		s.rows[id] = &sync.Mutex{}
	}
	return s.rows[id]
}

func (s *lockingStore) GetOrderForUpdate(ctx context.Context, id string) (entities.Order, error) {
	held, ok := ctx.Value(heldLocksKey{}).(*[]func())
	if !ok {
		return entities.Order{}, errors.New("row lock requested outside a transaction")
	}

	s.arrivals.Done()
	row := s.row(id)
	row.Lock()
	*held = append(*held, row.Unlock)
	s.arrivals.Wait()

	return s.memStore.GetOrderByID(ctx, id)
}
