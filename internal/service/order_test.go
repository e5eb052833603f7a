package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/auth"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/service"
	mocks "github.com/SergeyBogomolovv/storefront-orders/internal/service/mocks"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_CreateOrder(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, numbers *mocks.MockAllocator)

	dbError := errors.New("db error")

	customerDraft := guestDraft(entities.PaymentCOD)
	customerDraft.Guest = nil

	testCases := []struct {
		name         string
		principal    auth.Principal
		draft        entities.Order
		mockBehavior MockBehavior
		wantErr      error
		wantNumber   string
		wantCustomer string
	}{
		{
			name:      "guest checkout",
			principal: auth.Anonymous(),
			draft:     guestDraft(entities.PaymentCOD),
			mockBehavior: func(repo *mocks.MockOrderRepo, numbers *mocks.MockAllocator) {
				numbers.EXPECT().Next(mock.Anything).Return("10001").Once()
				repo.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
						return o.OrderNumber == "10001" && o.Status == entities.StatusPending && !o.IsPaid && o.ID != ""
					})).
					Return(nil).Once()
			},
			wantNumber: "10001",
		},
		{
			name:      "customer gets own id",
			principal: auth.Customer("c-1"),
			draft:     customerDraft,
			mockBehavior: func(repo *mocks.MockOrderRepo, numbers *mocks.MockAllocator) {
				numbers.EXPECT().Next(mock.Anything).Return("10002").Once()
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantNumber:   "10002",
			wantCustomer: "c-1",
		},
		{
			name:         "invalid order",
			principal:    auth.Anonymous(),
			draft:        entities.Order{PaymentMethod: entities.PaymentCOD},
			mockBehavior: func(_ *mocks.MockOrderRepo, _ *mocks.MockAllocator) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name:      "anonymous cannot claim an account",
			principal: auth.Anonymous(),
			draft: func() entities.Order {
				o := customerDraft
				o.CustomerID = "c-1"
				return o
			}(),
			mockBehavior: func(_ *mocks.MockOrderRepo, _ *mocks.MockAllocator) {},
			wantErr:      auth.ErrUnauthenticated,
		},
		{
			name:      "customer cannot order for another account",
			principal: auth.Customer("c-1"),
			draft: func() entities.Order {
				o := customerDraft
				o.CustomerID = "c-2"
				return o
			}(),
			mockBehavior: func(_ *mocks.MockOrderRepo, _ *mocks.MockAllocator) {},
			wantErr:      auth.ErrForbidden,
		},
		{
			name:      "number collision is retried",
			principal: auth.Anonymous(),
			draft:     guestDraft(entities.PaymentGateway),
			mockBehavior: func(repo *mocks.MockOrderRepo, numbers *mocks.MockAllocator) {
				numbers.EXPECT().Next(mock.Anything).Return("10005").Once()
				repo.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool { return o.OrderNumber == "10005" })).
					Return(entities.ErrOrderNumberTaken).Once()
				numbers.EXPECT().Next(mock.Anything).Return("10006").Once()
				repo.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool { return o.OrderNumber == "10006" })).
					Return(nil).Once()
			},
			wantNumber: "10006",
		},
		{
			name:      "collisions exhaust attempts",
			principal: auth.Anonymous(),
			draft:     guestDraft(entities.PaymentCOD),
			mockBehavior: func(repo *mocks.MockOrderRepo, numbers *mocks.MockAllocator) {
				numbers.EXPECT().Next(mock.Anything).Return("10005").Times(3)
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(entities.ErrOrderNumberTaken).Times(3)
			},
			wantErr: entities.ErrOrderNumberTaken,
		},
		{
			name:      "store failure",
			principal: auth.Anonymous(),
			draft:     guestDraft(entities.PaymentCOD),
			mockBehavior: func(repo *mocks.MockOrderRepo, numbers *mocks.MockAllocator) {
				numbers.EXPECT().Next(mock.Anything).Return("10001").Once()
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			numbers := mocks.NewMockAllocator(t)
			tc.mockBehavior(repo, numbers)

			svc := service.NewOrderService(discardLogger(), passthroughTx(t), repo, cache, numbers, 3)

			got, err := svc.CreateOrder(context.Background(), tc.principal, tc.draft)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantNumber, got.OrderNumber)
			assert.Equal(t, entities.StatusPending, got.Status)
			assert.False(t, got.IsPaid)
			assert.NotEmpty(t, got.ID)
			if tc.wantCustomer != "" {
				assert.Equal(t, tc.wantCustomer, got.CustomerID)
			}
		})
	}
}

func TestOrderService_CreateOrder_DropsCallerState(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	numbers := mocks.NewMockAllocator(t)
	numbers.EXPECT().Next(mock.Anything).Return("10001").Once()
	repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil).Once()

	svc := service.NewOrderService(discardLogger(), passthroughTx(t), repo, mocks.NewMockCache(t), numbers, 1)

	draft := guestDraft(entities.PaymentGateway)
	draft.ID = "chosen-by-caller"
	draft.IsPaid = true
	draft.Status = entities.StatusDelivered
	draft.Payment.IntentID = "order_forged"
	draft.Notes = []string{"vip"}

	got, err := svc.CreateOrder(context.Background(), auth.Anonymous(), draft)
	require.NoError(t, err)
	assert.NotEqual(t, "chosen-by-caller", got.ID)
	assert.False(t, got.IsPaid)
	assert.Equal(t, entities.StatusPending, got.Status)
	assert.Empty(t, got.Payment.IntentID)
	assert.Empty(t, got.Notes)
}

func TestOrderService_GetOrder(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, cache *mocks.MockCache)

	owned := guestDraft(entities.PaymentCOD)
	owned.ID = "7b0c2a58-8c4f-4a57-9a53-5b3f3c1b9d10"
	owned.OrderNumber = "10001"
	owned.Guest = nil
	owned.CustomerID = "c-1"
	ownedData, err := owned.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		principal    auth.Principal
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:         "anonymous",
			principal:    auth.Anonymous(),
			mockBehavior: func(_ *mocks.MockOrderRepo, _ *mocks.MockCache) {},
			wantErr:      auth.ErrUnauthenticated,
		},
		{
			name:      "owner from cache",
			principal: auth.Customer("c-1"),
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(owned.ID).Return(ownedData, true).Once()
			},
		},
		{
			name:      "admin from repo and set to cache",
			principal: auth.Admin(),
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(owned.ID).Return(nil, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, owned.ID).Return(owned, nil).Once()
				cache.EXPECT().Set(owned.ID, mock.Anything).Return().Once()
			},
		},
		{
			name:      "broken cache entry falls through to repo",
			principal: auth.Admin(),
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(owned.ID).Return([]byte("broken"), true).Once()
				cache.EXPECT().Delete(owned.ID).Return().Once()
				repo.EXPECT().GetOrderByID(mock.Anything, owned.ID).Return(owned, nil).Once()
				cache.EXPECT().Set(owned.ID, mock.Anything).Return().Once()
			},
		},
		{
			name:      "other customer",
			principal: auth.Customer("c-2"),
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(owned.ID).Return(ownedData, true).Once()
			},
			wantErr: auth.ErrForbidden,
		},
		{
			name:      "not found",
			principal: auth.Admin(),
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(owned.ID).Return(nil, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, owned.ID).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:      "second attempt from repo",
			principal: auth.Admin(),
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(owned.ID).Return(nil, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, owned.ID).Return(entities.Order{}, errors.New("some error")).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, owned.ID).Return(owned, nil).Once()
				cache.EXPECT().Set(owned.ID, mock.Anything).Return().Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			tc.mockBehavior(repo, cache)

			svc := service.NewOrderService(discardLogger(), passthroughTx(t), repo, cache, mocks.NewMockAllocator(t), 1)

			got, err := svc.GetOrder(context.Background(), tc.principal, owned.ID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, owned.ID, got.ID)
			assert.Equal(t, owned.OrderNumber, got.OrderNumber)
			assert.Equal(t, owned.CustomerID, got.CustomerID)
		})
	}
}

func TestOrderService_Mutate(t *testing.T) {
	const id = "7b0c2a58-8c4f-4a57-9a53-5b3f3c1b9d10"
	current := guestDraft(entities.PaymentGateway)
	current.ID = id
	current.Status = entities.StatusPending

	processing := entities.StatusProcessing

	t.Run("customer is forbidden", func(t *testing.T) {
		svc := service.NewOrderService(discardLogger(), passthroughTx(t), mocks.NewMockOrderRepo(t), mocks.NewMockCache(t), mocks.NewMockAllocator(t), 1)

		_, _, err := svc.Mutate(context.Background(), auth.Customer("c-1"), id, func(entities.Order) (entities.OrderUpdate, error) {
			t.Fatal("mutation must not run")
			return entities.OrderUpdate{}, nil
		})
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})

	t.Run("applies update under lock", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		cache := mocks.NewMockCache(t)
		repo.EXPECT().GetOrderForUpdate(mock.Anything, id).Return(current, nil).Once()
		repo.EXPECT().
			UpdateOrder(mock.Anything, id, mock.MatchedBy(func(u entities.OrderUpdate) bool {
				return u.Status != nil && *u.Status == entities.StatusProcessing
			})).
			Return(nil).Once()
		cache.EXPECT().Delete(id).Return().Once()

		svc := service.NewOrderService(discardLogger(), passthroughTx(t), repo, cache, mocks.NewMockAllocator(t), 1)

		before, after, err := svc.Mutate(context.Background(), auth.System(), id, func(o entities.Order) (entities.OrderUpdate, error) {
			return entities.OrderUpdate{Status: &processing}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, entities.StatusPending, before.Status)
		assert.Equal(t, entities.StatusProcessing, after.Status)
	})

	t.Run("empty update skips write", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		cache := mocks.NewMockCache(t)
		repo.EXPECT().GetOrderForUpdate(mock.Anything, id).Return(current, nil).Once()
		cache.EXPECT().Delete(id).Return().Once()

		svc := service.NewOrderService(discardLogger(), passthroughTx(t), repo, cache, mocks.NewMockAllocator(t), 1)

		before, after, err := svc.Mutate(context.Background(), auth.Admin(), id, func(o entities.Order) (entities.OrderUpdate, error) {
			return entities.OrderUpdate{}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, before.Status, after.Status)
	})

	t.Run("mutation error aborts", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		repo.EXPECT().GetOrderForUpdate(mock.Anything, id).Return(current, nil).Once()

		svc := service.NewOrderService(discardLogger(), passthroughTx(t), repo, mocks.NewMockCache(t), mocks.NewMockAllocator(t), 1)

		_, _, err := svc.Mutate(context.Background(), auth.System(), id, func(o entities.Order) (entities.OrderUpdate, error) {
			return entities.OrderUpdate{}, entities.ErrIntentMismatch
		})
		assert.ErrorIs(t, err, entities.ErrIntentMismatch)
	})

	t.Run("missing order", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		repo.EXPECT().GetOrderForUpdate(mock.Anything, id).Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		svc := service.NewOrderService(discardLogger(), passthroughTx(t), repo, mocks.NewMockCache(t), mocks.NewMockAllocator(t), 1)

		_, _, err := svc.Mutate(context.Background(), auth.System(), id, func(o entities.Order) (entities.OrderUpdate, error) {
			return entities.OrderUpdate{}, nil
		})
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderService_UpdateOrder(t *testing.T) {
	const id = "7b0c2a58-8c4f-4a57-9a53-5b3f3c1b9d10"
	paid := guestDraft(entities.PaymentGateway)
	paid.ID = id
	paid.IsPaid = true
	paid.Status = entities.StatusProcessing

	t.Run("unknown status", func(t *testing.T) {
		svc := service.NewOrderService(discardLogger(), passthroughTx(t), mocks.NewMockOrderRepo(t), mocks.NewMockCache(t), mocks.NewMockAllocator(t), 1)

		bogus := entities.Status("lost")
		_, err := svc.UpdateOrder(context.Background(), auth.Admin(), id, entities.OrderUpdate{Status: &bogus})
		assert.ErrorIs(t, err, entities.ErrInvalidOrder)
	})

	t.Run("paid flag cannot be cleared", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		repo.EXPECT().GetOrderForUpdate(mock.Anything, id).Return(paid, nil).Once()

		svc := service.NewOrderService(discardLogger(), passthroughTx(t), repo, mocks.NewMockCache(t), mocks.NewMockAllocator(t), 1)

		unpaid := false
		_, err := svc.UpdateOrder(context.Background(), auth.Admin(), id, entities.OrderUpdate{IsPaid: &unpaid})
		assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	})

	t.Run("admin ships order", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		cache := mocks.NewMockCache(t)
		repo.EXPECT().GetOrderForUpdate(mock.Anything, id).Return(paid, nil).Once()
		repo.EXPECT().UpdateOrder(mock.Anything, id, mock.Anything).Return(nil).Once()
		cache.EXPECT().Delete(id).Return().Once()

		svc := service.NewOrderService(discardLogger(), passthroughTx(t), repo, cache, mocks.NewMockAllocator(t), 1)

		shipped := entities.StatusShipped
		got, err := svc.UpdateOrder(context.Background(), auth.Admin(), id, entities.OrderUpdate{
			Status:      &shipped,
			AppendNotes: []string{"handed to courier"},
		})
		require.NoError(t, err)
		assert.Equal(t, entities.StatusShipped, got.Status)
		assert.True(t, got.IsPaid)
		assert.Equal(t, []string{"handed to courier"}, got.Notes)
	})
}

func TestOrderService_DeleteOrder(t *testing.T) {
	const id = "7b0c2a58-8c4f-4a57-9a53-5b3f3c1b9d10"

	t.Run("admin", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		cache := mocks.NewMockCache(t)
		repo.EXPECT().DeleteOrder(mock.Anything, id).Return(nil).Once()
		cache.EXPECT().Delete(id).Return().Once()

		svc := service.NewOrderService(discardLogger(), passthroughTx(t), repo, cache, mocks.NewMockAllocator(t), 1)
		assert.NoError(t, svc.DeleteOrder(context.Background(), auth.Admin(), id))
	})

	t.Run("anonymous", func(t *testing.T) {
		svc := service.NewOrderService(discardLogger(), passthroughTx(t), mocks.NewMockOrderRepo(t), mocks.NewMockCache(t), mocks.NewMockAllocator(t), 1)
		assert.ErrorIs(t, svc.DeleteOrder(context.Background(), auth.Anonymous(), id), auth.ErrUnauthenticated)
	})
}

func TestOrderService_WarmUpCache(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	cache := mocks.NewMockCache(t)

	o1 := guestDraft(entities.PaymentCOD)
	o1.ID = "a"
	o2 := guestDraft(entities.PaymentCOD)
	o2.ID = "b"

	repo.EXPECT().LatestOrders(mock.Anything, 2).Return([]entities.Order{o1, o2}, nil).Once()
	cache.EXPECT().Set("a", mock.Anything).Return().Once()
	cache.EXPECT().Set("b", mock.Anything).Return().Once()

	svc := service.NewOrderService(discardLogger(), passthroughTx(t), repo, cache, mocks.NewMockAllocator(t), 1)
	assert.NoError(t, svc.WarmUpCache(context.Background(), 2))
}

// slowReadStore parks the first GetOrderByID after it has read the row, so a
// write can commit between the read and the cache fill.
type slowReadStore struct {
	*memStore
	once     sync.Once
	readDone chan struct{}
	release  chan struct{}
}

func (s *slowReadStore) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	o, err := s.memStore.GetOrderByID(ctx, id)
	s.once.Do(func() {
		close(s.readDone)
		<-s.release
	})
	return o, err
}

func TestOrderService_ReadRacingMutateIsNotCached(t *testing.T) {
	store := &slowReadStore{memStore: newMemStore(), readDone: make(chan struct{}), release: make(chan struct{})}
	order := guestDraft(entities.PaymentGateway)
	order.ID = "7b0c2a58-8c4f-4a57-9a53-5b3f3c1b9d10"
	order.OrderNumber = "10001"
	order.Status = entities.StatusPending
	require.NoError(t, store.CreateOrder(context.Background(), order))

	svc := service.NewOrderService(discardLogger(), passthroughTx(t), store, cache.NewLRUCache(10, time.Minute), mocks.NewMockAllocator(t), 1)

	type result struct {
		order entities.Order
		err   error
	}
	slowRead := make(chan result, 1)
	go func() {
		o, err := svc.GetOrder(context.Background(), auth.Admin(), order.ID)
		slowRead <- result{o, err}
	}()
	<-store.readDone

	paid := true
	_, _, err := svc.Mutate(context.Background(), auth.System(), order.ID, func(entities.Order) (entities.OrderUpdate, error) {
		return entities.OrderUpdate{IsPaid: &paid}, nil
	})
	require.NoError(t, err)

	close(store.release)
	stale := <-slowRead
	require.NoError(t, stale.err)
	assert.False(t, stale.order.IsPaid, "the racing read saw the row before the write")

	got, err := svc.GetOrder(context.Background(), auth.Admin(), order.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPaid)
}
