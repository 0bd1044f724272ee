package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tia-rosa/pos/internal/cache"
	"github.com/tia-rosa/pos/internal/config"
	"github.com/tia-rosa/pos/internal/entity"
	"github.com/tia-rosa/pos/pkg/fault"
)

type fakeProductStore struct {
	products []entity.Product
	nextID   int64
	listErr  error
	listHits int
}

func (f *fakeProductStore) List(ctx context.Context) ([]entity.Product, error) {
	f.listHits++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.products, nil
}

func (f *fakeProductStore) ByID(ctx context.Context, id int64) (*entity.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeProductStore) Create(ctx context.Context, product *entity.Product) error {
	f.nextID++
	product.ID = f.nextID
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeProductStore) Count(ctx context.Context) (int, error) {
	return len(f.products), nil
}

func (f *fakeProductStore) CreateBatch(ctx context.Context, products []entity.Product) error {
	for i := range products {
		f.nextID++
		products[i].ID = f.nextID
	}
	f.products = append(f.products, products...)
	return nil
}

type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[key]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return value, nil
}

func (c *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func newTestService(store ProductStore, cacheStore cache.Store) *Service {
	return NewService(Params{
		Store:  store,
		Cache:  cacheStore,
		Config: config.Config{Cache: config.Cache{DefaultTTL: time.Minute}},
		Logger: zap.NewNop(),
	})
}

func TestListServesFromCacheOnSecondCall(t *testing.T) {
	store := &fakeProductStore{products: []entity.Product{
		{ID: 1, Name: "Espresso Duplo", Category: "Cafes", Price: 7},
	}, nextID: 1}
	svc := newTestService(store, newMemCache())

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.listHits)
}

func TestListEmptyCatalogIsValid(t *testing.T) {
	svc := newTestService(&fakeProductStore{}, newMemCache())

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestByIDMissMapsToNotFound(t *testing.T) {
	svc := newTestService(&fakeProductStore{}, newMemCache())

	_, err := svc.ByID(context.Background(), 99)
	assert.True(t, fault.IsKind(err, fault.KindNotFound))
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(&fakeProductStore{}, newMemCache())

	_, err := svc.Register(context.Background(), "   ", "Cafes", 5)
	assert.True(t, fault.IsKind(err, fault.KindInvalidInput))

	_, err = svc.Register(context.Background(), "Espresso", "Cafes", -1)
	assert.True(t, fault.IsKind(err, fault.KindInvalidInput))
}

func TestRegisterAllowsDuplicateNamesAndZeroPrice(t *testing.T) {
	store := &fakeProductStore{}
	svc := newTestService(store, newMemCache())

	first, err := svc.Register(context.Background(), "Cortado", "Cafes", 0)
	require.NoError(t, err)
	second, err := svc.Register(context.Background(), "Cortado", "Cafes", 6.5)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, store.products, 2)
}

func TestRegisterInvalidatesListCache(t *testing.T) {
	store := &fakeProductStore{}
	mem := newMemCache()
	svc := newTestService(store, mem)

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Mocha", "Cafes", 9)
	require.NoError(t, err)

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestListStoreErrorIsInternal(t *testing.T) {
	store := &fakeProductStore{listErr: errors.New("db gone")}
	svc := newTestService(store, newMemCache())

	_, err := svc.List(context.Background())
	assert.True(t, fault.IsKind(err, fault.KindInternal))
}
