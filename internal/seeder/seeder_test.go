package seeder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tia-rosa/pos/internal/entity"
	"github.com/tia-rosa/pos/internal/service/catalog"
)

type fakeProductStore struct {
	products []entity.Product
	batches  int
}

func (f *fakeProductStore) List(ctx context.Context) ([]entity.Product, error) {
	return f.products, nil
}

func (f *fakeProductStore) ByID(ctx context.Context, id int64) (*entity.Product, error) {
	return nil, catalog.ErrNotFound
}

func (f *fakeProductStore) Create(ctx context.Context, product *entity.Product) error {
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeProductStore) Count(ctx context.Context) (int, error) {
	return len(f.products), nil
}

func (f *fakeProductStore) CreateBatch(ctx context.Context, products []entity.Product) error {
	f.batches++
	f.products = append(f.products, products...)
	return nil
}

func TestProductsSeedsEmptyCatalog(t *testing.T) {
	store := &fakeProductStore{}
	s := New(store, zap.NewNop())

	require.NoError(t, s.Products(context.Background()))
	assert.Len(t, store.products, 26)
	assert.Equal(t, 1, store.batches)

	assert.Equal(t, "Espresso Duplo", store.products[0].Name)
	assert.InDelta(t, 7.00, store.products[0].Price, 1e-9)
}

func TestProductsIsIdempotent(t *testing.T) {
	store := &fakeProductStore{}
	s := New(store, zap.NewNop())

	require.NoError(t, s.Products(context.Background()))
	require.NoError(t, s.Products(context.Background()))

	assert.Len(t, store.products, 26)
	assert.Equal(t, 1, store.batches)
}

func TestProductsSkipsNonEmptyCatalog(t *testing.T) {
	store := &fakeProductStore{products: []entity.Product{{ID: 1, Name: "Cortado"}}}
	s := New(store, zap.NewNop())

	require.NoError(t, s.Products(context.Background()))
	assert.Len(t, store.products, 1)
	assert.Zero(t, store.batches)
}
