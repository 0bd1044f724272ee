package customer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tia-rosa/pos/internal/entity"
	"github.com/tia-rosa/pos/pkg/fault"
)

type fakeStore struct {
	customers map[string]entity.Customer
	creates   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{customers: map[string]entity.Customer{}}
}

func (f *fakeStore) ByID(ctx context.Context, id string) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (f *fakeStore) Create(ctx context.Context, customer *entity.Customer) error {
	f.creates++
	f.customers[customer.ID] = *customer
	return nil
}

func (f *fakeStore) List(ctx context.Context) ([]entity.Customer, error) {
	out := make([]entity.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, nil
}

func newTestService(store Store) *Service {
	return NewService(Params{Store: store, Logger: zap.NewNop()})
}

func TestFindTrimsIdentifier(t *testing.T) {
	store := newFakeStore()
	store.customers["123"] = entity.Customer{ID: "123", Name: "Maria"}
	svc := newTestService(store)

	found, err := svc.Find(context.Background(), "  123  ")
	require.NoError(t, err)
	assert.Equal(t, "Maria", found.Name)
}

func TestFindEmptyIdentifierIsInvalid(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.Find(context.Background(), "   ")
	assert.True(t, fault.IsKind(err, fault.KindInvalidInput))
}

func TestFindMissIsNotFound(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.Find(context.Background(), "999")
	assert.True(t, fault.IsKind(err, fault.KindNotFound))
}

func TestRegisterIsIdempotent(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	first, err := svc.Register(context.Background(), "123", "Maria", "9999-0000")
	require.NoError(t, err)

	again, err := svc.Register(context.Background(), "123", "Other Name", "")
	require.NoError(t, err)

	assert.Equal(t, first.Name, again.Name)
	assert.Equal(t, 1, store.creates)
}

func TestRegisterRequiresIdentifierAndName(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.Register(context.Background(), "", "Maria", "")
	assert.True(t, fault.IsKind(err, fault.KindInvalidInput))

	_, err = svc.Register(context.Background(), "123", "  ", "")
	assert.True(t, fault.IsKind(err, fault.KindInvalidInput))
}
