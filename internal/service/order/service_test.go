package order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tia-rosa/pos/internal/config"
	"github.com/tia-rosa/pos/internal/entity"
	"github.com/tia-rosa/pos/internal/messaging"
	customersvc "github.com/tia-rosa/pos/internal/service/customer"
	"github.com/tia-rosa/pos/pkg/fault"
)

type fakeStore struct {
	created   []*entity.Order
	createErr error
	history   []entity.Order
	sales     []CustomerSales
}

func (f *fakeStore) Create(ctx context.Context, order *entity.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	order.ID = int64(len(f.created) + 1)
	f.created = append(f.created, order)
	return nil
}

func (f *fakeStore) History(ctx context.Context) ([]entity.Order, error) {
	return f.history, nil
}

func (f *fakeStore) SalesByCustomer(ctx context.Context) ([]CustomerSales, error) {
	return f.sales, nil
}

type fakeDirectory struct {
	known map[string]entity.Customer
}

func (f *fakeDirectory) ByID(ctx context.Context, id string) (*entity.Customer, error) {
	c, ok := f.known[id]
	if !ok {
		return nil, customersvc.ErrNotFound
	}
	return &c, nil
}

type recordingPublisher struct {
	published [][]byte
}

func (p *recordingPublisher) Publish(ctx context.Context, key, value []byte) error {
	p.published = append(p.published, value)
	return nil
}

func (p *recordingPublisher) Consume(ctx context.Context, handler messaging.Handler) error {
	<-ctx.Done()
	return ctx.Err()
}

func (p *recordingPublisher) Topic() string { return "pos.orders" }

func newTestService(store Store, dir CustomerDirectory, publisher messaging.Client, publish bool) *Service {
	return NewService(Params{
		Store:     store,
		Customers: dir,
		Config:    config.Config{Messaging: config.Messaging{Enabled: publish}},
		Logger:    zap.NewNop(),
		Publisher: publisher,
	})
}

func knownCustomer() *fakeDirectory {
	return &fakeDirectory{known: map[string]entity.Customer{
		"123": {ID: "123", Name: "Maria"},
	}}
}

func sampleCart() Cart {
	return Cart{
		{ProductID: 1, Name: "Espresso Duplo", Quantity: 2, UnitPrice: 7},
		{ProductID: 5, Name: "Mocha", Quantity: 1, UnitPrice: 9.5},
	}
}

func TestCartTotals(t *testing.T) {
	cart := sampleCart()

	assert.InDelta(t, 14.0, cart[0].Subtotal(), 1e-9)
	assert.InDelta(t, 23.5, cart.Total(), 1e-9)
	assert.Zero(t, Cart{}.Total())
}

func TestPlaceOrderPersistsHeaderAndLines(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, knownCustomer(), &recordingPublisher{}, false)

	placed, err := svc.PlaceOrder(context.Background(), " 123 ", sampleCart())
	require.NoError(t, err)

	assert.Equal(t, int64(1), placed.ID)
	assert.Equal(t, "123", placed.CustomerID)
	assert.InDelta(t, 23.5, placed.Total, 1e-9)
	require.Len(t, placed.Lines, 2)
	assert.Equal(t, int64(1), placed.Lines[0].ProductID)
	assert.Equal(t, 2, placed.Lines[0].Quantity)
	assert.False(t, placed.CreatedAt.IsZero())
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc := newTestService(&fakeStore{}, knownCustomer(), &recordingPublisher{}, false)

	_, err := svc.PlaceOrder(context.Background(), "123", nil)
	assert.True(t, fault.IsKind(err, fault.KindInvalidInput))
}

func TestPlaceOrderUnknownCustomer(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, &fakeDirectory{known: map[string]entity.Customer{}}, &recordingPublisher{}, false)

	_, err := svc.PlaceOrder(context.Background(), "999", sampleCart())
	assert.True(t, fault.IsKind(err, fault.KindNotFound))
	assert.Empty(t, store.created)
}

func TestPlaceOrderRejectsBadLines(t *testing.T) {
	svc := newTestService(&fakeStore{}, knownCustomer(), &recordingPublisher{}, false)

	_, err := svc.PlaceOrder(context.Background(), "123", Cart{{ProductID: 1, Name: "Espresso", Quantity: 0, UnitPrice: 7}})
	assert.True(t, fault.IsKind(err, fault.KindInvalidInput))

	_, err = svc.PlaceOrder(context.Background(), "123", Cart{{ProductID: 1, Name: "Espresso", Quantity: 1, UnitPrice: -1}})
	assert.True(t, fault.IsKind(err, fault.KindInvalidInput))
}

func TestPlaceOrderStoreFailureLeavesNoOrder(t *testing.T) {
	store := &fakeStore{createErr: errors.New("disk full")}
	svc := newTestService(store, knownCustomer(), &recordingPublisher{}, false)

	_, err := svc.PlaceOrder(context.Background(), "123", sampleCart())
	assert.True(t, fault.IsKind(err, fault.KindInternal))
	assert.Empty(t, store.created)
}

func TestPlaceOrderPublishesWhenMessagingEnabled(t *testing.T) {
	publisher := &recordingPublisher{}
	svc := newTestService(&fakeStore{}, knownCustomer(), publisher, true)

	_, err := svc.PlaceOrder(context.Background(), "123", sampleCart())
	require.NoError(t, err)
	assert.Len(t, publisher.published, 1)
}

func TestPlaceOrderSkipsPublishWhenDisabled(t *testing.T) {
	publisher := &recordingPublisher{}
	svc := newTestService(&fakeStore{}, knownCustomer(), publisher, false)

	_, err := svc.PlaceOrder(context.Background(), "123", sampleCart())
	require.NoError(t, err)
	assert.Empty(t, publisher.published)
}

func TestSalesReportPassesRowsThrough(t *testing.T) {
	store := &fakeStore{sales: []CustomerSales{
		{CustomerID: "123", CustomerName: "Maria", OrderCount: 3, TotalSpent: 70.5},
		{CustomerID: "456", CustomerName: "Joao", OrderCount: 1, TotalSpent: 12},
	}}
	svc := newTestService(store, knownCustomer(), &recordingPublisher{}, false)

	rows, err := svc.SalesReport(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Maria", rows[0].CustomerName)
	assert.GreaterOrEqual(t, rows[0].TotalSpent, rows[1].TotalSpent)
}
