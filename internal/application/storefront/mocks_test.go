package storefront

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fashionstop/storefront/internal/domain/cart"
	"github.com/fashionstop/storefront/internal/domain/catalog"
	"github.com/fashionstop/storefront/internal/domain/shared"
	"github.com/fashionstop/storefront/internal/infrastructure/cartstore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockAPI is a mock implementation of API
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) ListProducts(ctx context.Context, query ProductQuery) ([]catalog.Product, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockAPI) CreateProduct(ctx context.Context, draft ProductDraft) (*CreatedProduct, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CreatedProduct), args.Error(1)
}

func (m *MockAPI) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAPI) PlaceOrder(ctx context.Context, submission OrderSubmission) (*PlacedOrder, error) {
	args := m.Called(ctx, submission)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PlacedOrder), args.Error(1)
}

func (m *MockAPI) Login(ctx context.Context, username, password string) (*AdminRef, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AdminRef), args.Error(1)
}

func (m *MockAPI) Stats(ctx context.Context) (*DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DashboardStats), args.Error(1)
}

func (m *MockAPI) RecentOrders(ctx context.Context) ([]OrderSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]OrderSummary), args.Error(1)
}

func (m *MockAPI) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	return m.Called(ctx, orderID, status).Error(0)
}

// recordingPublisher captures published events
type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) published() []shared.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]shared.DomainEvent(nil), p.events...)
}

// failingStore fails every Save
type failingStore struct {
	cartstore.MemoryStore
}

func (s *failingStore) Save(context.Context, []cart.Entry) error {
	return errors.New("quota exceeded")
}

func newTestCart(t *testing.T) (*CartService, *cartstore.MemoryStore) {
	t.Helper()
	store := cartstore.NewMemoryStore()
	return NewCartService(context.Background(), store, zap.NewNop()), store
}

func shoeA() cart.Item {
	return cart.Item{ProductID: "A", Name: "Air Max 270", Price: decimal.NewFromInt(1999), Brand: "Nike"}
}

func shoeB() cart.Item {
	return cart.Item{ProductID: "B", Name: "Ultraboost 22", Price: decimal.NewFromInt(2499), Brand: "Adidas"}
}

func testProduct(t *testing.T, id, brand string, featured bool) catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(id, catalog.ProductInput{
		Name:     "Shoe " + id,
		Brand:    brand,
		Price:    decimal.NewFromInt(1000),
		Image:    "https://img.example/" + id,
		Featured: featured,
	})
	require.NoError(t, err)
	return *p
}
