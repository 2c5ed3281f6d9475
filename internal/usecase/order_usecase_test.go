package usecase_test

import (
	"context"
	"errors"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// =====================
// Mock: OrderRepository
// =====================

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// =====================
// Mock: OrderItemRepository
// =====================

type MockOrderItemRepository struct {
	mock.Mock
}

func (m *MockOrderItemRepository) Create(ctx context.Context, item model.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockOrderItemRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

// =====================
// Mock: VinylRepository
// =====================

type MockVinylRepository struct {
	mock.Mock
}

func (m *MockVinylRepository) ListAll(ctx context.Context) ([]model.Vinyl, error) {
	args := m.Called(ctx)
	vinyls, _ := args.Get(0).([]model.Vinyl)
	return vinyls, args.Error(1)
}

func (m *MockVinylRepository) FindByID(ctx context.Context, id int64) (model.Vinyl, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(model.Vinyl)
	return v, args.Error(1)
}

func (m *MockVinylRepository) Create(ctx context.Context, v model.Vinyl) (model.Vinyl, error) {
	args := m.Called(ctx, v)
	created, _ := args.Get(0).(model.Vinyl)
	return created, args.Error(1)
}

func (m *MockVinylRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVinylRepository) DecrementStock(ctx context.Context, vinylID int64, qty int64) error {
	args := m.Called(ctx, vinylID, qty)
	return args.Error(0)
}

func (m *MockVinylRepository) DecrementStockIfAvailable(ctx context.Context, vinylID int64, qty int64) (bool, error) {
	args := m.Called(ctx, vinylID, qty)
	return args.Bool(0), args.Error(1)
}

// =====================
// TxManagerのスタブ（fnにmock repoをそのまま渡す）
// =====================

type stubTxRepos struct {
	orders     *MockOrderRepository
	orderItems *MockOrderItemRepository
	vinyls     *MockVinylRepository
}

func (r *stubTxRepos) Orders() repo.OrderRepository         { return r.orders }
func (r *stubTxRepos) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *stubTxRepos) Vinyls() repo.VinylRepository         { return r.vinyls }

type stubTxManager struct {
	repos *stubTxRepos
}

func (m *stubTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}

func newOrderFixture() (*stubTxRepos, *usecase.OrderUsecase) {
	repos := &stubTxRepos{
		orders:     new(MockOrderRepository),
		orderItems: new(MockOrderItemRepository),
		vinyls:     new(MockVinylRepository),
	}
	uc := usecase.NewOrderUsecase(&stubTxManager{repos: repos}, zap.NewNop())
	return repos, uc
}

// Test: 注文確定で在庫が減る（10→8）
func TestPlaceOrderDecrementsStock(t *testing.T) {
	repos, uc := newOrderFixture()
	ctx := context.Background()

	vinyl := model.Vinyl{ID: 1, Title: "Abbey Road", Price: 899, Stock: 10}

	repos.orders.
		On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
			return o.UserID == 5 && o.Total == 1798 && o.Status == model.OrderStatusPending
		})).
		Return(int64(42), nil)

	repos.orderItems.
		On("Create", mock.Anything, model.OrderItem{OrderID: 42, VinylID: 1, Quantity: 2, Price: 899}).
		Return(nil)

	repos.vinyls.On("FindByID", mock.Anything, int64(1)).Return(vinyl, nil)
	repos.vinyls.On("DecrementStock", mock.Anything, int64(1), int64(2)).Return(nil)

	orderID, err := uc.PlaceOrder(ctx, 5, usecase.PlaceOrderInput{
		Total: 1798,
		Items: []usecase.OrderLineInput{{VinylID: 1, Quantity: 2, Price: 899}},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), orderID)

	repos.orders.AssertExpectations(t)
	repos.orderItems.AssertExpectations(t)
	repos.vinyls.AssertExpectations(t)
}

// Test: 存在しないVinylを指す明細は、明細だけ作って在庫更新をスキップ
func TestPlaceOrderUnknownVinylKeepsItemWithoutStockChange(t *testing.T) {
	repos, uc := newOrderFixture()
	ctx := context.Background()

	repos.orders.On("Create", mock.Anything, mock.Anything).Return(int64(7), nil)
	repos.orderItems.
		On("Create", mock.Anything, model.OrderItem{OrderID: 7, VinylID: 999, Quantity: 1, Price: 500}).
		Return(nil)
	repos.vinyls.On("FindByID", mock.Anything, int64(999)).Return(model.Vinyl{}, repo.ErrNotFound)

	orderID, err := uc.PlaceOrder(ctx, 5, usecase.PlaceOrderInput{
		Total: 500,
		Items: []usecase.OrderLineInput{{VinylID: 999, Quantity: 1, Price: 500}},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), orderID)

	repos.vinyls.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
	repos.orderItems.AssertExpectations(t)
}

// Test: 明細なしはvalidationエラー
func TestPlaceOrderEmptyItems(t *testing.T) {
	repos, uc := newOrderFixture()

	_, err := uc.PlaceOrder(context.Background(), 5, usecase.PlaceOrderInput{Total: 0})

	assert.ErrorIs(t, err, usecase.ErrValidation)
	repos.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Test: 数量0以下はvalidationエラー
func TestPlaceOrderInvalidQuantity(t *testing.T) {
	repos, uc := newOrderFixture()

	_, err := uc.PlaceOrder(context.Background(), 5, usecase.PlaceOrderInput{
		Total: 899,
		Items: []usecase.OrderLineInput{{VinylID: 1, Quantity: 0, Price: 899}},
	})

	assert.ErrorIs(t, err, usecase.ErrValidation)
	repos.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Test: 永続化失敗は一律internal（詳細は外に出さない）
func TestPlaceOrderRepoFailureIsInternal(t *testing.T) {
	repos, uc := newOrderFixture()

	repos.orders.On("Create", mock.Anything, mock.Anything).
		Return(int64(0), errors.New("db down"))

	_, err := uc.PlaceOrder(context.Background(), 5, usecase.PlaceOrderInput{
		Total: 899,
		Items: []usecase.OrderLineInput{{VinylID: 1, Quantity: 1, Price: 899}},
	})

	assert.ErrorIs(t, err, usecase.ErrInternal)
}

// Test: totalはクライアント申告値をそのまま保存する（再計算しない）
func TestPlaceOrderTrustsClientTotal(t *testing.T) {
	repos, uc := newOrderFixture()
	ctx := context.Background()

	repos.orders.
		On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
			return o.Total == 5000 // 明細合計899とは一致しない
		})).
		Return(int64(3), nil)
	repos.orderItems.On("Create", mock.Anything, mock.Anything).Return(nil)
	repos.vinyls.On("FindByID", mock.Anything, int64(1)).
		Return(model.Vinyl{ID: 1, Stock: 10}, nil)
	repos.vinyls.On("DecrementStock", mock.Anything, int64(1), int64(1)).Return(nil)

	orderID, err := uc.PlaceOrder(ctx, 5, usecase.PlaceOrderInput{
		Total: 5000,
		Items: []usecase.OrderLineInput{{VinylID: 1, Quantity: 1, Price: 899}},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), orderID)
	repos.orders.AssertExpectations(t)
}
