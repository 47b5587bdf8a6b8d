package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/snackhub/snackshop/internal/core/domain"
	"github.com/snackhub/snackshop/internal/core/port/mock"
	"github.com/snackhub/snackshop/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type prepareMocks func(repo *mock.MockRepository)

func newTestService(t *testing.T, prepare prepareMocks) *service.Service {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	t.Cleanup(mockCtrl.Finish)

	logger, _ := zap.NewProduction()

	repo := mock.NewMockRepository(mockCtrl)
	ts := mock.NewMockTokenService(mockCtrl)
	if prepare != nil {
		prepare(repo)
	}

	s, err := service.NewService(repo, ts, logger)
	require.NoError(t, err)
	return s
}

func onSaleSnack(id uint64, price domain.Money, stock int64) *domain.Snack {
	return &domain.Snack{
		ID:         id,
		Name:       "chips",
		Price:      price,
		Stock:      stock,
		CoverImage: "chips.png",
		Status:     domain.SnackStatusOnSale,
	}
}

func TestService_CreateOrderDirect(t *testing.T) {
	address := &domain.Address{ID: 3, UserID: 1, Receiver: "test", Phone: "100", Detail: "street 1"}

	type createOrderTest struct {
		name     string
		userID   uint64
		req      domain.OrderRequest
		mock     prepareMocks
		expError error
	}

	tests := []createOrderTest{
		{
			name:   "direct order happy path",
			userID: 1,
			req:    domain.DirectOrder{SnackID: 7, Quantity: 2},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetAddress(gomock.Any(), uint64(3), uint64(1)).Return(address, nil)
				repo.EXPECT().GetSnack(gomock.Any(), uint64(7)).Return(onSaleSnack(7, 500, 10), nil)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), nil).
					DoAndReturn(func(_ context.Context, order *domain.Order, _ []uint64) (*domain.Order, error) {
						order.ID = 42
						return order, nil
					})
			},
			expError: nil,
		},
		{
			name:   "address not found",
			userID: 1,
			req:    domain.DirectOrder{SnackID: 7, Quantity: 2},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetAddress(gomock.Any(), uint64(3), uint64(1)).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrAddressNotFound,
		},
		{
			name:   "snack not found",
			userID: 1,
			req:    domain.DirectOrder{SnackID: 7, Quantity: 2},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetAddress(gomock.Any(), uint64(3), uint64(1)).Return(address, nil)
				repo.EXPECT().GetSnack(gomock.Any(), uint64(7)).Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrSnackNotFound,
		},
		{
			name:   "snack off shelf",
			userID: 1,
			req:    domain.DirectOrder{SnackID: 7, Quantity: 2},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetAddress(gomock.Any(), uint64(3), uint64(1)).Return(address, nil)
				snack := onSaleSnack(7, 500, 10)
				snack.Status = domain.SnackStatusOffShelf
				repo.EXPECT().GetSnack(gomock.Any(), uint64(7)).Return(snack, nil)
			},
			expError: domain.ErrSnackUnavailable,
		},
		{
			name:   "insufficient stock",
			userID: 1,
			req:    domain.DirectOrder{SnackID: 7, Quantity: 2},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetAddress(gomock.Any(), uint64(3), uint64(1)).Return(address, nil)
				repo.EXPECT().GetSnack(gomock.Any(), uint64(7)).Return(onSaleSnack(7, 500, 1), nil)
			},
			expError: domain.ErrInsufficientStock,
		},
		{
			name:   "stock race at persist time",
			userID: 1,
			req:    domain.DirectOrder{SnackID: 7, Quantity: 2},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetAddress(gomock.Any(), uint64(3), uint64(1)).Return(address, nil)
				repo.EXPECT().GetSnack(gomock.Any(), uint64(7)).Return(onSaleSnack(7, 500, 10), nil)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), nil).
					Return(nil, domain.ErrStockUpdateFailed)
			},
			expError: domain.ErrStockUpdateFailed,
		},
		{
			name:   "nil request payload",
			userID: 1,
			req:    nil,
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetAddress(gomock.Any(), uint64(3), uint64(1)).Return(address, nil)
			},
			expError: domain.ErrInvalidOrderType,
		},
		{
			name:   "non-positive quantity",
			userID: 1,
			req:    domain.DirectOrder{SnackID: 7, Quantity: 0},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetAddress(gomock.Any(), uint64(3), uint64(1)).Return(address, nil)
			},
			expError: domain.ErrBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newTestService(t, test.mock)

			order, err := s.CreateOrder(context.Background(), test.userID, 3, "leave at door", test.req)

			if test.expError != nil {
				assert.Nil(t, order)
				assert.ErrorIs(t, err, test.expError)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, order)
			assert.Equal(t, domain.OrderStatusUnpaid, order.Status)
			assert.Equal(t, domain.Money(1000), order.TotalAmount)
			assert.True(t, strings.HasPrefix(order.OrderNo, "ORDER"))
			require.Len(t, order.Items, 1)
			assert.Equal(t, domain.Money(500), order.Items[0].Price)
			assert.Equal(t, int64(2), order.Items[0].Quantity)
			assert.Equal(t, "chips", order.Items[0].SnackName)
			assert.Equal(t, address, order.Address)
			assert.Nil(t, order.PaymentTime)
		})
	}
}

func TestService_CreateOrderDirect_InsufficientStockDetails(t *testing.T) {
	address := &domain.Address{ID: 3, UserID: 1}

	s := newTestService(t, func(repo *mock.MockRepository) {
		repo.EXPECT().GetAddress(gomock.Any(), uint64(3), uint64(1)).Return(address, nil)
		repo.EXPECT().GetSnack(gomock.Any(), uint64(7)).Return(onSaleSnack(7, 500, 1), nil)
	})

	_, err := s.CreateOrder(context.Background(), 1, 3, "",
		domain.DirectOrder{SnackID: 7, Quantity: 2})

	var stockErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, uint64(7), stockErr.SnackID)
	assert.Equal(t, int64(1), stockErr.Available)
	assert.Equal(t, int64(2), stockErr.Requested)
}

func TestService_CreateOrderFromCart(t *testing.T) {
	address := &domain.Address{ID: 3, UserID: 1}
	cartIDs := []uint64{11, 12, 13}
	lines := []*domain.CartLine{
		{ID: 11, UserID: 1, SnackID: 7, Quantity: 2},
		{ID: 12, UserID: 1, SnackID: 8, Quantity: 1},
		{ID: 13, UserID: 1, SnackID: 9, Quantity: 3},
	}

	type cartOrderTest struct {
		name     string
		req      domain.OrderRequest
		mock     prepareMocks
		expError error
		expTotal domain.Money
	}

	tests := []cartOrderTest{
		{
			name: "cart order happy path",
			req:  domain.CartOrder{CartItemIDs: cartIDs},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetAddress(gomock.Any(), uint64(3), uint64(1)).Return(address, nil)
				repo.EXPECT().GetCartLines(gomock.Any(), cartIDs, uint64(1)).Return(lines, nil)
				repo.EXPECT().GetSnack(gomock.Any(), uint64(7)).Return(onSaleSnack(7, 500, 10), nil)
				repo.EXPECT().GetSnack(gomock.Any(), uint64(8)).Return(onSaleSnack(8, 250, 10), nil)
				repo.EXPECT().GetSnack(gomock.Any(), uint64(9)).Return(onSaleSnack(9, 100, 10), nil)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), cartIDs).
					DoAndReturn(func(_ context.Context, order *domain.Order, _ []uint64) (*domain.Order, error) {
						order.ID = 42
						return order, nil
					})
			},
			// 2*500 + 1*250 + 3*100
			expTotal: 1550,
		},
		{
			name: "some cart lines missing",
			req:  domain.CartOrder{CartItemIDs: cartIDs},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetAddress(gomock.Any(), uint64(3), uint64(1)).Return(address, nil)
				repo.EXPECT().GetCartLines(gomock.Any(), cartIDs, uint64(1)).Return(lines[:2], nil)
			},
			expError: domain.ErrCartItemsMissing,
		},
		{
			name: "empty cart selection",
			req:  domain.CartOrder{},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetAddress(gomock.Any(), uint64(3), uint64(1)).Return(address, nil)
			},
			expError: domain.ErrBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newTestService(t, test.mock)

			order, err := s.CreateOrder(context.Background(), 1, 3, "", test.req)

			if test.expError != nil {
				assert.Nil(t, order)
				assert.ErrorIs(t, err, test.expError)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, order)
			assert.Equal(t, test.expTotal, order.TotalAmount)
			assert.Len(t, order.Items, len(lines))
		})
	}
}

func TestService_OrderTransitions(t *testing.T) {
	address := &domain.Address{ID: 3, UserID: 1}

	newOrder := func(status domain.OrderStatus) *domain.Order {
		return &domain.Order{
			ID:          42,
			OrderNo:     "ORDER1700000000000ABCDEF",
			UserID:      1,
			AddressID:   3,
			TotalAmount: 1000,
			Status:      status,
			CreateTime:  time.Now().Add(-time.Hour),
		}
	}

	expectDetail := func(repo *mock.MockRepository) {
		repo.EXPECT().ListOrderItems(gomock.Any(), uint64(42)).
			Return([]*domain.OrderItem{{OrderID: 42, SnackID: 7, Quantity: 2, Price: 500}}, nil)
		repo.EXPECT().GetAddress(gomock.Any(), uint64(3), uint64(1)).Return(address, nil)
	}

	type transitionTest struct {
		name      string
		run       func(s *service.Service) (*domain.Order, error)
		mock      prepareMocks
		expError  error
		expStatus domain.OrderStatus
	}

	tests := []transitionTest{
		{
			name: "pay unpaid order",
			run: func(s *service.Service) (*domain.Order, error) {
				return s.PayOrder(context.Background(), 42, 1)
			},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetOrder(gomock.Any(), uint64(42)).Return(newOrder(domain.OrderStatusUnpaid), nil)
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any(), domain.OrderStatusUnpaid, false).
					DoAndReturn(func(_ context.Context, order *domain.Order, _ domain.OrderStatus, _ bool) error {
						assert.Equal(t, domain.OrderStatusPaid, order.Status)
						assert.NotNil(t, order.PaymentTime)
						assert.Nil(t, order.CancelTime)
						return nil
					})
				expectDetail(repo)
			},
			expStatus: domain.OrderStatusPaid,
		},
		{
			name: "cancel unpaid order restores stock",
			run: func(s *service.Service) (*domain.Order, error) {
				return s.CancelOrder(context.Background(), 42, 1)
			},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetOrder(gomock.Any(), uint64(42)).Return(newOrder(domain.OrderStatusUnpaid), nil)
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any(), domain.OrderStatusUnpaid, true).
					DoAndReturn(func(_ context.Context, order *domain.Order, _ domain.OrderStatus, restock bool) error {
						assert.True(t, restock)
						assert.Equal(t, domain.OrderStatusCancelled, order.Status)
						assert.NotNil(t, order.CancelTime)
						assert.Nil(t, order.PaymentTime)
						return nil
					})
				expectDetail(repo)
			},
			expStatus: domain.OrderStatusCancelled,
		},
		{
			name: "ship paid order",
			run: func(s *service.Service) (*domain.Order, error) {
				return s.ShipOrder(context.Background(), 42)
			},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetOrder(gomock.Any(), uint64(42)).Return(newOrder(domain.OrderStatusPaid), nil)
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any(), domain.OrderStatusPaid, false).Return(nil)
				expectDetail(repo)
			},
			expStatus: domain.OrderStatusShipped,
		},
		{
			name: "complete shipped order",
			run: func(s *service.Service) (*domain.Order, error) {
				return s.CompleteOrder(context.Background(), 42, 1)
			},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetOrder(gomock.Any(), uint64(42)).Return(newOrder(domain.OrderStatusShipped), nil)
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any(), domain.OrderStatusShipped, false).Return(nil)
				expectDetail(repo)
			},
			expStatus: domain.OrderStatusCompleted,
		},
		{
			name: "ship unpaid order is illegal",
			run: func(s *service.Service) (*domain.Order, error) {
				return s.ShipOrder(context.Background(), 42)
			},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetOrder(gomock.Any(), uint64(42)).Return(newOrder(domain.OrderStatusUnpaid), nil)
			},
			expError: domain.ErrInvalidStateTransition,
		},
		{
			name: "cancel paid order is illegal",
			run: func(s *service.Service) (*domain.Order, error) {
				return s.CancelOrder(context.Background(), 42, 1)
			},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetOrder(gomock.Any(), uint64(42)).Return(newOrder(domain.OrderStatusPaid), nil)
			},
			expError: domain.ErrInvalidStateTransition,
		},
		{
			name: "pay another user's order",
			run: func(s *service.Service) (*domain.Order, error) {
				return s.PayOrder(context.Background(), 42, 2)
			},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetOrder(gomock.Any(), uint64(42)).Return(newOrder(domain.OrderStatusUnpaid), nil)
			},
			expError: domain.ErrNotOwner,
		},
		{
			name: "pay missing order",
			run: func(s *service.Service) (*domain.Order, error) {
				return s.PayOrder(context.Background(), 42, 1)
			},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetOrder(gomock.Any(), uint64(42)).Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrOrderNotFound,
		},
		{
			name: "transition raced by concurrent update",
			run: func(s *service.Service) (*domain.Order, error) {
				return s.PayOrder(context.Background(), 42, 1)
			},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetOrder(gomock.Any(), uint64(42)).Return(newOrder(domain.OrderStatusUnpaid), nil)
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any(), domain.OrderStatusUnpaid, false).
					Return(domain.ErrInvalidStateTransition)
			},
			expError: domain.ErrInvalidStateTransition,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newTestService(t, test.mock)

			order, err := test.run(s)

			if test.expError != nil {
				assert.Nil(t, order)
				assert.ErrorIs(t, err, test.expError)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, order)
			assert.Equal(t, test.expStatus, order.Status)
			assert.Len(t, order.Items, 1)
			assert.Equal(t, address, order.Address)
		})
	}
}

func TestService_GetOrderDetail(t *testing.T) {
	address := &domain.Address{ID: 3, UserID: 1}
	owner := uint64(1)
	stranger := uint64(2)

	newOrder := func() *domain.Order {
		return &domain.Order{ID: 42, UserID: 1, AddressID: 3, Status: domain.OrderStatusUnpaid}
	}

	t.Run("owner reads own order", func(t *testing.T) {
		s := newTestService(t, func(repo *mock.MockRepository) {
			repo.EXPECT().GetOrder(gomock.Any(), uint64(42)).Return(newOrder(), nil)
			repo.EXPECT().ListOrderItems(gomock.Any(), uint64(42)).
				Return([]*domain.OrderItem{{OrderID: 42, SnackID: 7, Quantity: 2, Price: 500}}, nil)
			repo.EXPECT().GetAddress(gomock.Any(), uint64(3), uint64(1)).Return(address, nil)
		})

		order, err := s.GetOrderDetail(context.Background(), 42, &owner)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), order.ID)
		assert.Len(t, order.Items, 1)
		assert.Equal(t, address, order.Address)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		s := newTestService(t, func(repo *mock.MockRepository) {
			repo.EXPECT().GetOrder(gomock.Any(), uint64(42)).Return(newOrder(), nil)
		})

		_, err := s.GetOrderDetail(context.Background(), 42, &stranger)
		assert.ErrorIs(t, err, domain.ErrNotOwner)
	})

	t.Run("privileged read skips ownership check", func(t *testing.T) {
		s := newTestService(t, func(repo *mock.MockRepository) {
			repo.EXPECT().GetOrder(gomock.Any(), uint64(42)).Return(newOrder(), nil)
			repo.EXPECT().ListOrderItems(gomock.Any(), uint64(42)).Return([]*domain.OrderItem{}, nil)
			repo.EXPECT().GetAddress(gomock.Any(), uint64(3), uint64(1)).Return(address, nil)
		})

		order, err := s.GetOrderDetail(context.Background(), 42, nil)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), order.ID)
	})

	t.Run("read is idempotent", func(t *testing.T) {
		items := []*domain.OrderItem{{OrderID: 42, SnackID: 7, Quantity: 2, Price: 500}}
		s := newTestService(t, func(repo *mock.MockRepository) {
			repo.EXPECT().GetOrder(gomock.Any(), uint64(42)).Return(newOrder(), nil).Times(2)
			repo.EXPECT().ListOrderItems(gomock.Any(), uint64(42)).Return(items, nil).Times(2)
			repo.EXPECT().GetAddress(gomock.Any(), uint64(3), uint64(1)).Return(address, nil).Times(2)
		})

		first, err := s.GetOrderDetail(context.Background(), 42, &owner)
		require.NoError(t, err)
		second, err := s.GetOrderDetail(context.Background(), 42, &owner)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("deleted address is tolerated", func(t *testing.T) {
		s := newTestService(t, func(repo *mock.MockRepository) {
			repo.EXPECT().GetOrder(gomock.Any(), uint64(42)).Return(newOrder(), nil)
			repo.EXPECT().ListOrderItems(gomock.Any(), uint64(42)).Return([]*domain.OrderItem{}, nil)
			repo.EXPECT().GetAddress(gomock.Any(), uint64(3), uint64(1)).
				Return(nil, domain.ErrDataNotFound)
		})

		order, err := s.GetOrderDetail(context.Background(), 42, &owner)
		require.NoError(t, err)
		assert.Nil(t, order.Address)
	})
}
