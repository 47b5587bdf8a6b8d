package port

import (
	"context"

	"github.com/snackhub/snackshop/internal/core/domain"
)

type Service interface {
	// Users
	RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, login string, password string) (string, error)

	// Catalog
	CreateSnack(ctx context.Context, snack *domain.Snack) (*domain.Snack, error)
	UpdateSnack(ctx context.Context, snack *domain.Snack) (*domain.Snack, error)
	GetSnack(ctx context.Context, snackID uint64) (*domain.Snack, error)
	ListSnacks(ctx context.Context, filter domain.SnackFilter) ([]*domain.Snack, uint64, error)

	// Cart
	AddToCart(ctx context.Context, userID uint64, snackID uint64, quantity int64) (*domain.CartLine, error)
	GetCart(ctx context.Context, userID uint64) ([]*domain.CartLine, error)
	RemoveCartLines(ctx context.Context, userID uint64, ids []uint64) error

	// Addresses
	CreateAddress(ctx context.Context, address *domain.Address) (*domain.Address, error)
	ListAddresses(ctx context.Context, userID uint64) ([]*domain.Address, error)
	GetAddress(ctx context.Context, addressID uint64, userID uint64) (*domain.Address, error)

	// Order lifecycle
	CreateOrder(ctx context.Context, userID uint64, addressID uint64,
		remark string, req domain.OrderRequest) (*domain.Order, error)
	PayOrder(ctx context.Context, orderID uint64, userID uint64) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID uint64, userID uint64) (*domain.Order, error)
	CompleteOrder(ctx context.Context, orderID uint64, userID uint64) (*domain.Order, error)
	ShipOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	// GetOrderDetail skips the ownership check when userID is nil. That
	// path is reachable only through the admin routes.
	GetOrderDetail(ctx context.Context, orderID uint64, userID *uint64) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64, filter domain.OrderFilter) ([]*domain.Order, uint64, error)
	ListAllOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, uint64, error)
}
