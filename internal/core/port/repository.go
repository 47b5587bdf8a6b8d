package port

import (
	"context"

	"github.com/snackhub/snackshop/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// User
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByLogin(ctx context.Context, login string) (*domain.User, error)

	// Catalog
	CreateSnack(ctx context.Context, snack *domain.Snack) (*domain.Snack, error)
	UpdateSnack(ctx context.Context, snack *domain.Snack) (*domain.Snack, error)
	GetSnack(ctx context.Context, snackID uint64) (*domain.Snack, error)
	ListSnacks(ctx context.Context, filter domain.SnackFilter) ([]*domain.Snack, uint64, error)

	// Cart
	UpsertCartLine(ctx context.Context, line *domain.CartLine) (*domain.CartLine, error)
	ListCartLinesByUser(ctx context.Context, userID uint64) ([]*domain.CartLine, error)
	GetCartLines(ctx context.Context, ids []uint64, userID uint64) ([]*domain.CartLine, error)
	DeleteCartLines(ctx context.Context, ids []uint64, userID uint64) error

	// Address
	CreateAddress(ctx context.Context, address *domain.Address) (*domain.Address, error)
	ListAddressesByUser(ctx context.Context, userID uint64) ([]*domain.Address, error)
	GetAddress(ctx context.Context, addressID uint64, userID uint64) (*domain.Address, error)

	// Order. CreateOrder persists the order with its items, consumes the
	// given cart lines and decrements stock, all in one transaction.
	// UpdateOrderStatus flips the status only if the stored status still
	// equals prior, restoring stock in the same transaction when restock
	// is set.
	CreateOrder(ctx context.Context, order *domain.Order, consumeCartIDs []uint64) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	ListOrderItems(ctx context.Context, orderID uint64) ([]*domain.OrderItem, error)
	UpdateOrderStatus(ctx context.Context, order *domain.Order, prior domain.OrderStatus, restock bool) error
	ListOrdersByUser(ctx context.Context, userID uint64, filter domain.OrderFilter) ([]*domain.Order, uint64, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, uint64, error)
}
