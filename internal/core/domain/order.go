package domain

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusUnpaid    OrderStatus = "UNPAID"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type OrderTransition string

const (
	TransitionPay      OrderTransition = "pay"
	TransitionCancel   OrderTransition = "cancel"
	TransitionShip     OrderTransition = "ship"
	TransitionComplete OrderTransition = "complete"
)

// Allows reports whether the transition is legal from the current status.
// UNPAID -> PAID -> SHIPPED -> COMPLETED, with cancel only from UNPAID.
func (s OrderStatus) Allows(t OrderTransition) bool {
	switch t {
	case TransitionPay:
		return s == OrderStatusUnpaid
	case TransitionCancel:
		return s == OrderStatusUnpaid
	case TransitionShip:
		return s == OrderStatusPaid
	case TransitionComplete:
		return s == OrderStatusShipped
	default:
		return false
	}
}

// Next returns the status the transition leads to.
func (t OrderTransition) Next() OrderStatus {
	switch t {
	case TransitionPay:
		return OrderStatusPaid
	case TransitionCancel:
		return OrderStatusCancelled
	case TransitionShip:
		return OrderStatusShipped
	case TransitionComplete:
		return OrderStatusCompleted
	default:
		return ""
	}
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

type Order struct {
	ID           uint64
	OrderNo      string
	UserID       uint64
	AddressID    uint64
	TotalAmount  Money
	Status       OrderStatus
	Remark       string
	CreateTime   time.Time
	PaymentTime  *time.Time
	ShipTime     *time.Time
	CompleteTime *time.Time
	CancelTime   *time.Time

	Items   []*OrderItem
	Address *Address
}

// OrderItem is one line of an order. Price, name and image are snapshots
// taken at creation time and never follow later catalog edits.
type OrderItem struct {
	ID         uint64
	OrderID    uint64
	SnackID    uint64
	Quantity   int64
	Price      Money
	SnackName  string
	SnackImage string
	CreateTime time.Time
}

// OrderRequest is the type-specific payload of a create-order call:
// either a set of cart lines or a single direct purchase.
type OrderRequest interface {
	orderRequest()
}

type CartOrder struct {
	CartItemIDs []uint64
}

type DirectOrder struct {
	SnackID  uint64
	Quantity int64
}

func (CartOrder) orderRequest()   {}
func (DirectOrder) orderRequest() {}

// OrderFilter narrows order listings.
type OrderFilter struct {
	Status  OrderStatus
	OrderNo string
	Page    uint64
	Size    uint64
}
