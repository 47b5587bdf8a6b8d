package domain

import "time"

// CartLine is one pending selection in a user's cart. Lines referenced by
// a cart order are deleted in the same transaction that creates the order.
type CartLine struct {
	ID         uint64
	UserID     uint64
	SnackID    uint64
	Quantity   int64
	CreateTime time.Time
	UpdateTime time.Time

	Snack *Snack
}
