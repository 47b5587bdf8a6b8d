package domain

import "time"

type SnackStatus string

const (
	SnackStatusOnSale   SnackStatus = "ON_SALE"
	SnackStatusOffShelf SnackStatus = "OFF_SHELF"
)

type Snack struct {
	ID          uint64
	CategoryID  uint64
	Name        string
	Description string
	Price       Money
	Stock       int64
	CoverImage  string
	Status      SnackStatus
	SalesCount  int64
	CreateTime  time.Time
	UpdateTime  time.Time
}

func (s *Snack) OnSale() bool {
	return s.Status == SnackStatusOnSale
}

// SnackFilter narrows catalog listings.
type SnackFilter struct {
	CategoryID uint64
	Status     SnackStatus
	Name       string
	Page       uint64
	Size       uint64
}
