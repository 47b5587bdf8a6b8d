package domain

import "time"

type Address struct {
	ID         uint64
	UserID     uint64
	Receiver   string
	Phone      string
	Detail     string
	IsDefault  bool
	CreateTime time.Time
	UpdateTime time.Time
}
