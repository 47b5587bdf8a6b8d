package domain

import "time"

type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

type User struct {
	ID         uint64
	Login      string
	Password   string
	Role       UserRole
	CreateTime time.Time
}
