package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenDuration              = errors.New("invalid token duration format")
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid login or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrOrderNotFound          = errors.New("order not found")
	ErrAddressNotFound        = errors.New("shipping address not found")
	ErrSnackNotFound          = errors.New("snack not found")
	ErrCartItemsMissing       = errors.New("some cart items do not exist")
	ErrNotOwner               = errors.New("order belongs to another user")
	ErrInvalidOrderType       = errors.New("invalid order type")
	ErrInvalidStateTransition = errors.New("order status does not permit this transition")
	ErrSnackUnavailable       = errors.New("snack is off shelf")
	ErrInsufficientStock      = errors.New("snack stock is not enough")
	ErrStockUpdateFailed      = errors.New("stock update affected no rows")
)

// InsufficientStockError carries the available/requested counts for
// diagnostics. errors.Is(err, ErrInsufficientStock) holds for it.
type InsufficientStockError struct {
	SnackID   uint64
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("snack %d: stock %d, requested %d: %s",
		e.SnackID, e.Available, e.Requested, ErrInsufficientStock)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
