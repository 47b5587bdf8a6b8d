package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snackhub/snackshop/internal/core/domain"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrInvalidCredentials:         http.StatusUnauthorized,
	domain.ErrUnauthorized:               http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrExpiredToken:               http.StatusUnauthorized,
	domain.ErrForbidden:                  http.StatusForbidden,

	domain.ErrNoUpdatedData: http.StatusBadRequest,
	domain.ErrBadRequest:    http.StatusBadRequest,

	domain.ErrOrderNotFound:          http.StatusNotFound,
	domain.ErrAddressNotFound:        http.StatusNotFound,
	domain.ErrSnackNotFound:          http.StatusNotFound,
	domain.ErrCartItemsMissing:       http.StatusNotFound,
	domain.ErrNotOwner:               http.StatusForbidden,
	domain.ErrInvalidOrderType:       http.StatusBadRequest,
	domain.ErrInvalidStateTransition: http.StatusConflict,
	domain.ErrSnackUnavailable:       http.StatusUnprocessableEntity,
	domain.ErrInsufficientStock:      http.StatusUnprocessableEntity,
	domain.ErrStockUpdateFailed:      http.StatusConflict,
}

// statusFromError matches wrapped errors too, e.g. the detail-carrying
// insufficient-stock error unwrapping to its sentinel.
func statusFromError(err error) (int, bool) {
	if code, ok := errorStatusMap[err]; ok {
		return code, true
	}
	for e, code := range errorStatusMap {
		if errors.Is(err, e) {
			return code, true
		}
	}
	return http.StatusInternalServerError, false
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrBadRequest.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, known := statusFromError(err)
	if !known {
		h.logger.Error("error processing request", zap.Error(err))
		ctx.JSON(statusCode, errorResponse{Error: domain.ErrInternal.Error()})
		return
	}
	ctx.JSON(statusCode, errorResponse{Error: err.Error()})
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}

type pageResponse[T any] struct {
	Current uint64 `json:"current"`
	Size    uint64 `json:"size"`
	Total   uint64 `json:"total"`
	Records []T    `json:"records"`
}
