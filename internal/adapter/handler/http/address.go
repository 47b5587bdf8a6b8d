package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/snackhub/snackshop/internal/core/domain"
	"github.com/snackhub/snackshop/internal/core/port"
	"go.uber.org/zap"
)

type AddressHandler struct {
	Handler
	service port.Service
}

func NewAddressHandler(service port.Service, logger *zap.Logger) (*AddressHandler, error) {
	return &AddressHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type createAddressRequest struct {
	Receiver  string `json:"receiver" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Detail    string `json:"detail" binding:"required"`
	IsDefault bool   `json:"isDefault"`
}

type addressResponse struct {
	ID        uint64 `json:"id"`
	Receiver  string `json:"receiver"`
	Phone     string `json:"phone"`
	Detail    string `json:"detail"`
	IsDefault bool   `json:"isDefault"`
}

func newAddressResponse(a *domain.Address) addressResponse {
	return addressResponse{
		ID:        a.ID,
		Receiver:  a.Receiver,
		Phone:     a.Phone,
		Detail:    a.Detail,
		IsDefault: a.IsDefault,
	}
}

func (ah *AddressHandler) CreateAddress(ctx *gin.Context) {
	req := createAddressRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	address := &domain.Address{
		UserID:    getAuthPayload(ctx).UserID,
		Receiver:  req.Receiver,
		Phone:     req.Phone,
		Detail:    req.Detail,
		IsDefault: req.IsDefault,
	}

	created, err := ah.service.CreateAddress(ctx, address)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccessWithStatus(ctx, newAddressResponse(created), http.StatusCreated)
}

func (ah *AddressHandler) ListAddresses(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	list, err := ah.service.ListAddresses(ctx, userID)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	result := make([]addressResponse, 0, len(list))
	for _, a := range list {
		result = append(result, newAddressResponse(a))
	}

	ah.handleSuccess(ctx, result)
}

func (ah *AddressHandler) GetAddress(ctx *gin.Context) {
	addressID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	userID := getAuthPayload(ctx).UserID

	address, err := ah.service.GetAddress(ctx, addressID, userID)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccess(ctx, newAddressResponse(address))
}
