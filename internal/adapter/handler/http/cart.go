package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snackhub/snackshop/internal/core/domain"
	"github.com/snackhub/snackshop/internal/core/port"
	"go.uber.org/zap"
)

type CartHandler struct {
	Handler
	service port.Service
}

func NewCartHandler(service port.Service, logger *zap.Logger) (*CartHandler, error) {
	return &CartHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type addToCartRequest struct {
	SnackID  uint64 `json:"snackId" binding:"required"`
	Quantity int64  `json:"quantity" binding:"required"`
}

type removeCartLinesRequest struct {
	IDs []uint64 `json:"ids" binding:"required"`
}

type cartLineResponse struct {
	ID         uint64    `json:"id"`
	SnackID    uint64    `json:"snackId"`
	Quantity   int64     `json:"quantity"`
	CreateTime time.Time `json:"createTime"`

	SnackName  string `json:"snackName,omitempty"`
	Price      int64  `json:"price,omitempty"`
	PriceText  string `json:"priceText,omitempty"`
	Stock      int64  `json:"stock,omitempty"`
	CoverImage string `json:"coverImage,omitempty"`
	Status     string `json:"status,omitempty"`
}

func newCartLineResponse(line *domain.CartLine) cartLineResponse {
	resp := cartLineResponse{
		ID:         line.ID,
		SnackID:    line.SnackID,
		Quantity:   line.Quantity,
		CreateTime: line.CreateTime,
	}
	if line.Snack != nil {
		resp.SnackName = line.Snack.Name
		resp.Price = int64(line.Snack.Price)
		resp.PriceText = line.Snack.Price.Display()
		resp.Stock = line.Snack.Stock
		resp.CoverImage = line.Snack.CoverImage
		resp.Status = string(line.Snack.Status)
	}
	return resp
}

func (ch *CartHandler) AddToCart(ctx *gin.Context) {
	req := addToCartRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	userID := getAuthPayload(ctx).UserID

	line, err := ch.service.AddToCart(ctx, userID, req.SnackID, req.Quantity)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, newCartLineResponse(line), http.StatusCreated)
}

func (ch *CartHandler) GetCart(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	lines, err := ch.service.GetCart(ctx, userID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	result := make([]cartLineResponse, 0, len(lines))
	for _, line := range lines {
		result = append(result, newCartLineResponse(line))
	}

	ch.handleSuccess(ctx, result)
}

func (ch *CartHandler) RemoveCartLines(ctx *gin.Context) {
	req := removeCartLinesRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	userID := getAuthPayload(ctx).UserID

	err = ch.service.RemoveCartLines(ctx, userID, req.IDs)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
