package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snackhub/snackshop/internal/core/domain"
	"github.com/snackhub/snackshop/internal/core/port"
	"go.uber.org/zap"
)

type SnackHandler struct {
	Handler
	service port.Service
}

func NewSnackHandler(service port.Service, logger *zap.Logger) (*SnackHandler, error) {
	return &SnackHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type snackRequest struct {
	CategoryID  uint64 `json:"categoryId"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required"`
	Stock       int64  `json:"stock"`
	CoverImage  string `json:"coverImage"`
	Status      string `json:"status"`
}

type snackResponse struct {
	ID          uint64    `json:"id"`
	CategoryID  uint64    `json:"categoryId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"`
	PriceText   string    `json:"priceText"`
	Stock       int64     `json:"stock"`
	CoverImage  string    `json:"coverImage,omitempty"`
	Status      string    `json:"status"`
	SalesCount  int64     `json:"salesCount"`
	CreateTime  time.Time `json:"createTime"`
}

func newSnackResponse(s *domain.Snack) snackResponse {
	return snackResponse{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		Name:        s.Name,
		Description: s.Description,
		Price:       int64(s.Price),
		PriceText:   s.Price.Display(),
		Stock:       s.Stock,
		CoverImage:  s.CoverImage,
		Status:      string(s.Status),
		SalesCount:  s.SalesCount,
		CreateTime:  s.CreateTime,
	}
}

func (sh *SnackHandler) CreateSnack(ctx *gin.Context) {
	req := snackRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		sh.handleValidationError(ctx, err)
		return
	}

	snack := &domain.Snack{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       domain.Money(req.Price),
		Stock:       req.Stock,
		CoverImage:  req.CoverImage,
		Status:      domain.SnackStatus(req.Status),
	}

	created, err := sh.service.CreateSnack(ctx, snack)
	if err != nil {
		sh.handleError(ctx, err)
		return
	}

	sh.handleSuccessWithStatus(ctx, newSnackResponse(created), http.StatusCreated)
}

func (sh *SnackHandler) UpdateSnack(ctx *gin.Context) {
	snackID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		sh.handleValidationError(ctx, err)
		return
	}

	req := snackRequest{}
	err = ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		sh.handleValidationError(ctx, err)
		return
	}

	snack := &domain.Snack{
		ID:          snackID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       domain.Money(req.Price),
		Stock:       req.Stock,
		CoverImage:  req.CoverImage,
		Status:      domain.SnackStatus(req.Status),
	}

	updated, err := sh.service.UpdateSnack(ctx, snack)
	if err != nil {
		sh.handleError(ctx, err)
		return
	}

	sh.handleSuccess(ctx, newSnackResponse(updated))
}

func (sh *SnackHandler) GetSnack(ctx *gin.Context) {
	snackID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		sh.handleValidationError(ctx, err)
		return
	}

	snack, err := sh.service.GetSnack(ctx, snackID)
	if err != nil {
		sh.handleError(ctx, err)
		return
	}

	sh.handleSuccess(ctx, newSnackResponse(snack))
}

func (sh *SnackHandler) ListSnacks(ctx *gin.Context) {
	page, _ := strconv.ParseUint(ctx.DefaultQuery("current", "1"), 10, 64)
	size, _ := strconv.ParseUint(ctx.DefaultQuery("size", "10"), 10, 64)
	categoryID, _ := strconv.ParseUint(ctx.Query("categoryId"), 10, 64)

	filter := domain.SnackFilter{
		CategoryID: categoryID,
		Status:     domain.SnackStatus(ctx.Query("status")),
		Name:       ctx.Query("name"),
		Page:       page,
		Size:       size,
	}

	list, total, err := sh.service.ListSnacks(ctx, filter)
	if err != nil {
		sh.handleError(ctx, err)
		return
	}

	records := make([]snackResponse, 0, len(list))
	for _, s := range list {
		records = append(records, newSnackResponse(s))
	}

	sh.handleSuccess(ctx, pageResponse[snackResponse]{
		Current: filter.Page,
		Size:    filter.Size,
		Total:   total,
		Records: records,
	})
}
