package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snackhub/snackshop/internal/core/domain"
	"github.com/snackhub/snackshop/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

const orderTypeCart = "CART_ORDER"
const orderTypeDirect = "DIRECT_ORDER"

type directOrderItem struct {
	SnackID  uint64 `json:"snackId" binding:"required"`
	Quantity int64  `json:"quantity" binding:"required"`
}

type createOrderRequest struct {
	OrderType   string           `json:"orderType" binding:"required"`
	AddressID   uint64           `json:"addressId" binding:"required"`
	Remark      string           `json:"remark"`
	CartItemIDs []uint64         `json:"cartItemIds"`
	DirectItem  *directOrderItem `json:"directOrderItem"`
}

type orderItemResponse struct {
	ID         uint64    `json:"id"`
	SnackID    uint64    `json:"snackId"`
	Quantity   int64     `json:"quantity"`
	Price      int64     `json:"price"`
	PriceText  string    `json:"priceText"`
	SnackName  string    `json:"snackName"`
	SnackImage string    `json:"snackImage"`
	CreateTime time.Time `json:"createTime"`
}

type orderResponse struct {
	ID              uint64              `json:"id"`
	OrderNo         string              `json:"orderNo"`
	UserID          uint64              `json:"userId"`
	TotalAmount     int64               `json:"totalAmount"`
	TotalAmountText string              `json:"totalAmountText"`
	Status          string              `json:"status"`
	Remark          string              `json:"remark,omitempty"`
	CreateTime      time.Time           `json:"createTime"`
	PaymentTime     *time.Time          `json:"paymentTime,omitempty"`
	ShipTime        *time.Time          `json:"shipTime,omitempty"`
	CompleteTime    *time.Time          `json:"completeTime,omitempty"`
	CancelTime      *time.Time          `json:"cancelTime,omitempty"`
	Items           []orderItemResponse `json:"orderItems,omitempty"`
	Address         *addressResponse    `json:"address,omitempty"`
}

func newOrderResponse(o *domain.Order) orderResponse {
	resp := orderResponse{
		ID:              o.ID,
		OrderNo:         o.OrderNo,
		UserID:          o.UserID,
		TotalAmount:     int64(o.TotalAmount),
		TotalAmountText: o.TotalAmount.Display(),
		Status:          string(o.Status),
		Remark:          o.Remark,
		CreateTime:      o.CreateTime,
		PaymentTime:     o.PaymentTime,
		ShipTime:        o.ShipTime,
		CompleteTime:    o.CompleteTime,
		CancelTime:      o.CancelTime,
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, orderItemResponse{
			ID:         item.ID,
			SnackID:    item.SnackID,
			Quantity:   item.Quantity,
			Price:      int64(item.Price),
			PriceText:  item.Price.Display(),
			SnackName:  item.SnackName,
			SnackImage: item.SnackImage,
			CreateTime: item.CreateTime,
		})
	}
	if o.Address != nil {
		addr := newAddressResponse(o.Address)
		resp.Address = &addr
	}
	return resp
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := createOrderRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	var orderReq domain.OrderRequest
	switch req.OrderType {
	case orderTypeCart:
		orderReq = domain.CartOrder{CartItemIDs: req.CartItemIDs}
	case orderTypeDirect:
		if req.DirectItem == nil {
			oh.handleError(ctx, domain.ErrBadRequest)
			return
		}
		orderReq = domain.DirectOrder{
			SnackID:  req.DirectItem.SnackID,
			Quantity: req.DirectItem.Quantity,
		}
	default:
		oh.handleError(ctx, domain.ErrInvalidOrderType)
		return
	}

	userID := getAuthPayload(ctx).UserID

	order, err := oh.service.CreateOrder(ctx, userID, req.AddressID, req.Remark, orderReq)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResponse(order), http.StatusCreated)
}

func (oh *OrderHandler) PayOrder(ctx *gin.Context) {
	oh.doTransition(ctx, oh.service.PayOrder)
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	oh.doTransition(ctx, oh.service.CancelOrder)
}

func (oh *OrderHandler) CompleteOrder(ctx *gin.Context) {
	oh.doTransition(ctx, oh.service.CompleteOrder)
}

func (oh *OrderHandler) doTransition(ctx *gin.Context,
	fn func(ctx context.Context, orderID uint64, userID uint64) (*domain.Order, error)) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	userID := getAuthPayload(ctx).UserID

	order, err := fn(ctx, orderID, userID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

// ShipOrder is admin-only; the route group enforces the role.
func (oh *OrderHandler) ShipOrder(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.ShipOrder(ctx, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) GetOrderDetail(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	userID := getAuthPayload(ctx).UserID

	order, err := oh.service.GetOrderDetail(ctx, orderID, &userID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

// GetAdminOrderDetail skips the ownership check.
func (oh *OrderHandler) GetAdminOrderDetail(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.GetOrderDetail(ctx, orderID, nil)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) ListOrdersByUser(ctx *gin.Context) {
	filter := orderFilterQuery(ctx)
	userID := getAuthPayload(ctx).UserID

	list, total, err := oh.service.ListOrdersByUser(ctx, userID, filter)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderPage(list, total, filter))
}

func (oh *OrderHandler) ListAllOrders(ctx *gin.Context) {
	filter := orderFilterQuery(ctx)
	filter.OrderNo = ctx.Query("orderNo")

	list, total, err := oh.service.ListAllOrders(ctx, filter)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderPage(list, total, filter))
}

func newOrderPage(list []*domain.Order, total uint64, filter domain.OrderFilter) pageResponse[orderResponse] {
	records := make([]orderResponse, 0, len(list))
	for _, o := range list {
		records = append(records, newOrderResponse(o))
	}
	return pageResponse[orderResponse]{
		Current: filter.Page,
		Size:    filter.Size,
		Total:   total,
		Records: records,
	}
}

func orderIDParam(ctx *gin.Context) (uint64, error) {
	return strconv.ParseUint(ctx.Param("id"), 10, 64)
}

func orderFilterQuery(ctx *gin.Context) domain.OrderFilter {
	page, _ := strconv.ParseUint(ctx.DefaultQuery("current", "1"), 10, 64)
	size, _ := strconv.ParseUint(ctx.DefaultQuery("size", "10"), 10, 64)
	return domain.OrderFilter{
		Status: domain.OrderStatus(ctx.Query("status")),
		Page:   page,
		Size:   size,
	}
}
