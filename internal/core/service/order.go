package service

import (
	"context"
	"errors"
	"time"

	"github.com/snackhub/snackshop/internal/core/domain"
	"github.com/snackhub/snackshop/internal/core/utils"
	"go.uber.org/zap"
)

// CreateOrder places an order for userID: resolves the requested lines
// (cart or direct), validates the referenced snacks, snapshots prices and
// hands the whole thing to the repository as one transaction. Stock is
// reserved at creation time, not at payment time.
func (s *Service) CreateOrder(ctx context.Context, userID uint64, addressID uint64,
	remark string, req domain.OrderRequest) (*domain.Order, error) {
	address, err := s.repo.GetAddress(ctx, addressID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrAddressNotFound
		}
		s.logger.Error("resolve address", zap.Error(err))
		return nil, err
	}

	now := time.Now()

	var items []*domain.OrderItem
	var consumeCartIDs []uint64
	switch r := req.(type) {
	case domain.CartOrder:
		items, err = s.resolveCartItems(ctx, r.CartItemIDs, userID, now)
		consumeCartIDs = r.CartItemIDs
	case domain.DirectOrder:
		items, err = s.resolveDirectItem(ctx, r, now)
	default:
		return nil, domain.ErrInvalidOrderType
	}
	if err != nil {
		return nil, err
	}

	var total domain.Money
	for _, item := range items {
		total += item.Price * domain.Money(item.Quantity)
	}

	order := &domain.Order{
		OrderNo:     utils.NewOrderNumber(),
		UserID:      userID,
		AddressID:   addressID,
		TotalAmount: total,
		Status:      domain.OrderStatusUnpaid,
		Remark:      remark,
		CreateTime:  now,
		Items:       items,
	}

	created, err := s.repo.CreateOrder(ctx, order, consumeCartIDs)
	if err != nil {
		s.logger.Error("create order", zap.Error(err), zap.Uint64("user_id", userID))
		return nil, err
	}
	created.Address = address

	s.logger.Info("order created",
		zap.String("order_no", created.OrderNo),
		zap.Uint64("user_id", userID),
		zap.Int64("total_amount", int64(created.TotalAmount)))

	return created, nil
}

func (s *Service) PayOrder(ctx context.Context, orderID uint64, userID uint64) (*domain.Order, error) {
	return s.transition(ctx, orderID, &userID, domain.TransitionPay)
}

// CancelOrder is legal only while the order is still unpaid. The reserved
// stock is put back inside the same transaction that flips the status.
func (s *Service) CancelOrder(ctx context.Context, orderID uint64, userID uint64) (*domain.Order, error) {
	return s.transition(ctx, orderID, &userID, domain.TransitionCancel)
}

func (s *Service) CompleteOrder(ctx context.Context, orderID uint64, userID uint64) (*domain.Order, error) {
	return s.transition(ctx, orderID, &userID, domain.TransitionComplete)
}

// ShipOrder is the privileged transition: no ownership check.
func (s *Service) ShipOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	return s.transition(ctx, orderID, nil, domain.TransitionShip)
}

func (s *Service) GetOrderDetail(ctx context.Context, orderID uint64, userID *uint64) (*domain.Order, error) {
	order, err := s.getOwnedOrder(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	return s.assembleOrder(ctx, order)
}

func (s *Service) ListOrdersByUser(ctx context.Context, userID uint64,
	filter domain.OrderFilter) ([]*domain.Order, uint64, error) {
	list, total, err := s.repo.ListOrdersByUser(ctx, userID, filter)
	if err != nil {
		s.logger.Error("list orders for user", zap.Error(err), zap.Uint64("user_id", userID))
		return nil, 0, err
	}
	return list, total, nil
}

func (s *Service) ListAllOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, uint64, error) {
	list, total, err := s.repo.ListOrders(ctx, filter)
	if err != nil {
		s.logger.Error("list all orders", zap.Error(err))
		return nil, 0, err
	}
	return list, total, nil
}

func (s *Service) transition(ctx context.Context, orderID uint64,
	ownerID *uint64, t domain.OrderTransition) (*domain.Order, error) {
	order, err := s.getOwnedOrder(ctx, orderID, ownerID)
	if err != nil {
		return nil, err
	}

	prior := order.Status
	if !prior.Allows(t) {
		return nil, domain.ErrInvalidStateTransition
	}

	now := time.Now()
	order.Status = t.Next()
	switch t {
	case domain.TransitionPay:
		order.PaymentTime = &now
	case domain.TransitionCancel:
		order.CancelTime = &now
	case domain.TransitionShip:
		order.ShipTime = &now
	case domain.TransitionComplete:
		order.CompleteTime = &now
	}

	err = s.repo.UpdateOrderStatus(ctx, order, prior, t == domain.TransitionCancel)
	if err != nil {
		s.logger.Error("order transition", zap.Error(err),
			zap.Uint64("order_id", orderID), zap.String("transition", string(t)))
		return nil, err
	}

	s.logger.Info("order transition applied",
		zap.Uint64("order_id", orderID),
		zap.String("from", string(prior)),
		zap.String("to", string(order.Status)))

	return s.assembleOrder(ctx, order)
}

func (s *Service) getOwnedOrder(ctx context.Context, orderID uint64, ownerID *uint64) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		s.logger.Error("read order", zap.Error(err), zap.Uint64("order_id", orderID))
		return nil, err
	}
	if ownerID != nil && order.UserID != *ownerID {
		return nil, domain.ErrNotOwner
	}
	return order, nil
}

// assembleOrder fills in the order items and the shipping address. A
// deleted address is tolerated: the order view then carries no address.
func (s *Service) assembleOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	items, err := s.repo.ListOrderItems(ctx, order.ID)
	if err != nil {
		s.logger.Error("list order items", zap.Error(err), zap.Uint64("order_id", order.ID))
		return nil, err
	}
	order.Items = items

	address, err := s.repo.GetAddress(ctx, order.AddressID, order.UserID)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("resolve order address", zap.Error(err), zap.Uint64("order_id", order.ID))
		return nil, err
	}
	order.Address = address

	return order, nil
}

func (s *Service) resolveCartItems(ctx context.Context, cartItemIDs []uint64,
	userID uint64, now time.Time) ([]*domain.OrderItem, error) {
	if len(cartItemIDs) == 0 {
		return nil, domain.ErrBadRequest
	}

	lines, err := s.repo.GetCartLines(ctx, cartItemIDs, userID)
	if err != nil {
		s.logger.Error("resolve cart lines", zap.Error(err), zap.Uint64("user_id", userID))
		return nil, err
	}
	// Ids that do not exist or belong to another user shrink the result set.
	if len(lines) != len(cartItemIDs) {
		return nil, domain.ErrCartItemsMissing
	}

	items := make([]*domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		item, err := s.buildOrderItem(ctx, line.SnackID, line.Quantity, now)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *Service) resolveDirectItem(ctx context.Context, direct domain.DirectOrder,
	now time.Time) ([]*domain.OrderItem, error) {
	item, err := s.buildOrderItem(ctx, direct.SnackID, direct.Quantity, now)
	if err != nil {
		return nil, err
	}
	return []*domain.OrderItem{item}, nil
}

// buildOrderItem validates the snack against the requested quantity and
// snapshots its price, name and image into a new order item.
func (s *Service) buildOrderItem(ctx context.Context, snackID uint64,
	quantity int64, now time.Time) (*domain.OrderItem, error) {
	if quantity <= 0 {
		return nil, domain.ErrBadRequest
	}

	snack, err := s.repo.GetSnack(ctx, snackID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrSnackNotFound
		}
		s.logger.Error("read snack", zap.Error(err), zap.Uint64("snack_id", snackID))
		return nil, err
	}
	if !snack.OnSale() {
		return nil, domain.ErrSnackUnavailable
	}
	if snack.Stock < quantity {
		return nil, &domain.InsufficientStockError{
			SnackID:   snack.ID,
			Available: snack.Stock,
			Requested: quantity,
		}
	}

	return &domain.OrderItem{
		SnackID:    snack.ID,
		Quantity:   quantity,
		Price:      snack.Price,
		SnackName:  snack.Name,
		SnackImage: snack.CoverImage,
		CreateTime: now,
	}, nil
}
