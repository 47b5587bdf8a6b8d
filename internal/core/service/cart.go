package service

import (
	"context"
	"errors"

	"github.com/snackhub/snackshop/internal/core/domain"
	"go.uber.org/zap"
)

// AddToCart adds quantity of a snack to the user's cart, merging with an
// existing line for the same snack.
func (s *Service) AddToCart(ctx context.Context, userID uint64, snackID uint64, quantity int64) (*domain.CartLine, error) {
	if quantity <= 0 {
		return nil, domain.ErrBadRequest
	}

	snack, err := s.repo.GetSnack(ctx, snackID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrSnackNotFound
		}
		return nil, err
	}
	if !snack.OnSale() {
		return nil, domain.ErrSnackUnavailable
	}

	line, err := s.repo.UpsertCartLine(ctx, &domain.CartLine{
		UserID:   userID,
		SnackID:  snackID,
		Quantity: quantity,
	})
	if err != nil {
		s.logger.Error("upsert cart line", zap.Error(err), zap.Uint64("user_id", userID))
		return nil, err
	}
	return line, nil
}

func (s *Service) GetCart(ctx context.Context, userID uint64) ([]*domain.CartLine, error) {
	lines, err := s.repo.ListCartLinesByUser(ctx, userID)
	if err != nil {
		s.logger.Error("list cart", zap.Error(err), zap.Uint64("user_id", userID))
		return nil, err
	}
	return lines, nil
}

func (s *Service) RemoveCartLines(ctx context.Context, userID uint64, ids []uint64) error {
	if len(ids) == 0 {
		return domain.ErrBadRequest
	}
	err := s.repo.DeleteCartLines(ctx, ids, userID)
	if err != nil {
		s.logger.Error("delete cart lines", zap.Error(err), zap.Uint64("user_id", userID))
		return err
	}
	return nil
}
