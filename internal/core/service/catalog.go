package service

import (
	"context"
	"errors"
	"time"

	"github.com/snackhub/snackshop/internal/core/domain"
	"go.uber.org/zap"
)

func (s *Service) CreateSnack(ctx context.Context, snack *domain.Snack) (*domain.Snack, error) {
	if snack.Price <= 0 || snack.Stock < 0 {
		return nil, domain.ErrBadRequest
	}
	if snack.Status == "" {
		snack.Status = domain.SnackStatusOnSale
	}
	now := time.Now()
	snack.CreateTime = now
	snack.UpdateTime = now

	created, err := s.repo.CreateSnack(ctx, snack)
	if err != nil {
		s.logger.Error("create snack", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// UpdateSnack edits the live catalog row. Already placed orders keep
// their snapshots and are not affected.
func (s *Service) UpdateSnack(ctx context.Context, snack *domain.Snack) (*domain.Snack, error) {
	if snack.Price <= 0 || snack.Stock < 0 {
		return nil, domain.ErrBadRequest
	}

	_, err := s.repo.GetSnack(ctx, snack.ID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrSnackNotFound
		}
		return nil, err
	}

	snack.UpdateTime = time.Now()
	updated, err := s.repo.UpdateSnack(ctx, snack)
	if err != nil {
		s.logger.Error("update snack", zap.Error(err), zap.Uint64("snack_id", snack.ID))
		return nil, err
	}
	return updated, nil
}

func (s *Service) GetSnack(ctx context.Context, snackID uint64) (*domain.Snack, error) {
	snack, err := s.repo.GetSnack(ctx, snackID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrSnackNotFound
		}
		return nil, err
	}
	return snack, nil
}

func (s *Service) ListSnacks(ctx context.Context, filter domain.SnackFilter) ([]*domain.Snack, uint64, error) {
	list, total, err := s.repo.ListSnacks(ctx, filter)
	if err != nil {
		s.logger.Error("list snacks", zap.Error(err))
		return nil, 0, err
	}
	return list, total, nil
}
