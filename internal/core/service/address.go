package service

import (
	"context"
	"errors"

	"github.com/snackhub/snackshop/internal/core/domain"
	"go.uber.org/zap"
)

func (s *Service) CreateAddress(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	created, err := s.repo.CreateAddress(ctx, address)
	if err != nil {
		s.logger.Error("create address", zap.Error(err), zap.Uint64("user_id", address.UserID))
		return nil, err
	}
	return created, nil
}

func (s *Service) ListAddresses(ctx context.Context, userID uint64) ([]*domain.Address, error) {
	list, err := s.repo.ListAddressesByUser(ctx, userID)
	if err != nil {
		s.logger.Error("list addresses", zap.Error(err), zap.Uint64("user_id", userID))
		return nil, err
	}
	return list, nil
}

func (s *Service) GetAddress(ctx context.Context, addressID uint64, userID uint64) (*domain.Address, error) {
	address, err := s.repo.GetAddress(ctx, addressID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, err
	}
	return address, nil
}
