package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/snackhub/snackshop/internal/core/domain"
	"github.com/snackhub/snackshop/internal/core/port/mock"
	"github.com/snackhub/snackshop/internal/core/service"
	"github.com/snackhub/snackshop/internal/core/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServiceWithTokens(t *testing.T,
	prepare func(repo *mock.MockRepository, ts *mock.MockTokenService)) *service.Service {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	t.Cleanup(mockCtrl.Finish)

	logger, _ := zap.NewProduction()

	repo := mock.NewMockRepository(mockCtrl)
	ts := mock.NewMockTokenService(mockCtrl)
	if prepare != nil {
		prepare(repo, ts)
	}

	s, err := service.NewService(repo, ts, logger)
	require.NoError(t, err)
	return s
}

func TestService_RegisterUser(t *testing.T) {
	t.Run("new login", func(t *testing.T) {
		s := newTestServiceWithTokens(t, func(repo *mock.MockRepository, _ *mock.MockTokenService) {
			repo.EXPECT().GetUserByLogin(gomock.Any(), "gopher").
				Return(nil, domain.ErrDataNotFound)
			repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
		})

		user, err := s.RegisterUser(context.Background(), &domain.User{Login: "gopher", Password: "hash"})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.ID)
		assert.Equal(t, domain.UserRoleUser, user.Role)
	})

	t.Run("duplicate login", func(t *testing.T) {
		s := newTestServiceWithTokens(t, func(repo *mock.MockRepository, _ *mock.MockTokenService) {
			repo.EXPECT().GetUserByLogin(gomock.Any(), "gopher").
				Return(&domain.User{ID: 1, Login: "gopher"}, nil)
		})

		_, err := s.RegisterUser(context.Background(), &domain.User{Login: "gopher", Password: "hash"})
		assert.ErrorIs(t, err, domain.ErrConflictingData)
	})
}

func TestService_LoginUser(t *testing.T) {
	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)

	t.Run("good credentials", func(t *testing.T) {
		s := newTestServiceWithTokens(t, func(repo *mock.MockRepository, ts *mock.MockTokenService) {
			repo.EXPECT().GetUserByLogin(gomock.Any(), "gopher").
				Return(&domain.User{ID: 1, Login: "gopher", Password: hash}, nil)
			ts.EXPECT().CreateToken(gomock.Any()).Return("token", nil)
		})

		token, err := s.LoginUser(context.Background(), "gopher", "secret")
		require.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("wrong password", func(t *testing.T) {
		s := newTestServiceWithTokens(t, func(repo *mock.MockRepository, _ *mock.MockTokenService) {
			repo.EXPECT().GetUserByLogin(gomock.Any(), "gopher").
				Return(&domain.User{ID: 1, Login: "gopher", Password: hash}, nil)
		})

		_, err := s.LoginUser(context.Background(), "gopher", "guess")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown login", func(t *testing.T) {
		s := newTestServiceWithTokens(t, func(repo *mock.MockRepository, _ *mock.MockTokenService) {
			repo.EXPECT().GetUserByLogin(gomock.Any(), "nobody").
				Return(nil, domain.ErrDataNotFound)
		})

		_, err := s.LoginUser(context.Background(), "nobody", "secret")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
