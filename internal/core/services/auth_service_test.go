package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/core/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_CreateFirstAdminThenVerify(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	svc := services.NewAuthService(repo)

	var saved domain.User
	repo.On("CountUsers", ctx).Return(0, nil).Once()
	repo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		saved = u
		return u.IsAdmin && u.Username == "admin"
	})).Return(int64(1), nil).Once()

	user, err := svc.CreateFirstAdmin(ctx, dto.CredentialsRequest{Username: " admin ", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.NotEqual(t, "s3cret", saved.PasswordHash)
	assert.NotEmpty(t, saved.Salt)

	repo.On("FindUserByUsername", ctx, "admin").Return(&saved, nil)

	got, err := svc.Verify(ctx, "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)

	_, err = svc.Verify(ctx, "admin", "wrong")
	assert.Equal(t, apperrors.CodeInvalidCredentials, apperrors.CodeOf(err))
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	repo.AssertExpectations(t)
}

func TestAuthService_SecondAdminRejected(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	repo.On("CountUsers", ctx).Return(1, nil)

	_, err := services.NewAuthService(repo).CreateFirstAdmin(ctx, dto.CredentialsRequest{Username: "bob", Password: "pass1"})

	assert.Equal(t, apperrors.CodeUserExists, apperrors.CodeOf(err))
	repo.AssertNotCalled(t, "SaveUser", mock.Anything, mock.Anything)
}

func TestAuthService_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user looks like a wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound)

		_, err := services.NewAuthService(repo).Verify(ctx, "ghost", "whatever")
		assert.Equal(t, apperrors.CodeInvalidCredentials, apperrors.CodeOf(err))
	})

	t.Run("blank credentials", func(t *testing.T) {
		repo := new(MockUserRepository)

		_, err := services.NewAuthService(repo).Verify(ctx, "  ", "")
		assert.Equal(t, apperrors.CodeCredentialsRequired, apperrors.CodeOf(err))
		repo.AssertNotCalled(t, "FindUserByUsername", mock.Anything, mock.Anything)
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindUserByUsername", ctx, "admin").Return(nil, apperrors.Store("find user", errors.New("disk I/O error")))

		_, err := services.NewAuthService(repo).Verify(ctx, "admin", "s3cret")
		assert.ErrorIs(t, err, apperrors.ErrFatalStore)
	})
}
