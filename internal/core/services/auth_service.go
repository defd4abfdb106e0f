package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/middleware"
	"github.com/SscSPs/ledgerbook/internal/utils"
)

// authService implements AuthSvc over the users table
type authService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewAuthService creates the credential store service.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade) portssvc.AuthSvc {
	return &authService{userRepo: userRepo}
}

var (
	_ portssvc.AuthSvc              = (*authService)(nil)
	_ middleware.CredentialVerifier = (*authService)(nil)
)

var errInvalidCredentials = apperrors.New(apperrors.CodeInvalidCredentials, "invalid username or password")

func (s *authService) HasAnyUser(ctx context.Context) (bool, error) {
	n, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count users")
		return false, err
	}
	return n > 0, nil
}

// Verify never tells an unknown user from a wrong password.
func (s *authService) Verify(ctx context.Context, username, password string) (*domain.User, error) {
	req := dto.CredentialsRequest{Username: username, Password: password}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to find user", slog.String("username", req.Username))
		return nil, err
	}
	if !utils.CheckPasswordHash(req.Password, user.Salt, user.PasswordHash) {
		return nil, errInvalidCredentials
	}

	s.LogDebug(ctx, "User authenticated", slog.String("username", user.Username))
	return user, nil
}

func (s *authService) CreateFirstAdmin(ctx context.Context, req dto.CredentialsRequest) (*domain.User, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.HasAnyUser(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.New(apperrors.CodeUserExists, "an administrator already exists")
	}

	salt, err := utils.GenerateSalt()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate salt")
		return nil, apperrors.Store("generate salt", err)
	}
	hash, err := utils.HashPassword(req.Password, salt)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.Store("hash password", err)
	}

	user := domain.User{
		Username:     req.Username,
		PasswordHash: hash,
		Salt:         salt,
		IsAdmin:      true,
	}
	id, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		s.LogRejected(ctx, err, "Failed to save user", slog.String("username", user.Username))
		return nil, err
	}
	user.ID = id

	s.LogInfo(ctx, "First administrator created", slog.String("username", user.Username))
	return &user, nil
}
