package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/akademika/hris-backend-go/internal/domain/auth"
	"github.com/akademika/hris-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	accounts auth.Repository
	tokens   jwt.Service
}

func NewAuthService(accounts auth.Repository, tokens jwt.Service) auth.Service {
	return &service{accounts: accounts, tokens: tokens}
}

// Login verifies credentials and issues an access token plus a refresh
// token for the cookie.
func (s *service) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return nil, "", 0, err
	}

	account, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			return nil, "", 0, auth.ErrInvalidCredentials
		}
		return nil, "", 0, fmt.Errorf("failed to load account: %w", err)
	}
	if !account.IsActive {
		return nil, "", 0, auth.ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", 0, auth.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := s.tokens.GenerateAccessToken(account.ID, account.Email, account.EmployeeID, account.Role)
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExpiresAt, err := s.tokens.GenerateRefreshToken(account.ID)
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.accounts.UpdateLastLogin(ctx, account.ID); err != nil {
		slog.Warn("failed to record last login", "account_id", account.ID, "error", err)
	}

	resp := &auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		Role:        account.Role,
		EmployeeID:  account.EmployeeID,
	}
	return resp, refreshToken, refreshExpiresAt, nil
}

func (s *service) GetAccount(ctx context.Context, id string) (*auth.Account, error) {
	return s.accounts.GetByID(ctx, id)
}
