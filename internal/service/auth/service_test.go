package auth

import (
	"context"
	"testing"

	"github.com/akademika/hris-backend-go/internal/domain/auth"
	"github.com/akademika/hris-backend-go/internal/pkg/jwt"
	"github.com/akademika/hris-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (auth.Service, *memory.AccountRepository) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	empID := "emp-1"
	accounts := memory.NewAccountRepository()
	accounts.Seed(
		&auth.Account{
			ID:           "acc-1",
			EmployeeID:   &empID,
			Email:        "worker@akademika.id",
			PasswordHash: string(hash),
			Role:         auth.RoleEmployee,
			IsActive:     true,
		},
		&auth.Account{
			ID:           "acc-2",
			Email:        "disabled@akademika.id",
			PasswordHash: string(hash),
			Role:         auth.RoleEmployee,
			IsActive:     false,
		},
	)

	tokens := jwt.NewJWTService("test-secret", "15m", "168h")
	return NewAuthService(accounts, tokens), accounts
}

func TestLogin(t *testing.T) {
	svc, accounts := newAuthFixture(t)

	resp, refreshToken, refreshExpiresAt, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "worker@akademika.id",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Greater(t, refreshExpiresAt, resp.ExpiresAt, "the refresh token outlives the access token")
	assert.Equal(t, auth.RoleEmployee, resp.Role)
	require.NotNil(t, resp.EmployeeID)
	assert.Equal(t, "emp-1", *resp.EmployeeID)

	acc, err := accounts.GetByID(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.NotNil(t, acc.LastLoginAt)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, _, _, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "worker@akademika.id",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmailIsIndistinguishable(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, _, _, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "nobody@akademika.id",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials, "unknown accounts answer like wrong passwords")
}

func TestLoginInactiveAccount(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, _, _, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "disabled@akademika.id",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, auth.ErrAccountInactive)
}

func TestLoginValidation(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, _, _, err := svc.Login(context.Background(), &auth.LoginRequest{Email: "not-an-email", Password: ""})
	assert.Error(t, err)
}
