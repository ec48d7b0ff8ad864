package auth

import "context"

type Service interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, string, int64, error)
	GetAccount(ctx context.Context, id string) (*Account, error)
}
