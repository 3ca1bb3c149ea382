package admin

import "context"

// AdminService defines business logic for admin accounts
type AdminService interface {
	Register(ctx context.Context, req RegisterRequest) (AdminResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
