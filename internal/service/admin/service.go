package admin

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/hadirin/attendance-backend-go/internal/domain/admin"
	"github.com/hadirin/attendance-backend-go/internal/pkg/jwt"
)

type AdminServiceImpl struct {
	admin.AdminRepository
	jwtService jwt.Service
}

// Register implements admin.AdminService.
func (a *AdminServiceImpl) Register(ctx context.Context, req admin.RegisterRequest) (admin.AdminResponse, error) {
	if err := req.Validate(); err != nil {
		return admin.AdminResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return admin.AdminResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.AdminRepository.Create(ctx, admin.Admin{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
	})
	if err != nil {
		return admin.AdminResponse{}, err
	}

	return admin.AdminResponse{
		ID:       created.ID,
		Username: created.Username,
		Role:     created.Role,
	}, nil
}

// Login implements admin.AdminService. A wrong password and an unknown
// username both come back as ErrInvalidCredentials.
func (a *AdminServiceImpl) Login(ctx context.Context, req admin.LoginRequest) (admin.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return admin.LoginResponse{}, err
	}

	acct, err := a.AdminRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			return admin.LoginResponse{}, admin.ErrInvalidCredentials
		}
		return admin.LoginResponse{}, fmt.Errorf("failed to look up admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(req.Password)); err != nil {
		return admin.LoginResponse{}, admin.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(acct.ID, acct.Username, acct.Role)
	if err != nil {
		return admin.LoginResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return admin.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func NewAdminService(adminRepo admin.AdminRepository, jwtService jwt.Service) admin.AdminService {
	return &AdminServiceImpl{
		AdminRepository: adminRepo,
		jwtService:      jwtService,
	}
}
