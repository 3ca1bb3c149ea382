package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hadirin/attendance-backend-go/internal/domain/admin"
	"github.com/hadirin/attendance-backend-go/internal/pkg/jwt"
)

type fakeAdminRepo struct {
	byUsername map[string]admin.Admin
}

func (f *fakeAdminRepo) Create(ctx context.Context, a admin.Admin) (admin.Admin, error) {
	if _, exists := f.byUsername[a.Username]; exists {
		return admin.Admin{}, admin.ErrUsernameTaken
	}
	a.ID = "admin-1"
	f.byUsername[a.Username] = a
	return a, nil
}

func (f *fakeAdminRepo) GetByUsername(ctx context.Context, username string) (admin.Admin, error) {
	a, ok := f.byUsername[username]
	if !ok {
		return admin.Admin{}, admin.ErrAdminNotFound
	}
	return a, nil
}

func newTestService(repo *fakeAdminRepo) admin.AdminService {
	return NewAdminService(repo, jwt.NewJWTService("test-secret-key", "15m"))
}

func TestRegister(t *testing.T) {
	t.Parallel()
	repo := &fakeAdminRepo{byUsername: map[string]admin.Admin{}}
	svc := newTestService(repo)

	resp, err := svc.Register(context.Background(), admin.RegisterRequest{
		Username: "hr-lead",
		Password: "s3cret-enough",
		Role:     "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, "hr-lead", resp.Username)
	assert.Equal(t, "admin", resp.Role)

	// Stored hash verifies against the original password
	stored := repo.byUsername["hr-lead"]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-enough")))
}

func TestRegister_ShortPasswordRejected(t *testing.T) {
	t.Parallel()
	svc := newTestService(&fakeAdminRepo{byUsername: map[string]admin.Admin{}})

	_, err := svc.Register(context.Background(), admin.RegisterRequest{
		Username: "hr-lead",
		Password: "short",
		Role:     "admin",
	})

	assert.Error(t, err)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	t.Parallel()
	repo := &fakeAdminRepo{byUsername: map[string]admin.Admin{}}
	svc := newTestService(repo)
	req := admin.RegisterRequest{Username: "hr-lead", Password: "s3cret-enough", Role: "admin"}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), req)

	assert.ErrorIs(t, err, admin.ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	t.Parallel()
	repo := &fakeAdminRepo{byUsername: map[string]admin.Admin{}}
	svc := newTestService(repo)
	_, err := svc.Register(context.Background(), admin.RegisterRequest{
		Username: "hr-lead",
		Password: "s3cret-enough",
		Role:     "admin",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), admin.LoginRequest{
		Username: "hr-lead",
		Password: "s3cret-enough",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	repo := &fakeAdminRepo{byUsername: map[string]admin.Admin{}}
	svc := newTestService(repo)
	_, err := svc.Register(context.Background(), admin.RegisterRequest{
		Username: "hr-lead",
		Password: "s3cret-enough",
		Role:     "admin",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), admin.LoginRequest{
		Username: "hr-lead",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	t.Parallel()
	svc := newTestService(&fakeAdminRepo{byUsername: map[string]admin.Admin{}})

	_, err := svc.Login(context.Background(), admin.LoginRequest{
		Username: "nobody",
		Password: "whatever!",
	})

	// Unknown usernames are indistinguishable from wrong passwords
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)
}
