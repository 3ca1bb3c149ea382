package admin

import "context"

// AdminRepository defines data access methods for admin accounts.
type AdminRepository interface {
	Create(ctx context.Context, a Admin) (Admin, error)
	GetByUsername(ctx context.Context, username string) (Admin, error)
}
