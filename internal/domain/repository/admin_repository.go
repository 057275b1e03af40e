package repository

import (
	"context"
	"time"

	"tourism-service/internal/domain/entity"
)

// AdminRepository defines the interface for admin credential storage
type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	FindByID(ctx context.Context, id string) (*entity.Admin, error)
	FindActiveByUsername(ctx context.Context, username string) (*entity.Admin, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}
