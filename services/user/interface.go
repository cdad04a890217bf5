package user

import (
	"context"
	"errors"

	"scopex/models"

	"github.com/go-redis/redis/v8"
)

// ErrInvalidCredentials is the single authentication failure outcome. It
// deliberately carries no detail about whether the email exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService manages the CRM user directory and admin sessions.
type UserService interface {
	Initialize(ctx context.Context) error
	Authenticate(ctx context.Context, email, password string) (*models.CRMUser, error)
	GetAllUsers(ctx context.Context) ([]models.CRMUser, error)
	GetUserByID(ctx context.Context, id string) (*models.CRMUser, error)
	CreateUser(ctx context.Context, email, password, role, fullName string) bool
	RemoveUser(ctx context.Context, id string) bool

	CreateSession(ctx context.Context, usr models.CRMUser) (string, error)
	ValidateSession(ctx context.Context, token string) (*models.CRMUser, error)
	ClearSession(ctx context.Context, token string) error
}

// DefaultUserService is the production implementation. The directory lives
// in a Redis bucket, mirroring the per-browser store it replaces; sessions
// live in a dedicated Redis DB.
type DefaultUserService struct {
	Directory *redis.Client
	Sessions  *redis.Client
}
