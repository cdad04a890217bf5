package user

import (
	"context"
	"encoding/json"
	"strings"

	"scopex/config"
	"scopex/models"
	"scopex/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const directoryBucket = "crm:users"

func (s *DefaultUserService) loadUsers(ctx context.Context) ([]models.CRMUser, error) {
	data, err := s.Directory.Get(ctx, directoryBucket).Result()
	if err != nil {
		return nil, err
	}
	var users []models.CRMUser
	if err := json.Unmarshal([]byte(data), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *DefaultUserService) saveUsers(ctx context.Context, users []models.CRMUser) error {
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return s.Directory.Set(ctx, directoryBucket, data, 0).Err()
}

func rootAdmin() models.CRMUser {
	return models.CRMUser{
		ID:       models.RootAdminID,
		Email:    strings.ToLower(config.AppConfig.RootAdminEmail),
		Password: config.AppConfig.RootAdminPassword,
		Role:     models.RoleSuperAdmin,
		FullName: "Root Administrator",
	}
}

// Initialize seeds the directory on first run and re-applies the configured
// root password on every subsequent start. The seed credential is therefore
// not durable across redeployments; that matches the system this replaces.
func (s *DefaultUserService) Initialize(ctx context.Context) error {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return s.saveUsers(ctx, []models.CRMUser{rootAdmin()})
	}

	seed := rootAdmin()
	for i := range users {
		if users[i].ID == models.RootAdminID {
			if users[i].Password != seed.Password {
				users[i].Password = seed.Password
				return s.saveUsers(ctx, users)
			}
			return nil
		}
	}
	return s.saveUsers(ctx, append(users, seed))
}

// Authenticate matches a case-insensitive email and an exact password.
// Both miss cases yield the same ErrInvalidCredentials.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.CRMUser, error) {
	if err := s.Initialize(ctx); err != nil {
		utils.GetLogger().Error("user directory init failed", zap.Error(err))
		return nil, ErrInvalidCredentials
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	for _, u := range users {
		if strings.ToLower(u.Email) == normalized && u.Password == password {
			found := u
			return &found, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// GetAllUsers returns the full directory.
func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.CRMUser, error) {
	if err := s.Initialize(ctx); err != nil {
		return nil, err
	}
	return s.loadUsers(ctx)
}

// GetUserByID returns a single directory entry, or nil when absent.
func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.CRMUser, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

// CreateUser appends a new account. Fails when the normalized email is
// already taken.
func (s *DefaultUserService) CreateUser(ctx context.Context, email, password, role, fullName string) bool {
	logger := utils.GetLogger()
	if err := s.Initialize(ctx); err != nil {
		logger.Error("user create: directory init failed", zap.Error(err))
		return false
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		logger.Error("user create: directory read failed", zap.Error(err))
		return false
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	for _, u := range users {
		if strings.ToLower(u.Email) == normalized {
			return false
		}
	}

	users = append(users, models.CRMUser{
		ID:       "user_" + uuid.New().String(),
		Email:    normalized,
		Password: password,
		Role:     role,
		FullName: fullName,
	})
	if err := s.saveUsers(ctx, users); err != nil {
		logger.Error("user create: directory write failed", zap.Error(err))
		return false
	}
	return true
}

// RemoveUser deletes an account by id. The root seed account is protected.
func (s *DefaultUserService) RemoveUser(ctx context.Context, id string) bool {
	if id == models.RootAdminID {
		return false
	}

	logger := utils.GetLogger()
	users, err := s.loadUsers(ctx)
	if err != nil {
		logger.Error("user remove: directory read failed", zap.Error(err))
		return false
	}

	filtered := users[:0]
	for _, u := range users {
		if u.ID != id {
			filtered = append(filtered, u)
		}
	}
	if err := s.saveUsers(ctx, filtered); err != nil {
		logger.Error("user remove: directory write failed", zap.Error(err))
		return false
	}
	return true
}
