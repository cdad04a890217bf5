package user

import (
	"context"
	"encoding/json"
	"time"

	"scopex/models"
	"scopex/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	sessionPrefix = "session:"
	sessionTTL    = 12 * time.Hour
)

// sessionRecord is what gets persisted per login: the identity plus a
// password snapshot. The snapshot is re-checked against the directory on
// every request, so a changed or removed account silently invalidates the
// session and forces a fresh login.
type sessionRecord struct {
	UserID    string    `json:"userId"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateSession persists a new session for an authenticated user and
// returns a signed token for the client to hold.
func (s *DefaultUserService) CreateSession(ctx context.Context, usr models.CRMUser) (string, error) {
	sessionID := uuid.New().String()
	rec := sessionRecord{
		UserID:    usr.ID,
		Password:  usr.Password,
		CreatedAt: time.Now(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	if err := s.Sessions.Set(ctx, sessionPrefix+sessionID, data, sessionTTL).Err(); err != nil {
		return "", err
	}
	return utils.GenerateSessionToken(sessionID, sessionTTL)
}

// ValidateSession resolves a token back to its directory entry. Any
// mismatch clears the session rather than reporting why.
func (s *DefaultUserService) ValidateSession(ctx context.Context, token string) (*models.CRMUser, error) {
	sessionID, err := utils.ExtractSessionIDFromToken(token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	data, err := s.Sessions.Get(ctx, sessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	var rec sessionRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		_ = s.Sessions.Del(ctx, sessionPrefix+sessionID).Err()
		return nil, ErrInvalidCredentials
	}

	usr, err := s.GetUserByID(ctx, rec.UserID)
	if err != nil || usr == nil || usr.Password != rec.Password {
		_ = s.Sessions.Del(ctx, sessionPrefix+sessionID).Err()
		return nil, ErrInvalidCredentials
	}
	return usr, nil
}

// ClearSession logs the session out.
func (s *DefaultUserService) ClearSession(ctx context.Context, token string) error {
	sessionID, err := utils.ExtractSessionIDFromToken(token)
	if err != nil {
		return nil
	}
	return s.Sessions.Del(ctx, sessionPrefix+sessionID).Err()
}
