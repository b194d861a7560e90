package services

import (
	"context"
	"holidaze/internal/models"
	"holidaze/internal/providers"
	"holidaze/internal/storage"
	"holidaze/internal/structures"

	json "github.com/goccy/go-json"
)

type SessionServiceInterface interface {
	ApiKey(ctx context.Context) string
	SetApiKey(ctx context.Context, key string) error
	AccessToken(ctx context.Context) string
	User(ctx context.Context) (*models.User, bool)
	Save(ctx context.Context, session *models.Session) error
	Clear(ctx context.Context) error
}

// SessionService keeps credentials in the key-value store. Unreadable or
// malformed entries read as absent.
type SessionService struct {
	store  storage.KeyValueStore
	logger providers.Logger
}

func NewSessionService(conf *structures.Config, store storage.StoreInterface, logger providers.Logger) (SessionServiceInterface, error) {
	s := &SessionService{store: store, logger: logger}
	if conf.Api.ApiKey != "" {
		if err := s.SetApiKey(context.Background(), conf.Api.ApiKey); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *SessionService) read(ctx context.Context, key string) string {
	val, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.Warnf(providers.TypeApp, "Unable to read %s: %s", key, err)
		return ""
	}
	if !ok {
		return ""
	}
	return val
}

func (s *SessionService) ApiKey(ctx context.Context) string {
	return s.read(ctx, storage.KeyApiKey)
}

func (s *SessionService) SetApiKey(ctx context.Context, key string) error {
	if err := s.store.Set(ctx, storage.KeyApiKey, key); err != nil {
		return &models.PersistenceError{Op: "write", Key: storage.KeyApiKey, Err: err}
	}
	return nil
}

func (s *SessionService) AccessToken(ctx context.Context) string {
	return s.read(ctx, storage.KeyAccessToken)
}

func (s *SessionService) User(ctx context.Context) (*models.User, bool) {
	raw := s.read(ctx, storage.KeyUser)
	if raw == "" {
		return nil, false
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user.Name == "" {
		s.logger.Warnf(providers.TypeApp, "Ignoring malformed user entry")
		return nil, false
	}
	return &user, true
}

func (s *SessionService) Save(ctx context.Context, session *models.Session) error {
	user, err := json.Marshal(session.User)
	if err != nil {
		return &models.PersistenceError{Op: "encode", Key: storage.KeyUser, Err: err}
	}
	if err := s.store.Set(ctx, storage.KeyAccessToken, session.AccessToken); err != nil {
		return &models.PersistenceError{Op: "write", Key: storage.KeyAccessToken, Err: err}
	}
	if err := s.store.Set(ctx, storage.KeyUser, string(user)); err != nil {
		return &models.PersistenceError{Op: "write", Key: storage.KeyUser, Err: err}
	}
	return nil
}

// Clear logs the user out. The api key is kept.
func (s *SessionService) Clear(ctx context.Context) error {
	for _, key := range []string{storage.KeyAccessToken, storage.KeyUser} {
		if err := s.store.Remove(ctx, key); err != nil {
			return &models.PersistenceError{Op: "remove", Key: key, Err: err}
		}
	}
	return nil
}
