package services

import (
	"context"
	"holidaze/internal/models"
	"holidaze/internal/providers"
)

type AuthApi interface {
	ProfileFetcher
	Login(ctx context.Context, credentials *models.Credentials) (*models.Session, error)
}

type AuthServiceInterface interface {
	Login(ctx context.Context, credentials *models.Credentials) (*models.User, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*models.Profile, error)
}

type AuthService struct {
	api     AuthApi
	session SessionServiceInterface
	logger  providers.Logger
}

func NewAuthService(api AuthApi, session SessionServiceInterface, logger providers.Logger) AuthServiceInterface {
	return &AuthService{
		api:     api,
		session: session,
		logger:  logger,
	}
}

func (as *AuthService) Login(ctx context.Context, credentials *models.Credentials) (*models.User, error) {
	verr := &models.ValidationError{}
	if credentials.Email == "" {
		verr.AddError("email", "Email is required")
	}
	if credentials.Password == "" {
		verr.AddError("password", "Password is required")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	session, err := as.api.Login(ctx, credentials)
	if err != nil {
		as.logger.Warnf(providers.TypePost, "Login failed for %s: %s", credentials.Email, err)
		return nil, err
	}
	if err := as.session.Save(ctx, session); err != nil {
		return nil, err
	}

	as.logger.Infof(providers.TypePost, "User %s logged in", session.Name)
	return &session.User, nil
}

func (as *AuthService) Logout(ctx context.Context) error {
	return as.session.Clear(ctx)
}

func (as *AuthService) Profile(ctx context.Context) (*models.Profile, error) {
	user, ok := as.session.User(ctx)
	if !ok {
		return nil, models.ErrNotAuthenticated
	}
	return as.api.GetProfile(ctx, user.Name)
}
