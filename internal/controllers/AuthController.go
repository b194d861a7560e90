package controllers

import (
	"holidaze/internal/models"
	"holidaze/internal/providers"
	"holidaze/internal/services"
	"net/http"
)

type AuthController struct {
	logger  providers.Logger
	service services.AuthServiceInterface
}

func NewAuthController(logger providers.Logger, service services.AuthServiceInterface) *AuthController {
	return &AuthController{
		logger:  logger,
		service: service,
	}
}

func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if !decodeBody(w, r, &credentials) {
		return
	}
	user, err := ac.service.Login(r.Context(), &credentials)
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := ac.service.Logout(r.Context()); err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := ac.service.Profile(r.Context())
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
