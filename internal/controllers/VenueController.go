package controllers

import (
	"holidaze/internal/models"
	"holidaze/internal/providers"
	"holidaze/internal/services"
	"net/http"
)

type VenueController struct {
	logger  providers.Logger
	service services.VenueServiceInterface
}

func NewVenueController(logger providers.Logger, service services.VenueServiceInterface) *VenueController {
	return &VenueController{
		logger:  logger,
		service: service,
	}
}

func (vc *VenueController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.VenueForm
	if !decodeBody(w, r, &form) {
		return
	}
	venue, err := vc.service.Create(r.Context(), &form)
	if err != nil {
		writeError(w, r, vc.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, venue)
}

// Validate checks a form without submitting it.
func (vc *VenueController) Validate(w http.ResponseWriter, r *http.Request) {
	var form models.VenueForm
	if !decodeBody(w, r, &form) {
		return
	}
	if verr := vc.service.Validate(&form); verr != nil {
		writeJSON(w, http.StatusUnprocessableEntity, verr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
