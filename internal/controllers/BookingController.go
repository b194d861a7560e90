package controllers

import (
	"holidaze/internal/models"
	"holidaze/internal/providers"
	"holidaze/internal/services"
	"net/http"
)

type BookingController struct {
	logger  providers.Logger
	service services.BookingServiceInterface
}

func NewBookingController(logger providers.Logger, service services.BookingServiceInterface) *BookingController {
	return &BookingController{
		logger:  logger,
		service: service,
	}
}

func (bc *BookingController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.BookingForm
	if !decodeBody(w, r, &form) {
		return
	}
	booking, err := bc.service.Create(r.Context(), &form)
	if err != nil {
		writeError(w, r, bc.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}
