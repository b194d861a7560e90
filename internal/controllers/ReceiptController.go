package controllers

import (
	"holidaze/internal/models"
	"holidaze/internal/providers"
	"holidaze/internal/services"
	"net/http"
)

type ReceiptController struct {
	logger       providers.Logger
	mailbox      services.ReceiptMailboxInterface
	orchestrator services.ReceiptOrchestratorInterface
}

type receiptResponse struct {
	State   string              `json:"state"`
	Receipt *models.ReceiptView `json:"receipt,omitempty"`
	Profile *models.Profile     `json:"profile,omitempty"`
}

func NewReceiptController(logger providers.Logger, mailbox services.ReceiptMailboxInterface, orchestrator services.ReceiptOrchestratorInterface) *ReceiptController {
	return &ReceiptController{
		logger:       logger,
		mailbox:      mailbox,
		orchestrator: orchestrator,
	}
}

// Receipt is what the profile view calls on load. It drains the mailbox and
// answers 204 when there is nothing to show. A load without a fresh booking
// is a reload and starts idle, even if the last receipt was never dismissed.
func (rc *ReceiptController) Receipt(w http.ResponseWriter, r *http.Request) {
	msg := rc.mailbox.Take()
	if msg == nil || !rc.orchestrator.Observe(r.Context(), msg) {
		rc.orchestrator.Dismiss()
		w.WriteHeader(http.StatusNoContent)
		return
	}

	receipt, ok := rc.orchestrator.Receipt()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, receiptResponse{
		State:   rc.orchestrator.State().String(),
		Receipt: receipt.View(),
		Profile: rc.orchestrator.Profile(),
	})
}

func (rc *ReceiptController) Dismiss(w http.ResponseWriter, r *http.Request) {
	rc.orchestrator.Dismiss()
	w.WriteHeader(http.StatusNoContent)
}

// ViewBookings closes the receipt and returns the refreshed bookings, if any.
func (rc *ReceiptController) ViewBookings(w http.ResponseWriter, r *http.Request) {
	rc.orchestrator.ViewBookings()

	bookings := []*models.Booking{}
	if profile := rc.orchestrator.Profile(); profile != nil && profile.Bookings != nil {
		bookings = profile.Bookings
	}
	writeJSON(w, http.StatusOK, bookings)
}
