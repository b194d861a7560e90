package controllers

import (
	"holidaze/internal/models"
	"holidaze/internal/providers"
	"holidaze/internal/services"
	"net/http"
)

type RatingController struct {
	logger providers.Logger
	ledger services.RatingLedgerInterface
}

type ratingLookup struct {
	Rated  bool                 `json:"rated"`
	Rating *models.RatingRecord `json:"rating"`
}

func NewRatingController(logger providers.Logger, ledger services.RatingLedgerInterface) *RatingController {
	return &RatingController{
		logger: logger,
		ledger: ledger,
	}
}

func (rc *RatingController) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rc.ledger.GetAllRatings(r.Context()))
}

func (rc *RatingController) Submit(w http.ResponseWriter, r *http.Request) {
	var input models.RatingInput
	if !decodeBody(w, r, &input) {
		return
	}
	record, err := rc.ledger.SubmitRating(r.Context(), input.VenueID, input.BookingID, input.Rating)
	if err != nil {
		writeError(w, r, rc.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

// ByBooking answers whether a booking was rated; an unrated booking is not an error.
func (rc *RatingController) ByBooking(w http.ResponseWriter, r *http.Request) {
	booking := r.URL.Query().Get("booking")
	if booking == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	record, ok := rc.ledger.GetRating(r.Context(), booking)
	writeJSON(w, http.StatusOK, ratingLookup{Rated: ok, Rating: record})
}

func (rc *RatingController) ByVenue(w http.ResponseWriter, r *http.Request) {
	venue := r.URL.Query().Get("venue")
	if venue == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	record, ok := rc.ledger.GetRatingByVenueID(r.Context(), venue)
	writeJSON(w, http.StatusOK, ratingLookup{Rated: ok, Rating: record})
}
