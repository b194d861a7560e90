package controllers

import (
	"errors"
	"holidaze/internal/models"
	"holidaze/internal/testutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingController_Create(t *testing.T) {
	svc := &mockBookingService{booking: &models.Booking{ID: "b1", Guests: 2}}
	bc := NewBookingController(&testutil.MockLogger{}, svc)

	body := `{"dateFrom":"2024-06-01T00:00:00Z","dateTo":"2024-06-04T00:00:00Z","guests":2,"venueId":"v1"}`
	rr := httptest.NewRecorder()
	bc.Create(rr, httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rr.Code)
	require.Len(t, svc.forms, 1)
	assert.Equal(t, "v1", svc.forms[0].VenueID)
	assert.Equal(t, 3, models.CalculateNights(svc.forms[0].DateFrom, svc.forms[0].DateTo))
}

func TestBookingController_Create_Unauthenticated(t *testing.T) {
	bc := NewBookingController(&testutil.MockLogger{}, &mockBookingService{err: models.ErrNotAuthenticated})

	rr := httptest.NewRecorder()
	bc.Create(rr, httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{"venueId":"v1"}`)))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestBookingController_Create_TransportFailure(t *testing.T) {
	logger := &testutil.MockLogger{}
	bc := NewBookingController(logger, &mockBookingService{err: errors.New("connection refused")})

	rr := httptest.NewRecorder()
	bc.Create(rr, httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{"venueId":"v1"}`)))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, 1, logger.Count("error"))
}
