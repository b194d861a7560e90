package controllers

import (
	"context"
	"holidaze/internal/models"
)

// --- local mocks (scoped to controller tests) ---

type mockLedger struct {
	records   []*models.RatingRecord
	submitErr error
	submitted []models.RatingInput
}

func (m *mockLedger) SubmitRating(_ context.Context, venueID, bookingID string, rating int) (*models.RatingRecord, error) {
	m.submitted = append(m.submitted, models.RatingInput{VenueID: venueID, BookingID: bookingID, Rating: rating})
	if m.submitErr != nil {
		return nil, m.submitErr
	}
	rec := &models.RatingRecord{ID: bookingID + "-1", VenueID: venueID, BookingID: bookingID, Rating: rating}
	m.records = append(m.records, rec)
	return rec, nil
}

func (m *mockLedger) GetRating(_ context.Context, bookingID string) (*models.RatingRecord, bool) {
	for _, r := range m.records {
		if r.BookingID == bookingID {
			return r, true
		}
	}
	return nil, false
}

func (m *mockLedger) GetAllRatings(_ context.Context) []*models.RatingRecord {
	if m.records == nil {
		return []*models.RatingRecord{}
	}
	return m.records
}

func (m *mockLedger) HasRated(ctx context.Context, bookingID string) bool {
	_, ok := m.GetRating(ctx, bookingID)
	return ok
}

func (m *mockLedger) GetRatingByVenueID(_ context.Context, venueID string) (*models.RatingRecord, bool) {
	for _, r := range m.records {
		if r.VenueID == venueID {
			return r, true
		}
	}
	return nil, false
}

func (m *mockLedger) HasRatedVenue(ctx context.Context, venueID string) bool {
	_, ok := m.GetRatingByVenueID(ctx, venueID)
	return ok
}

type mockVenueService struct {
	verr  *models.ValidationError
	venue *models.Venue
	err   error
}

func (m *mockVenueService) Validate(_ *models.VenueForm) *models.ValidationError { return m.verr }
func (m *mockVenueService) Create(_ context.Context, _ *models.VenueForm) (*models.Venue, error) {
	return m.venue, m.err
}

type mockBookingService struct {
	booking *models.Booking
	err     error
	forms   []*models.BookingForm
}

func (m *mockBookingService) Create(_ context.Context, form *models.BookingForm) (*models.Booking, error) {
	m.forms = append(m.forms, form)
	return m.booking, m.err
}

type mockAuthService struct {
	user       *models.User
	profile    *models.Profile
	err        error
	logoutErr  error
	loggedOut  bool
	credential *models.Credentials
}

func (m *mockAuthService) Login(_ context.Context, c *models.Credentials) (*models.User, error) {
	m.credential = c
	return m.user, m.err
}

func (m *mockAuthService) Logout(_ context.Context) error {
	m.loggedOut = true
	return m.logoutErr
}

func (m *mockAuthService) Profile(_ context.Context) (*models.Profile, error) {
	return m.profile, m.err
}

type mockProfiles struct {
	profile *models.Profile
}

func (m *mockProfiles) GetProfile(_ context.Context, _ string) (*models.Profile, error) {
	return m.profile, nil
}
