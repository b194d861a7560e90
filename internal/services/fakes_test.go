package services

import (
	"context"
	"holidaze/internal/models"
	"sync"
)

// fakeApi stands in for the remote client in service tests.
type fakeApi struct {
	mu sync.Mutex

	profile    *models.Profile
	profileErr error
	venue      *models.Venue
	venueErr   error
	booking    *models.Booking
	bookingErr error
	session    *models.Session
	loginErr   error

	profileCalls []string
	created      []*models.VenueForm
	bookings     []*models.BookingForm
}

func (f *fakeApi) GetProfile(_ context.Context, name string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profileCalls = append(f.profileCalls, name)
	return f.profile, f.profileErr
}

func (f *fakeApi) Login(_ context.Context, _ *models.Credentials) (*models.Session, error) {
	return f.session, f.loginErr
}

func (f *fakeApi) GetVenue(_ context.Context, _ string) (*models.Venue, error) {
	return f.venue, f.venueErr
}

func (f *fakeApi) CreateVenue(_ context.Context, form *models.VenueForm) (*models.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, form)
	if f.venueErr != nil {
		return nil, f.venueErr
	}
	return f.venue, nil
}

func (f *fakeApi) CreateBooking(_ context.Context, form *models.BookingForm) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings = append(f.bookings, form)
	return f.booking, f.bookingErr
}
