package services

import (
	"context"
	"holidaze/internal/models"
	"holidaze/internal/providers"
)

type BookingApi interface {
	GetVenue(ctx context.Context, id string) (*models.Venue, error)
	CreateBooking(ctx context.Context, form *models.BookingForm) (*models.Booking, error)
}

type BookingServiceInterface interface {
	Create(ctx context.Context, form *models.BookingForm) (*models.Booking, error)
}

// BookingService creates a booking and hands it to the profile view through
// the receipt mailbox.
type BookingService struct {
	api     BookingApi
	mailbox ReceiptMailboxInterface
	logger  providers.Logger
}

func NewBookingService(api BookingApi, mailbox ReceiptMailboxInterface, logger providers.Logger) BookingServiceInterface {
	return &BookingService{
		api:     api,
		mailbox: mailbox,
		logger:  logger,
	}
}

func (bs *BookingService) Create(ctx context.Context, form *models.BookingForm) (*models.Booking, error) {
	if verr := validateBooking(form); verr != nil {
		return nil, verr
	}

	venue, err := bs.api.GetVenue(ctx, form.VenueID)
	if err != nil {
		return nil, err
	}
	if venue.MaxGuests > 0 && form.Guests > venue.MaxGuests {
		return nil, &models.ValidationError{Errors: map[string]string{
			"guests": "Too many guests for this venue",
		}}
	}

	booking, err := bs.api.CreateBooking(ctx, form)
	if err != nil {
		bs.logger.Errorf(providers.TypePost, "Booking for venue %s failed: %s", form.VenueID, err)
		return nil, err
	}

	bs.mailbox.Publish(models.NewReceiptMessage(booking, venue))
	bs.logger.Infof(providers.TypePost, "Booking %s created for venue %s", booking.ID, venue.ID)
	return booking, nil
}

func validateBooking(form *models.BookingForm) *models.ValidationError {
	verr := &models.ValidationError{}
	if form.VenueID == "" {
		verr.AddError("venueId", "Venue is required")
	}
	if form.DateFrom.IsZero() {
		verr.AddError("dateFrom", "Check-in date is required")
	}
	if form.DateTo.IsZero() {
		verr.AddError("dateTo", "Check-out date is required")
	}
	if !form.DateFrom.IsZero() && !form.DateTo.IsZero() && !form.DateTo.After(form.DateFrom) {
		verr.AddError("dateTo", "Check-out must be after check-in")
	}
	if form.Guests < 1 {
		verr.AddError("guests", "At least one guest is required")
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}
