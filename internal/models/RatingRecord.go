package models

import (
	"fmt"
	"time"
)

// RatingRecord is a locally stored venue rating. BookingID is the upsert key;
// ID is informational only and never used for lookups.
type RatingRecord struct {
	ID        string    `json:"id"`
	VenueID   string    `json:"venueId"`
	BookingID string    `json:"bookingId"`
	Rating    int       `json:"rating"`
	Timestamp time.Time `json:"timestamp"`
}

func NewRatingRecord(venueID, bookingID string, rating int, now time.Time) *RatingRecord {
	return &RatingRecord{
		ID:        fmt.Sprintf("%s-%d", bookingID, now.UnixMilli()),
		VenueID:   venueID,
		BookingID: bookingID,
		Rating:    rating,
		Timestamp: now.UTC(),
	}
}

type RatingInput struct {
	VenueID   string `json:"venueId"`
	BookingID string `json:"bookingId"`
	Rating    int    `json:"rating"`
}
