package models

import "time"

type Media struct {
	Url string `json:"url"`
	Alt string `json:"alt"`
}

type VenueMeta struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

type VenueLocation struct {
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	Zip       string  `json:"zip,omitempty"`
	Country   string  `json:"country,omitempty"`
	Continent string  `json:"continent,omitempty"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

type Venue struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Media       []Media       `json:"media"`
	Price       float64       `json:"price"`
	MaxGuests   int           `json:"maxGuests"`
	Rating      float64       `json:"rating"`
	Meta        VenueMeta     `json:"meta"`
	Location    VenueLocation `json:"location"`
	Owner       *User         `json:"owner,omitempty"`
	Bookings    []*Booking    `json:"bookings,omitempty"`
	Created     time.Time     `json:"created"`
	Updated     time.Time     `json:"updated"`
}

// VenueForm is the create-venue payload as sent to the remote API.
type VenueForm struct {
	Name        string        `json:"name" validate:"required,notblank"`
	Description string        `json:"description" validate:"required,notblank"`
	Media       []Media       `json:"media,omitempty"`
	Price       float64       `json:"price" validate:"gt=0"`
	MaxGuests   int           `json:"maxGuests" validate:"gte=0"`
	Rating      float64       `json:"rating" validate:"gte=0,lte=5"`
	Meta        VenueMeta     `json:"meta"`
	Location    VenueLocation `json:"location"`
}
