package models

type User struct {
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Bio          string `json:"bio,omitempty"`
	Avatar       *Media `json:"avatar,omitempty"`
	Banner       *Media `json:"banner,omitempty"`
	VenueManager bool   `json:"venueManager"`
}

type Profile struct {
	User
	Bookings []*Booking `json:"bookings"`
	Venues   []*Venue   `json:"venues"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is what a successful login yields.
type Session struct {
	User
	AccessToken string `json:"accessToken"`
}
