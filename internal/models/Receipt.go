package models

import (
	"math"
	"time"

	"go.uber.org/atomic"
)

const (
	day            = 24 * time.Hour
	longDateLayout = "Monday, January 2, 2006"
)

// ReceiptMessage hands a freshly created booking over to the profile view.
// It can be consumed exactly once.
type ReceiptMessage struct {
	Booking  *Booking
	Venue    *Venue
	consumed atomic.Bool
}

func NewReceiptMessage(booking *Booking, venue *Venue) *ReceiptMessage {
	return &ReceiptMessage{Booking: booking, Venue: venue}
}

// Consume reports true only on the first call.
func (m *ReceiptMessage) Consume() bool {
	return m.consumed.CompareAndSwap(false, true)
}

func (m *ReceiptMessage) Consumed() bool {
	return m.consumed.Load()
}

func (m *ReceiptMessage) Complete() bool {
	return m.Booking != nil && m.Venue != nil
}

type Receipt struct {
	Booking *Booking
	Venue   *Venue
}

func (r *Receipt) Nights() int {
	if r == nil || r.Booking == nil {
		return 0
	}
	return CalculateNights(r.Booking.DateFrom, r.Booking.DateTo)
}

// Total is false when the receipt lacks data for a finite amount.
func (r *Receipt) Total() (float64, bool) {
	if r == nil || r.Booking == nil || r.Venue == nil {
		return 0, false
	}
	total := CalculateTotal(r.Nights(), r.Venue.Price, r.Booking.Guests)
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, false
	}
	return total, true
}

// CalculateNights rounds the stay up to whole 24h periods. Zero dates yield 0,
// as does a checkout before checkin.
func CalculateNights(from, to time.Time) int {
	if from.IsZero() || to.IsZero() {
		return 0
	}
	diff := to.Sub(from)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(float64(diff) / float64(day)))
}

func CalculateTotal(nights int, price float64, guests int) float64 {
	return float64(nights) * price * float64(guests)
}

// FormatDate renders an ISO-8601 timestamp as a long date. Unparsable input is
// returned as is.
func FormatDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		t, err = time.Parse(time.DateOnly, iso)
		if err != nil {
			return iso
		}
	}
	return FormatTime(t)
}

func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(longDateLayout)
}

// ReceiptView is the JSON shape of a pending receipt.
type ReceiptView struct {
	Booking  *Booking `json:"booking"`
	Venue    *Venue   `json:"venue"`
	Nights   int      `json:"nights"`
	Total    *float64 `json:"total"`
	DateFrom string   `json:"dateFrom"`
	DateTo   string   `json:"dateTo"`
}

func (r *Receipt) View() *ReceiptView {
	view := &ReceiptView{
		Booking: r.Booking,
		Venue:   r.Venue,
		Nights:  r.Nights(),
	}
	if total, ok := r.Total(); ok {
		view.Total = &total
	}
	if r.Booking != nil {
		view.DateFrom = FormatTime(r.Booking.DateFrom)
		view.DateTo = FormatTime(r.Booking.DateTo)
	}
	return view
}
