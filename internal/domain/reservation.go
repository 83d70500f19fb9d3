package domain

import "time"

// Reservation is one passenger booking in the reservation manager.
type Reservation struct {
	ID           int64
	Name         string
	FlightNumber string
	Departure    string
	Destination  string
	Date         string
	SeatNumber   string
	CreatedAt    time.Time
}

// Fields returns the business fields in form order.
func (r Reservation) Fields() []string {
	return []string{r.Name, r.FlightNumber, r.Departure, r.Destination, r.Date, r.SeatNumber}
}

// Validate reports ErrValidation unless every business field is non-empty.
// Values are checked as entered; whitespace counts as content.
func (r Reservation) Validate() error {
	for _, f := range r.Fields() {
		if f == "" {
			return NewValidationError("all fields are required")
		}
	}
	return nil
}

// SameBooking compares business fields only.
func (r Reservation) SameBooking(other Reservation) bool {
	a, b := r.Fields(), other.Fields()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
