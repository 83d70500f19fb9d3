package domain

import "time"

// TimeLayout is how flight and booking times are written as text.
const TimeLayout = "2006-01-02 15:04"

type Flight struct {
	ID             int64
	FlightNumber   string
	Origin         string
	Destination    string
	DepartureTime  time.Time
	ArrivalTime    time.Time
	Price          float64
	SeatsAvailable int
}

// Booking is a seat reservation against an inventory flight.
type Booking struct {
	ID             int64
	FlightID       int64
	PassengerName  string
	PassengerEmail string
	SeatsReserved  int
	ReservedAt     time.Time
}

// BookingView is a booking joined with its flight number for listings.
type BookingView struct {
	Booking
	FlightNumber string
}
