package booking

import "railbooking.org/internal/fare"

// Passenger is one traveller named in a booking request.
type Passenger struct {
	FirstName string
	LastName  string
}

func (p Passenger) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Booking is a confirmed seat for one passenger.
type Booking struct {
	Passenger     Passenger
	Number        int64
	Train         *fare.Train
	TotalPrice    float64
	DiscountLabel string
}

// Journey holds the validated, passenger independent part of a request.
type Journey struct {
	Time         fare.TimeValue
	StartStation int
	EndStation   int
	TrainChoice  int
}
