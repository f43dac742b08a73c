package booking

import (
	"strconv"

	"railbooking.org/internal/apierror"
	"railbooking.org/internal/fare"
)

// Request parameter names.
const (
	ParamPassengerCount = "passengerCount"
	ParamJourneyTime    = "journeyTime"
	ParamStartStation   = "startStation"
	ParamEndStation     = "endStation"
	ParamTrainChoice    = "trainChoice"
	ParamFirstName      = "firstName"
	ParamLastName       = "lastName"
)

// Params is the source of already URL decoded request parameters.
// An empty value is treated as absent. url.Values satisfies it.
type Params interface {
	Get(key string) string
}

// Processor turns the raw parameters of one booking request into bookings.
// Each step returns on the first failure, and Process runs them in order.
type Processor struct {
	catalog       *fare.Catalog
	maxPassengers int
}

// NewProcessor creates a processor over catalog. A maxPassengers of zero
// or less leaves the passenger count unbounded.
func NewProcessor(catalog *fare.Catalog, maxPassengers int) *Processor {
	return &Processor{
		catalog:       catalog,
		maxPassengers: maxPassengers,
	}
}

// Process validates params and books every passenger, numbering them from seq.
// Either all passengers are booked or the first failure is returned.
func (p *Processor) Process(params Params, seq *Sequencer) ([]Booking, error) {
	count, err := p.ParsePassengerCount(params)
	if err != nil {
		return nil, err
	}

	journeyTime, err := p.ParseJourneyTime(params)
	if err != nil {
		return nil, err
	}

	journey, err := p.ParseStationsAndTrainChoice(params)
	if err != nil {
		return nil, err
	}
	journey.Time = journeyTime

	train, err := p.SelectTrain(journey.TrainChoice)
	if err != nil {
		return nil, err
	}

	passengers, err := p.BuildPassengerList(params, count)
	if err != nil {
		return nil, err
	}

	return p.ComputeBookings(train, journey, passengers, seq)
}

// ParsePassengerCount reads the number of passenger blocks in the request.
// Counts of zero or below yield no passengers.
func (p *Processor) ParsePassengerCount(params Params) (int, error) {
	raw := params.Get(ParamPassengerCount)
	if raw == "" {
		return 0, apierror.MissingField(ParamPassengerCount, apierror.MsgPassengerCountMissing)
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apierror.Format(ParamPassengerCount, apierror.MsgPassengerCountInvalid)
	}

	if p.maxPassengers > 0 && count > p.maxPassengers {
		return 0, apierror.Validation(ParamPassengerCount, apierror.MsgTooManyPassengers)
	}

	return count, nil
}

func (p *Processor) ParseJourneyTime(params Params) (fare.TimeValue, error) {
	raw := params.Get(ParamJourneyTime)
	if raw == "" {
		return fare.TimeValue{}, apierror.MissingField(ParamJourneyTime, apierror.MsgJourneyTimeMissing)
	}

	tv, err := fare.ParseTimeValue(raw)
	if err != nil {
		return fare.TimeValue{}, apierror.WithField(err, ParamJourneyTime)
	}

	return tv, nil
}

// ParseStationsAndTrainChoice only checks that the values are integers.
// Station bounds are checked when the fare is computed.
func (p *Processor) ParseStationsAndTrainChoice(params Params) (Journey, error) {
	var journey Journey
	var err error

	if journey.StartStation, err = strconv.Atoi(params.Get(ParamStartStation)); err != nil {
		return Journey{}, apierror.Format(ParamStartStation, apierror.MsgStartStationInvalid)
	}

	if journey.EndStation, err = strconv.Atoi(params.Get(ParamEndStation)); err != nil {
		return Journey{}, apierror.Format(ParamEndStation, apierror.MsgEndStationInvalid)
	}

	if journey.TrainChoice, err = strconv.Atoi(params.Get(ParamTrainChoice)); err != nil {
		return Journey{}, apierror.Format(ParamTrainChoice, apierror.MsgTrainChoiceInvalid)
	}

	return journey, nil
}

func (p *Processor) SelectTrain(choice int) (*fare.Train, error) {
	train, ok := p.catalog.Train(choice)
	if !ok {
		return nil, apierror.Validation(ParamTrainChoice, apierror.MsgTrainChoiceInvalid)
	}
	return train, nil
}

// BuildPassengerList reads firstName{i} and lastName{i} for i = 1..count.
// The first passenger with an empty name stops the list. count comes from
// the request, so it never sizes an allocation up front.
func (p *Processor) BuildPassengerList(params Params, count int) ([]Passenger, error) {
	var passengers []Passenger

	for i := 1; i <= count; i++ {
		index := strconv.Itoa(i)
		firstName := params.Get(ParamFirstName + index)
		lastName := params.Get(ParamLastName + index)

		if firstName == "" {
			return nil, apierror.MissingField(ParamFirstName+index, apierror.MsgPassengerNameMissing(i))
		}
		if lastName == "" {
			return nil, apierror.MissingField(ParamLastName+index, apierror.MsgPassengerNameMissing(i))
		}

		passengers = append(passengers, Passenger{FirstName: firstName, LastName: lastName})
	}

	return passengers, nil
}

// ComputeBookings numbers and prices each passenger in list order.
// A fare failure aborts the remaining passengers and discards the rest.
func (p *Processor) ComputeBookings(train *fare.Train, journey Journey, passengers []Passenger, seq *Sequencer) ([]Booking, error) {
	timeComparable := journey.Time.Comparable()
	bookings := make([]Booking, 0, len(passengers))

	for _, passenger := range passengers {
		number := seq.Next()

		total, err := train.TotalFare(timeComparable, journey.StartStation, journey.EndStation)
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, Booking{
			Passenger:     passenger,
			Number:        number,
			Train:         train,
			TotalPrice:    total,
			DiscountLabel: train.DiscountLabel(timeComparable),
		})
	}

	return bookings, nil
}
