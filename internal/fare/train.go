package fare

import (
	"errors"

	"railbooking.org/internal/apierror"
)

const (
	// DiscountMultiplier is applied to the base fare inside the discount window.
	DiscountMultiplier = 0.6

	DiscountApplied = "Discount Applied"
	NoDiscount      = "No Discount"
)

// DiscountWindow is an inclusive range of comparable time values.
type DiscountWindow struct {
	Start float64
	End   float64
}

// Contains reports whether start <= t <= end.
func (w DiscountWindow) Contains(t float64) bool {
	return t >= w.Start && t <= w.End
}

// Train is a catalog entry: named stations with a base price each and a discount window.
type Train struct {
	id       int
	name     string
	stations []string
	prices   []float64
	window   DiscountWindow
}

// NewTrain builds a train. stations and prices are aligned by index and
// there must be at least two of them.
func NewTrain(id int, name string, stations []string, prices []float64, window DiscountWindow) (*Train, error) {
	if len(stations) != len(prices) {
		return nil, errors.New("stations and prices must have the same length")
	}
	if len(stations) < 2 {
		return nil, errors.New("a train needs at least two stations")
	}
	if window.Start > window.End {
		return nil, errors.New("discount window starts after it ends")
	}

	return &Train{
		id:       id,
		name:     name,
		stations: append([]string(nil), stations...),
		prices:   append([]float64(nil), prices...),
		window:   window,
	}, nil
}

func (t *Train) ID() int {
	return t.id
}

func (t *Train) Name() string {
	return t.name
}

func (t *Train) StationCount() int {
	return len(t.stations)
}

func (t *Train) Window() DiscountWindow {
	return t.window
}

// StationName returns the station at a 0-based index, or "" when out of bounds.
func (t *Train) StationName(index int) string {
	if index < 0 || index >= len(t.stations) {
		return ""
	}
	return t.stations[index]
}

// PriceAt returns the base price at a 0-based station index.
// An out of bounds index costs 0; it is not an error.
func (t *Train) PriceAt(index int) float64 {
	if index < 0 || index >= len(t.prices) {
		return 0
	}
	return t.prices[index]
}

func (t *Train) IsDiscountActive(timeComparable float64) bool {
	return t.window.Contains(timeComparable)
}

func (t *Train) DiscountLabel(timeComparable float64) string {
	if t.IsDiscountActive(timeComparable) {
		return DiscountApplied
	}
	return NoDiscount
}

// TotalFare is the sum of the base prices of the 1-based start and end
// stations, reduced by 40% inside the discount window. The result is not rounded.
func (t *Train) TotalFare(timeComparable float64, startStation, endStation int) (float64, error) {
	if !t.validStation(startStation) || !t.validStation(endStation) || startStation == endStation {
		return 0, apierror.Validation("", apierror.MsgInvalidStationPair)
	}

	total := t.PriceAt(startStation-1) + t.PriceAt(endStation-1)
	if t.IsDiscountActive(timeComparable) {
		total *= DiscountMultiplier
	}

	return total, nil
}

func (t *Train) validStation(station int) bool {
	return station >= 1 && station <= len(t.stations)
}
