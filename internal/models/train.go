package models

// StationEntry is one stop of a train with its base price
type StationEntry struct {
	Index     int     `json:"index"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
}

// DiscountWindowEntry bounds are on the hour + minute/100 scale, so 10:30 is 10.3
type DiscountWindowEntry struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type TrainEntry struct {
	ID             int                 `json:"id"`
	Name           string              `json:"name"`
	Currency       string              `json:"currency"`
	Stations       []StationEntry      `json:"stations"`
	DiscountWindow DiscountWindowEntry `json:"discountWindow"`
}

func NewTrainEntry(id int, name, currency string, stations []StationEntry, windowStart, windowEnd float64) TrainEntry {
	if stations == nil {
		stations = []StationEntry{}
	}

	return TrainEntry{
		ID:       id,
		Name:     name,
		Currency: currency,
		Stations: stations,
		DiscountWindow: DiscountWindowEntry{
			Start: windowStart,
			End:   windowEnd,
		},
	}
}
