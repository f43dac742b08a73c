package fare

import "fmt"

// Currency is the currency all catalog prices are quoted in.
const Currency = "PKR"

var mainLineStations = []string{"Lahore Junction", "Gujranwala", "Wazirabad Junction", "Gujrat"}

// Catalog is the fixed set of trains a booking can choose from, keyed by choice number.
type Catalog struct {
	trains []*Train
}

// NewCatalog builds a catalog. Train ids must be unique.
func NewCatalog(trains ...*Train) (*Catalog, error) {
	seen := make(map[int]bool, len(trains))
	for _, train := range trains {
		if seen[train.ID()] {
			return nil, fmt.Errorf("duplicate train id %d", train.ID())
		}
		seen[train.ID()] = true
	}

	return &Catalog{trains: trains}, nil
}

// DefaultCatalog returns the two built in trains: 1 is the Express Train, 2 the Local Train.
func DefaultCatalog() *Catalog {
	express, err := NewTrain(1, "Express Train", mainLineStations,
		[]float64{1270, 1550, 1750, 1920}, DiscountWindow{Start: 0.0, End: 10.0})
	if err != nil {
		panic(err)
	}

	local, err := NewTrain(2, "Local Train", mainLineStations,
		[]float64{2300, 2650, 2780, 3200}, DiscountWindow{Start: 1.0, End: 11.0})
	if err != nil {
		panic(err)
	}

	catalog, err := NewCatalog(express, local)
	if err != nil {
		panic(err)
	}

	return catalog
}

// Train returns the train for a choice number.
func (c *Catalog) Train(choice int) (*Train, bool) {
	for _, train := range c.trains {
		if train.ID() == choice {
			return train, true
		}
	}
	return nil, false
}

// Trains returns the trains in catalog order.
func (c *Catalog) Trains() []*Train {
	return append([]*Train(nil), c.trains...)
}
