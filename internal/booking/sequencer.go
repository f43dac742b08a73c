package booking

import "sync"

// InitialBookingNumber is the first number a fresh or reset Sequencer issues.
const InitialBookingNumber int64 = 34556

// Sequencer issues strictly increasing booking numbers starting at
// InitialBookingNumber. The zero value is ready to use and safe for
// concurrent use.
type Sequencer struct {
	mu     sync.Mutex
	issued int64
}

func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Next returns the current booking number and advances the counter.
func (s *Sequencer) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	number := InitialBookingNumber + s.issued
	s.issued++
	return number
}

// Reset makes the next call to Next return InitialBookingNumber again.
func (s *Sequencer) Reset() {
	s.mu.Lock()
	s.issued = 0
	s.mu.Unlock()
}
