package booking

import (
	"fmt"
	"sync"
)

// SequenceMode selects who owns the booking number counter.
type SequenceMode string

const (
	// SequencePerRequest numbers every request from InitialBookingNumber.
	SequencePerRequest SequenceMode = "request"

	// SequencePerProcess shares one counter across all requests and never resets it.
	SequencePerProcess SequenceMode = "process"
)

func ParseSequenceMode(s string) (SequenceMode, error) {
	switch SequenceMode(s) {
	case SequencePerRequest, SequencePerProcess:
		return SequenceMode(s), nil
	default:
		return "", fmt.Errorf("unknown sequence mode %q (request|process)", s)
	}
}

// Service runs booking requests against a Processor and owns the sequencer lifecycle.
type Service struct {
	processor *Processor
	mode      SequenceMode
	shared    *Sequencer
	pool      sync.Pool
}

func NewService(processor *Processor, mode SequenceMode) *Service {
	s := &Service{
		processor: processor,
		mode:      mode,
		shared:    NewSequencer(),
	}
	s.pool.New = func() any { return NewSequencer() }
	return s
}

// Book processes one request. In SequencePerRequest mode the request borrows
// a pooled sequencer and Finalize resets it before it is reused.
func (s *Service) Book(params Params) ([]Booking, error) {
	if s.mode == SequencePerProcess {
		return s.processor.Process(params, s.shared)
	}

	seq := s.pool.Get().(*Sequencer)
	defer s.Finalize(seq)

	return s.processor.Process(params, seq)
}

// Finalize ends the request that used seq. Per request sequencers are reset
// and returned to the pool; the process wide sequencer is left counting.
func (s *Service) Finalize(seq *Sequencer) {
	if seq == nil || seq == s.shared {
		return
	}

	seq.Reset()
	s.pool.Put(seq)
}
