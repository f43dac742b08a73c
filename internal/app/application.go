package app

import (
	"log/slog"

	"railbooking.org/internal/appconf"
	"railbooking.org/internal/booking"
	"railbooking.org/internal/fare"
)

// Application holds the dependencies shared by the HTTP handlers, the web UI
// and the CGI entry point.
type Application struct {
	Config   appconf.Config
	Logger   *slog.Logger
	Catalog  *fare.Catalog
	Bookings *booking.Service
}

// New wires an Application around the built in train catalog.
// A nil logger falls back to slog.Default().
func New(cfg appconf.Config, logger *slog.Logger) *Application {
	if logger == nil {
		logger = slog.Default()
	}

	catalog := fare.DefaultCatalog()
	processor := booking.NewProcessor(catalog, cfg.MaxPassengers)

	mode := cfg.SequenceMode
	if mode == "" {
		mode = booking.SequencePerRequest
	}

	return &Application{
		Config:   cfg,
		Logger:   logger,
		Catalog:  catalog,
		Bookings: booking.NewService(processor, mode),
	}
}
