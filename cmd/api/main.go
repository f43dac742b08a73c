package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"railbooking.org/internal/app"
	"railbooking.org/internal/appconf"
	"railbooking.org/internal/booking"
	"railbooking.org/internal/logging"
	"railbooking.org/internal/restapi"
	"railbooking.org/internal/webui"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)
	application := app.New(cfg, logger)

	handler, closeHandler := newHandler(application)
	defer closeHandler()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server",
		"addr", srv.Addr,
		"env", cfg.Env.String(),
		"sequence_mode", string(cfg.SequenceMode))
	if err := serve(srv, logger); err != nil {
		logger.Error(err.Error())
		closeHandler()
		os.Exit(1)
	}
}

// serve runs srv until SIGINT or SIGTERM, then shuts it down gracefully.
func serve(srv *http.Server, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server", "addr", srv.Addr)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// loadConfig reads the environment first and lets command-line flags override it.
func loadConfig(args []string) (appconf.Config, error) {
	cfg, err := appconf.LoadFromEnv()
	if err != nil {
		return appconf.Config{}, err
	}

	fs := flag.NewFlagSet("api", flag.ContinueOnError)

	var envFlag, apiKeysFlag, sequenceModeFlag string
	fs.IntVar(&cfg.Port, "port", cfg.Port, "API server port")
	fs.StringVar(&envFlag, "env", cfg.Env.String(), "Environment (development|test|production)")
	fs.StringVar(&apiKeysFlag, "api-keys", strings.Join(cfg.ApiKeys, ","), "Comma Separated API Keys (test, etc)")
	fs.IntVar(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "Requests per second allowed for each API key, 0 disables limiting")
	fs.IntVar(&cfg.MaxPassengers, "max-passengers", cfg.MaxPassengers, "Largest passenger count accepted in one booking, 0 means no limit")
	fs.StringVar(&sequenceModeFlag, "sequence-mode", string(cfg.SequenceMode), "Booking number scope (request|process)")

	if err := fs.Parse(args); err != nil {
		return appconf.Config{}, err
	}

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	cfg.ApiKeys = appconf.ParseAPIKeys(apiKeysFlag)

	mode, err := booking.ParseSequenceMode(sequenceModeFlag)
	if err != nil {
		return appconf.Config{}, err
	}
	cfg.SequenceMode = mode

	return cfg, cfg.Validate()
}

// newHandler assembles every route behind the shared middleware. The returned
// func stops the API's background work.
func newHandler(application *app.Application) (http.Handler, func()) {
	api := restapi.NewRestAPI(application)

	router := httprouter.New()
	api.SetRoutes(router)
	webui.NewWebUI(application).SetWebUIRoutes(router)

	return restapi.Handler(router, api), api.Close
}
