// Command cgi serves the booking confirmation page as a CGI program. The web
// server passes the booking parameters in QUERY_STRING.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cgi"
	"os"

	"railbooking.org/internal/app"
	"railbooking.org/internal/appconf"
	"railbooking.org/internal/logging"
	"railbooking.org/internal/webui"
)

func main() {
	cfg, err := appconf.LoadFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// stdout carries the CGI response
	logger := logging.NewStructuredLogger(os.Stderr, slog.LevelWarn)

	if err := cgi.Serve(newHandler(cfg, logger)); err != nil {
		logging.LogError(logger, "cgi request failed", err, slog.String("component", "cgi"))
		os.Exit(1)
	}
}

// newHandler answers every CGI request with the booking page, whatever the script path.
func newHandler(cfg appconf.Config, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(webui.NewWebUI(app.New(cfg, logger)).BookingPageHandler)
}
