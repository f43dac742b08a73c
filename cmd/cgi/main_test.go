package main

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/cgi"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"railbooking.org/internal/appconf"
	"railbooking.org/internal/booking"
	"railbooking.org/internal/logging"
)

func setCGIEnv(t *testing.T, query string) {
	t.Helper()

	t.Setenv("GATEWAY_INTERFACE", "CGI/1.1")
	t.Setenv("REQUEST_METHOD", "GET")
	t.Setenv("SERVER_PROTOCOL", "HTTP/1.1")
	t.Setenv("SCRIPT_NAME", "/cgi-bin/transport.cgi")
	t.Setenv("HTTP_HOST", "localhost")
	t.Setenv("QUERY_STRING", query)
}

func serveCGI(t *testing.T, query string, logs *bytes.Buffer) *httptest.ResponseRecorder {
	t.Helper()

	setCGIEnv(t, query)
	req, err := cgi.Request()
	require.NoError(t, err)

	cfg, err := appconf.LoadFromEnv()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	newHandler(cfg, logging.NewStructuredLogger(logs, slog.LevelWarn)).ServeHTTP(rec, req)
	return rec
}

func TestCGIBookingFromQueryString(t *testing.T) {
	query := "passengerCount=2&journeyTime=09%3A30&startStation=1&endStation=4&trainChoice=1" +
		"&firstName1=Ali&lastName1=Khan&firstName2=Sara&lastName2=Ahmed"

	var logs bytes.Buffer
	rec := serveCGI(t, query, &logs)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<h1>Booking Confirmation</h1>")
	assert.Contains(t, body, "Name: Ali Khan")
	assert.Contains(t, body, "Booking Number: 34556")
	assert.Contains(t, body, "Name: Sara Ahmed")
	assert.Contains(t, body, "Booking Number: 34557")
	assert.Contains(t, body, "Total Price: PKR 1914.00")
	assert.Contains(t, body, "Discount Status: Discount Applied")
	assert.Empty(t, logs.String(), "successful bookings are below the warn level")
}

func TestCGIRejectedRequest(t *testing.T) {
	var logs bytes.Buffer
	rec := serveCGI(t, "journeyTime=10%3A00", &logs)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "<p>Error: Missing passenger count.</p>")
	assert.Contains(t, logs.String(), `"msg":"booking_rejected"`)
}

func TestCGIUsesEnvironmentConfig(t *testing.T) {
	t.Setenv("BOOKING_MAX_PASSENGERS", "1")
	t.Setenv("BOOKING_SEQUENCE_MODE", string(booking.SequencePerRequest))

	query := "passengerCount=2&journeyTime=10%3A00&startStation=1&endStation=2&trainChoice=1"
	rec := serveCGI(t, query, &bytes.Buffer{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error: Too many passengers.")
}
