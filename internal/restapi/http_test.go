package restapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
	"railbooking.org/internal/app"
	"railbooking.org/internal/appconf"
	"railbooking.org/internal/booking"
	"railbooking.org/internal/logging"
	"railbooking.org/internal/models"
)

const validBookingQuery = "passengerCount=2&journeyTime=14%3A30&startStation=1&endStation=4&trainChoice=1" +
	"&firstName1=Ali&lastName1=Khan&firstName2=Sara&lastName2=Ahmed"

func testConfig() appconf.Config {
	return appconf.Config{
		Port:          4000,
		Env:           appconf.Test,
		ApiKeys:       []string{"TEST"},
		MaxPassengers: 10,
		SequenceMode:  booking.SequencePerRequest,
	}
}

// createTestApi creates a RestAPI without rate limiting, logging into buf when it is not nil.
func createTestApi(t *testing.T, buf *bytes.Buffer) *RestAPI {
	t.Helper()

	var out io.Writer = io.Discard
	if buf != nil {
		out = buf
	}

	application := app.New(testConfig(), logging.NewStructuredLogger(out, slog.LevelInfo))
	return &RestAPI{Application: application}
}

func newTestServer(api *RestAPI) *httptest.Server {
	router := httprouter.New()
	api.SetRoutes(router)
	return httptest.NewServer(Handler(router, api))
}

func get(t *testing.T, server *httptest.Server, endpoint string) (*http.Response, []byte) {
	t.Helper()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, body
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	server := newTestServer(createTestApi(t, nil))
	defer server.Close()

	resp, body := get(t, server, endpoint)

	var response models.ResponseModel
	require.NoError(t, json.Unmarshal(body, &response))

	return resp, response
}

func serveAndRetrieveError(t *testing.T, endpoint string) (*http.Response, models.ErrorResponseModel) {
	t.Helper()

	server := newTestServer(createTestApi(t, nil))
	defer server.Close()

	resp, body := get(t, server, endpoint)

	var response models.ErrorResponseModel
	require.NoError(t, json.Unmarshal(body, &response))

	return resp, response
}
