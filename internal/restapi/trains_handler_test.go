package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainsHandlerListsCatalog(t *testing.T) {
	resp, model := serveAndRetrieveEndpoint(t, "/api/trains.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	list, ok := data["list"].([]interface{})
	require.True(t, ok)
	require.Len(t, list, 2)

	express := list[0].(map[string]interface{})
	assert.Equal(t, float64(1), express["id"])
	assert.Equal(t, "Express Train", express["name"])
	assert.Equal(t, "PKR", express["currency"])

	stations, ok := express["stations"].([]interface{})
	require.True(t, ok)
	require.Len(t, stations, 4)

	last := stations[3].(map[string]interface{})
	assert.Equal(t, float64(4), last["index"])
	assert.Equal(t, "Gujrat", last["name"])
	assert.Equal(t, float64(1920), last["basePrice"])

	window := express["discountWindow"].(map[string]interface{})
	assert.Equal(t, float64(0), window["start"])
	assert.Equal(t, float64(10), window["end"])
}

func TestTrainsHandlerRequiresValidApiKey(t *testing.T) {
	resp, model := serveAndRetrieveError(t, "/api/trains.json")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "permission denied", model.Text)
}

func TestTrainHandler(t *testing.T) {
	for _, endpoint := range []string{"/api/trains/2?key=TEST", "/api/trains/2.json?key=TEST"} {
		resp, model := serveAndRetrieveEndpoint(t, endpoint)
		require.Equal(t, http.StatusOK, resp.StatusCode, endpoint)

		entry := model.Data.(map[string]interface{})["entry"].(map[string]interface{})
		assert.Equal(t, "Local Train", entry["name"])
		assert.Equal(t, float64(11), entry["discountWindow"].(map[string]interface{})["end"])
	}
}

func TestTrainHandlerUnknownTrain(t *testing.T) {
	resp, model := serveAndRetrieveError(t, "/api/trains/7?key=TEST")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
}

func TestTrainHandlerInvalidID(t *testing.T) {
	resp, model := serveAndRetrieveError(t, "/api/trains/express?key=TEST")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "id must be a number", model.Text)
	assert.Equal(t, map[string][]string{"id": {"id must be a number"}}, model.FieldErrors)
}
