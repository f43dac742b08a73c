package restapi

import (
	"bytes"
	"encoding/json"
	"net/http"

	"railbooking.org/internal/models"
)

// sendResponse encodes before writing so an encoding failure can still become a 500.
func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(response); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	setJSONResponseType(w)
	if _, err := w.Write(buf.Bytes()); err != nil {
		api.Logger.Error("failed to write response", "error", err)
	}
}

func setJSONResponseType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
}
