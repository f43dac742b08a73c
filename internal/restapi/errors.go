package restapi

import (
	"encoding/json"
	"net/http"

	"railbooking.org/internal/apierror"
	"railbooking.org/internal/models"
)

// invalidAPIKeyResponse sends a 401 Unauthorized response
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	api.sendError(w, r, models.NewErrorResponse(http.StatusUnauthorized, "permission denied", nil))
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.Logger.Error("request failed", "error", err, "path", r.URL.Path)
	api.sendError(w, r, models.NewErrorResponse(http.StatusInternalServerError, "internal server error", nil))
}

// validationErrorResponse sends a 400 Bad Request response naming the first failure
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.sendError(w, r, models.NewErrorResponse(http.StatusBadRequest, err.Error(), apierror.FieldErrors(err)))
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	api.sendError(w, r, models.NewErrorResponse(http.StatusNotFound, "resource not found", nil))
}

func (api *RestAPI) sendError(w http.ResponseWriter, r *http.Request, response models.ErrorResponseModel) {
	setJSONResponseType(w)
	w.WriteHeader(response.Code)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.Logger.Error("failed to encode error response", "error", err, "code", response.Code)
	}
}
