package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// TrainIDFromPath returns the train choice named by the route parameter, so
// both /api/trains/2 and /api/trains/2.json resolve to 2.
func TrainIDFromPath(r *http.Request, paramName string) (int, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName(paramName)
	return ParseTrainID(strings.TrimSuffix(raw, ".json"))
}
