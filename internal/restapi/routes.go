package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// withRateLimit applies the per key rate limiter when one is configured.
func (api *RestAPI) withRateLimit(handler http.Handler) http.Handler {
	return api.rateLimiter.Handler(handler)
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/bookings.json", api.withRateLimit(validateAPIKey(api, api.bookingsHandler)))
	router.Handler(http.MethodGet, "/api/trains.json", api.withRateLimit(validateAPIKey(api, api.trainsHandler)))
	router.Handler(http.MethodGet, "/api/trains/:id", api.withRateLimit(validateAPIKey(api, api.trainHandler)))
}

// Handler wraps router with the middleware shared by every route.
func Handler(router http.Handler, api *RestAPI) http.Handler {
	return securityHeaders(
		NewRequestLoggingMiddleware(api.Logger)(
			CompressionMiddleware(router)))
}
