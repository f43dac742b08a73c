package restapi

import (
	"time"

	"railbooking.org/internal/app"
)

// RestAPI serves the JSON endpoints over the shared Application.
type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a RestAPI limited to Config.RateLimit requests per
// second for each API key. Call Close when the server shuts down.
func NewRestAPI(application *app.Application) *RestAPI {
	return &RestAPI{
		Application: application,
		rateLimiter: NewRateLimitMiddleware(application.Config.RateLimit, time.Second),
	}
}

// Close releases the rate limiter's background cleanup.
func (api *RestAPI) Close() {
	api.rateLimiter.Stop()
}
