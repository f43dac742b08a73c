package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"railbooking.org/internal/appconf"
)

// SetWebUIRoutes registers the HTML pages. The debug dump is left out in production.
func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/booking", webUI.BookingPageHandler)

	if webUI.Config.Env != appconf.Production {
		router.HandlerFunc(http.MethodGet, "/debug/catalog", webUI.debugIndexHandler)
	}
}
