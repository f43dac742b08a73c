package webui

import (
	"embed"
	"html/template"

	"railbooking.org/internal/app"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// WebUI serves the HTML pages: the booking confirmation and the debug catalog dump.
type WebUI struct {
	*app.Application
}

func NewWebUI(application *app.Application) *WebUI {
	return &WebUI{Application: application}
}
