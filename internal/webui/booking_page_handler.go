package webui

import (
	"bytes"
	"log/slog"
	"net/http"

	"railbooking.org/internal/apierror"
	"railbooking.org/internal/booking"
	"railbooking.org/internal/fare"
	"railbooking.org/internal/logging"
	"railbooking.org/internal/models"
)

const pageTitle = "Booking Confirmation"

// bookingPage is rendered by booking.html. A non-empty Error replaces the bookings.
type bookingPage struct {
	Title    string
	Error    string
	Bookings []models.BookingEntry
}

// BookingPageHandler renders the confirmation page for the booking described
// by the query string. A rejected request renders a single error line.
func (webUI *WebUI) BookingPageHandler(w http.ResponseWriter, r *http.Request) {
	bookings, err := webUI.Bookings.Book(r.URL.Query())
	if err != nil {
		if apierror.IsRequestError(err) {
			logging.LogBookingRejected(webUI.Logger, apierror.KindName(err), err.Error(),
				slog.String("component", "webui"))
			webUI.renderBookingPage(w, http.StatusBadRequest, bookingPage{Title: pageTitle, Error: err.Error()})
			return
		}
		logging.LogError(webUI.Logger, "booking failed", err, slog.String("component", "webui"))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(bookings) > 0 {
		logging.LogBookingCompleted(webUI.Logger, bookings[0].Train.Name(), len(bookings), bookings[0].DiscountLabel,
			slog.String("component", "webui"))
	}

	webUI.renderBookingPage(w, http.StatusOK, bookingPage{
		Title:    pageTitle,
		Bookings: bookingEntries(bookings),
	})
}

// renderBookingPage renders into a buffer first so a template failure can still become a 500.
func (webUI *WebUI) renderBookingPage(w http.ResponseWriter, status int, page bookingPage) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "booking.html", page); err != nil {
		logging.LogError(webUI.Logger, "failed to render booking page", err, slog.String("component", "webui"))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func bookingEntries(bookings []booking.Booking) []models.BookingEntry {
	entries := make([]models.BookingEntry, 0, len(bookings))
	for _, b := range bookings {
		entries = append(entries, models.NewBookingEntry(
			b.Passenger.FullName(), b.Number, b.Train.Name(), b.TotalPrice, fare.Currency, b.DiscountLabel))
	}
	return entries
}
