package restapi

import (
	"log/slog"
	"net/http"

	"railbooking.org/internal/apierror"
	"railbooking.org/internal/booking"
	"railbooking.org/internal/fare"
	"railbooking.org/internal/logging"
	"railbooking.org/internal/models"
)

// bookingsHandler books every passenger in the query string and returns the confirmations.
func (api *RestAPI) bookingsHandler(w http.ResponseWriter, r *http.Request) {
	bookings, err := api.Bookings.Book(r.URL.Query())
	if err != nil {
		if apierror.IsRequestError(err) {
			logging.LogBookingRejected(api.Logger, apierror.KindName(err), err.Error(),
				slog.String("component", "rest_api"))
			api.validationErrorResponse(w, r, err)
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	if len(bookings) > 0 {
		logging.LogBookingCompleted(api.Logger, bookings[0].Train.Name(), len(bookings), bookings[0].DiscountLabel,
			slog.String("component", "rest_api"))
	}

	api.sendResponse(w, r, models.NewListResponse(NewBookingEntries(bookings)))
}

// NewBookingEntries converts bookings into their response entries, in order.
func NewBookingEntries(bookings []booking.Booking) []models.BookingEntry {
	entries := make([]models.BookingEntry, 0, len(bookings))
	for _, b := range bookings {
		entries = append(entries, models.NewBookingEntry(
			b.Passenger.FullName(),
			b.Number,
			b.Train.Name(),
			b.TotalPrice,
			fare.Currency,
			b.DiscountLabel,
		))
	}
	return entries
}
