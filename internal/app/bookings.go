package app

import (
	"errors"
	"net/http"

	"github.com/eventura/booking-api/api"
	"github.com/eventura/booking-api/internal/domain"
)

// GetLatestBooking returns the newest confirmed booking for this cookie,
// which backs the confirmation view after checkout.
func (app *Application) GetLatestBooking(w http.ResponseWriter, r *http.Request) {
	sessionID := app.sessionManager.Token(r.Context())

	booking, err := app.bookingRepo.GetLatestBySession(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.BookingResponse{
		Booking: api.Booking{
			Id:          booking.ID,
			PaymentId:   booking.PaymentID,
			MovieTitle:  booking.MovieTitle,
			TheatreName: booking.TheatreName,
			Showtime:    booking.Showtime,
			Seats:       booking.Seats,
			TicketCount: booking.TicketCount,
			Breakdown:   toApiTotals(booking.Breakdown),
			Amount:      booking.Amount,
			Currency:    booking.Currency,
		},
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
