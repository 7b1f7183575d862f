package app

import (
	"net/http"

	"github.com/eventura/booking-api/api"
	"github.com/eventura/booking-api/internal/domain"
)

// GetTotals returns the full price breakdown for the active session. The
// breakdown is recomputed on every call; nothing here is cached.
func (app *Application) GetTotals(w http.ResponseWriter, r *http.Request) {
	session := app.withBookingSession(w, r, func(*domain.BookingSession) (bool, bool) {
		return false, true
	})
	if session == nil {
		return
	}

	breakdown := session.Totals(app.catalogItems, app.fees)

	resp := api.TotalsResponse{
		Currency:   session.Currency,
		Seats:      session.Selection.Labels(),
		PromoCode:  session.PromoCode,
		Totals:     toApiTotals(breakdown),
		CanProceed: breakdown.SeatsCount > 0,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
