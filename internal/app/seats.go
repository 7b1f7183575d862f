package app

import (
	"net/http"

	"github.com/eventura/booking-api/api"
	"github.com/eventura/booking-api/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (app *Application) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	session := app.withBookingSession(w, r, func(*domain.BookingSession) (bool, bool) {
		return false, true
	})
	if session == nil {
		return
	}

	resp := toSeatMapResponse(session, app.catalogItems, app.fees)

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// ToggleSeat flips the selection state of one seat. Toggling a reserved or
// out-of-bounds seat leaves the selection untouched rather than failing;
// the refreshed seat map tells the client what actually happened.
func (app *Application) ToggleSeat(w http.ResponseWriter, r *http.Request) {
	seatID, err := domain.ParseSeatID(chi.URLParam(r, "seatId"))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	session := app.withBookingSession(w, r, func(session *domain.BookingSession) (bool, bool) {
		session.ToggleSeat(seatID)
		return true, true
	})
	if session == nil {
		return
	}

	resp := toSeatMapResponse(session, app.catalogItems, app.fees)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ClearSeatSelection(w http.ResponseWriter, r *http.Request) {
	session := app.withBookingSession(w, r, func(session *domain.BookingSession) (bool, bool) {
		session.ClearSelection()
		return true, true
	})
	if session == nil {
		return
	}

	resp := toSeatMapResponse(session, app.catalogItems, app.fees)

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeatMapResponse(
	session *domain.BookingSession,
	catalog domain.ConcessionsCatalog,
	fees domain.FeeConfig) api.SeatMapResponse {

	layout := session.Layout

	seatRows := make([]api.SeatRow, layout.Rows)
	for row := 0; row < layout.Rows; row++ {
		seats := make([]api.Seat, layout.Cols)

		for col := 0; col < layout.Cols; col++ {
			id := domain.SeatID{Row: row, Col: col}

			seats[col] = api.Seat{
				Id:         id.String(),
				Row:        row,
				Column:     col,
				Label:      id.Label(),
				Reserved:   layout.Reserved.Contains(id),
				Wheelchair: layout.Wheelchair.Contains(id),
				Selected:   session.Selection.Contains(id),
			}
		}

		seatRows[row] = api.SeatRow{
			Row:   row,
			Label: domain.SeatID{Row: row}.Label()[:1],
			Seats: seats,
		}
	}

	return api.SeatMapResponse{
		TheatreId:   session.Showtime.TheatreID,
		TheatreName: session.Showtime.TheatreName,
		MovieTitle:  session.Showtime.MovieTitle,
		Showtime:    session.Showtime.Showtime,
		Rows:        layout.Rows,
		Cols:        layout.Cols,
		AisleAfter:  layout.AisleAfter,
		SeatRows:    seatRows,
		Totals:      toApiTotals(session.Totals(catalog, fees)),
	}
}

func toApiTotals(breakdown domain.PriceBreakdown) api.Totals {
	return api.Totals{
		SeatsCount:      breakdown.SeatsCount,
		TicketsSubtotal: breakdown.TicketsSubtotal,
		FnbSubtotal:     breakdown.FnbSubtotal,
		Discount:        breakdown.Discount,
		ConvenienceFee:  breakdown.ConvenienceFee,
		Tax:             breakdown.Tax,
		GrandTotal:      breakdown.GrandTotal,
	}
}
