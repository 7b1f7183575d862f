package app

import (
	"errors"
	"net/http"

	"github.com/eventura/booking-api/api"
	"github.com/eventura/booking-api/internal/domain"
)

// SelectShowtime starts a fresh booking session for the chosen movie,
// theatre and showtime. Any previous session for this cookie is discarded
// together with its layout, selection, cart and promo code.
func (app *Application) SelectShowtime(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.SelectShowtimeRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	showtime := domain.ShowtimeContext{
		MovieID:     input.MovieId,
		MovieTitle:  input.MovieTitle,
		TheatreID:   input.TheatreId,
		TheatreName: input.TheatreName,
		Showtime:    input.Showtime,
	}

	session := domain.NewBookingSession(
		showtime,
		app.config.pricing.ticketPrice,
		app.config.pricing.currency,
		app.randSource(),
	)

	sessionID := app.sessionManager.Token(r.Context())

	err = app.saveBookingSession(r.Context(), sessionID, session)
	if err != nil {
		logger.Error("failed to persist new booking session", "error", err)
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info(
		"booking session started",
		"booking_session_id", session.ID,
		"theatre_id", showtime.TheatreID,
		"open_seats", session.Layout.OpenSeats(),
	)

	resp := toSeatMapResponse(session, app.catalogItems, app.fees)

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// AbandonBooking drops the active booking session, if any.
func (app *Application) AbandonBooking(w http.ResponseWriter, r *http.Request) {
	sessionID := app.sessionManager.Token(r.Context())

	err := app.deleteBookingSession(r.Context(), sessionID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// withBookingSession loads the active session, hands it to fn, and persists
// it back when fn reports a mutation. Handlers stay declarative: they only
// mutate the session value and build a response.
func (app *Application) withBookingSession(
	w http.ResponseWriter,
	r *http.Request,
	fn func(session *domain.BookingSession) (mutated bool, ok bool),
) *domain.BookingSession {

	sessionID := app.sessionManager.Token(r.Context())

	session, err := app.getBookingSession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveSession) {
			app.notFoundResponseWithErr(w, r, domain.ErrNoActiveSession)
		} else {
			app.serverErrorResponse(w, r, err)
		}

		return nil
	}

	mutated, ok := fn(session)
	if !ok {
		return nil
	}

	if mutated {
		err = app.saveBookingSession(r.Context(), sessionID, session)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return nil
		}
	}

	return session
}
