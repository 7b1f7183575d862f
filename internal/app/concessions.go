package app

import (
	"fmt"
	"net/http"

	"github.com/eventura/booking-api/api"
	"github.com/eventura/booking-api/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (app *Application) GetConcessions(w http.ResponseWriter, r *http.Request) {
	session := app.withBookingSession(w, r, func(*domain.BookingSession) (bool, bool) {
		return false, true
	})
	if session == nil {
		return
	}

	resp := toConcessionsResponse(session, app.catalogItems, app.fees)

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// UpdateConcession increments or decrements one cart line. Item ids outside
// the catalog are rejected up front; quantities floor at zero.
func (app *Application) UpdateConcession(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	if !app.catalogItems.Contains(itemID) {
		app.notFoundResponseWithErr(w, r, fmt.Errorf("unknown concession item: %q", itemID))
		return
	}

	var input api.ConcessionMutationRequest

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

	session := app.withBookingSession(w, r, func(session *domain.BookingSession) (bool, bool) {
		if input.Op == "inc" {
			session.Cart.Increment(itemID, app.catalogItems)
		} else {
			session.Cart.Decrement(itemID)
		}

		return true, true
	})
	if session == nil {
		return
	}

	resp := toConcessionsResponse(session, app.catalogItems, app.fees)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toConcessionsResponse(
	session *domain.BookingSession,
	catalog domain.ConcessionsCatalog,
	fees domain.FeeConfig) api.ConcessionsResponse {

	items := make([]api.ConcessionItem, len(catalog))
	for i, item := range catalog {
		items[i] = api.ConcessionItem{
			Id:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: session.Cart.Quantity(item.ID),
		}
	}

	return api.ConcessionsResponse{
		Items:  items,
		Totals: toApiTotals(session.Totals(catalog, fees)),
	}
}
