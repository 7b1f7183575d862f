package app

import (
	"net/http"

	"github.com/eventura/booking-api/api"
	"github.com/eventura/booking-api/internal/domain"
)

// ApplyPromoCode evaluates a promo code against the session. A rejected
// code clears any previously active one, so the persisted session never
// carries a code the rule engine does not accept.
func (app *Application) ApplyPromoCode(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.PromoRequest

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

	var result domain.PromoResult

	session := app.withBookingSession(w, r, func(session *domain.BookingSession) (bool, bool) {
		result = session.ApplyPromoCode(input.Code, app.catalogItems, app.fees)
		return true, true
	})
	if session == nil {
		return
	}

	if !result.Accepted {
		logger.Info("promo code rejected", "code", domain.NormalizePromoCode(input.Code))
		app.errorResponse(w, r, http.StatusUnprocessableEntity, domain.ErrInvalidPromoCode.Error())
		return
	}

	resp := api.PromoResponse{
		Accepted:  true,
		PromoCode: session.PromoCode,
		Totals:    toApiTotals(session.Totals(app.catalogItems, app.fees)),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
