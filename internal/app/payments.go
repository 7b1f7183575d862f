package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/eventura/booking-api/api"
	"github.com/eventura/booking-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CreatePayment settles the active booking. The amount is recomputed server
// side from the session; the client-submitted amount only has to agree with
// it, it is never trusted as the charge.
func (app *Application) CreatePayment(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.PaymentRequest

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

	sessionID := app.sessionManager.Token(r.Context())

	session, err := app.getBookingSession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveSession) {
			app.notFoundResponseWithErr(w, r, domain.ErrNoActiveSession)
		} else {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if session.Selection.Count() == 0 {
		app.badRequestResponse(w, r, domain.ErrEmptySelection)
		return
	}

	breakdown := session.Totals(app.catalogItems, app.fees)

	if input.Amount != breakdown.GrandTotal || input.Currency != session.Currency {
		logger.Warn(
			"payment rejected due to stale totals",
			"submitted_amount", input.Amount,
			"computed_amount", breakdown.GrandTotal,
		)
		app.editConflictResponseWithErr(w, r, domain.ErrAmountMismatch)
		return
	}

	payment := &domain.Payment{
		ID:          fmt.Sprintf("pay_%s", uuid.New().String()),
		SessionID:   sessionID,
		Method:      domain.PaymentMethod(input.Method),
		Amount:      breakdown.GrandTotal,
		Currency:    session.Currency,
		MovieTitle:  session.Showtime.MovieTitle,
		TheatreName: session.Showtime.TheatreName,
		Showtime:    session.Showtime.Showtime,
		Seats:       session.Selection.Labels(),
		TicketCount: breakdown.SeatsCount,
	}

	result, err := app.paymentProvider.Settle(r.Context(), domain.SettlementRequest{
		PaymentID: payment.ID,
		Method:    payment.Method,
		Amount:    payment.Amount,
		Currency:  payment.Currency,
		Meta:      input.Meta,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedMethod):
			app.badRequestResponse(w, r, err)
		default:
			logger.Error("payment settlement failed", "payment_id", payment.ID, "error", err)
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	payment.Status = result.Status

	err = app.paymentRepo.Create(r.Context(), payment)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicatePayment):
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if result.Status == domain.PaymentStatusSucceeded {
		err = app.confirmBooking(w, r, session, payment, breakdown)
		if err != nil {
			return
		}
	}

	resp := api.PaymentResponse{
		Ok:          result.Status != domain.PaymentStatusFailed,
		Id:          payment.ID,
		Method:      string(payment.Method),
		Amount:      payment.Amount,
		Currency:    payment.Currency,
		Status:      string(result.Status),
		Action:      result.Action,
		RedirectUrl: result.RedirectURL,
		Note:        result.Note,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetPayment reports the current status of a payment, so clients can poll
// a pending UPI collect. Payments are scoped to the caller's session; a
// payment written by another session reads as not found.
func (app *Application) GetPayment(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentId")

	payment, err := app.paymentRepo.GetById(r.Context(), paymentID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithErr(w, r, err)
		} else {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if payment.SessionID != app.sessionManager.Token(r.Context()) {
		app.notFoundResponseWithErr(w, r, domain.ErrRecordNotFound)
		return
	}

	resp := api.PaymentResponse{
		Ok:       payment.Status != domain.PaymentStatusFailed,
		Id:       payment.ID,
		Method:   string(payment.Method),
		Amount:   payment.Amount,
		Currency: payment.Currency,
		Status:   string(payment.Status),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// confirmBooking writes the confirmation record, clears the consumed
// booking session, and mails the receipt. By the time it runs the charge
// has already settled, so failures here are server errors, not rejections.
func (app *Application) confirmBooking(
	w http.ResponseWriter,
	r *http.Request,
	session *domain.BookingSession,
	payment *domain.Payment,
	breakdown domain.PriceBreakdown) error {

	logger := app.contextGetLogger(r)

	booking := &domain.Booking{
		ID:          fmt.Sprintf("bk_%s", uuid.New().String()),
		PaymentID:   payment.ID,
		SessionID:   payment.SessionID,
		MovieTitle:  session.Showtime.MovieTitle,
		TheatreName: session.Showtime.TheatreName,
		Showtime:    session.Showtime.Showtime,
		Seats:       payment.Seats,
		TicketCount: payment.TicketCount,
		Breakdown:   breakdown,
		Amount:      payment.Amount,
		Currency:    payment.Currency,
	}

	err := app.bookingRepo.Create(r.Context(), booking)
	if err != nil {
		logger.Error("failed to persist booking after settled payment", "payment_id", payment.ID, "error", err)
		app.serverErrorResponse(w, r, err)
		return err
	}

	err = app.deleteBookingSession(r.Context(), payment.SessionID)
	if err != nil {
		logger.Error("failed to clear consumed booking session", "error", err)
	}

	logger.Info("booking confirmed", "booking_id", booking.ID, "payment_id", payment.ID)

	app.sendBookingConfirmation(r, booking)

	return nil
}

func (app *Application) sendBookingConfirmation(r *http.Request, booking *domain.Booking) {
	mobile := app.contextGetMobile(r)

	user, err := app.userRepo.GetByMobile(r.Context(), mobile)
	if err != nil || user.Email == "" {
		return
	}

	go func(ctx context.Context) {
		gLogger := app.contextGetLogger(r.WithContext(ctx))

		defer func() {
			if err := recover(); err != nil {
				gLogger.Error("panic occurred during sending confirmation mail", "panic", err)
			}
		}()

		data := map[string]any{
			"BookingID":       booking.ID,
			"MovieTitle":      booking.MovieTitle,
			"TheatreName":     booking.TheatreName,
			"Showtime":        booking.Showtime,
			"Seats":           strings.Join(booking.Seats, ", "),
			"Currency":        booking.Currency,
			"TicketsSubtotal": booking.Breakdown.TicketsSubtotal,
			"FnbSubtotal":     booking.Breakdown.FnbSubtotal,
			"Discount":        booking.Breakdown.Discount,
			"ConvenienceFee":  booking.Breakdown.ConvenienceFee,
			"Tax":             booking.Breakdown.Tax,
			"GrandTotal":      booking.Breakdown.GrandTotal,
		}

		err := app.mailer.Send(user.Email, "booking_confirmation.tmpl", data)
		if err != nil {
			gLogger.Error("failed to send booking confirmation email", "error", err)
		} else {
			gLogger.Info("booking confirmation email sent")
		}
	}(r.Context())
}
