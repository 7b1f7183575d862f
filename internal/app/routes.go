package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (app *Application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(app.requestLogger)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)
	r.Use(app.ensureGuestUserSession)

	r.Get("/health", app.GetHealth)
	r.Get("/movies", app.GetMovies)
	r.Get("/theatres", app.GetTheatres)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/request-otp", app.RequestOTP)
		r.Post("/verify-otp", app.VerifyOTP)
		r.Post("/logout", app.Logout)
	})

	r.Route("/booking", func(r chi.Router) {
		r.Post("/showtime", app.SelectShowtime)
		r.Delete("/", app.AbandonBooking)
		r.Get("/seats", app.GetSeatMap)
		r.Post("/seats/{seatId}/toggle", app.ToggleSeat)
		r.Delete("/seats", app.ClearSeatSelection)
		r.Get("/concessions", app.GetConcessions)
		r.Post("/concessions/{itemId}", app.UpdateConcession)
		r.Put("/promo", app.ApplyPromoCode)
		r.Get("/totals", app.GetTotals)
	})

	r.Route("/payments", func(r chi.Router) {
		r.Use(app.requireAuthentication)
		r.Post("/", app.CreatePayment)
		r.Get("/{paymentId}", app.GetPayment)
	})

	r.Get("/bookings/latest", app.GetLatestBooking)

	return r
}
