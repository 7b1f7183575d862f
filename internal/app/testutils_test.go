package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/eventura/booking-api/api"
	"github.com/eventura/booking-api/internal/domain"
	"github.com/eventura/booking-api/internal/mailer"
	"github.com/eventura/booking-api/internal/mocks"
	"github.com/eventura/booking-api/internal/validator"
	"github.com/go-chi/chi/v5"
)

func newTestApplication(opts ...func(*Application)) *Application {
	cfg := config{env: "test"}
	cfg.pricing.ticketPrice = 250
	cfg.pricing.currency = "INR"

	app := &Application{
		config:         cfg,
		validator:      validator.NewValidator(),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessionManager: scs.New(),
		userRepo:       &mocks.MockUserRepo{},
		paymentRepo:    &mocks.MockPaymentRepo{},
		bookingRepo:    &mocks.MockBookingRepo{},
		mailer:         mailer.NewMockMailer(),
		catalogItems:   domain.DefaultConcessionsCatalog(),
		fees:           domain.DefaultFeeConfig(),
		randSource: func() *rand.Rand {
			return rand.New(rand.NewPCG(7, 42))
		},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func setupTestSession(t *testing.T, app *Application, r *http.Request) *http.Request {
	ctx, err := app.sessionManager.Load(r.Context(), "session")
	if err != nil {
		t.Errorf("Failed to load session: %v", err)
	}

	return r.WithContext(ctx)
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest(method, url, bytes.NewReader(jsonData))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

// newTestBookingSession builds a session with a fully known layout, so
// assertions do not depend on the random reservation draw.
func newTestBookingSession(reserved domain.SeatSet) *domain.BookingSession {
	if reserved == nil {
		reserved = make(domain.SeatSet)
	}

	return &domain.BookingSession{
		ID: "bs-test",
		Showtime: domain.ShowtimeContext{
			MovieID:     "m1",
			MovieTitle:  "Interstellar",
			TheatreID:   "t1-mumbai-0",
			TheatreName: "Eventura Cinemas - Downtown",
			Showtime:    "06:10 PM",
		},
		TicketPrice: 250,
		Currency:    "INR",
		Layout: domain.SeatLayout{
			Rows:       10,
			Cols:       14,
			AisleAfter: 7,
			Reserved:   reserved,
			Wheelchair: domain.SeatSet{
				{Row: 1, Col: 6}: true,
				{Row: 1, Col: 7}: true,
				{Row: 2, Col: 6}: true,
				{Row: 2, Col: 7}: true,
			},
		},
		Selection: domain.NewSeatSelection(),
		Cart:      make(domain.ConcessionsCart),
	}
}

func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func marshalSession(t *testing.T, session *domain.BookingSession) string {
	t.Helper()

	payload, err := json.Marshal(session)
	if err != nil {
		t.Fatal(err)
	}

	return string(payload)
}
