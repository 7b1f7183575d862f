package domain

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// ShowtimeContext is the movie/theatre/showtime the user is booking for.
// The venue id is opaque to the engine; it only selects the hall geometry.
type ShowtimeContext struct {
	MovieID     string
	MovieTitle  string
	TheatreID   string
	TheatreName string
	Showtime    string
}

// BookingSession owns all mutable booking state for one buyer: the active
// seat layout, the seat selection, the concessions cart, and the promo code.
// It is an explicit value held by the caller; there are no process-wide
// singletons. Selecting a new showtime discards the session and starts a
// fresh one with a new layout.
type BookingSession struct {
	ID          string
	Showtime    ShowtimeContext
	TicketPrice int64
	Currency    string
	Layout      SeatLayout
	Selection   SeatSelection
	Cart        ConcessionsCart
	PromoCode   string
	CreatedAt   time.Time
}

func NewBookingSession(showtime ShowtimeContext, ticketPrice int64, currency string, rng *rand.Rand) *BookingSession {
	return &BookingSession{
		ID:          uuid.New().String(),
		Showtime:    showtime,
		TicketPrice: ticketPrice,
		Currency:    currency,
		Layout:      NewLayoutForVenue(showtime.TheatreID, rng),
		Selection:   NewSeatSelection(),
		Cart:        make(ConcessionsCart),
		PromoCode:   "",
		CreatedAt:   time.Now(),
	}
}

func (s *BookingSession) ToggleSeat(id SeatID) {
	s.Selection.Toggle(id, s.Layout)
}

func (s *BookingSession) ClearSelection() {
	s.Selection.Clear()
}

// ApplyPromoCode activates the code when a rule matches it. A rejected code
// also clears any previously active code, so there is no partial
// application.
func (s *BookingSession) ApplyPromoCode(code string, catalog ConcessionsCatalog, fees FeeConfig) PromoResult {
	totals := s.Totals(catalog, fees)
	result := ApplyPromo(code, totals.TicketsSubtotal, totals.FnbSubtotal)

	if result.Accepted {
		s.PromoCode = NormalizePromoCode(code)
	} else {
		s.PromoCode = ""
	}

	return result
}

func (s *BookingSession) Totals(catalog ConcessionsCatalog, fees FeeConfig) PriceBreakdown {
	return ComputeTotals(s.Selection.Count(), s.Cart, catalog, s.PromoCode, fees, s.TicketPrice)
}
