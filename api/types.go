// Package api holds the request and response shapes of the booking API.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type MovieSummary struct {
	Id               string  `json:"id"`
	Title            string  `json:"title"`
	PosterPath       string  `json:"posterPath,omitempty"`
	OriginalLanguage string  `json:"originalLanguage"`
	VoteAverage      float64 `json:"voteAverage,omitempty"`
}

type MovieListResponse struct {
	Movies   []MovieSummary `json:"movies"`
	Metadata Metadata       `json:"metadata"`
}

type Theatre struct {
	Id         string   `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Wheelchair bool     `json:"wheelchair"`
	Showtimes  []string `json:"showtimes"`
}

type TheatreListResponse struct {
	Theatres []Theatre `json:"theatres"`
	Metadata Metadata  `json:"metadata"`
}

type SelectShowtimeRequest struct {
	MovieId     string `json:"movieId" validate:"required"`
	MovieTitle  string `json:"movieTitle" validate:"required"`
	TheatreId   string `json:"theatreId" validate:"required"`
	TheatreName string `json:"theatreName" validate:"required"`
	Showtime    string `json:"showtime" validate:"required"`
}

type Seat struct {
	Id         string `json:"id"`
	Row        int    `json:"row"`
	Column     int    `json:"column"`
	Label      string `json:"label"`
	Reserved   bool   `json:"reserved"`
	Wheelchair bool   `json:"wheelchair"`
	Selected   bool   `json:"selected"`
}

type SeatRow struct {
	Row   int    `json:"row"`
	Label string `json:"label"`
	Seats []Seat `json:"seats"`
}

type SeatMapResponse struct {
	TheatreId   string    `json:"theatreId"`
	TheatreName string    `json:"theatreName"`
	MovieTitle  string    `json:"movieTitle"`
	Showtime    string    `json:"showtime"`
	Rows        int       `json:"rows"`
	Cols        int       `json:"cols"`
	AisleAfter  int       `json:"aisleAfter"`
	SeatRows    []SeatRow `json:"seatRows"`
	Totals      Totals    `json:"totals"`
}

type ConcessionItem struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

type ConcessionsResponse struct {
	Items  []ConcessionItem `json:"items"`
	Totals Totals           `json:"totals"`
}

type ConcessionMutationRequest struct {
	Op string `json:"op" validate:"required,oneof=inc dec"`
}

type PromoRequest struct {
	Code string `json:"code" validate:"required,max=32"`
}

type PromoResponse struct {
	Accepted  bool   `json:"accepted"`
	PromoCode string `json:"promoCode,omitempty"`
	Totals    Totals `json:"totals"`
}

// Totals mirrors the engine's price breakdown field for field; it is the
// single source of truth for every displayed amount.
type Totals struct {
	SeatsCount      int   `json:"seatsCount"`
	TicketsSubtotal int64 `json:"ticketsSubtotal"`
	FnbSubtotal     int64 `json:"fnbSubtotal"`
	Discount        int64 `json:"discount"`
	ConvenienceFee  int64 `json:"convenienceFee"`
	Tax             int64 `json:"tax"`
	GrandTotal      int64 `json:"grandTotal"`
}

type TotalsResponse struct {
	Currency   string   `json:"currency"`
	Seats      []string `json:"seats"`
	PromoCode  string   `json:"promoCode,omitempty"`
	Totals     Totals   `json:"totals"`
	CanProceed bool     `json:"canProceed"`
}

type PaymentRequest struct {
	Method   string            `json:"method" validate:"required,payment_method"`
	Amount   int64             `json:"amount" validate:"required,gt=0"`
	Currency string            `json:"currency" validate:"required,len=3"`
	Meta     map[string]string `json:"meta,omitempty"`
}

type PaymentResponse struct {
	Ok          bool   `json:"ok"`
	Id          string `json:"id"`
	Method      string `json:"method"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	Action      string `json:"action,omitempty"`
	RedirectUrl string `json:"redirect_url,omitempty"`
	Note        string `json:"note,omitempty"`
}

type Booking struct {
	Id          string   `json:"id"`
	PaymentId   string   `json:"paymentId"`
	MovieTitle  string   `json:"movieTitle"`
	TheatreName string   `json:"theatreName"`
	Showtime    string   `json:"showtime"`
	Seats       []string `json:"seats"`
	TicketCount int      `json:"ticketCount"`
	Breakdown   Totals   `json:"breakdown"`
	Amount      int64    `json:"amount"`
	Currency    string   `json:"currency"`
}

type BookingResponse struct {
	Booking Booking `json:"booking"`
}

type RequestOTPRequest struct {
	Mobile string `json:"mobile" validate:"required,mobile"`
}

type RequestOTPResponse struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message"`
}

type VerifyOTPRequest struct {
	Mobile string `json:"mobile" validate:"required,mobile"`
	Code   string `json:"code" validate:"required,otp"`
}

type VerifyOTPResponse struct {
	Ok   bool        `json:"ok"`
	User UserSummary `json:"user"`
}

type UserSummary struct {
	Mobile string `json:"mobile"`
}
