package app

import (
	"net/http"

	"github.com/eventura/booking-api/api"
	"github.com/eventura/booking-api/internal/domain"
	"github.com/eventura/booking-api/internal/movieglu"
)

const defaultCity = "Mumbai"

// GetTheatres lists cinemas near the requested city. When the listings API
// is unreachable or the city is unknown, the static fallback set is served
// so the booking flow never dead-ends.
func (app *Application) GetTheatres(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	city := app.readString(r.URL.Query(), "city", defaultCity)

	var theatres []domain.Theatre

	coords, ok := movieglu.CityCoords[city]
	if ok {
		var err error

		theatres, err = app.catalog.CinemasNearby(r.Context(), coords.Lat, coords.Lon)
		if err != nil {
			logger.Warn("cinema listings unavailable, serving fallback theatres", "city", city, "error", err)
		}
	}

	if len(theatres) == 0 {
		theatres = movieglu.FallbackTheatres(city)
	}

	apiTheatres := make([]api.Theatre, len(theatres))
	for i, t := range theatres {
		showtimes := t.Showtimes
		if len(showtimes) == 0 {
			// the listings API carries no screening times
			showtimes = movieglu.DefaultShowtimes()
		}

		apiTheatres[i] = api.Theatre{
			Id:         t.ID,
			Name:       t.Name,
			Address:    t.Address,
			Wheelchair: t.Wheelchair,
			Showtimes:  showtimes,
		}
	}

	metadata := domain.NewMetadata(len(apiTheatres), 1, max(len(apiTheatres), 1))

	resp := api.TheatreListResponse{
		Theatres: apiTheatres,
		Metadata: toApiMetadata(metadata),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
