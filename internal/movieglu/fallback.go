package movieglu

import (
	"fmt"
	"strings"

	"github.com/eventura/booking-api/internal/domain"
)

// CityCoords maps supported cities to coordinates for the nearby-cinemas
// lookup.
var CityCoords = map[string]struct{ Lat, Lon float64 }{
	"Mumbai":    {19.076, 72.8777},
	"Delhi":     {28.6139, 77.209},
	"Bengaluru": {12.9716, 77.5946},
	"Hyderabad": {17.385, 78.4867},
	"Chennai":   {13.0827, 80.2707},
	"Kolkata":   {22.5726, 88.3639},
	"Pune":      {18.5204, 73.8567},
	"Ahmedabad": {23.0225, 72.5714},
	"Gurugram":  {28.4595, 77.0266},
}

// FallbackTheatres is the static dataset served when the listings API is
// unreachable. The ids carry the venue tags (t1..t4) that select a hall
// geometry downstream.
func FallbackTheatres(city string) []domain.Theatre {
	base := []domain.Theatre{
		{ID: "t1", Name: "Eventura Cinemas - Downtown", Address: "Central Mall", Wheelchair: true},
		{ID: "t2", Name: "Galaxy Multiplex", Address: "High Street", Wheelchair: true},
		{ID: "t3", Name: "CineStar Premium", Address: "Tech Park", Wheelchair: false},
		{ID: "t4", Name: "GrandTalkies", Address: "Old City", Wheelchair: true},
	}

	if city == "" {
		city = "IN"
	}
	slug := strings.ReplaceAll(strings.ToLower(city), " ", "-")

	theatres := make([]domain.Theatre, len(base))
	for i, t := range base {
		t.ID = fmt.Sprintf("%s-%s-%d", t.ID, slug, i)
		theatres[i] = t
	}

	return theatres
}

// DefaultShowtimes is the static showtime strip used when the listings API
// has no times for a theatre.
func DefaultShowtimes() []string {
	return []string{"10:15 AM", "12:45 PM", "03:30 PM", "06:10 PM", "09:00 PM"}
}
