package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/eventura/booking-api/api"
	"github.com/eventura/booking-api/internal/domain"
	"github.com/eventura/booking-api/internal/mocks"
	"github.com/eventura/booking-api/internal/movieglu"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TheatresTestSuite struct {
	suite.Suite
	app     *Application
	catalog *mocks.MockCatalog
}

func (s *TheatresTestSuite) SetupTest() {
	s.catalog = new(mocks.MockCatalog)

	s.app = newTestApplication(func(a *Application) {
		a.catalog = s.catalog
	})
}

func TestTheatresSuite(t *testing.T) {
	suite.Run(t, new(TheatresTestSuite))
}

func (s *TheatresTestSuite) TestGetTheatres() {
	s.Run("should list cinemas near a known city", func() {
		s.SetupTest()

		coords := movieglu.CityCoords["Pune"]
		s.catalog.On("CinemasNearby", mock.Anything, coords.Lat, coords.Lon).
			Return([]domain.Theatre{
				{ID: "8842", Name: "City Pride", Address: "FC Road", Wheelchair: true},
			}, nil)

		w, r := executeRequest(s.T(), http.MethodGet, "/theatres?city=Pune", nil)
		s.app.GetTheatres(w, r)

		s.Equal(http.StatusOK, w.Code)

		var resp api.TheatreListResponse
		s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))

		s.Len(resp.Theatres, 1)
		s.Equal("City Pride", resp.Theatres[0].Name)
		s.Equal(movieglu.DefaultShowtimes(), resp.Theatres[0].Showtimes)

		s.catalog.AssertExpectations(s.T())
	})

	s.Run("should keep screening times supplied by the listings API", func() {
		s.SetupTest()

		coords := movieglu.CityCoords["Delhi"]
		s.catalog.On("CinemasNearby", mock.Anything, coords.Lat, coords.Lon).
			Return([]domain.Theatre{
				{ID: "101", Name: "Regal", Showtimes: []string{"11:00 AM", "07:30 PM"}},
			}, nil)

		w, r := executeRequest(s.T(), http.MethodGet, "/theatres?city=Delhi", nil)
		s.app.GetTheatres(w, r)

		s.Equal(http.StatusOK, w.Code)

		var resp api.TheatreListResponse
		s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))

		s.Equal([]string{"11:00 AM", "07:30 PM"}, resp.Theatres[0].Showtimes)
	})

	s.Run("should serve the fallback set when listings are unreachable", func() {
		s.SetupTest()

		coords := movieglu.CityCoords["Mumbai"]
		s.catalog.On("CinemasNearby", mock.Anything, coords.Lat, coords.Lon).
			Return(nil, fmt.Errorf("upstream error"))

		w, r := executeRequest(s.T(), http.MethodGet, "/theatres?city=Mumbai", nil)
		s.app.GetTheatres(w, r)

		s.Equal(http.StatusOK, w.Code)

		var resp api.TheatreListResponse
		s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))

		s.Len(resp.Theatres, 4)
		s.True(strings.HasPrefix(resp.Theatres[0].Id, "t1-mumbai-"))
		s.True(strings.HasPrefix(resp.Theatres[3].Id, "t4-mumbai-"))
		s.Equal(movieglu.DefaultShowtimes(), resp.Theatres[0].Showtimes)
	})

	s.Run("should skip the lookup entirely for an unknown city", func() {
		s.SetupTest()

		w, r := executeRequest(s.T(), http.MethodGet, "/theatres?city=Atlantis", nil)
		s.app.GetTheatres(w, r)

		s.Equal(http.StatusOK, w.Code)

		var resp api.TheatreListResponse
		s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))

		s.Len(resp.Theatres, 4)
		s.True(strings.HasPrefix(resp.Theatres[0].Id, "t1-atlantis-"))

		s.catalog.AssertNotCalled(s.T(), "CinemasNearby", mock.Anything, mock.Anything, mock.Anything)
	})
}
