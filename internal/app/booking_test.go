package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/eventura/booking-api/api"
	"github.com/eventura/booking-api/internal/mocks"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BookingTestSuite struct {
	suite.Suite
	app         *Application
	redisClient *mocks.MockRedisClient
}

func (s *BookingTestSuite) SetupTest() {
	s.redisClient = new(mocks.MockRedisClient)

	s.app = newTestApplication(func(a *Application) {
		a.redis = s.redisClient
	})
}

func TestBookingSuite(t *testing.T) {
	suite.Run(t, new(BookingTestSuite))
}

func (s *BookingTestSuite) TestSelectShowtime() {
	validInput := api.SelectShowtimeRequest{
		MovieId:     "m1",
		MovieTitle:  "Interstellar",
		TheatreId:   "t1-mumbai-0",
		TheatreName: "Eventura Cinemas - Downtown",
		Showtime:    "06:10 PM",
	}

	tests := []struct {
		name           string
		input          any
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
		checkResponse  func(resp api.SeatMapResponse)
	}{
		{
			name: "should fail when movie ID is missing",
			input: api.SelectShowtimeRequest{
				MovieTitle:  "Interstellar",
				TheatreId:   "t1-mumbai-0",
				TheatreName: "Eventura Cinemas - Downtown",
				Showtime:    "06:10 PM",
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
		},
		{
			name:  "should fail when session cannot be persisted",
			input: validInput,
			setupMocks: func() {
				s.redisClient.On("Set", mock.Anything, mock.Anything, mock.Anything, bookingSessionTTL).
					Return(redis.NewStatusResult("", fmt.Errorf("redis error")))
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name:  "should start a session with the default hall geometry",
			input: validInput,
			setupMocks: func() {
				s.redisClient.On("Set", mock.Anything, mock.Anything, mock.Anything, bookingSessionTTL).
					Return(redis.NewStatusResult("OK", nil))
			},
			wantStatus: http.StatusCreated,
			checkResponse: func(resp api.SeatMapResponse) {
				s.Equal(10, resp.Rows)
				s.Equal(14, resp.Cols)
				s.Equal(7, resp.AisleAfter)
				s.Len(resp.SeatRows, 10)
				s.Equal("Interstellar", resp.MovieTitle)
				s.Equal(0, resp.Totals.SeatsCount)
				s.Equal(int64(0), resp.Totals.GrandTotal)
			},
		},
		{
			name: "should use the premium hall geometry for t3 venues",
			input: api.SelectShowtimeRequest{
				MovieId:     "m1",
				MovieTitle:  "Interstellar",
				TheatreId:   "t3-mumbai-2",
				TheatreName: "CineStar Premium",
				Showtime:    "09:00 PM",
			},
			setupMocks: func() {
				s.redisClient.On("Set", mock.Anything, mock.Anything, mock.Anything, bookingSessionTTL).
					Return(redis.NewStatusResult("OK", nil))
			},
			wantStatus: http.StatusCreated,
			checkResponse: func(resp api.SeatMapResponse) {
				s.Equal(8, resp.Rows)
				s.Equal(12, resp.Cols)
				s.Equal(6, resp.AisleAfter)
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.redisClient.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/booking/showtime", tt.input)
			r = setupTestSession(s.T(), s.app, r)

			s.app.SelectShowtime(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.checkResponse != nil {
				var resp api.SeatMapResponse
				err := json.NewDecoder(w.Body).Decode(&resp)
				s.Require().NoError(err)

				tt.checkResponse(resp)
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func (s *BookingTestSuite) TestAbandonBooking() {
	s.redisClient.On("Del", mock.Anything, mock.Anything).Return(redis.NewIntResult(1, nil))

	w, r := executeRequest(s.T(), http.MethodDelete, "/booking", nil)
	r = setupTestSession(s.T(), s.app, r)

	s.app.AbandonBooking(w, r)

	s.Equal(http.StatusNoContent, w.Code)
	s.redisClient.AssertExpectations(s.T())
}
