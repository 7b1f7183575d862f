package app

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/eventura/booking-api/api"
	"github.com/eventura/booking-api/internal/domain"
	"github.com/eventura/booking-api/internal/mocks"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SeatsTestSuite struct {
	suite.Suite
	app         *Application
	redisClient *mocks.MockRedisClient
}

func (s *SeatsTestSuite) SetupTest() {
	s.redisClient = new(mocks.MockRedisClient)

	s.app = newTestApplication(func(a *Application) {
		a.redis = s.redisClient
	})
}

func TestSeatsSuite(t *testing.T) {
	suite.Run(t, new(SeatsTestSuite))
}

func (s *SeatsTestSuite) TestGetSeatMap() {
	s.Run("should fail when there is no active booking session", func() {
		s.SetupTest()

		s.redisClient.On("Get", mock.Anything, mock.Anything).
			Return(redis.NewStringResult("", redis.Nil))

		w, r := executeRequest(s.T(), http.MethodGet, "/booking/seats", nil)
		r = setupTestSession(s.T(), s.app, r)

		s.app.GetSeatMap(w, r)

		s.Equal(http.StatusNotFound, w.Code)
		checkErrorResponse(s.T(), w, struct {
			wantStatus     int
			wantErrMessage string
		}{
			wantStatus:     http.StatusNotFound,
			wantErrMessage: domain.ErrNoActiveSession.Error(),
		})
	})

	s.Run("should render reserved and wheelchair seats", func() {
		s.SetupTest()

		session := newTestBookingSession(domain.SeatSet{
			{Row: 0, Col: 1}: true,
		})

		s.redisClient.On("Get", mock.Anything, mock.Anything).
			Return(redis.NewStringResult(marshalSession(s.T(), session), nil))

		w, r := executeRequest(s.T(), http.MethodGet, "/booking/seats", nil)
		r = setupTestSession(s.T(), s.app, r)

		s.app.GetSeatMap(w, r)

		s.Equal(http.StatusOK, w.Code)

		var resp api.SeatMapResponse
		s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))

		s.Equal("A", resp.SeatRows[0].Label)
		s.True(resp.SeatRows[0].Seats[1].Reserved)
		s.False(resp.SeatRows[0].Seats[0].Reserved)
		s.True(resp.SeatRows[1].Seats[6].Wheelchair)
		s.Equal("A2", resp.SeatRows[0].Seats[1].Label)
	})
}

func (s *SeatsTestSuite) TestToggleSeat() {
	tests := []struct {
		name           string
		seatID         string
		reserved       domain.SeatSet
		preSelected    []domain.SeatID
		wantStatus     int
		wantErrMessage string
		wantSeatsCount int
		wantPersist    bool
	}{
		{
			name:           "should fail on a malformed seat id",
			seatID:         "A1",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: `malformed seat id: "A1"`,
		},
		{
			name:           "should select an open seat",
			seatID:         "4-3",
			wantStatus:     http.StatusOK,
			wantSeatsCount: 1,
			wantPersist:    true,
		},
		{
			name:           "should ignore a reserved seat",
			seatID:         "0-1",
			reserved:       domain.SeatSet{{Row: 0, Col: 1}: true},
			wantStatus:     http.StatusOK,
			wantSeatsCount: 0,
			wantPersist:    true,
		},
		{
			name:           "should deselect a previously selected seat",
			seatID:         "4-3",
			preSelected:    []domain.SeatID{{Row: 4, Col: 3}},
			wantStatus:     http.StatusOK,
			wantSeatsCount: 0,
			wantPersist:    true,
		},
		{
			name:           "should ignore a seat outside the grid",
			seatID:         "99-99",
			wantStatus:     http.StatusOK,
			wantSeatsCount: 0,
			wantPersist:    true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			session := newTestBookingSession(tt.reserved)
			for _, id := range tt.preSelected {
				session.Selection.Toggle(id, session.Layout)
			}

			if tt.wantStatus != http.StatusBadRequest {
				s.redisClient.On("Get", mock.Anything, mock.Anything).
					Return(redis.NewStringResult(marshalSession(s.T(), session), nil))
			}
			if tt.wantPersist {
				s.redisClient.On("Set", mock.Anything, mock.Anything, mock.Anything, bookingSessionTTL).
					Return(redis.NewStatusResult("OK", nil))
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/booking/seats/"+tt.seatID+"/toggle", nil)
			r = setupTestSession(s.T(), s.app, r)
			r = withChiURLParam(r, "seatId", tt.seatID)

			s.app.ToggleSeat(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				var resp api.SeatMapResponse
				s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))

				s.Equal(tt.wantSeatsCount, resp.Totals.SeatsCount)
				s.Equal(int64(tt.wantSeatsCount)*250, resp.Totals.TicketsSubtotal)
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})

			s.redisClient.AssertExpectations(s.T())
		})
	}
}

func (s *SeatsTestSuite) TestClearSeatSelection() {
	session := newTestBookingSession(nil)
	session.Selection.Toggle(domain.SeatID{Row: 4, Col: 3}, session.Layout)
	session.Selection.Toggle(domain.SeatID{Row: 4, Col: 4}, session.Layout)

	s.redisClient.On("Get", mock.Anything, mock.Anything).
		Return(redis.NewStringResult(marshalSession(s.T(), session), nil))
	s.redisClient.On("Set", mock.Anything, mock.Anything, mock.Anything, bookingSessionTTL).
		Return(redis.NewStatusResult("OK", nil))

	w, r := executeRequest(s.T(), http.MethodDelete, "/booking/seats", nil)
	r = setupTestSession(s.T(), s.app, r)

	s.app.ClearSeatSelection(w, r)

	s.Equal(http.StatusOK, w.Code)

	var resp api.SeatMapResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))

	s.Equal(0, resp.Totals.SeatsCount)
	s.redisClient.AssertExpectations(s.T())
}
