package domain

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 42))
}

func TestSeatIDLabel(t *testing.T) {
	tests := []struct {
		seat SeatID
		want string
	}{
		{SeatID{Row: 0, Col: 0}, "A1"},
		{SeatID{Row: 0, Col: 13}, "A14"},
		{SeatID{Row: 2, Col: 6}, "C7"},
		{SeatID{Row: 9, Col: 0}, "J1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.seat.Label())
	}
}

func TestParseSeatID(t *testing.T) {
	tests := []struct {
		input   string
		want    SeatID
		wantErr bool
	}{
		{input: "0-0", want: SeatID{Row: 0, Col: 0}},
		{input: "9-13", want: SeatID{Row: 9, Col: 13}},
		{input: "3", wantErr: true},
		{input: "a-b", wantErr: true},
		{input: "-1-2", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseSeatID(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}

		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestSeatSetJSONRoundTrip(t *testing.T) {
	set := SeatSet{
		{Row: 1, Col: 6}: true,
		{Row: 4, Col: 0}: true,
	}

	data, err := json.Marshal(set)
	require.NoError(t, err)

	var decoded SeatSet
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, set, decoded)
}

func TestGenerateSeatLayout(t *testing.T) {
	layout := GenerateSeatLayout(DefaultVenueShape, DefaultReservationProbability, testRand())

	assert.Equal(t, 10, layout.Rows)
	assert.Equal(t, 14, layout.Cols)
	assert.Equal(t, 7, layout.AisleAfter)

	wantWheelchair := SeatSet{
		{Row: 1, Col: 6}: true,
		{Row: 1, Col: 7}: true,
		{Row: 2, Col: 6}: true,
		{Row: 2, Col: 7}: true,
	}
	assert.Equal(t, wantWheelchair, layout.Wheelchair)

	for id := range layout.Reserved {
		assert.True(t, layout.InBounds(id), "reserved seat %s out of bounds", id)
	}
}

func TestGenerateSeatLayoutProbabilityExtremes(t *testing.T) {
	empty := GenerateSeatLayout(DefaultVenueShape, 0, testRand())
	assert.Empty(t, empty.Reserved)

	full := GenerateSeatLayout(DefaultVenueShape, 1, testRand())
	assert.Len(t, full.Reserved, full.Capacity())
}

func TestGenerateSeatLayoutIsDeterministicPerSeed(t *testing.T) {
	a := GenerateSeatLayout(DefaultVenueShape, DefaultReservationProbability, rand.New(rand.NewPCG(1, 1)))
	b := GenerateSeatLayout(DefaultVenueShape, DefaultReservationProbability, rand.New(rand.NewPCG(1, 1)))

	assert.Equal(t, a.Reserved, b.Reserved)
}

func TestShapeForVenue(t *testing.T) {
	tests := []struct {
		venueID string
		want    VenueShape
	}{
		{"t1-mumbai-0", DefaultVenueShape},
		{"t3-mumbai-2", VenueShape{Rows: 8, Cols: 12, AisleAfter: 6}},
		{"t4-delhi-3", VenueShape{Rows: 12, Cols: 16, AisleAfter: 8}},
		{"", DefaultVenueShape},
		{"12345", DefaultVenueShape},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ShapeForVenue(tt.venueID), "venue %q", tt.venueID)
	}
}

func TestNewLayoutForVenueWheelchairFollowsAisle(t *testing.T) {
	layout := NewLayoutForVenue("t3-pune-2", testRand())

	assert.Equal(t, 8, layout.Rows)
	assert.Equal(t, 12, layout.Cols)
	assert.True(t, layout.Wheelchair.Contains(SeatID{Row: 1, Col: 5}))
	assert.True(t, layout.Wheelchair.Contains(SeatID{Row: 2, Col: 6}))
}

func TestNewLayoutForVenueLeavesSeatsOpen(t *testing.T) {
	// With p=0.15 a single draw below the 10% open floor is already
	// astronomically unlikely; this guards the retry wiring, not the odds.
	for i := 0; i < 20; i++ {
		layout := NewLayoutForVenue("t1", rand.New(rand.NewPCG(uint64(i), 0)))
		assert.GreaterOrEqual(t, layout.OpenSeats(), layout.Capacity()/10)
	}
}
