package domain

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
)

const DefaultReservationProbability = 0.15

// minOpenSeatRatio is the floor below which a freshly generated layout is
// regenerated. The random reservation pattern carries no availability
// guarantee on its own, so an unlucky draw could sell out entire rows.
const minOpenSeatRatio = 0.10

const maxGenerateAttempts = 10

// SeatID identifies a single seat by zero-based row and column. It marshals
// as "row-col" so seat sets survive JSON round-trips as object keys.
type SeatID struct {
	Row int
	Col int
}

func ParseSeatID(s string) (SeatID, error) {
	rowStr, colStr, ok := strings.Cut(s, "-")
	if !ok {
		return SeatID{}, fmt.Errorf("malformed seat id: %q", s)
	}

	row, err := strconv.Atoi(rowStr)
	if err != nil {
		return SeatID{}, fmt.Errorf("malformed seat id: %q", s)
	}

	col, err := strconv.Atoi(colStr)
	if err != nil {
		return SeatID{}, fmt.Errorf("malformed seat id: %q", s)
	}

	if row < 0 || col < 0 {
		return SeatID{}, fmt.Errorf("malformed seat id: %q", s)
	}

	return SeatID{Row: row, Col: col}, nil
}

func (s SeatID) String() string {
	return fmt.Sprintf("%d-%d", s.Row, s.Col)
}

// Label returns the display form of the seat, e.g. (0,0) -> "A1".
func (s SeatID) Label() string {
	return fmt.Sprintf("%c%d", 'A'+rune(s.Row), s.Col+1)
}

func (s SeatID) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *SeatID) UnmarshalText(text []byte) error {
	id, err := ParseSeatID(string(text))
	if err != nil {
		return err
	}

	*s = id
	return nil
}

type SeatSet map[SeatID]bool

func (ss SeatSet) Contains(id SeatID) bool {
	return ss[id]
}

func (ss SeatSet) Add(id SeatID) {
	ss[id] = true
}

func (ss SeatSet) Remove(id SeatID) {
	delete(ss, id)
}

// Sorted returns the members ordered by row, then column.
func (ss SeatSet) Sorted() []SeatID {
	ids := make([]SeatID, 0, len(ss))
	for id := range ss {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Row != ids[j].Row {
			return ids[i].Row < ids[j].Row
		}
		return ids[i].Col < ids[j].Col
	})

	return ids
}

// VenueShape is the grid geometry of a hall. AisleAfter is the column index
// before which an aisle gap is rendered; it does not consume a seat slot.
type VenueShape struct {
	Rows       int
	Cols       int
	AisleAfter int
}

var DefaultVenueShape = VenueShape{Rows: 10, Cols: 14, AisleAfter: 7}

// ShapeForVenue maps an opaque venue identifier to one of the supported hall
// geometries. Unknown venues get the default shape.
func ShapeForVenue(venueID string) VenueShape {
	switch {
	case strings.Contains(venueID, "t3"):
		return VenueShape{Rows: 8, Cols: 12, AisleAfter: 6}
	case strings.Contains(venueID, "t4"):
		return VenueShape{Rows: 12, Cols: 16, AisleAfter: 8}
	default:
		return DefaultVenueShape
	}
}

// SeatLayout is the seat map for one showtime: grid shape plus the reserved
// and wheelchair-accessible seat sets. A layout is generated once per
// showtime selection and discarded when the user picks another showtime.
type SeatLayout struct {
	Rows       int
	Cols       int
	AisleAfter int
	Reserved   SeatSet
	Wheelchair SeatSet
}

// GenerateSeatLayout builds a layout for the given shape. Every seat is
// reserved independently with probability p, so availability varies from
// draw to draw. Callers must ensure shape.Rows >= 3 and shape.AisleAfter >= 1
// for the wheelchair block to land on valid coordinates.
func GenerateSeatLayout(shape VenueShape, p float64, rng *rand.Rand) SeatLayout {
	reserved := make(SeatSet)

	for r := 0; r < shape.Rows; r++ {
		for c := 0; c < shape.Cols; c++ {
			if rng.Float64() < p {
				reserved.Add(SeatID{Row: r, Col: c})
			}
		}
	}

	wheelchair := SeatSet{
		{Row: 1, Col: shape.AisleAfter - 1}: true,
		{Row: 1, Col: shape.AisleAfter}:     true,
		{Row: 2, Col: shape.AisleAfter - 1}: true,
		{Row: 2, Col: shape.AisleAfter}:     true,
	}

	return SeatLayout{
		Rows:       shape.Rows,
		Cols:       shape.Cols,
		AisleAfter: shape.AisleAfter,
		Reserved:   reserved,
		Wheelchair: wheelchair,
	}
}

// NewLayoutForVenue generates a layout for the venue's shape, retrying a
// bounded number of times when the draw leaves less than ten percent of the
// hall open. After the attempt budget the last draw is kept as-is.
func NewLayoutForVenue(venueID string, rng *rand.Rand) SeatLayout {
	shape := ShapeForVenue(venueID)
	layout := GenerateSeatLayout(shape, DefaultReservationProbability, rng)

	capacity := shape.Rows * shape.Cols
	for i := 1; i < maxGenerateAttempts; i++ {
		open := capacity - len(layout.Reserved)
		if float64(open) >= minOpenSeatRatio*float64(capacity) {
			break
		}
		layout = GenerateSeatLayout(shape, DefaultReservationProbability, rng)
	}

	return layout
}

func (l SeatLayout) InBounds(id SeatID) bool {
	return id.Row >= 0 && id.Row < l.Rows && id.Col >= 0 && id.Col < l.Cols
}

func (l SeatLayout) Capacity() int {
	return l.Rows * l.Cols
}

func (l SeatLayout) OpenSeats() int {
	return l.Capacity() - len(l.Reserved)
}
