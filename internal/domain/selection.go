package domain

// SeatSelection is the user's in-progress seat choice for the active layout.
// It is owned by a single booking session and mutated only through Toggle
// and Clear, so no element can ever belong to the layout's reserved set.
type SeatSelection struct {
	Seats SeatSet
}

func NewSeatSelection() SeatSelection {
	return SeatSelection{Seats: make(SeatSet)}
}

// Toggle removes the seat when selected, otherwise adds it. Seats outside
// the layout or inside its reserved set are ignored; the UI disables those
// controls, but a malformed call must not corrupt the selection.
func (s *SeatSelection) Toggle(id SeatID, layout SeatLayout) {
	if s.Seats == nil {
		s.Seats = make(SeatSet)
	}

	if s.Seats.Contains(id) {
		s.Seats.Remove(id)
		return
	}

	if !layout.InBounds(id) || layout.Reserved.Contains(id) {
		return
	}

	s.Seats.Add(id)
}

func (s *SeatSelection) Clear() {
	s.Seats = make(SeatSet)
}

func (s *SeatSelection) Contains(id SeatID) bool {
	return s.Seats.Contains(id)
}

func (s *SeatSelection) Count() int {
	return len(s.Seats)
}

// Labels returns the display labels of the selected seats, ordered by row
// then column regardless of insertion order.
func (s *SeatSelection) Labels() []string {
	ids := s.Seats.Sorted()

	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = id.Label()
	}

	return labels
}
