package domain

// Movie is the read-only record supplied by the catalog collaborator. The
// engine does not derive anything from it; ticket price and currency are
// static configuration.
type Movie struct {
	ID               string
	Title            string
	PosterPath       string
	OriginalLanguage string
	VoteAverage      float64
}

// Theatre is the read-only record supplied by the cinema-listings
// collaborator. Its ID doubles as the venue tag that selects a hall
// geometry.
type Theatre struct {
	ID         string
	Name       string
	Address    string
	Wheelchair bool
	Showtimes  []string
}
