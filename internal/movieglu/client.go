// Package movieglu is a thin read-only client for the MovieGlu catalog and
// cinema-listings API. The booking engine never depends on its data beyond
// display fields; pricing stays static configuration.
package movieglu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/eventura/booking-api/internal/domain"
)

type Config struct {
	BaseURL    string
	APIKey     string
	Client     string
	Territory  string
	APIVersion string
	Auth       string
	Timeout    time.Duration
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type filmsNowShowingResponse struct {
	Films []film `json:"films"`
}

type film struct {
	FilmID           int     `json:"film_id"`
	FilmName         string  `json:"film_name"`
	OriginalLanguage string  `json:"original_language"`
	AgeRating        string  `json:"age_rating"`
	Images           *images `json:"images"`
}

type images struct {
	Poster map[string]posterImage `json:"poster"`
}

type posterImage struct {
	Medium struct {
		FilmImage string `json:"film_image"`
	} `json:"medium"`
}

type cinemasNearbyResponse struct {
	Cinemas []cinema `json:"cinemas"`
}

type cinema struct {
	CinemaID         int    `json:"cinema_id"`
	CinemaName       string `json:"cinema_name"`
	Address          string `json:"address"`
	WheelchairAccess bool   `json:"wheelchair_access"`
}

func (c *Client) FilmsNowShowing(ctx context.Context, limit int) ([]domain.Movie, error) {
	url := fmt.Sprintf("%s/filmsNowShowing/?n=%d", c.cfg.BaseURL, limit)

	var resp filmsNowShowingResponse
	if err := c.get(ctx, url, "", &resp); err != nil {
		return nil, err
	}

	movies := make([]domain.Movie, len(resp.Films))
	for i, f := range resp.Films {
		movies[i] = domain.Movie{
			ID:               fmt.Sprintf("%d", f.FilmID),
			Title:            f.FilmName,
			OriginalLanguage: f.OriginalLanguage,
			PosterPath:       f.posterURL(),
		}
	}

	return movies, nil
}

func (f film) posterURL() string {
	if f.Images == nil {
		return ""
	}

	for _, p := range f.Images.Poster {
		return p.Medium.FilmImage
	}

	return ""
}

func (c *Client) CinemasNearby(ctx context.Context, lat, lon float64) ([]domain.Theatre, error) {
	url := fmt.Sprintf("%s/cinemasNearby/?n=10", c.cfg.BaseURL)
	geolocation := fmt.Sprintf("%.4f;%.4f", lat, lon)

	var resp cinemasNearbyResponse
	if err := c.get(ctx, url, geolocation, &resp); err != nil {
		return nil, err
	}

	theatres := make([]domain.Theatre, len(resp.Cinemas))
	for i, cn := range resp.Cinemas {
		theatres[i] = domain.Theatre{
			ID:         fmt.Sprintf("%d", cn.CinemaID),
			Name:       cn.CinemaName,
			Address:    cn.Address,
			Wheelchair: cn.WheelchairAccess,
		}
	}

	return theatres, nil
}

func (c *Client) get(ctx context.Context, url, geolocation string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	req.Header.Set("x-api-key", c.cfg.APIKey)
	req.Header.Set("client", c.cfg.Client)
	req.Header.Set("territory", c.cfg.Territory)
	req.Header.Set("api-version", c.cfg.APIVersion)
	req.Header.Set("device-datetime", time.Now().UTC().Format(time.RFC3339))
	req.Header.Set("accept", "application/json")

	if geolocation != "" {
		req.Header.Set("geolocation", geolocation)
	}
	if c.cfg.Auth != "" {
		req.Header.Set("authorization", c.cfg.Auth)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("movieglu: unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
