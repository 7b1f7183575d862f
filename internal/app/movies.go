package app

import (
	"net/http"
	"strings"

	"github.com/eventura/booking-api/api"
	"github.com/eventura/booking-api/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10

	// catalogFetchLimit bounds the upstream catalog call; paging happens
	// locally over that window.
	catalogFetchLimit = 50
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	pagination := app.readPagination(r)

	movies, err := app.catalog.FilmsNowShowing(r.Context(), catalogFetchLimit)
	if err != nil {
		logger.Error("failed to fetch now-showing films", "error", err)
		app.serverErrorResponse(w, r, err)
		return
	}

	movies = filterMovies(movies, pagination.Term)

	page, metadata := paginateMovies(movies, pagination)

	resp := api.MovieListResponse{
		Movies:   toMovieSummaries(page),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) readPagination(r *http.Request) domain.Pagination {
	qs := r.URL.Query()

	pagination := domain.Pagination{
		Page:     app.readInt(qs, "page", DefaultPage),
		PageSize: app.readInt(qs, "pageSize", DefaultPageSize),
		Term:     app.readString(qs, "term", ""),
	}

	if pagination.Page < 1 {
		pagination.Page = DefaultPage
	}
	if pagination.PageSize < 1 || pagination.PageSize > 100 {
		pagination.PageSize = DefaultPageSize
	}

	return pagination
}

func filterMovies(movies []domain.Movie, term string) []domain.Movie {
	if term == "" {
		return movies
	}

	term = strings.ToLower(term)
	filtered := make([]domain.Movie, 0, len(movies))

	for _, movie := range movies {
		if strings.Contains(strings.ToLower(movie.Title), term) {
			filtered = append(filtered, movie)
		}
	}

	return filtered
}

func paginateMovies(movies []domain.Movie, pagination domain.Pagination) ([]domain.Movie, *domain.Metadata) {
	metadata := domain.NewMetadata(len(movies), pagination.Page, pagination.PageSize)

	start := pagination.Offset()
	if start >= len(movies) {
		return nil, metadata
	}

	end := start + pagination.Limit()
	if end > len(movies) {
		end = len(movies)
	}

	return movies[start:end], metadata
}

func toMovieSummaries(movies []domain.Movie) []api.MovieSummary {
	summaries := make([]api.MovieSummary, len(movies))

	for i, movie := range movies {
		summaries[i] = api.MovieSummary{
			Id:               movie.ID,
			Title:            movie.Title,
			PosterPath:       movie.PosterPath,
			OriginalLanguage: movie.OriginalLanguage,
			VoteAverage:      movie.VoteAverage,
		}
	}

	return summaries
}

func toApiMetadata(metadata *domain.Metadata) api.Metadata {
	if metadata == nil {
		return api.Metadata{}
	}

	return api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
