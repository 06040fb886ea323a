package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-reel-keeper/internal/logger"
	"github.com/MKhiriev/go-reel-keeper/internal/service"
	"github.com/MKhiriev/go-reel-keeper/internal/store"
	"github.com/MKhiriev/go-reel-keeper/internal/utils"
	"github.com/MKhiriev/go-reel-keeper/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// listMovies serves one page of the catalog. Filters and page bounds come
// from query parameters: page, page_size, genre, year, search.
func (h *Handler) listMovies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query()

	var page models.Page
	page.Number, _ = strconv.Atoi(query.Get("page"))
	page.Size, _ = strconv.Atoi(query.Get("page_size"))

	filter := models.MovieFilter{
		Genre:  query.Get("genre"),
		Search: query.Get("search"),
	}
	if rawYear := query.Get("year"); rawYear != "" {
		year, err := strconv.Atoi(rawYear)
		if err != nil {
			utils.WriteAPIError(w, "year must be a number", http.StatusBadRequest)
			return
		}
		filter.Year = year
	}

	list, err := h.services.MovieService.ListMovies(ctx, filter, page)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during movie listing")
		utils.WriteAPIError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, list, http.StatusOK) //nolint:errcheck
}

func (h *Handler) getMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	movieID, ok := pathObjectID(w, r, "movieID")
	if !ok {
		return
	}

	movie, err := h.services.MovieService.GetMovie(ctx, movieID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrMovieNotFound):
			utils.WriteAPIError(w, store.ErrMovieNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Str("id", movieID.Hex()).Msg("unexpected error occurred during movie lookup")
			utils.WriteAPIError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, movie, http.StatusOK) //nolint:errcheck
}

func (h *Handler) createMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var movie models.Movie
	if err := json.NewDecoder(r.Body).Decode(&movie); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteAPIError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdMovie, err := h.services.MovieService.CreateMovie(ctx, movie)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteAPIError(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during movie creation")
			utils.WriteAPIError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, createdMovie, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) updateMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	movieID, ok := pathObjectID(w, r, "movieID")
	if !ok {
		return
	}

	var movie models.Movie
	if err := json.NewDecoder(r.Body).Decode(&movie); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteAPIError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	movie.MovieID = movieID

	updatedMovie, err := h.services.MovieService.UpdateMovie(ctx, movie)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteAPIError(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrMovieNotFound):
			utils.WriteAPIError(w, store.ErrMovieNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Str("id", movieID.Hex()).Msg("unexpected error occurred during movie update")
			utils.WriteAPIError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, updatedMovie, http.StatusOK) //nolint:errcheck
}

func (h *Handler) deleteMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	movieID, ok := pathObjectID(w, r, "movieID")
	if !ok {
		return
	}

	if err := h.services.MovieService.DeleteMovie(ctx, movieID); err != nil {
		switch {
		case errors.Is(err, store.ErrMovieNotFound):
			utils.WriteAPIError(w, store.ErrMovieNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Str("id", movieID.Hex()).Msg("unexpected error occurred during movie deletion")
			utils.WriteAPIError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathObjectID parses the named chi URL parameter as an ObjectID, answering
// 400 on a malformed value.
func pathObjectID(w http.ResponseWriter, r *http.Request, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, name))
	if err != nil {
		utils.WriteAPIError(w, "malformed id in path", http.StatusBadRequest)
		return primitive.NilObjectID, false
	}

	return id, true
}
