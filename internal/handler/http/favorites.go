package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-reel-keeper/internal/logger"
	"github.com/MKhiriev/go-reel-keeper/internal/store"
	"github.com/MKhiriev/go-reel-keeper/internal/utils"
	"github.com/MKhiriev/go-reel-keeper/models"
)

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		utils.WriteAPIError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	movieID, ok := pathObjectID(w, r, "movieID")
	if !ok {
		return
	}

	if err := h.services.FavoriteService.AddFavorite(ctx, user.UserID, movieID); err != nil {
		switch {
		case errors.Is(err, store.ErrMovieNotFound):
			utils.WriteAPIError(w, store.ErrMovieNotFound.Error(), http.StatusNotFound)
			return
		case errors.Is(err, store.ErrAlreadyFavorite):
			// marking twice is not an error worth surfacing
			utils.WriteJSON(w, models.APIMessage{Message: "already a favorite"}, http.StatusOK) //nolint:errcheck
			return
		default:
			log.Err(err).Str("id", movieID.Hex()).Msg("unexpected error occurred during favorite creation")
			utils.WriteAPIError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.APIMessage{Message: "added to favorites"}, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		utils.WriteAPIError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	movieID, ok := pathObjectID(w, r, "movieID")
	if !ok {
		return
	}

	if err := h.services.FavoriteService.RemoveFavorite(ctx, user.UserID, movieID); err != nil {
		switch {
		case errors.Is(err, store.ErrFavoriteNotFound):
			utils.WriteAPIError(w, store.ErrFavoriteNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Str("id", movieID.Hex()).Msg("unexpected error occurred during favorite removal")
			utils.WriteAPIError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		utils.WriteAPIError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	movies, err := h.services.FavoriteService.ListUserFavorites(ctx, user.UserID)
	if err != nil {
		log.Err(err).Str("id", user.UserID.Hex()).Msg("unexpected error occurred during favorite listing")
		utils.WriteAPIError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if movies == nil {
		movies = []models.Movie{}
	}
	utils.WriteJSON(w, movies, http.StatusOK) //nolint:errcheck
}
