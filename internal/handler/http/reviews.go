package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-reel-keeper/internal/logger"
	"github.com/MKhiriev/go-reel-keeper/internal/service"
	"github.com/MKhiriev/go-reel-keeper/internal/store"
	"github.com/MKhiriev/go-reel-keeper/internal/utils"
	"github.com/MKhiriev/go-reel-keeper/models"
)

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
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

	var req models.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteAPIError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	review, err := h.services.ReviewService.CreateReview(ctx, movieID, user.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteAPIError(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrMovieNotFound):
			utils.WriteAPIError(w, store.ErrMovieNotFound.Error(), http.StatusNotFound)
			return
		case errors.Is(err, store.ErrAlreadyReviewed):
			utils.WriteAPIError(w, store.ErrAlreadyReviewed.Error(), http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during review creation")
			utils.WriteAPIError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, review, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) listMovieReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	movieID, ok := pathObjectID(w, r, "movieID")
	if !ok {
		return
	}

	reviews, err := h.services.ReviewService.ListMovieReviews(ctx, movieID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrMovieNotFound):
			utils.WriteAPIError(w, store.ErrMovieNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Str("id", movieID.Hex()).Msg("unexpected error occurred during review listing")
			utils.WriteAPIError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if reviews == nil {
		reviews = []models.Review{}
	}
	utils.WriteJSON(w, reviews, http.StatusOK) //nolint:errcheck
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		utils.WriteAPIError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	reviewID, ok := pathObjectID(w, r, "reviewID")
	if !ok {
		return
	}

	var req models.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteAPIError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	review, err := h.services.ReviewService.UpdateReview(ctx, reviewID, user.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteAPIError(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrReviewNotFound):
			utils.WriteAPIError(w, store.ErrReviewNotFound.Error(), http.StatusNotFound)
			return
		case errors.Is(err, service.ErrNotReviewOwner):
			utils.WriteAPIError(w, service.ErrNotReviewOwner.Error(), http.StatusForbidden)
			return
		default:
			log.Err(err).Str("id", reviewID.Hex()).Msg("unexpected error occurred during review update")
			utils.WriteAPIError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, review, http.StatusOK) //nolint:errcheck
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		utils.WriteAPIError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	reviewID, ok := pathObjectID(w, r, "reviewID")
	if !ok {
		return
	}

	if err := h.services.ReviewService.DeleteReview(ctx, reviewID, user.UserID); err != nil {
		switch {
		case errors.Is(err, store.ErrReviewNotFound):
			utils.WriteAPIError(w, store.ErrReviewNotFound.Error(), http.StatusNotFound)
			return
		case errors.Is(err, service.ErrNotReviewOwner):
			utils.WriteAPIError(w, service.ErrNotReviewOwner.Error(), http.StatusForbidden)
			return
		default:
			log.Err(err).Str("id", reviewID.Hex()).Msg("unexpected error occurred during review deletion")
			utils.WriteAPIError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
