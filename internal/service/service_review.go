package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-reel-keeper/internal/logger"
	"github.com/MKhiriev/go-reel-keeper/internal/store"
	"github.com/MKhiriev/go-reel-keeper/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating bounds for a review.
const (
	MinRating = 1
	MaxRating = 10
)

// reviewService manages per-account movie reviews. One review per
// account+movie pair; only the author may update or delete.
type reviewService struct {
	reviewRepository store.ReviewRepository
	movieRepository  store.MovieRepository
	now              func() time.Time
	logger           *logger.Logger
}

func NewReviewService(storages *store.Storages, logger *logger.Logger) ReviewService {
	return &reviewService{
		reviewRepository: storages.ReviewRepository,
		movieRepository:  storages.MovieRepository,
		now:              time.Now,
		logger:           logger,
	}
}

// CreateReview attaches a review to a movie on behalf of the account.
// The movie must exist; a second review for the same pair fails with
// store.ErrAlreadyReviewed.
func (r *reviewService) CreateReview(ctx context.Context, movieID, userID primitive.ObjectID, req models.ReviewRequest) (models.Review, error) {
	if err := validateRating(req.Rating); err != nil {
		return models.Review{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := r.movieRepository.GetMovie(ctx, movieID); err != nil {
		return models.Review{}, err
	}

	now := r.now()
	review := models.Review{
		MovieID:   movieID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	createdReview, err := r.reviewRepository.CreateReview(ctx, review)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("movie_id", movieID.Hex()).Str("user_id", userID.Hex()).Msg("review creation ended with error")
		return models.Review{}, fmt.Errorf("review creation ended with error: %w", err)
	}

	return createdReview, nil
}

func (r *reviewService) ListMovieReviews(ctx context.Context, movieID primitive.ObjectID) ([]models.Review, error) {
	if _, err := r.movieRepository.GetMovie(ctx, movieID); err != nil {
		return nil, err
	}

	return r.reviewRepository.ListMovieReviews(ctx, movieID)
}

// UpdateReview replaces the rating and comment of an existing review after
// verifying the caller wrote it.
func (r *reviewService) UpdateReview(ctx context.Context, reviewID, userID primitive.ObjectID, req models.ReviewRequest) (models.Review, error) {
	if err := validateRating(req.Rating); err != nil {
		return models.Review{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	review, err := r.reviewRepository.GetReview(ctx, reviewID)
	if err != nil {
		return models.Review{}, err
	}
	if review.UserID != userID {
		logger.FromContext(ctx).Warn().Str("review_id", reviewID.Hex()).Str("user_id", userID.Hex()).Msg("review update by non-owner")
		return models.Review{}, ErrNotReviewOwner
	}

	review.Rating = req.Rating
	review.Comment = req.Comment
	review.UpdatedAt = r.now()

	updatedReview, err := r.reviewRepository.UpdateReview(ctx, review)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("review_id", reviewID.Hex()).Msg("review update ended with error")
		return models.Review{}, fmt.Errorf("review update ended with error: %w", err)
	}

	return updatedReview, nil
}

// DeleteReview removes a review after verifying the caller wrote it.
func (r *reviewService) DeleteReview(ctx context.Context, reviewID, userID primitive.ObjectID) error {
	review, err := r.reviewRepository.GetReview(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != userID {
		logger.FromContext(ctx).Warn().Str("review_id", reviewID.Hex()).Str("user_id", userID.Hex()).Msg("review deletion by non-owner")
		return ErrNotReviewOwner
	}

	return r.reviewRepository.DeleteReview(ctx, reviewID)
}

func validateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}

	return nil
}
