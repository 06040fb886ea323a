package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-reel-keeper/internal/logger"
	"github.com/MKhiriev/go-reel-keeper/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// reviewRepository is the MongoDB-backed implementation of [ReviewRepository].
type reviewRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReviewRepository constructs a [ReviewRepository] backed by the provided
// database connection and logger.
func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		db:     db,
		logger: logger,
	}
}

// CreateReview inserts a review. The compound unique index on
// (movie_id, user_id) turns a second review by the same account into
// [ErrAlreadyReviewed].
func (r *reviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.reviews.InsertOne(ctx, review)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Review{}, ErrAlreadyReviewed
		}
		log.Err(err).Str("movie_id", review.MovieID.Hex()).Msg("error inserting review")
		return models.Review{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		review.ReviewID = id
	}

	return review, nil
}

func (r *reviewRepository) GetReview(ctx context.Context, id primitive.ObjectID) (models.Review, error) {
	log := logger.FromContext(ctx)

	var review models.Review
	err := r.db.reviews.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Review{}, ErrReviewNotFound
		}
		log.Err(err).Str("id", id.Hex()).Msg("error finding review")
		return models.Review{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return review, nil
}

func (r *reviewRepository) ListMovieReviews(ctx context.Context, movieID primitive.ObjectID) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.db.reviews.Find(ctx, bson.M{"movie_id": movieID}, opts)
	if err != nil {
		log.Err(err).Str("movie_id", movieID.Hex()).Msg("error listing reviews")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := make([]models.Review, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		log.Err(err).Msg("error decoding reviews")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) UpdateReview(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	update := bson.M{"$set": bson.M{
		"rating":     review.Rating,
		"comment":    review.Comment,
		"updated_at": review.UpdatedAt,
	}}

	result, err := r.db.reviews.UpdateOne(ctx, bson.M{"_id": review.ReviewID}, update)
	if err != nil {
		log.Err(err).Str("id", review.ReviewID.Hex()).Msg("error updating review")
		return models.Review{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.Review{}, ErrReviewNotFound
	}

	return review, nil
}

func (r *reviewRepository) DeleteReview(ctx context.Context, id primitive.ObjectID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.reviews.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.Err(err).Str("id", id.Hex()).Msg("error deleting review")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrReviewNotFound
	}

	return nil
}

// DeleteUserReviews removes every review belonging to the account; part of
// the account-deletion cascade.
func (r *reviewRepository) DeleteUserReviews(ctx context.Context, userID primitive.ObjectID) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.reviews.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		log.Err(err).Str("user_id", userID.Hex()).Msg("error deleting user reviews")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteMovieReviews removes every review of the movie; part of the
// catalog-deletion cascade.
func (r *reviewRepository) DeleteMovieReviews(ctx context.Context, movieID primitive.ObjectID) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.reviews.DeleteMany(ctx, bson.M{"movie_id": movieID}); err != nil {
		log.Err(err).Str("movie_id", movieID.Hex()).Msg("error deleting movie reviews")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
