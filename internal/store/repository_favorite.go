package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-reel-keeper/internal/logger"
	"github.com/MKhiriev/go-reel-keeper/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// favoriteRepository is the MongoDB-backed implementation of
// [FavoriteRepository].
type favoriteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFavoriteRepository constructs a [FavoriteRepository] backed by the
// provided database connection and logger.
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{
		db:     db,
		logger: logger,
	}
}

// AddFavorite inserts the relation. The compound unique index on
// (user_id, movie_id) turns a repeated insert into [ErrAlreadyFavorite].
func (r *favoriteRepository) AddFavorite(ctx context.Context, userID, movieID primitive.ObjectID) error {
	log := logger.FromContext(ctx)

	favorite := models.Favorite{
		UserID:    userID,
		MovieID:   movieID,
		CreatedAt: time.Now(),
	}

	if _, err := r.db.favorites.InsertOne(ctx, favorite); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrAlreadyFavorite
		}
		log.Err(err).Str("movie_id", movieID.Hex()).Msg("error inserting favorite")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *favoriteRepository) RemoveFavorite(ctx context.Context, userID, movieID primitive.ObjectID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.favorites.DeleteOne(ctx, bson.M{"user_id": userID, "movie_id": movieID})
	if err != nil {
		log.Err(err).Str("movie_id", movieID.Hex()).Msg("error deleting favorite")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

// ListUserFavorites resolves the account's favorite movies in two steps:
// the relation documents first, then one $in query against the catalog.
// Movies deleted from the catalog since being favorited are skipped.
func (r *favoriteRepository) ListUserFavorites(ctx context.Context, userID primitive.ObjectID) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.db.favorites.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		log.Err(err).Str("user_id", userID.Hex()).Msg("error listing favorites")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer cursor.Close(ctx)

	var favorites []models.Favorite
	if err := cursor.All(ctx, &favorites); err != nil {
		log.Err(err).Msg("error decoding favorites")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	if len(favorites) == 0 {
		return []models.Movie{}, nil
	}

	movieIDs := make([]primitive.ObjectID, 0, len(favorites))
	for _, favorite := range favorites {
		movieIDs = append(movieIDs, favorite.MovieID)
	}

	movieCursor, err := r.db.movies.Find(ctx, bson.M{"_id": bson.M{"$in": movieIDs}})
	if err != nil {
		log.Err(err).Msg("error fetching favorite movies")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer movieCursor.Close(ctx)

	var movies []models.Movie
	if err := movieCursor.All(ctx, &movies); err != nil {
		log.Err(err).Msg("error decoding favorite movies")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	// preserve the favorited-at ordering from the relation documents
	byID := make(map[primitive.ObjectID]models.Movie, len(movies))
	for _, movie := range movies {
		byID[movie.MovieID] = movie
	}

	ordered := make([]models.Movie, 0, len(favorites))
	for _, favorite := range favorites {
		if movie, ok := byID[favorite.MovieID]; ok {
			ordered = append(ordered, movie)
		}
	}

	return ordered, nil
}

// DeleteUserFavorites removes every favorite relation of the account; part
// of the account-deletion cascade.
func (r *favoriteRepository) DeleteUserFavorites(ctx context.Context, userID primitive.ObjectID) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.favorites.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		log.Err(err).Str("user_id", userID.Hex()).Msg("error deleting user favorites")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteMovieFavorites removes every favorite relation pointing at the
// movie; part of the catalog-deletion cascade.
func (r *favoriteRepository) DeleteMovieFavorites(ctx context.Context, movieID primitive.ObjectID) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.favorites.DeleteMany(ctx, bson.M{"movie_id": movieID}); err != nil {
		log.Err(err).Str("movie_id", movieID.Hex()).Msg("error deleting movie favorites")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
