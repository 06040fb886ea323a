package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-reel-keeper/internal/logger"
	"github.com/MKhiriev/go-reel-keeper/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// movieRepository is the MongoDB-backed implementation of [MovieRepository].
type movieRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMovieRepository constructs a [MovieRepository] backed by the provided
// database connection and logger.
func NewMovieRepository(db *DB, logger *logger.Logger) MovieRepository {
	logger.Debug().Msg("creating movie repository")
	return &movieRepository{
		db:     db,
		logger: logger,
	}
}

func (r *movieRepository) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.movies.InsertOne(ctx, movie)
	if err != nil {
		log.Err(err).Str("title", movie.Title).Msg("error inserting movie")
		return models.Movie{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		movie.MovieID = id
	}

	return movie, nil
}

func (r *movieRepository) GetMovie(ctx context.Context, id primitive.ObjectID) (models.Movie, error) {
	log := logger.FromContext(ctx)

	var movie models.Movie
	err := r.db.movies.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Movie{}, ErrMovieNotFound
		}
		log.Err(err).Str("id", id.Hex()).Msg("error finding movie")
		return models.Movie{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return movie, nil
}

// ListMovies returns one page of the catalog matching the filter, newest
// first, together with the total match count for pagination metadata.
func (r *movieRepository) ListMovies(ctx context.Context, filter models.MovieFilter, page models.Page) (models.MovieList, error) {
	log := logger.FromContext(ctx)
	page = page.Normalize()

	query := buildMovieQuery(filter)

	total, err := r.db.movies.CountDocuments(ctx, query)
	if err != nil {
		log.Err(err).Msg("error counting movies")
		return models.MovieList{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	findOpts := options.Find().
		SetSkip(page.Skip()).
		SetLimit(int64(page.Size)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.movies.Find(ctx, query, findOpts)
	if err != nil {
		log.Err(err).Msg("error listing movies")
		return models.MovieList{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer cursor.Close(ctx)

	movies := make([]models.Movie, 0, page.Size)
	if err := cursor.All(ctx, &movies); err != nil {
		log.Err(err).Msg("error decoding movies")
		return models.MovieList{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return models.MovieList{
		Movies:   movies,
		Total:    total,
		Page:     page.Number,
		PageSize: page.Size,
	}, nil
}

func (r *movieRepository) UpdateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	log := logger.FromContext(ctx)

	update := bson.M{"$set": bson.M{
		"title":       movie.Title,
		"description": movie.Description,
		"genres":      movie.Genres,
		"year":        movie.Year,
		"director":    movie.Director,
		"cast":        movie.Cast,
		"poster_url":  movie.PosterURL,
		"updated_at":  movie.UpdatedAt,
	}}

	result, err := r.db.movies.UpdateOne(ctx, bson.M{"_id": movie.MovieID}, update)
	if err != nil {
		log.Err(err).Str("id", movie.MovieID.Hex()).Msg("error updating movie")
		return models.Movie{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.Movie{}, ErrMovieNotFound
	}

	return movie, nil
}

func (r *movieRepository) DeleteMovie(ctx context.Context, id primitive.ObjectID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.movies.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.Err(err).Str("id", id.Hex()).Msg("error deleting movie")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrMovieNotFound
	}

	return nil
}

// buildMovieQuery translates a [models.MovieFilter] into a MongoDB filter
// document. The title search is a case-insensitive substring match; the
// search string is user input, so it is quoted before entering the regex.
func buildMovieQuery(filter models.MovieFilter) bson.M {
	query := bson.M{}

	if filter.Genre != "" {
		query["genres"] = filter.Genre
	}
	if filter.Year != 0 {
		query["year"] = filter.Year
	}
	if filter.Search != "" {
		query["title"] = bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}}
	}

	return query
}
