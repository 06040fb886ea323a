package service

import (
	"context"

	"github.com/MKhiriev/go-reel-keeper/internal/logger"
	"github.com/MKhiriev/go-reel-keeper/internal/store"
	"github.com/MKhiriev/go-reel-keeper/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// favoriteService manages the account→movie favorite relation. Adding twice
// and removing a missing link both surface store sentinel errors so the HTTP
// layer can answer idempotently.
type favoriteService struct {
	favoriteRepository store.FavoriteRepository
	movieRepository    store.MovieRepository
	logger             *logger.Logger
}

func NewFavoriteService(storages *store.Storages, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepository: storages.FavoriteRepository,
		movieRepository:    storages.MovieRepository,
		logger:             logger,
	}
}

// AddFavorite marks the movie as a favorite of the account. The movie must
// exist; a duplicate add fails with store.ErrAlreadyFavorite.
func (f *favoriteService) AddFavorite(ctx context.Context, userID, movieID primitive.ObjectID) error {
	if _, err := f.movieRepository.GetMovie(ctx, movieID); err != nil {
		return err
	}

	if err := f.favoriteRepository.AddFavorite(ctx, userID, movieID); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID.Hex()).Str("movie_id", movieID.Hex()).Msg("adding favorite ended with error")
		return err
	}

	return nil
}

// RemoveFavorite unmarks the movie. Fails with store.ErrFavoriteNotFound if
// the link does not exist.
func (f *favoriteService) RemoveFavorite(ctx context.Context, userID, movieID primitive.ObjectID) error {
	return f.favoriteRepository.RemoveFavorite(ctx, userID, movieID)
}

// ListUserFavorites returns the account's favorite movies, oldest mark
// first.
func (f *favoriteService) ListUserFavorites(ctx context.Context, userID primitive.ObjectID) ([]models.Movie, error) {
	return f.favoriteRepository.ListUserFavorites(ctx, userID)
}
