package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-reel-keeper/internal/logger"
	"github.com/MKhiriev/go-reel-keeper/internal/mock"
	"github.com/MKhiriev/go-reel-keeper/internal/store"
	"github.com/MKhiriev/go-reel-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type favoriteFixture struct {
	favorites *mock.MockFavoriteRepository
	movies    *mock.MockMovieRepository
	service   *favoriteService
}

func newFavoriteFixture(t *testing.T) *favoriteFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &favoriteFixture{
		favorites: mock.NewMockFavoriteRepository(ctrl),
		movies:    mock.NewMockMovieRepository(ctrl),
	}
	f.service = &favoriteService{
		favoriteRepository: f.favorites,
		movieRepository:    f.movies,
		logger:             logger.Nop(),
	}

	return f
}

func TestFavoriteService_AddFavorite(t *testing.T) {
	f := newFavoriteFixture(t)
	userID := primitive.NewObjectID()
	movieID := primitive.NewObjectID()

	f.movies.EXPECT().GetMovie(gomock.Any(), movieID).Return(models.Movie{MovieID: movieID}, nil)
	f.favorites.EXPECT().AddFavorite(gomock.Any(), userID, movieID).Return(nil)

	err := f.service.AddFavorite(context.Background(), userID, movieID)
	assert.NoError(t, err)
}

func TestFavoriteService_AddFavorite_UnknownMovie(t *testing.T) {
	f := newFavoriteFixture(t)
	movieID := primitive.NewObjectID()

	f.movies.EXPECT().GetMovie(gomock.Any(), movieID).Return(models.Movie{}, store.ErrMovieNotFound)

	err := f.service.AddFavorite(context.Background(), primitive.NewObjectID(), movieID)
	assert.ErrorIs(t, err, store.ErrMovieNotFound)
}

func TestFavoriteService_AddFavorite_Duplicate(t *testing.T) {
	f := newFavoriteFixture(t)
	userID := primitive.NewObjectID()
	movieID := primitive.NewObjectID()

	f.movies.EXPECT().GetMovie(gomock.Any(), movieID).Return(models.Movie{MovieID: movieID}, nil)
	f.favorites.EXPECT().AddFavorite(gomock.Any(), userID, movieID).Return(store.ErrAlreadyFavorite)

	err := f.service.AddFavorite(context.Background(), userID, movieID)
	assert.ErrorIs(t, err, store.ErrAlreadyFavorite)
}

func TestFavoriteService_RemoveFavorite_Unknown(t *testing.T) {
	f := newFavoriteFixture(t)
	userID := primitive.NewObjectID()
	movieID := primitive.NewObjectID()

	f.favorites.EXPECT().RemoveFavorite(gomock.Any(), userID, movieID).Return(store.ErrFavoriteNotFound)

	err := f.service.RemoveFavorite(context.Background(), userID, movieID)
	assert.ErrorIs(t, err, store.ErrFavoriteNotFound)
}

func TestFavoriteService_ListUserFavorites(t *testing.T) {
	f := newFavoriteFixture(t)
	userID := primitive.NewObjectID()
	movies := []models.Movie{
		{MovieID: primitive.NewObjectID(), Title: "Stalker"},
		{MovieID: primitive.NewObjectID(), Title: "Mirror"},
	}

	f.favorites.EXPECT().ListUserFavorites(gomock.Any(), userID).Return(movies, nil)

	listed, err := f.service.ListUserFavorites(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, movies, listed)
}
