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

type movieFixture struct {
	movies    *mock.MockMovieRepository
	reviews   *mock.MockReviewRepository
	favorites *mock.MockFavoriteRepository
	service   *movieService
}

func newMovieFixture(t *testing.T) *movieFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &movieFixture{
		movies:    mock.NewMockMovieRepository(ctrl),
		reviews:   mock.NewMockReviewRepository(ctrl),
		favorites: mock.NewMockFavoriteRepository(ctrl),
	}
	f.service = &movieService{
		movieRepository:    f.movies,
		reviewRepository:   f.reviews,
		favoriteRepository: f.favorites,
		logger:             logger.Nop(),
	}

	return f
}

func TestMovieService_CreateMovie(t *testing.T) {
	f := newMovieFixture(t)
	movie := models.Movie{Title: "Solaris", Year: 1972, Director: "Andrei Tarkovsky"}

	f.movies.EXPECT().
		CreateMovie(gomock.Any(), movie).
		DoAndReturn(func(_ context.Context, m models.Movie) (models.Movie, error) {
			m.MovieID = primitive.NewObjectID()
			return m, nil
		})

	created, err := f.service.CreateMovie(context.Background(), movie)
	require.NoError(t, err)
	assert.False(t, created.MovieID.IsZero())
}

func TestMovieService_CreateMovie_MissingTitle(t *testing.T) {
	f := newMovieFixture(t)

	_, err := f.service.CreateMovie(context.Background(), models.Movie{Year: 1972})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestMovieService_ListMovies_NormalizesPage(t *testing.T) {
	f := newMovieFixture(t)

	f.movies.EXPECT().
		ListMovies(gomock.Any(), models.MovieFilter{}, models.Page{Number: 1, Size: 20}).
		Return(models.MovieList{Page: 1, PageSize: 20}, nil)

	// zero page falls back to the defaults before the store is asked
	_, err := f.service.ListMovies(context.Background(), models.MovieFilter{}, models.Page{})
	assert.NoError(t, err)
}

func TestMovieService_DeleteMovie_Cascades(t *testing.T) {
	f := newMovieFixture(t)
	movieID := primitive.NewObjectID()

	f.movies.EXPECT().DeleteMovie(gomock.Any(), movieID).Return(nil)
	f.reviews.EXPECT().DeleteMovieReviews(gomock.Any(), movieID).Return(nil)
	f.favorites.EXPECT().DeleteMovieFavorites(gomock.Any(), movieID).Return(nil)

	err := f.service.DeleteMovie(context.Background(), movieID)
	assert.NoError(t, err)
}

func TestMovieService_DeleteMovie_Unknown(t *testing.T) {
	f := newMovieFixture(t)
	movieID := primitive.NewObjectID()

	f.movies.EXPECT().DeleteMovie(gomock.Any(), movieID).Return(store.ErrMovieNotFound)

	err := f.service.DeleteMovie(context.Background(), movieID)
	assert.ErrorIs(t, err, store.ErrMovieNotFound)
}
