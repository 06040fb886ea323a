package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-reel-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newFavoriteTestRepo(mt *mtest.T) *favoriteRepository {
	return &favoriteRepository{
		db:     &DB{favorites: mt.Coll, movies: mt.Coll},
		logger: logger.Nop(),
	}
}

func TestFavoriteRepository_AddFavorite_Duplicate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unique index rejects a second mark", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))
		repo := newFavoriteTestRepo(mt)

		err := repo.AddFavorite(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, ErrAlreadyFavorite)
	})
}

func TestFavoriteRepository_RemoveFavorite_Unknown(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing relation", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		repo := newFavoriteTestRepo(mt)

		err := repo.RemoveFavorite(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, ErrFavoriteNotFound)
	})
}

func TestFavoriteRepository_ListUserFavorites(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("no favorites yet", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "reelkeeper.favorites", mtest.FirstBatch))
		repo := newFavoriteTestRepo(mt)

		movies, err := repo.ListUserFavorites(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.Empty(mt, movies)
	})

	mt.Run("preserves favorited-at order and skips deleted movies", func(mt *mtest.T) {
		userID := primitive.NewObjectID()
		firstMovieID := primitive.NewObjectID()
		secondMovieID := primitive.NewObjectID()
		deletedMovieID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "reelkeeper.favorites", mtest.FirstBatch,
				bson.D{{Key: "user_id", Value: userID}, {Key: "movie_id", Value: firstMovieID}},
				bson.D{{Key: "user_id", Value: userID}, {Key: "movie_id", Value: deletedMovieID}},
				bson.D{{Key: "user_id", Value: userID}, {Key: "movie_id", Value: secondMovieID}},
			),
			// the catalog answers in arbitrary order, without the deleted movie
			mtest.CreateCursorResponse(0, "reelkeeper.movies", mtest.FirstBatch,
				bson.D{{Key: "_id", Value: secondMovieID}, {Key: "title", Value: "Mirror"}},
				bson.D{{Key: "_id", Value: firstMovieID}, {Key: "title", Value: "Stalker"}},
			),
		)
		repo := newFavoriteTestRepo(mt)

		movies, err := repo.ListUserFavorites(context.Background(), userID)
		require.NoError(mt, err)
		require.Len(mt, movies, 2)
		assert.Equal(mt, "Stalker", movies[0].Title)
		assert.Equal(mt, "Mirror", movies[1].Title)
	})
}
