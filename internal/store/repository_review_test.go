package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-reel-keeper/internal/logger"
	"github.com/MKhiriev/go-reel-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newReviewTestRepo(mt *mtest.T) *reviewRepository {
	return &reviewRepository{
		db:     &DB{reviews: mt.Coll},
		logger: logger.Nop(),
	}
}

func TestReviewRepository_CreateReview(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns the generated id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := newReviewTestRepo(mt)

		review, err := repo.CreateReview(context.Background(), models.Review{
			MovieID: primitive.NewObjectID(),
			UserID:  primitive.NewObjectID(),
			Rating:  8,
		})
		require.NoError(mt, err)
		assert.False(mt, review.ReviewID.IsZero())
	})

	mt.Run("one review per account and movie", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))
		repo := newReviewTestRepo(mt)

		_, err := repo.CreateReview(context.Background(), models.Review{
			MovieID: primitive.NewObjectID(),
			UserID:  primitive.NewObjectID(),
			Rating:  8,
		})
		assert.ErrorIs(mt, err, ErrAlreadyReviewed)
	})
}

func TestReviewRepository_GetReview_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unknown review", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "reelkeeper.reviews", mtest.FirstBatch))
		repo := newReviewTestRepo(mt)

		_, err := repo.GetReview(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, ErrReviewNotFound)
	})
}

func TestReviewRepository_UpdateReview_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unknown review", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		repo := newReviewTestRepo(mt)

		_, err := repo.UpdateReview(context.Background(), models.Review{ReviewID: primitive.NewObjectID(), Rating: 5})
		assert.ErrorIs(mt, err, ErrReviewNotFound)
	})
}
