package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-reel-keeper/internal/service"
	"github.com/MKhiriev/go-reel-keeper/internal/store"
	"github.com/MKhiriev/go-reel-keeper/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockReviewService implements service.ReviewService with overridable
// behaviour per test case.
type mockReviewService struct {
	createReview     func(ctx context.Context, movieID, userID primitive.ObjectID, req models.ReviewRequest) (models.Review, error)
	listMovieReviews func(ctx context.Context, movieID primitive.ObjectID) ([]models.Review, error)
	updateReview     func(ctx context.Context, reviewID, userID primitive.ObjectID, req models.ReviewRequest) (models.Review, error)
	deleteReview     func(ctx context.Context, reviewID, userID primitive.ObjectID) error
}

func (m *mockReviewService) CreateReview(ctx context.Context, movieID, userID primitive.ObjectID, req models.ReviewRequest) (models.Review, error) {
	return m.createReview(ctx, movieID, userID, req)
}

func (m *mockReviewService) ListMovieReviews(ctx context.Context, movieID primitive.ObjectID) ([]models.Review, error) {
	return m.listMovieReviews(ctx, movieID)
}

func (m *mockReviewService) UpdateReview(ctx context.Context, reviewID, userID primitive.ObjectID, req models.ReviewRequest) (models.Review, error) {
	return m.updateReview(ctx, reviewID, userID, req)
}

func (m *mockReviewService) DeleteReview(ctx context.Context, reviewID, userID primitive.ObjectID) error {
	return m.deleteReview(ctx, reviewID, userID)
}

func reviewServices(userID primitive.ObjectID, reviews *mockReviewService) *service.Services {
	return &service.Services{
		AuthService: &mockAuthService{
			authenticate: func(context.Context, string) (models.User, error) {
				return models.User{UserID: userID}, nil
			},
		},
		ReviewService: reviews,
	}
}

func TestHandler_CreateReview(t *testing.T) {
	movieID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	reviews := &mockReviewService{
		createReview: func(_ context.Context, gotMovieID, gotUserID primitive.ObjectID, req models.ReviewRequest) (models.Review, error) {
			assert.Equal(t, movieID, gotMovieID)
			assert.Equal(t, userID, gotUserID)
			assert.Equal(t, 8, req.Rating)
			return models.Review{ReviewID: primitive.NewObjectID(), MovieID: gotMovieID, UserID: gotUserID, Rating: req.Rating}, nil
		},
	}
	h := newTestHandler(reviewServices(userID, reviews))

	req := httptest.NewRequest(http.MethodPost, "/api/movies/"+movieID.Hex()+"/reviews", jsonBody(t, models.ReviewRequest{
		Rating: 8, Comment: "solid",
	}))
	req.Header.Set("Authorization", "Bearer signed-token")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_CreateReview_Duplicate(t *testing.T) {
	reviews := &mockReviewService{
		createReview: func(context.Context, primitive.ObjectID, primitive.ObjectID, models.ReviewRequest) (models.Review, error) {
			return models.Review{}, store.ErrAlreadyReviewed
		},
	}
	h := newTestHandler(reviewServices(primitive.NewObjectID(), reviews))

	req := httptest.NewRequest(http.MethodPost, "/api/movies/"+primitive.NewObjectID().Hex()+"/reviews", jsonBody(t, models.ReviewRequest{Rating: 8}))
	req.Header.Set("Authorization", "Bearer signed-token")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_ListMovieReviews_Public(t *testing.T) {
	movieID := primitive.NewObjectID()
	reviews := &mockReviewService{
		listMovieReviews: func(context.Context, primitive.ObjectID) ([]models.Review, error) {
			return nil, nil
		},
	}
	h := newTestHandler(&service.Services{ReviewService: reviews})

	// no Authorization header: listing is public, empty list is []
	req := httptest.NewRequest(http.MethodGet, "/api/movies/"+movieID.Hex()+"/reviews", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHandler_UpdateReview_NotOwner(t *testing.T) {
	reviews := &mockReviewService{
		updateReview: func(context.Context, primitive.ObjectID, primitive.ObjectID, models.ReviewRequest) (models.Review, error) {
			return models.Review{}, service.ErrNotReviewOwner
		},
	}
	h := newTestHandler(reviewServices(primitive.NewObjectID(), reviews))

	req := httptest.NewRequest(http.MethodPut, "/api/reviews/"+primitive.NewObjectID().Hex(), jsonBody(t, models.ReviewRequest{Rating: 2}))
	req.Header.Set("Authorization", "Bearer signed-token")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandler_DeleteReview(t *testing.T) {
	reviewID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	reviews := &mockReviewService{
		deleteReview: func(_ context.Context, gotReviewID, gotUserID primitive.ObjectID) error {
			assert.Equal(t, reviewID, gotReviewID)
			assert.Equal(t, userID, gotUserID)
			return nil
		},
	}
	h := newTestHandler(reviewServices(userID, reviews))

	req := httptest.NewRequest(http.MethodDelete, "/api/reviews/"+reviewID.Hex(), nil)
	req.Header.Set("Authorization", "Bearer signed-token")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
