package service

import (
	"context"

	"github.com/MKhiriev/go-reel-keeper/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthService is the authentication orchestrator: registration, the login
// flow with its lockout state machine, the request-time token gate, and the
// password-reset lifecycle.
type AuthService interface {
	// RegisterUser creates an account from the request and issues a session
	// token for it.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error)

	// Login authenticates an existing account and issues a session token.
	// Failure modes: ErrInvalidCredentials (unknown email or wrong
	// password, indistinguishable), ErrAccountLocked (too many recent
	// failures, expiry attached via AccountLockedError).
	Login(ctx context.Context, email, password string) (models.User, models.Token, error)

	// Authenticate resolves a raw bearer token into the full account.
	// Failure modes: ErrTokenExpired, ErrInvalidToken, ErrAccountNotFound.
	// Read-only: it never touches lock state.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)

	// RequestPasswordReset starts a reset for the account holding the
	// email. Succeeds identically whether or not the account exists, to
	// avoid account enumeration. Mail delivery is fire-and-forget.
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword completes a reset: valid unexpired token, new password
	// stored, token and lockout counters cleared.
	ResetPassword(ctx context.Context, token, newPassword string) error

	// DeleteAccount removes the account after re-proof of the current
	// password, cascading to its reviews and favorites.
	DeleteAccount(ctx context.Context, email, password string) error
}

// MovieService manages the catalog.
type MovieService interface {
	CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)
	GetMovie(ctx context.Context, id primitive.ObjectID) (models.Movie, error)
	ListMovies(ctx context.Context, filter models.MovieFilter, page models.Page) (models.MovieList, error)
	UpdateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)
	DeleteMovie(ctx context.Context, id primitive.ObjectID) error
}

// ReviewService manages per-account movie reviews with ownership checks.
type ReviewService interface {
	CreateReview(ctx context.Context, movieID, userID primitive.ObjectID, req models.ReviewRequest) (models.Review, error)
	ListMovieReviews(ctx context.Context, movieID primitive.ObjectID) ([]models.Review, error)
	UpdateReview(ctx context.Context, reviewID, userID primitive.ObjectID, req models.ReviewRequest) (models.Review, error)
	DeleteReview(ctx context.Context, reviewID, userID primitive.ObjectID) error
}

// FavoriteService manages the account→movie favorite relation.
type FavoriteService interface {
	AddFavorite(ctx context.Context, userID, movieID primitive.ObjectID) error
	RemoveFavorite(ctx context.Context, userID, movieID primitive.ObjectID) error
	ListUserFavorites(ctx context.Context, userID primitive.ObjectID) ([]models.Movie, error)
}
