package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-reel-keeper/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository is the credential store consumed by the authentication
// core. Implementations must guarantee email uniqueness and perform the
// lockout counter mutations as single atomic update operations.
type UserRepository interface {
	// CreateUser persists a new account. The password digest must already
	// be set. Returns ErrEmailAlreadyExists on an identifier collision.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail resolves an account by its lowercased identifier,
	// including the password digest and security counters.
	// Returns ErrNoUserWasFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID resolves an account by id with the password digest
	// excluded via projection; used by the request-time auth gate.
	// Returns ErrNoUserWasFound when no account matches.
	FindUserByID(ctx context.Context, id primitive.ObjectID) (models.User, error)

	// FindUserByResetToken resolves an account by its password-reset token.
	// Returns ErrNoUserWasFound when no account matches.
	FindUserByResetToken(ctx context.Context, token string) (models.User, error)

	// RecordFailedLogin atomically increments the failed-attempt counter
	// and, if the post-increment count has reached threshold, sets the lock
	// expiry to now+lockFor. Returns the post-increment count and the lock
	// expiry if one was set.
	RecordFailedLogin(ctx context.Context, id primitive.ObjectID, threshold int, lockFor time.Duration, now time.Time) (int, *time.Time, error)

	// ClearElapsedLock removes the lock and failure counter from the
	// account, but only if the stored lock expiry is not after now. A
	// no-op when the account is unlocked or the lock is still active.
	ClearElapsedLock(ctx context.Context, id primitive.ObjectID, now time.Time) error

	// ResetLoginFailures removes the failure counter and any lock after a
	// successful password check.
	ResetLoginFailures(ctx context.Context, id primitive.ObjectID) error

	// SetResetToken stores a password-reset token and its expiry.
	SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expiry time.Time) error

	// UpdatePassword replaces the password digest and clears the reset
	// token and lockout counters in the same update.
	UpdatePassword(ctx context.Context, id primitive.ObjectID, digest string) error

	// DeleteUser removes the account document.
	// Returns ErrNoUserWasFound when no account matches.
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

// MovieRepository persists the movie catalog.
type MovieRepository interface {
	CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)
	GetMovie(ctx context.Context, id primitive.ObjectID) (models.Movie, error)
	ListMovies(ctx context.Context, filter models.MovieFilter, page models.Page) (models.MovieList, error)
	UpdateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)
	DeleteMovie(ctx context.Context, id primitive.ObjectID) error
}

// ReviewRepository persists per-account movie reviews.
type ReviewRepository interface {
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
	GetReview(ctx context.Context, id primitive.ObjectID) (models.Review, error)
	ListMovieReviews(ctx context.Context, movieID primitive.ObjectID) ([]models.Review, error)
	UpdateReview(ctx context.Context, review models.Review) (models.Review, error)
	DeleteReview(ctx context.Context, id primitive.ObjectID) error
	DeleteUserReviews(ctx context.Context, userID primitive.ObjectID) error
	DeleteMovieReviews(ctx context.Context, movieID primitive.ObjectID) error
}

// FavoriteRepository persists the account→movie favorite relation.
type FavoriteRepository interface {
	AddFavorite(ctx context.Context, userID, movieID primitive.ObjectID) error
	RemoveFavorite(ctx context.Context, userID, movieID primitive.ObjectID) error
	ListUserFavorites(ctx context.Context, userID primitive.ObjectID) ([]models.Movie, error)
	DeleteUserFavorites(ctx context.Context, userID primitive.ObjectID) error
	DeleteMovieFavorites(ctx context.Context, movieID primitive.ObjectID) error
}
