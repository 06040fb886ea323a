package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// account fails because an account with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one account produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrMovieNotFound is returned when a catalog lookup or update targets
	// a movie that does not exist.
	ErrMovieNotFound = errors.New("movie was not found")

	// ErrReviewNotFound is returned when a lookup or update targets a
	// review that does not exist.
	ErrReviewNotFound = errors.New("review was not found")

	// ErrAlreadyReviewed is returned when an account tries to create a
	// second review for the same movie; the compound unique index rejects
	// the insert.
	ErrAlreadyReviewed = errors.New("movie is already reviewed by this user")

	// ErrAlreadyFavorite is returned when an account tries to favorite a
	// movie it has already favorited.
	ErrAlreadyFavorite = errors.New("movie is already in favorites")

	// ErrFavoriteNotFound is returned when removing a favorite relation
	// that does not exist.
	ErrFavoriteNotFound = errors.New("favorite was not found")
)
