package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-reel-keeper/internal/logger"
	"github.com/MKhiriev/go-reel-keeper/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userRepository is the MongoDB-backed implementation of [UserRepository].
// It handles account creation, lookup, and the lockout counter mutations
// against the "users" collection.
//
// Every counter mutation is a single conditional update keyed by account id,
// so concurrent login attempts on the same account cannot under-count
// failures or resurrect a cleared lock.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record and returns the fully populated
// [models.User] with the server-assigned UserID.
//
// Error handling:
//   - duplicate key on the unique email index → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("email", user.Email).Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.UserID = id
	}

	return user, nil
}

// FindUserByEmail retrieves the account whose email matches, including the
// password digest and security counters needed by the login flow.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("email", email).Msg("error finding user by email")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByID retrieves the account by id with the password digest excluded
// via projection. Used by the request-time auth gate, which must never carry
// the digest further than the store boundary.
func (r *userRepository) FindUserByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	log := logger.FromContext(ctx)

	opts := options.FindOne().SetProjection(bson.M{"password_hash": 0})

	var user models.User
	err := r.db.users.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("id", id.Hex()).Msg("error finding user by id")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByResetToken retrieves the account holding the given password-reset
// token. Expiry checking is the caller's responsibility.
func (r *userRepository) FindUserByResetToken(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.users.FindOne(ctx, bson.M{"reset_token": token}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Msg("error finding user by reset token")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// RecordFailedLogin registers one failed password check.
//
// The increment is a single $inc via FindOneAndUpdate returning the
// post-increment document, so two concurrent failures produce two distinct
// counts. When the post-increment count reaches threshold, the lock expiry
// is set with a second conditional update filtered on the counter still
// being at or above threshold; a concurrent reset (successful login) makes
// that condition fail and no stale lock is written.
func (r *userRepository) RecordFailedLogin(ctx context.Context, id primitive.ObjectID, threshold int, lockFor time.Duration, now time.Time) (int, *time.Time, error) {
	log := logger.FromContext(ctx)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := r.db.users.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"failed_login_attempts": 1}},
		opts,
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil, ErrNoUserWasFound
		}
		log.Err(err).Str("id", id.Hex()).Msg("error incrementing failed login attempts")
		return 0, nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	if user.FailedLoginAttempts < threshold {
		return user.FailedLoginAttempts, nil, nil
	}

	until := now.Add(lockFor)
	_, err = r.db.users.UpdateOne(
		ctx,
		bson.M{"_id": id, "failed_login_attempts": bson.M{"$gte": threshold}},
		bson.M{"$set": bson.M{"lock_until": until}},
	)
	if err != nil {
		log.Err(err).Str("id", id.Hex()).Msg("error setting lock on account")
		return user.FailedLoginAttempts, nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user.FailedLoginAttempts, &until, nil
}

// ClearElapsedLock removes the lock and the failure counter, but only when
// the stored lock expiry is not after now. The condition lives in the filter
// so the check-and-clear is one atomic operation.
func (r *userRepository) ClearElapsedLock(ctx context.Context, id primitive.ObjectID, now time.Time) error {
	log := logger.FromContext(ctx)

	_, err := r.db.users.UpdateOne(
		ctx,
		bson.M{"_id": id, "lock_until": bson.M{"$lte": now}},
		bson.M{"$unset": bson.M{"lock_until": "", "failed_login_attempts": ""}},
	)
	if err != nil {
		log.Err(err).Str("id", id.Hex()).Msg("error clearing elapsed lock")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// ResetLoginFailures removes the failure counter and any lock after a
// successful password check.
func (r *userRepository) ResetLoginFailures(ctx context.Context, id primitive.ObjectID) error {
	log := logger.FromContext(ctx)

	_, err := r.db.users.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$unset": bson.M{"lock_until": "", "failed_login_attempts": ""}},
	)
	if err != nil {
		log.Err(err).Str("id", id.Hex()).Msg("error resetting login failures")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// SetResetToken stores a password-reset token and its expiry on the account.
func (r *userRepository) SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expiry time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.users.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"reset_token": token, "reset_token_expiry": expiry}},
	)
	if err != nil {
		log.Err(err).Str("id", id.Hex()).Msg("error setting reset token")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// UpdatePassword replaces the password digest and clears the reset token and
// lockout counters in the same update, so a completed reset leaves the
// account open and the token unusable.
func (r *userRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, digest string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.users.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$set": bson.M{"password_hash": digest, "updated_at": time.Now()},
			"$unset": bson.M{
				"reset_token":           "",
				"reset_token_expiry":    "",
				"lock_until":            "",
				"failed_login_attempts": "",
			},
		},
	)
	if err != nil {
		log.Err(err).Str("id", id.Hex()).Msg("error updating password")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// DeleteUser removes the account document.
func (r *userRepository) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.Err(err).Str("id", id.Hex()).Msg("error deleting user")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
