package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-reel-keeper/internal/config"
	"github.com/MKhiriev/go-reel-keeper/internal/logger"
	"github.com/MKhiriev/go-reel-keeper/internal/mail"
	"github.com/MKhiriev/go-reel-keeper/internal/store"
	"github.com/MKhiriev/go-reel-keeper/internal/utils"
	"github.com/MKhiriev/go-reel-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// Fixed security policy. Deliberately constants rather than configuration:
// the lockout thresholds apply to every account equally.
const (
	// TokenDuration is the lifetime of every issued session token.
	TokenDuration = 2 * time.Hour

	// LockThreshold is the number of consecutive failed password checks
	// that locks an account.
	LockThreshold = 5

	// LockDuration is how long a locked account refuses login attempts.
	LockDuration = 15 * time.Minute

	// ResetTokenTTL bounds the validity of a password-reset token.
	ResetTokenTTL = time.Hour
)

// authService is the concrete implementation of [AuthService].
//
// It owns the account lockout state machine. The state is derived from two
// fields on the account document (failed_login_attempts, lock_until), never
// an explicit enum:
//
//   - Open:   lock_until absent or elapsed, attempts below LockThreshold.
//   - Locked: lock_until present and in the future.
//
// All transitions happen around a login attempt and persist through the
// UserRepository's atomic update operations, so lockout state survives
// process restarts and stays consistent under concurrent attempts.
type authService struct {
	userRepository     store.UserRepository
	reviewRepository   store.ReviewRepository
	favoriteRepository store.FavoriteRepository

	mailSender mail.Sender

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// Injected once at construction; nothing reads the environment per call.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// resetBaseURL is the public URL prefix for password-reset links.
	resetBaseURL string

	// now is the clock used for lock checks, token issuance, and reset
	// token expiry. Replaceable in tests.
	now func() time.Time

	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given repositories
// and mail sender, with security parameters taken from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(storages *store.Storages, mailSender mail.Sender, authCfg config.Auth, mailCfg config.Mail, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:     storages.UserRepository,
		reviewRepository:   storages.ReviewRepository,
		favoriteRepository: storages.FavoriteRepository,
		mailSender:         mailSender,
		tokenSignKey:       authCfg.TokenSignKey,
		tokenIssuer:        authCfg.TokenIssuer,
		resetBaseURL:       mailCfg.ResetBaseURL,
		now:                time.Now,
		uuid:               utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

// RegisterUser creates a new account.
//
// It validates the email and password policy, hashes the password with
// bcrypt, and delegates persistence to the UserRepository. The plaintext
// never reaches the store. On success a session token is issued so the new
// account is immediately logged in.
//
// Returns the persisted account and token, or:
//   - ErrInvalidDataProvided if a field fails validation.
//   - store.ErrEmailAlreadyExists if the identifier is taken.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	email, err := normalizeEmail(req.Email)
	if err != nil {
		log.Err(err).Msg("invalid email provided at registration")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := validatePassword(req.Password); err != nil {
		log.Err(err).Msg("invalid password provided at registration")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if req.Name == "" {
		log.Error().Msg("empty name provided at registration")
		return models.User{}, models.Token{}, fmt.Errorf("%w: name is required", ErrInvalidDataProvided)
	}

	digest, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	now := a.now()
	user := models.User{
		Email:        email,
		PasswordHash: digest,
		Name:         req.Name,
		Age:          req.Age,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.issueToken(registeredUser)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return registeredUser, token, nil
}

// Login authenticates an existing account and drives the lockout state
// machine.
//
// Flow:
//  1. Resolve the account by email. Unknown email fails with
//     ErrInvalidCredentials, deliberately identical to a wrong password.
//  2. Precondition: an elapsed lock clears both counters before anything
//     else is evaluated. The elapsed lock never grants access by itself.
//  3. An active lock rejects the attempt before the password is checked.
//  4. A failed password check increments the counter atomically; the
//     attempt that reaches LockThreshold sets lock_until = now+LockDuration.
//     The locking attempt itself still answers ErrInvalidCredentials — the
//     lock applies from the next attempt on.
//  5. A successful check clears any nonzero counters and issues a token.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	email, err := normalizeEmail(email)
	if err != nil || password == "" {
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("email", email).Msg("login attempt for unknown email")
			return models.User{}, models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	now := a.now()

	// elapsed lock: clear counters first, then proceed to a fresh check
	if user.LockUntil != nil && !user.LockUntil.After(now) {
		if err := a.userRepository.ClearElapsedLock(ctx, user.UserID, now); err != nil {
			log.Err(err).Str("id", user.UserID.Hex()).Msg("clearing elapsed lock failed")
			return models.User{}, models.Token{}, fmt.Errorf("clearing elapsed lock failed: %w", err)
		}
		user.LockUntil = nil
		user.FailedLoginAttempts = 0
	}

	if user.IsLocked(now) {
		log.Warn().Str("id", user.UserID.Hex()).Time("lock_until", *user.LockUntil).Msg("login attempt on locked account")
		return models.User{}, models.Token{}, &AccountLockedError{Until: *user.LockUntil}
	}

	if !utils.CheckPassword(password, user.PasswordHash) {
		attempts, lockedUntil, err := a.userRepository.RecordFailedLogin(ctx, user.UserID, LockThreshold, LockDuration, now)
		if err != nil {
			log.Err(err).Str("id", user.UserID.Hex()).Msg("recording failed login attempt failed")
			return models.User{}, models.Token{}, fmt.Errorf("recording failed login attempt failed: %w", err)
		}

		event := log.Warn().Str("id", user.UserID.Hex()).Int("failed_attempts", attempts)
		if lockedUntil != nil {
			event = event.Time("lock_until", *lockedUntil)
		}
		event.Msg("wrong password")

		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	if user.FailedLoginAttempts > 0 || user.LockUntil != nil {
		if err := a.userRepository.ResetLoginFailures(ctx, user.UserID); err != nil {
			log.Err(err).Str("id", user.UserID.Hex()).Msg("resetting login failures failed")
			return models.User{}, models.Token{}, fmt.Errorf("resetting login failures failed: %w", err)
		}
		user.FailedLoginAttempts = 0
		user.LockUntil = nil
	}

	token, err := a.issueToken(user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// Authenticate resolves a raw bearer token into the full account record.
//
// Signature and expiry are verified against the injected sign key and
// clock; the two failure modes stay distinct so clients can tell a stale
// session (re-login) from a tampered token. On success the account is
// loaded by the subject id with the password digest excluded.
//
// Authenticate is read-only: it never touches lock state.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.User{}, ErrTokenExpired
		}
		log.Err(err).Msg("token validation failed")
		return models.User{}, ErrInvalidToken
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("id", token.UserID.Hex()).Msg("valid token for deleted account")
			return models.User{}, ErrAccountNotFound
		}
		log.Err(err).Str("id", token.UserID.Hex()).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// RequestPasswordReset starts a password reset for the account holding the
// email. The response is identical whether or not the account exists, so
// the endpoint cannot be used to enumerate accounts. Mail delivery runs in
// a background goroutine; failures are logged, never surfaced.
func (a *authService) RequestPasswordReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	email, err := normalizeEmail(email)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// same outcome as success: no account enumeration
			log.Debug().Str("email", email).Msg("password reset requested for unknown email")
			return nil
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	resetToken := a.uuid.Generate()
	expiry := a.now().Add(ResetTokenTTL)

	if err := a.userRepository.SetResetToken(ctx, user.UserID, resetToken, expiry); err != nil {
		log.Err(err).Str("id", user.UserID.Hex()).Msg("storing reset token failed")
		return fmt.Errorf("storing reset token failed: %w", err)
	}

	resetURL := fmt.Sprintf("%s?token=%s", a.resetBaseURL, resetToken)
	body, err := mail.RenderResetMail(user.Name, resetURL)
	if err != nil {
		log.Err(err).Msg("rendering reset mail failed")
		return fmt.Errorf("rendering reset mail failed: %w", err)
	}

	// fire-and-forget: the HTTP response does not wait for delivery
	mailLog := a.logger.GetChildLogger()
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := a.mailSender.Send(sendCtx, user.Email, mail.ResetMailSubject, body); err != nil {
			mailLog.Err(err).Str("email", user.Email).Msg("sending reset mail failed")
		}
	}()

	return nil
}

// ResetPassword completes a password reset. A valid, unexpired token
// replaces the digest and clears the token and any lockout counters in one
// store update, so a reset also unlocks the account.
func (a *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	log := logger.FromContext(ctx)

	if token == "" {
		return ErrInvalidResetToken
	}
	if err := validatePassword(newPassword); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrInvalidResetToken
		}
		log.Err(err).Msg("user search by reset token failed")
		return fmt.Errorf("user search by reset token failed: %w", err)
	}

	if user.ResetTokenExpiry == nil || user.ResetTokenExpiry.Before(a.now()) {
		log.Warn().Str("id", user.UserID.Hex()).Msg("expired reset token presented")
		return ErrInvalidResetToken
	}

	digest, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, user.UserID, digest); err != nil {
		log.Err(err).Str("id", user.UserID.Hex()).Msg("updating password failed")
		return fmt.Errorf("updating password failed: %w", err)
	}

	return nil
}

// DeleteAccount removes an account after re-proof of the current password,
// cascading to its reviews and favorites.
func (a *authService) DeleteAccount(ctx context.Context, email, password string) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(password, user.PasswordHash) {
		log.Warn().Str("id", user.UserID.Hex()).Msg("account deletion with wrong password")
		return ErrInvalidCredentials
	}

	if err := a.reviewRepository.DeleteUserReviews(ctx, user.UserID); err != nil {
		return fmt.Errorf("deleting user reviews failed: %w", err)
	}
	if err := a.favoriteRepository.DeleteUserFavorites(ctx, user.UserID); err != nil {
		return fmt.Errorf("deleting user favorites failed: %w", err)
	}
	if err := a.userRepository.DeleteUser(ctx, user.UserID); err != nil {
		return fmt.Errorf("deleting user failed: %w", err)
	}

	log.Info().Str("id", user.UserID.Hex()).Msg("account deleted")
	return nil
}

// issueToken signs a session token for the account using the injected key
// and clock.
func (a *authService) issueToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.now(), TokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
