package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/arc-portal/internal/config"
	"github.com/MKhiriev/arc-portal/internal/logger"
	"github.com/MKhiriev/arc-portal/internal/store"
	"github.com/MKhiriev/arc-portal/internal/utils"
	"github.com/MKhiriev/arc-portal/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification and session
// token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// passwordCost is the bcrypt cost applied at registration.
	passwordCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		passwordCost:   cfg.PasswordCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new account.
//
// The email is trimmed and lowercased; the password is hashed verbatim.
//
// Returns the persisted user without credentials or:
//   - ErrEmailAndPasswordRequired if either value is empty.
//   - ErrEmailAlreadyRegistered if the email is taken.
//   - ErrRegistrationFailed (or ErrDatabaseConnection) on any other failure.
func (a *authService) Register(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = normalizeEmail(user.Email)
	if user.Email == "" || user.Password == "" {
		return models.User{}, ErrEmailAndPasswordRequired
	}

	_, err := a.userRepository.FindUserByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return models.User{}, ErrEmailAlreadyRegistered
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "*authService.Register").Str("email", user.Email).Msg("user search by email failed")
		return models.User{}, storeFailure(err, ErrRegistrationFailed)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), a.passwordCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}
	user.PasswordHash = string(hash)
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyRegistered) {
			return models.User{}, ErrEmailAlreadyRegistered
		}
		log.Err(err).Str("func", "*authService.Register").Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, storeFailure(err, ErrRegistrationFailed)
	}

	log.Info().Str("func", "*authService.Register").Int64("id", registeredUser.UserID).Msg("user registered")
	return registeredUser.Public(), nil
}

// Login authenticates an account and issues a session token.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials so
// that callers cannot tell them apart.
func (a *authService) Login(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	user.Email = normalizeEmail(user.Email)
	if user.Email == "" || user.Password == "" {
		return models.Token{}, ErrEmailAndPasswordRequired
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, user.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("func", "*authService.Login").Msg("unknown email")
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.Token{}, storeFailure(err, ErrAuthenticationFailed)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(user.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Debug().Str("func", "*authService.Login").Int64("id", foundUser.UserID).Msg("wrong password")
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Int64("id", foundUser.UserID).Msg("stored hash is unusable")
		return models.Token{}, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
