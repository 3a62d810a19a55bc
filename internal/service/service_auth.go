package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/store"
	"github.com/MKhiriev/go-social-api/internal/utils"
	"github.com/MKhiriev/go-social-api/internal/validators"
	"github.com/MKhiriev/go-social-api/models"
)

// authService is the concrete implementation of AuthService.
// It hashes passwords with a PasswordHasher, persists users through a
// UserRepository and issues HS256 JWTs.
type authService struct {
	userRepository store.UserRepository
	hasher         PasswordHasher
	validator      validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewCredentialsValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser hashes the password with a fresh salt, persists the new user
// and returns the record exactly as stored.
//
// Errors:
//   - ErrInvalidDataProvided if the request fails credential validation.
//   - ErrEmailAlreadyRegistered if the email is taken.
//   - ErrStoreUnavailable if the store cannot be reached.
//   - ErrOperationFailed otherwise.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		if errors.Is(err, ErrInvalidDataProvided) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("%w: %v", ErrOperationFailed, err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		err = fromStoreError(err)
		log.Err(err).Str("kind", ErrorKind(err)).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, err
	}

	log.Info().Str("user_id", registeredUser.UserID).Msg("user registered")
	return registeredUser, nil
}

// Login looks the user up by exact email and verifies the password against
// the stored hash.
//
// Errors:
//   - ErrInvalidDataProvided if email or password is missing or malformed.
//   - ErrUserNotFound if no user has this email.
//   - ErrWrongPassword if the password does not match.
//   - ErrStoreUnavailable if the store cannot be reached.
//   - ErrOperationFailed otherwise (including an unreadable stored hash).
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		err = fromStoreError(err)
		log.Err(err).Str("kind", ErrorKind(err)).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, err
	}

	ok, err := a.hasher.Verify(req.Password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Str("user_id", foundUser.UserID).Msg("stored password hash could not be verified")
		return models.User{}, fmt.Errorf("%w: %v", ErrOperationFailed, err)
	}
	if !ok {
		log.Info().Str("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// GetUser returns the user with the given ID.
func (a *authService) GetUser(ctx context.Context, userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		err = fromStoreError(err)
		logger.FromContext(ctx).Err(err).Str("kind", ErrorKind(err)).Str("user_id", userID).Msg("user lookup failed")
		return models.User{}, err
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
