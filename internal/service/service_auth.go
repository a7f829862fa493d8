package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// authService is the concrete implementation of [AuthService].
// It stores bcrypt hashes through a [store.UserRepository] and hands out
// tokens issued by a [TokenService].
type authService struct {
	userRepository store.UserRepository
	tokens         TokenService
	hasher         *utils.PasswordHasher
	validator      validators.Validator
	logger         *logger.Logger
}

// NewAuthService constructs a new AuthService. Passwords are hashed with
// the bcrypt cost from cfg.
//
// The returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, tokens TokenService, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokens:         tokens,
		hasher:         utils.NewPasswordHasher(cfg.PasswordHashCost),
		validator:      validators.NewRequestValidator(),
		logger:         logger,
	}
}

// Register creates a new account and returns a token for it.
//
// Returns:
//   - ErrValidation if a field is malformed.
//   - ErrUserAlreadyExists if the email is taken, including when a
//     concurrent registration wins the race at the store.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return models.Token{}, ErrUserAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "*authService.Register").Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.Token{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.Token{}, ErrUserAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}
	log.Info().Str("user_id", user.ID).Msg("user registered")

	return a.tokens.IssueToken(ctx, user.ID)
}

// Login checks the credentials and returns a token.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.hasher.Compare(user.Password, req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("user_id", user.ID).Msg("stored hash is unusable")
		return models.Token{}, err
	}
	if !ok {
		log.Debug().Str("user_id", user.ID).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.tokens.IssueToken(ctx, user.ID)
}

// GetProfile returns the user without the password hash.
func (a *authService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.GetProfile").Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	user.Password = ""
	return user, nil
}
