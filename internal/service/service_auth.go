package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/palmcar/rentaldesk/internal/logger"
	"github.com/palmcar/rentaldesk/internal/store"
	"github.com/palmcar/rentaldesk/internal/utils"
	"github.com/palmcar/rentaldesk/models"
)

// authService is the concrete implementation of AuthService.
//
// Credentials use the demo checksum from the utils package. Login failures
// are reported with the single ErrInvalidCredentials sentinel regardless of
// whether the email exists, so the login screen cannot be used to probe for
// registered addresses.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository
	generator         *utils.UUIDGenerator

	// disableSeed skips the first-run demo account seed.
	disableSeed bool

	mu sync.Mutex

	logger *logger.Logger
}

func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, disableSeed bool, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		generator:         utils.NewUUIDGenerator(),
		disableSeed:       disableSeed,
		logger:            logger,
	}
}

// loadUsers returns the account collection, seeding the demo accounts the
// first time it finds the collection empty. Callers must hold a.mu.
func (a *authService) loadUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := a.userRepository.Load(ctx)
	if err != nil {
		log.Err(err).Msg("loading accounts failed")
		return nil, fmt.Errorf("loading accounts failed: %w", err)
	}

	if len(users) > 0 || a.disableSeed {
		return users, nil
	}

	users = store.DefaultUsers()
	if err := a.userRepository.Save(ctx, users); err != nil {
		log.Err(err).Msg("persisting demo accounts failed")
		return nil, fmt.Errorf("persisting demo accounts failed: %w", err)
	}

	log.Info().Int("users", len(users)).Msg("seeded demo accounts")
	return users, nil
}

func (a *authService) FindByEmail(ctx context.Context, email string) (models.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	users, err := a.loadUsers(ctx)
	if err != nil {
		return models.User{}, err
	}

	if user, ok := findByEmail(users, email); ok {
		return user, nil
	}

	return models.User{}, ErrUserNotFound
}

func (a *authService) ValidateLogin(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Info().Str("email", email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if user.PasswordChecksum != utils.PasswordChecksum(password) {
		log.Info().Str("email", email).Msg("login attempt with wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

func (a *authService) Register(ctx context.Context, email, password, name string, role models.Role) (models.User, error) {
	log := logger.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" || name == "" {
		log.Error().Str("email", email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}
	if role == "" {
		role = models.RoleUser
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	users, err := a.loadUsers(ctx)
	if err != nil {
		return models.User{}, err
	}

	if _, ok := findByEmail(users, email); ok {
		log.Info().Str("email", email).Msg("registration rejected, email taken")
		return models.User{}, ErrEmailAlreadyRegistered
	}

	user := models.User{
		ID:               "user-" + a.generator.Generate(),
		Email:            strings.ToLower(email),
		Name:             name,
		Role:             role,
		PasswordChecksum: utils.PasswordChecksum(password),
	}

	users = append(users, user)
	if err := a.userRepository.Save(ctx, users); err != nil {
		log.Err(err).Str("email", user.Email).Msg("persisting account failed")
		return models.User{}, fmt.Errorf("persisting account failed: %w", err)
	}

	log.Info().Str("id", user.ID).Str("email", user.Email).Msg("account registered")
	return user, nil
}

// UpdateAccount applies the patch and refreshes the session pointer when
// the active session belongs to the updated account.
//
// TODO: re-validate email uniqueness here the way Register does; today a
// profile edit can claim another account's address.
func (a *authService) UpdateAccount(ctx context.Context, userID string, patch models.AccountPatch) (models.User, error) {
	log := logger.FromContext(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()

	users, err := a.loadUsers(ctx)
	if err != nil {
		return models.User{}, err
	}

	for i := range users {
		if users[i].ID != userID {
			continue
		}

		if patch.Name != nil {
			users[i].Name = *patch.Name
		}
		if patch.Email != nil {
			users[i].Email = strings.ToLower(strings.TrimSpace(*patch.Email))
		}

		if err := a.userRepository.Save(ctx, users); err != nil {
			log.Err(err).Str("id", userID).Msg("persisting account update failed")
			return models.User{}, fmt.Errorf("persisting account update failed: %w", err)
		}

		if err := a.refreshSession(ctx, users[i]); err != nil {
			return models.User{}, err
		}

		return users[i], nil
	}

	return models.User{}, ErrUserNotFound
}

func (a *authService) Session(ctx context.Context) (models.Session, error) {
	return a.sessionRepository.Get(ctx)
}

func (a *authService) SetSession(ctx context.Context, user models.User) error {
	return a.sessionRepository.Set(ctx, models.Session{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	})
}

func (a *authService) ClearSession(ctx context.Context) error {
	return a.sessionRepository.Clear(ctx)
}

// refreshSession rewrites the session pointer after a profile edit so the
// signed-in identity never goes stale. A missing session is not an error.
func (a *authService) refreshSession(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	session, err := a.sessionRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil
		}
		log.Err(err).Msg("reading session failed")
		return fmt.Errorf("reading session failed: %w", err)
	}

	if session.UserID != user.ID {
		return nil
	}

	return a.SetSession(ctx, user)
}

func findByEmail(users []models.User, email string) (models.User, bool) {
	needle := strings.ToLower(strings.TrimSpace(email))
	for _, user := range users {
		if strings.ToLower(user.Email) == needle {
			return user, true
		}
	}

	return models.User{}, false
}
