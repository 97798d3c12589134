package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"aishield/api/internal/ids"
	"aishield/api/internal/models"
	"aishield/api/internal/repository"
	"aishield/api/internal/security"
)

var (
	// ErrValidation reports missing required registration fields.
	ErrValidation = errors.New("missing required fields")
	// ErrEmailInUse reports a registration against an already-registered email.
	ErrEmailInUse = errors.New("email already in use")
	// ErrInvalidCredentials covers both unknown email and wrong password, so
	// callers cannot distinguish the two cases.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNoSession reports an absent, expired, or orphaned session.
	ErrNoSession = errors.New("no valid session")
)

type UserStore interface {
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
}

type SessionStore interface {
	Create(ctx context.Context, session models.Session) error
	GetByToken(ctx context.Context, token string) (models.Session, error)
	DeleteByToken(ctx context.Context, token string) error
}

type AuthService struct {
	users      UserStore
	sessions   SessionStore
	sessionTTL time.Duration
	log        zerolog.Logger
}

func NewAuthService(users UserStore, sessions SessionStore, sessionTTL time.Duration, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		log:        log,
	}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Register creates a user. Emails are matched exactly as stored. It does not
// issue a session; clients log in after registering.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) error {
	if input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		return ErrValidation
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return ErrEmailInUse
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("lookup email: %w", err)
	}

	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return err
	}

	user := models.User{
		ID:           ids.New(),
		Email:        input.Email,
		PasswordHash: passwordHash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Avatar:       models.DefaultAvatar,
		Plan:         models.UserPlanFree,
		IsActive:     true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Two concurrent registrations race past the pre-check; the unique
		// constraint settles it.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailInUse
		}
		return fmt.Errorf("create user: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("user registered")
	return nil
}

// Login verifies credentials and issues a new session on success. Unknown
// email and wrong password both come back as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.Session, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return models.Session{}, ErrInvalidCredentials
		}
		return models.Session{}, fmt.Errorf("lookup email: %w", err)
	}

	if !security.VerifyPassword(password, user.PasswordHash) {
		return models.Session{}, ErrInvalidCredentials
	}

	return s.Issue(ctx, user.ID)
}

// Issue creates a fresh session for the user. Each call creates a new row;
// concurrent sessions per user are permitted.
func (s *AuthService) Issue(ctx context.Context, userID string) (models.Session, error) {
	session := models.Session{
		ID:        ids.New(),
		UserID:    userID,
		Token:     security.NewSessionToken(),
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// Resolve maps a bearer token to its owning user, or ErrNoSession. Expired
// and orphaned sessions are deleted when encountered. The returned user has
// the password hash stripped.
func (s *AuthService) Resolve(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrNoSession
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return models.User{}, ErrNoSession
		}
		return models.User{}, fmt.Errorf("lookup session: %w", err)
	}

	if session.Expired(time.Now()) {
		if err := s.sessions.DeleteByToken(ctx, token); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
			s.log.Warn().Err(err).Msg("delete expired session failed")
		}
		return models.User{}, ErrNoSession
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Orphaned session: the owning user is gone, so the row can
			// never resolve again. Drop it instead of leaking it.
			if err := s.sessions.DeleteByToken(ctx, token); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
				s.log.Warn().Err(err).Msg("delete orphaned session failed")
			}
			return models.User{}, ErrNoSession
		}
		return models.User{}, fmt.Errorf("lookup user: %w", err)
	}

	user.PasswordHash = nil
	return user, nil
}

// Logout terminates the session behind the token. It succeeds whether or not
// a session existed; a second logout with no cookie is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.DeleteByToken(ctx, token); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
