package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/meetin/meetin/internal/cryptox"
	"github.com/meetin/meetin/internal/logging"
	"github.com/meetin/meetin/internal/models"
	"github.com/meetin/meetin/internal/repositories/credentials"
	"github.com/meetin/meetin/internal/repositories/remember"
)

// State is the login flow state.
type State int

const (
	StateIdle State = iota
	StateRestoring
	StateAuthenticating
	StateAuthenticated
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRestoring:
		return "restoring"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// SessionService drives the login screen: Restore pre-fills the form on
// entry, Login checks a submission against the stored credential record.
//
//	Idle|Failed -> Restoring -> Idle
//	Idle|Failed -> Authenticating -> Authenticated | Failed
//
// Reset returns to Idle (logout). Store calls are made without holding the
// state lock, so an overlapping Login is rejected with ErrLoginInProgress.
type SessionService struct {
	creds    credentials.Repository
	remember remember.Repository
	log      logging.Logger
	now      func() time.Time

	mu    sync.Mutex
	state State
}

func NewSessionService(creds credentials.Repository, rem remember.Repository, log logging.Logger) *SessionService {
	return &SessionService{creds: creds, remember: rem, log: log, now: time.Now}
}

func (s *SessionService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Reset puts the flow back to Idle.
func (s *SessionService) Reset() {
	s.mu.Lock()
	s.state = StateIdle
	s.mu.Unlock()
}

// Restore returns the login form as it should look on screen entry. When
// the remember flag is exactly "true" the remembered email and password are
// filled in and the toggle is on; otherwise, and on any store error, the
// form is empty. Restore never fails. From Idle or Failed it ends in Idle;
// while a login is being checked or after one succeeded it is a no-op
// returning an empty form.
func (s *SessionService) Restore(ctx context.Context) models.LoginForm {
	s.mu.Lock()
	if s.state == StateAuthenticating || s.state == StateAuthenticated {
		s.mu.Unlock()
		return models.LoginForm{}
	}
	s.state = StateRestoring
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if s.state == StateRestoring {
			s.state = StateIdle
		}
		s.mu.Unlock()
	}()

	rm, err := s.remember.Load(ctx)
	if err != nil {
		s.log.Error(ctx, "error loading saved credentials", "error", err)
		return models.LoginForm{}
	}
	if !rm.Enabled {
		return models.LoginForm{}
	}
	return models.LoginForm{Email: rm.Email, Password: rm.Password, RememberMe: true}
}

// Login authenticates email and password against the stored record.
//
// Errors: ErrMissingFields, ErrNoRegisteredUser, ErrInvalidCredentials, or
// ErrLoginFailed wrapping a storage error. On success the remember-me
// entries are written (rememberMe) or cleared with the flag set to "false".
// A mismatch leaves them untouched.
func (s *SessionService) Login(ctx context.Context, email, password string, rememberMe bool) (*models.Session, error) {
	s.mu.Lock()
	switch s.state {
	case StateAuthenticating:
		s.mu.Unlock()
		return nil, ErrLoginInProgress
	case StateAuthenticated:
		s.mu.Unlock()
		return nil, ErrAlreadyAuthenticated
	}
	s.state = StateAuthenticating
	s.mu.Unlock()

	session, err := s.authenticate(ctx, email, password, rememberMe)

	s.mu.Lock()
	if err != nil {
		s.state = StateFailed
	} else {
		s.state = StateAuthenticated
	}
	s.mu.Unlock()

	return session, err
}

func (s *SessionService) authenticate(ctx context.Context, email, password string, rememberMe bool) (*models.Session, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	record, err := s.creds.GetCurrent(ctx)
	if errors.Is(err, credentials.ErrNotFound) {
		return nil, ErrNoRegisteredUser
	}
	if err != nil {
		s.log.Error(ctx, "login error", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	if email != record.Email || !passwordMatches(record, password) {
		s.log.Info(ctx, "login rejected", "email", email)
		return nil, ErrInvalidCredentials
	}

	if rememberMe {
		err = s.remember.Save(ctx, email, password)
	} else {
		err = s.remember.Forget(ctx)
	}
	if err != nil {
		s.log.Error(ctx, "login error", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	s.log.Info(ctx, "login successful", "email", email, "remember", rememberMe)
	return &models.Session{Email: email, AuthenticatedAt: s.now()}, nil
}

func passwordMatches(record *models.Credential, password string) bool {
	if record.Hashed() {
		return cryptox.VerifyPassword(password, record.PasswordHash, record.PasswordSalt)
	}
	return password == record.Password
}
