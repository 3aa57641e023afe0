package services

import (
	"context"
	"fmt"

	"github.com/meetin/meetin/internal/cryptox"
	"github.com/meetin/meetin/internal/logging"
	"github.com/meetin/meetin/internal/models"
	"github.com/meetin/meetin/internal/repositories/credentials"
	"github.com/meetin/meetin/internal/validation"
)

// RegistrationService validates a sign-up profile and stores it as the one
// credential record.
type RegistrationService interface {
	Register(ctx context.Context, profile models.Profile) error
}

type registrationService struct {
	creds         credentials.Repository
	log           logging.Logger
	hashPasswords bool
}

// NewRegistrationService constructs a RegistrationService. With
// hashPasswords the record keeps an argon2id verifier instead of the
// password itself.
func NewRegistrationService(creds credentials.Repository, log logging.Logger, hashPasswords bool) RegistrationService {
	return &registrationService{creds: creds, log: log, hashPasswords: hashPasswords}
}

// Register returns the first failed field rule as a *validation.Error, or
// ErrSaveFailed when the record could not be written. Any previous record
// is replaced.
func (s *registrationService) Register(ctx context.Context, profile models.Profile) error {
	if err := validation.Profile(profile); err != nil {
		return err
	}

	record := profile.Credential()
	if s.hashPasswords {
		verifier, salt, err := cryptox.HashPassword(profile.Password)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSaveFailed, err)
		}
		record.Password = ""
		record.PasswordHash = verifier
		record.PasswordSalt = salt
	}

	if err := s.creds.SetCurrent(ctx, record); err != nil {
		s.log.Error(ctx, "error saving user data", "error", err)
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	s.log.Info(ctx, "user registered", "email", record.Email, "hashed", record.Hashed())
	return nil
}
