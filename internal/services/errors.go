package services

import (
	"errors"

	"github.com/meetin/meetin/internal/validation"
)

// Login outcomes other than success.
var (
	ErrMissingFields      = errors.New("please enter both email and password")
	ErrNoRegisteredUser   = errors.New("no registered user found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrLoginFailed wraps storage failures so callers can tell "wrong
	// password" from "storage unavailable".
	ErrLoginFailed = errors.New("login failed")

	ErrLoginInProgress      = errors.New("login already in progress")
	ErrAlreadyAuthenticated = errors.New("already logged in")
)

// ErrSaveFailed wraps storage failures during registration.
var ErrSaveFailed = errors.New("failed to save user data")

// ErrMissingName is returned by Roster.Add for an empty or blank name.
var ErrMissingName = validation.ErrVisitorNameRequired
