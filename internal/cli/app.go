package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/meetin/meetin/internal/config"
	"github.com/meetin/meetin/internal/logging"
	"github.com/meetin/meetin/internal/models"
	"github.com/meetin/meetin/internal/repositories/credentials"
	"github.com/meetin/meetin/internal/repositories/kv"
	"github.com/meetin/meetin/internal/repositories/remember"
	"github.com/meetin/meetin/internal/services"
	"github.com/meetin/meetin/internal/validation"
)

const (
	tagline    = "One stop digital solution to manage visitors"
	dateLayout = "2006-01-02"
)

// sessionFlow is the part of services.SessionService the screens use.
type sessionFlow interface {
	Restore(ctx context.Context) models.LoginForm
	Login(ctx context.Context, email, password string, rememberMe bool) (*models.Session, error)
	Reset()
}

type App struct {
	config       *config.Config
	log          logging.Logger
	registration services.RegistrationService
	session      sessionFlow

	// set while logged in
	current *models.Session
	roster  *services.Roster
	date    time.Time

	now    func() time.Time
	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the flows over store and reads commands from in.
func NewApp(cfg *config.Config, store kv.Store, log logging.Logger, in io.Reader, out io.Writer) *App {
	creds := credentials.NewKVRepository(store)
	return &App{
		config:       cfg,
		log:          log,
		registration: services.NewRegistrationService(creds, log, cfg.HashPasswords),
		session:      services.NewSessionService(creds, remember.NewKVRepository(store), log),
		now:          time.Now,
		reader:       bufio.NewReader(in),
		out:          out,
	}
}

// Run shows the welcome screen and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to MeetIn")
	printlnFn(tagline)
	printlnFn("(type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.current != nil
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.current.Email, a.date.Format(dateLayout))
}

// storeCtx bounds one store-backed command by the configured timeout.
func (a *App) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.StoreTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.StoreTimeout)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// message turns a flow error into the line shown to the user.
func message(err error) string {
	var ve *validation.Error
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, services.ErrMissingFields):
		return "Please enter both email and password."
	case errors.Is(err, services.ErrNoRegisteredUser):
		return "No registered user found."
	case errors.Is(err, services.ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, services.ErrLoginFailed):
		return "Login failed."
	case errors.Is(err, services.ErrSaveFailed):
		return "Failed to save user data. Please try again."
	case errors.Is(err, services.ErrLoginInProgress):
		return "Login already in progress."
	case errors.Is(err, services.ErrAlreadyAuthenticated):
		return "Already logged in."
	default:
		return "Something went wrong: " + err.Error()
	}
}
