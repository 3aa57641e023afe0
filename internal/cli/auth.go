package cli

import (
	"context"
	"fmt"

	"github.com/meetin/meetin/internal/models"
	"github.com/meetin/meetin/internal/services"
	"github.com/meetin/meetin/internal/validation"
)

// getSimpleText, getPassword and getYesNo are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getYesNo      = GetYesNo
)

// Signup prompts for every profile field and registers the account. The
// phone entry keeps digits only. On success the login form follows.
func (a *App) Signup(ctx context.Context) error {
	var p models.Profile

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"First name", &p.FirstName},
		{"Last name", &p.LastName},
		{"Phone number", &p.Phone},
		{"Email", &p.Email},
		{"Address", &p.Address},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	p.Phone = validation.NormalizePhone(p.Phone)

	var err error
	if p.Password, err = getPassword(a.reader, "Password", a.out); err != nil {
		return err
	}
	if p.ConfirmPassword, err = getPassword(a.reader, "Confirm password", a.out); err != nil {
		return err
	}

	sctx, cancel := a.storeCtx(ctx)
	err = a.registration.Register(sctx, p)
	cancel()
	if err != nil {
		a.println(message(err))
		return err
	}

	a.println("Registration Successful!")
	return a.Login(ctx)
}

// Login restores the saved form, lets the user confirm or change each
// value and submits it. Success opens the dashboard with a new roster.
func (a *App) Login(ctx context.Context) error {
	sctx, cancel := a.storeCtx(ctx)
	form := a.session.Restore(sctx)
	cancel()

	email, err := a.promptWithDefault("Email", form.Email, false)
	if err != nil {
		return err
	}
	password, err := a.promptWithDefault("Password", form.Password, true)
	if err != nil {
		return err
	}
	rememberMe, err := getYesNo(a.reader, "Remember me?", form.RememberMe, a.out)
	if err != nil {
		return err
	}

	sctx, cancel = a.storeCtx(ctx)
	session, err := a.session.Login(sctx, email, password, rememberMe)
	cancel()
	if err != nil {
		a.println(message(err))
		return err
	}

	a.current = session
	a.roster = services.NewRoster()
	a.date = a.now()
	a.println(fmt.Sprintf("Welcome, %s!", session.Email))
	return nil
}

// promptWithDefault offers a saved value; an empty answer keeps it.
func (a *App) promptWithDefault(label, saved string, secret bool) (string, error) {
	prompt := label
	switch {
	case saved != "" && secret:
		prompt += " (Enter keeps the saved one)"
	case saved != "":
		prompt += fmt.Sprintf(" [%s]", saved)
	}

	var (
		v   string
		err error
	)
	if secret {
		v, err = getPassword(a.reader, prompt, a.out)
	} else {
		v, err = getSimpleText(a.reader, prompt, a.out)
	}
	if err != nil {
		return "", err
	}
	if v == "" {
		return saved, nil
	}
	return v, nil
}

// Logout drops the session and the roster and goes back to the login form.
func (a *App) Logout(ctx context.Context) error {
	a.session.Reset()
	a.current = nil
	a.roster = nil
	a.println("Logged out.")
	return a.Login(ctx)
}
