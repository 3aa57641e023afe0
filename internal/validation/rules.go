package validation

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/meetin/meetin/internal/models"
)

const (
	PhoneLength       = 10
	MinPasswordLength = 6
)

var (
	// Whitespace here also covers \v, the Unicode separators and BOM.
	emailRe = regexp.MustCompile(`^[^\s\x0B\p{Z}\x{FEFF}@]+@[^\s\x0B\p{Z}\x{FEFF}@]+\.[^\s\x0B\p{Z}\x{FEFF}@]+$`)

	// A password is a single line; the other rules look for one character of
	// each class anywhere in it.
	singleLineRe = regexp.MustCompile(`^[^\n\r\x{2028}\x{2029}]*$`)
	lowerRe      = regexp.MustCompile(`[a-z]`)
	upperRe      = regexp.MustCompile(`[A-Z]`)
	digitRe      = regexp.MustCompile(`[0-9]`)
	symbolRe     = regexp.MustCompile(`[^A-Za-z0-9]`)

	nonDigitRe = regexp.MustCompile(`[^0-9]`)
)

// NormalizePhone is the input-layer filter: it strips everything but ASCII
// digits and keeps at most PhoneLength of them.
func NormalizePhone(s string) string {
	digits := nonDigitRe.ReplaceAllString(s, "")
	if len(digits) > PhoneLength {
		digits = digits[:PhoneLength]
	}
	return digits
}

func Required(value string, err *Error) error {
	if strings.TrimSpace(value) == "" {
		return err
	}
	return nil
}

// Phone only checks the length; non-digits are the input layer's job.
func Phone(phone string) error {
	if utf8.RuneCountInString(phone) != PhoneLength {
		return ErrPhoneLength
	}
	return nil
}

func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func Email(email string) error {
	if !ValidEmail(email) {
		return ErrEmailFormat
	}
	return nil
}

// StrongPassword reports whether pwd has at least MinPasswordLength
// characters, no line breaks, and at least one lowercase letter, uppercase
// letter, digit and non-alphanumeric symbol.
func StrongPassword(pwd string) bool {
	return utf8.RuneCountInString(pwd) >= MinPasswordLength &&
		singleLineRe.MatchString(pwd) &&
		lowerRe.MatchString(pwd) &&
		upperRe.MatchString(pwd) &&
		digitRe.MatchString(pwd) &&
		symbolRe.MatchString(pwd)
}

func Password(pwd string) error {
	if !StrongPassword(pwd) {
		return ErrPasswordComplexity
	}
	return nil
}

func PasswordsMatch(pwd, confirm string) error {
	if pwd != confirm {
		return ErrPasswordMismatch
	}
	return nil
}

// Profile runs the sign-up checks in order and returns the first failure.
func Profile(p models.Profile) error {
	checks := []func() error{
		func() error { return Required(p.FirstName, ErrFirstNameRequired) },
		func() error { return Required(p.LastName, ErrLastNameRequired) },
		func() error { return Phone(p.Phone) },
		func() error { return Email(p.Email) },
		func() error { return Required(p.Address, ErrAddressRequired) },
		func() error { return Password(p.Password) },
		func() error { return PasswordsMatch(p.Password, p.ConfirmPassword) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// VisitorName rejects empty and whitespace-only names.
func VisitorName(name string) error {
	return Required(name, ErrVisitorNameRequired)
}

// VisitorDetails checks the visitor form. Only the name is required; phone
// and email are checked when filled in, and the pickers must hold one of
// their options or be left unset.
func VisitorDetails(d models.VisitorDetails) error {
	if err := VisitorName(d.Name); err != nil {
		return err
	}
	if d.Phone != "" && utf8.RuneCountInString(d.Phone) != PhoneLength {
		return ErrVisitorPhoneLength
	}
	if d.Email != "" && !ValidEmail(d.Email) {
		return ErrVisitorEmailFormat
	}
	if d.Gender != "" && !slices.Contains(models.Genders, d.Gender) {
		return ErrUnknownGender
	}
	if d.Purpose != "" && !slices.Contains(models.Purposes, d.Purpose) {
		return ErrUnknownPurpose
	}
	if d.Reference != "" && !slices.Contains(models.References, d.Reference) {
		return ErrUnknownReference
	}
	return nil
}
