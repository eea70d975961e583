package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/go-playground/validator/v10"

	"github.com/useleadnest/leadnest-cli/internal/api"
)

var validate = validator.New()

// ValidateEmail rejects strings that are not email addresses, before
// any network round trip.
func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("%q is not a valid email address", email)
	}
	return nil
}

// Credentials is what the login and register forms collect.
type Credentials struct {
	Email    string
	Password string
}

// LoginForm collects credentials interactively. emailDefault prefills
// the email field with the last-used address.
func LoginForm(emailDefault string) (*Credentials, error) {
	creds := &Credentials{Email: emailDefault}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Placeholder("you@company.com").
			Validate(ValidateEmail).
			Value(&creds.Email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(requireValue("password")).
			Value(&creds.Password),
	))

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("prompt failed: %w", err)
	}
	return creds, nil
}

// RegisterForm collects credentials for a new account, with a
// confirmation field to catch typos in the masked password.
func RegisterForm() (*Credentials, error) {
	creds := &Credentials{}
	var confirm string

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Placeholder("you@company.com").
			Validate(ValidateEmail).
			Value(&creds.Email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(requireValue("password")).
			Value(&creds.Password),
		huh.NewInput().
			Title("Confirm password").
			EchoMode(huh.EchoModePassword).
			Validate(func(s string) error {
				if s != creds.Password {
					return fmt.Errorf("passwords do not match")
				}
				return nil
			}).
			Value(&confirm),
	))

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("prompt failed: %w", err)
	}
	return creds, nil
}

// LeadForm collects a new lead interactively.
func LeadForm() (*api.NewLead, error) {
	lead := &api.NewLead{Status: "new"}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("First name").
			Validate(requireValue("first name")).
			Value(&lead.FirstName),
		huh.NewInput().
			Title("Last name").
			Validate(requireValue("last name")).
			Value(&lead.LastName),
		huh.NewInput().
			Title("Email (optional)").
			Validate(optionalEmail).
			Value(&lead.Email),
		huh.NewInput().
			Title("Phone (optional)").
			Value(&lead.Phone),
		huh.NewText().
			Title("Notes (optional)").
			Value(&lead.Notes),
	))

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("prompt failed: %w", err)
	}
	return lead, nil
}

func requireValue(name string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func optionalEmail(s string) error {
	if s == "" {
		return nil
	}
	return ValidateEmail(s)
}
