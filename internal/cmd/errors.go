package cmd

import (
	"strings"
)

// ErrorWithSuggestion wraps an error with actionable recovery suggestions
type ErrorWithSuggestion struct {
	Message     string
	Suggestions []string
	err         error
}

func (e *ErrorWithSuggestion) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, s := range e.Suggestions {
			b.WriteString("\n  • ")
			b.WriteString(s)
		}
	}

	if e.err != nil {
		b.WriteString("\n\nDetails: ")
		b.WriteString(e.err.Error())
	}

	return b.String()
}

func (e *ErrorWithSuggestion) Unwrap() error {
	return e.err
}

// NewErrorWithSuggestions creates an error with recovery suggestions
func NewErrorWithSuggestions(msg string, err error, suggestions ...string) error {
	return &ErrorWithSuggestion{
		Message:     msg,
		Suggestions: suggestions,
		err:         err,
	}
}

// NotLoggedInError creates a helpful error for commands that need a session
func NotLoggedInError() error {
	return NewErrorWithSuggestions(
		"You are not logged in",
		nil,
		"Log in: leadnest auth login",
		"Create an account: leadnest auth register",
	)
}

// MisconfiguredError creates a helpful error for configuration failures
func MisconfiguredError(err error) error {
	return NewErrorWithSuggestions(
		"The CLI is not configured",
		err,
		"Set the backend URL: export LEADNEST_API_URL=https://api.useleadnest.com/api",
		"Or add api_base_url to ~/.leadnest/config.yaml",
		"Check your setup: leadnest doctor",
	)
}
