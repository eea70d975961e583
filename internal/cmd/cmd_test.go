package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/useleadnest/leadnest-cli/internal/config"
)

// TestRootSubcommands tests that all top-level commands are registered
func TestRootSubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"auth":      false,
		"leads":     false,
		"billing":   false,
		"dashboard": false,
		"score":     false,
		"doctor":    false,
		"version":   false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found in root command", name)
		}
	}
}

// TestAuthSubcommands tests that all auth subcommands are registered
func TestAuthSubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"login":    false,
		"register": false,
		"logout":   false,
		"status":   false,
	}

	for _, cmd := range authCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found in auth command", name)
		}
	}
}

// TestAuthLoginFlags tests that auth login has correct flags
func TestAuthLoginFlags(t *testing.T) {
	if authLoginCmd.Flags().Lookup("email") == nil {
		t.Error("flag 'email' not found on auth login command")
	}
	if authLoginCmd.Flags().Lookup("password-stdin") == nil {
		t.Error("flag 'password-stdin' not found on auth login command")
	}
}

// TestLeadsSubcommands tests that all leads subcommands are registered
func TestLeadsSubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"list":   false,
		"add":    false,
		"update": false,
		"browse": false,
		"import": false,
	}

	for _, cmd := range leadsCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found in leads command", name)
		}
	}
}

// TestLeadsListFlags tests that leads list has correct flags
func TestLeadsListFlags(t *testing.T) {
	for _, flag := range []string{"search", "status", "sort", "desc"} {
		if leadsListCmd.Flags().Lookup(flag) == nil {
			t.Errorf("flag '%s' not found on leads list command", flag)
		}
	}
}

// TestBillingCheckoutFlags tests that billing checkout requires a plan
func TestBillingCheckoutFlags(t *testing.T) {
	var checkoutCmd *cobra.Command
	for _, cmd := range billingCmd.Commands() {
		if cmd.Name() == "checkout" {
			checkoutCmd = cmd
			break
		}
	}

	if checkoutCmd == nil {
		t.Fatal("checkout subcommand not found")
	}
	if checkoutCmd.Flags().Lookup("plan") == nil {
		t.Error("flag 'plan' not found on billing checkout command")
	}
}

// TestPersistentFlags tests the global flags on the root command
func TestPersistentFlags(t *testing.T) {
	for _, flag := range []string{"verbose", "json", "api-url"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag '%s' not found on root command", flag)
		}
	}
}

func TestProtectedCommandWithoutLogin(t *testing.T) {
	resetApp()
	t.Setenv(config.EnvAPIURL, "http://127.0.0.1:1")
	t.Setenv(config.EnvStateDir, t.TempDir())

	rootCmd.SetArgs([]string{"leads", "list"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.ExecuteContext(context.Background())
	if err == nil {
		t.Fatal("expected an error without a session")
	}

	var suggested *ErrorWithSuggestion
	if !errors.As(err, &suggested) {
		t.Fatalf("expected *ErrorWithSuggestion, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "leadnest auth login") {
		t.Errorf("error should point at 'leadnest auth login', got: %v", err)
	}
}

func TestErrorWithSuggestion(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewErrorWithSuggestions("Something broke", cause, "Try again")

	msg := err.Error()
	if !strings.Contains(msg, "Something broke") {
		t.Errorf("message missing from error: %s", msg)
	}
	if !strings.Contains(msg, "Try again") {
		t.Errorf("suggestion missing from error: %s", msg)
	}
	if !errors.Is(err, cause) {
		t.Error("cause should be unwrappable")
	}
}
