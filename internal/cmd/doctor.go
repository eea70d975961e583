package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/spf13/cobra"

	"github.com/useleadnest/leadnest-cli/internal/api"
	"github.com/useleadnest/leadnest-cli/internal/config"
	"github.com/useleadnest/leadnest-cli/internal/token"
	"github.com/useleadnest/leadnest-cli/internal/tui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration and connectivity",
	Long: `Check the local setup: configuration, state directory, stored
session, and connectivity to the backend. The health ping is retried a
few times before it counts as a failure.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	styles := tui.DefaultStyles()
	pass := func(msg string) { fmt.Println(styles.Success.Render("✓"), msg) }
	fail := func(msg string) { fmt.Println(styles.Error.Render("✗"), msg) }
	warn := func(msg string) { fmt.Println(styles.Warning.Render("⚠"), msg) }

	healthy := true

	// Doctor diagnoses misconfiguration instead of failing on it, so
	// it loads the config itself rather than going through getApp.
	cfg, err := config.Load()
	if err != nil {
		fail(fmt.Sprintf("Configuration: %v", err))
		return fmt.Errorf("setup problems found")
	}
	if flagAPIURL != "" {
		cfg.APIBaseURL = config.NormalizeBaseURL(flagAPIURL)
	}

	if cfg.APIBaseURL == "" {
		fail("Backend URL: not configured (set LEADNEST_API_URL or api_base_url in " +
			filepath.Join(cfg.StateDir, "config.yaml") + ")")
		healthy = false
	} else {
		pass("Backend URL: " + cfg.APIBaseURL)
	}

	if err := os.MkdirAll(cfg.StateDir, 0700); err != nil {
		fail(fmt.Sprintf("State directory %s: %v", cfg.StateDir, err))
		healthy = false
	} else {
		pass("State directory: " + cfg.StateDir)
	}

	checkSession(cfg, pass, warn)

	if cfg.APIBaseURL != "" {
		if err := pingBackend(cmd, cfg.APIBaseURL); err != nil {
			fail(fmt.Sprintf("Backend health: %v", err))
			healthy = false
		} else {
			pass("Backend health: ok")
		}
	}

	if !healthy {
		return fmt.Errorf("setup problems found")
	}
	return nil
}

func checkSession(cfg *config.Config, pass, warn func(string)) {
	store := buildStore(cfg)
	raw, err := store.Read()
	switch {
	case err != nil:
		warn(fmt.Sprintf("Session: unreadable (%v)", err))
	case raw == "":
		warn("Session: not logged in (run 'leadnest auth login')")
	case !token.IsLive(raw):
		warn("Session: stored token has expired (run 'leadnest auth login')")
	default:
		identity, err := token.Decode(raw)
		if err != nil {
			warn("Session: stored token is unreadable")
			return
		}
		pass("Session: logged in as " + identity.Subject)
	}
}

// pingBackend hits /healthz with a short bounded retry, so a single
// dropped packet does not fail the diagnosis.
func pingBackend(cmd *cobra.Command, baseURL string) error {
	client, err := api.NewClient(baseURL)
	if err != nil {
		return err
	}

	return retry.Do(
		func() error { return client.Health(cmd.Context()) },
		retry.Context(cmd.Context()),
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
}
