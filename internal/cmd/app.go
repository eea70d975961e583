package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/useleadnest/leadnest-cli/internal/api"
	"github.com/useleadnest/leadnest-cli/internal/config"
	"github.com/useleadnest/leadnest-cli/internal/log"
	"github.com/useleadnest/leadnest-cli/internal/session"
	"github.com/useleadnest/leadnest-cli/internal/tui"
)

// EnvPassphrase enables encrypted token storage when set.
const EnvPassphrase = "LEADNEST_PASSPHRASE"

// App bundles the wired-up dependencies every command needs.
type App struct {
	Config   *config.Config
	Logger   *log.Logger
	Client   *api.Client
	Sessions *session.Manager
	Styles   tui.Styles
}

var app *App

// getApp builds the application once per process: config, logger, API
// client, and the session manager with any persisted session restored.
func getApp(cmd *cobra.Command) (*App, error) {
	if app != nil {
		return app, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagAPIURL != "" {
		cfg.APIBaseURL = config.NormalizeBaseURL(flagAPIURL)
	}

	logger := buildLogger(cfg)
	log.SetDefaultLogger(logger)

	if err := cfg.Validate(); err != nil {
		return nil, MisconfiguredError(err)
	}

	// The manager needs the client to log in; the client needs the
	// manager for tokens. The bridge breaks the cycle: it is handed to
	// the manager empty and pointed at the client once that exists.
	bridge := &api.AuthBridge{}
	manager := session.NewManager(buildStore(cfg), bridge,
		session.WithLogger(logger),
		session.WithNotifier(tui.NewTerminalNotifier()),
	)

	client, err := api.NewClient(cfg.APIBaseURL,
		api.WithTokenSource(manager),
		api.WithLogger(logger),
	)
	if err != nil {
		return nil, MisconfiguredError(err)
	}
	bridge.Client = client

	manager.Init(cmd.Context())

	app = &App{
		Config:   cfg,
		Logger:   logger,
		Client:   client,
		Sessions: manager,
		Styles:   tui.DefaultStyles(),
	}
	return app, nil
}

// requireAuth returns the app, failing with a recovery hint when
// there is no live session.
func requireAuth(cmd *cobra.Command) (*App, error) {
	a, err := getApp(cmd)
	if err != nil {
		return nil, err
	}
	if a.Sessions.Identity() == nil {
		return nil, NotLoggedInError()
	}
	return a, nil
}

func buildLogger(cfg *config.Config) *log.Logger {
	logCfg := log.DefaultConfig()
	if flagVerbose {
		logCfg = log.VerboseConfig()
	} else if cfg.LogLevel != "" {
		logCfg.Level = log.ParseLevel(cfg.LogLevel)
	}
	return log.New(logCfg)
}

func buildStore(cfg *config.Config) session.Store {
	store := session.NewFileStore(cfg.SessionTokenPath())
	if pass := os.Getenv(EnvPassphrase); pass != "" {
		return session.NewEncryptedStore(store, pass)
	}
	return store
}

// resetApp clears the wired application, for tests.
func resetApp() {
	app = nil
}
