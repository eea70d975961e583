package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/useleadnest/leadnest-cli/internal/token"
	"github.com/useleadnest/leadnest-cli/internal/tui"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage your LeadNest session",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to LeadNest",
	Long: `Log in to LeadNest with your email and password.

Your session token is saved under ~/.leadnest so later commands are
authenticated automatically. Set LEADNEST_PASSPHRASE to encrypt it at
rest.

Examples:
  leadnest auth login
  leadnest auth login --email user@example.com --password-stdin < secret.txt`,
	RunE: runAuthLogin,
}

var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a LeadNest account",
	Long: `Create a new LeadNest account. After registration you are logged in
immediately.

Examples:
  leadnest auth register
  leadnest auth register --email user@example.com --password-stdin < secret.txt`,
	RunE: runAuthRegister,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the stored session",
	RunE:  runAuthLogout,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE:  runAuthStatus,
}

func init() {
	for _, c := range []*cobra.Command{authLoginCmd, authRegisterCmd} {
		c.Flags().String("email", "", "account email")
		c.Flags().Bool("password-stdin", false, "read the password from stdin")
	}

	authCmd.AddCommand(authLoginCmd, authRegisterCmd, authLogoutCmd, authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	a, err := getApp(cmd)
	if err != nil {
		return err
	}

	creds, err := collectCredentials(cmd, func(emailDefault string) (*tui.Credentials, error) {
		return tui.LoginForm(emailDefault)
	}, a.lastEmail())
	if err != nil {
		return err
	}

	identity, err := a.Sessions.Login(cmd.Context(), creds.Email, creds.Password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	a.rememberEmail(creds.Email)

	fmt.Println(a.Styles.Success.Render("✓") + " Logged in as " + identity.Subject)
	return nil
}

func runAuthRegister(cmd *cobra.Command, args []string) error {
	a, err := getApp(cmd)
	if err != nil {
		return err
	}

	creds, err := collectCredentials(cmd, func(string) (*tui.Credentials, error) {
		return tui.RegisterForm()
	}, "")
	if err != nil {
		return err
	}

	identity, err := a.Sessions.Register(cmd.Context(), creds.Email, creds.Password)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	a.rememberEmail(creds.Email)

	fmt.Println(a.Styles.Success.Render("✓") + " Account created. Logged in as " + identity.Subject)
	return nil
}

func runAuthLogout(cmd *cobra.Command, args []string) error {
	a, err := getApp(cmd)
	if err != nil {
		return err
	}
	a.Sessions.Logout(cmd.Context())
	return nil
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	a, err := getApp(cmd)
	if err != nil {
		return err
	}

	identity := a.Sessions.Identity()
	if identity == nil {
		fmt.Println("Not logged in.")
		fmt.Println("Use 'leadnest auth login' to authenticate.")
		return nil
	}

	fmt.Println(a.Styles.Success.Render("Logged in"))
	fmt.Printf("%s %s\n", a.Styles.Key.Render("Account:"), identity.Subject)
	if exp, ok := token.Expiry(a.Sessions.Token()); ok {
		fmt.Printf("%s %s\n", a.Styles.Key.Render("Expires:"), exp.Local().Format("2006-01-02 15:04"))
	}

	// Account details are best-effort; the session itself is local.
	user, err := a.Client.Me(cmd.Context())
	if err != nil {
		a.Logger.WithError(err).Debug("failed to fetch account details")
		return nil
	}
	if user.Plan != "" {
		fmt.Printf("%s %s\n", a.Styles.Key.Render("Plan:"), user.Plan)
	}
	if user.SubscriptionStatus != "" {
		fmt.Printf("%s %s\n", a.Styles.Key.Render("Subscription:"), user.SubscriptionStatus)
	}
	return nil
}

// collectCredentials resolves email and password from flags, stdin,
// or an interactive form, validating the email before any network
// call.
func collectCredentials(cmd *cobra.Command, form func(string) (*tui.Credentials, error), emailDefault string) (*tui.Credentials, error) {
	email, _ := cmd.Flags().GetString("email")
	passwordStdin, _ := cmd.Flags().GetBool("password-stdin")

	if email == "" && !passwordStdin {
		if !tui.IsInteractive() {
			return nil, fmt.Errorf("--email and --password-stdin are required when stdin is not a terminal")
		}
		return form(emailDefault)
	}

	if email == "" {
		return nil, fmt.Errorf("--email is required with --password-stdin")
	}
	if err := tui.ValidateEmail(email); err != nil {
		return nil, err
	}

	var password string
	if passwordStdin {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read password from stdin: %w", err)
		}
		password = strings.TrimSpace(string(data))
		if password == "" {
			return nil, fmt.Errorf("password on stdin is empty")
		}
	} else {
		var err error
		password, err = tui.PromptForPassword("Password")
		if err != nil {
			return nil, err
		}
	}

	return &tui.Credentials{Email: email, Password: password}, nil
}

// lastEmail returns the cached last-used email, if any.
func (a *App) lastEmail() string {
	data, err := os.ReadFile(a.Config.LastEmailPath())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// rememberEmail caches the email for the next login prompt.
func (a *App) rememberEmail(email string) {
	if err := os.WriteFile(a.Config.LastEmailPath(), []byte(email+"\n"), 0600); err != nil {
		a.Logger.WithError(err).Debug("failed to cache last email")
	}
}
