package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/matchdaycli/matchday/internal/errors"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
	Long: `Manage authentication against the fantasy backend.

Login stores a bearer token in ~/.matchday/session.json; it is attached
to every authenticated request until logout. A failed login clears any
stored token.

Subcommands:
  register  Create a new account
  login     Login with email and password
  logout    Logout and clear the stored token
  status    Show the current session state

Examples:
  matchday auth register --email user@example.com --password mypass
  matchday auth login
  matchday auth status
  matchday auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Create a new account on the fantasy backend.

When --email or --password is omitted, the missing values are prompted
interactively.

Examples:
  matchday auth register --email user@example.com --password mypass
  matchday auth register`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		if err := promptCredentials(&email, &password); err != nil {
			return err
		}

		client, _, _, err := newClient()
		if err != nil {
			return err
		}

		user, err := client.Register(cmd.Context(), email, password)
		if err != nil {
			return errors.Wrap(errors.ErrCodeAuthRegisterFailed, "registration failed", err)
		}

		fmt.Printf("Account created for %s\n", user.Email)
		fmt.Println("Run 'matchday auth login' to sign in.")
		return nil
	},
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login with email and password",
	Long: `Login to the fantasy backend and store the access token.

When --email or --password is omitted, the missing values are prompted
interactively.

Examples:
  matchday auth login --email user@example.com --password mypass
  matchday auth login`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		if err := promptCredentials(&email, &password); err != nil {
			return err
		}

		client, store, _, err := newClient()
		if err != nil {
			return err
		}

		token, err := client.Login(cmd.Context(), email, password)
		if err != nil {
			// A failed login is an implicit logout.
			_ = store.Set("")
			return errors.Wrap(errors.ErrCodeAuthLoginFailed, "login failed", err)
		}
		if err := store.Set(token); err != nil {
			return err
		}

		fmt.Printf("Signed in as %s\n", email)
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout and clear the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, _, err := newClient()
		if err != nil {
			return err
		}
		if err := store.Set(""); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session state",
	Long: `Show whether a session token is stored.

When the token is a JWT, its claims are decoded (without verification,
the backend owns validation) to show the subject and expiry. Expiry is
informational only; an expired token is discovered when the backend
rejects a request.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, cfg, err := newClient()
		if err != nil {
			return err
		}

		fmt.Printf("Backend:  %s\n", cfg.BaseURL)
		fmt.Printf("Session:  %s\n", store.State())

		token := store.Token()
		if token == "" {
			return nil
		}
		for key, value := range decodeClaims(token) {
			fmt.Printf("%-9s %v\n", key+":", value)
		}
		return nil
	},
}

// promptCredentials fills the missing credential fields interactively and
// presence-checks the result before any request is made.
func promptCredentials(email, password *string) error {
	var fields []huh.Field
	if *email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Value(email))
	}
	if *password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(password))
	}
	if len(fields) > 0 {
		if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
			return err
		}
	}
	if *email == "" || *password == "" {
		return errors.NewMissingCredentialsError()
	}
	return nil
}

// decodeClaims extracts displayable claims from a JWT without verifying
// it. Non-JWT tokens yield nothing.
func decodeClaims(token string) map[string]any {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}

	out := map[string]any{}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		out["subject"] = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out["expires"] = exp.Time.Format("2006-01-02 15:04:05 MST")
	}
	return out
}

func init() {
	authRegisterCmd.Flags().String("email", "", "account email")
	authRegisterCmd.Flags().String("password", "", "account password")
	authLoginCmd.Flags().String("email", "", "account email")
	authLoginCmd.Flags().String("password", "", "account password")

	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}
