package cli

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/jrsteele09/go-colten/auth"
	"github.com/jrsteele09/go-colten/guard"
	"github.com/jrsteele09/go-colten/token"
	"github.com/jrsteele09/go-colten/users"
)

// promptIfEmpty asks for value interactively when it was not given as a flag.
func promptIfEmpty(value *string, label string, mask bool) error {
	if *value != "" {
		return nil
	}
	input := pterm.DefaultInteractiveTextInput
	if mask {
		input = *input.WithMask("*")
	}
	result, err := input.Show(label)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", strings.ToLower(label))
	}
	*value = strings.TrimSpace(result)
	return nil
}

func newLoginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}
			if err := promptIfEmpty(&email, "Email", false); err != nil {
				return err
			}
			if err := promptIfEmpty(&password, "Password", true); err != nil {
				return err
			}
			if err := users.ValidateEmail(email); err != nil {
				return err
			}

			if _, err := app.Manager.Login(cmd.Context(), email, password); err != nil {
				return err
			}
			app.success("Logged in as %s (%s)", app.Manager.DisplayName(), app.Manager.RoleLabel())
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return cmd
}

func newRegisterCmd() *cobra.Command {
	var req auth.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an owner account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}
			if err := promptIfEmpty(&req.Password, "Password", true); err != nil {
				return err
			}
			if req.FirstName == "" || req.LastName == "" {
				return errors.New("--first-name and --last-name are required")
			}
			if err := users.ValidateEmail(req.Email); err != nil {
				return err
			}
			if err := users.ValidatePasswordStrength(req.Password); err != nil {
				return err
			}
			req.Role = strings.ToUpper(req.Role)

			if _, err := app.Manager.Register(cmd.Context(), req); err != nil {
				return err
			}
			app.success("Welcome, %s! You are signed in as %s.", app.Manager.DisplayName(), app.Manager.RoleLabel())
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&req.FirstName, "first-name", "", "first name")
	flags.StringVar(&req.LastName, "last-name", "", "last name")
	flags.StringVar(&req.Email, "email", "", "account email")
	flags.StringVar(&req.Password, "password", "", "password: 8+ characters with upper and lower case and a digit")
	flags.StringVar(&req.Phone, "phone", "", "phone number")
	flags.StringVar(&req.CompanyName, "company", "", "company name")
	flags.StringVar(&req.Role, "role", users.RoleOwner.Bare(), "account role")
	return cmd
}

func newTenantRegisterCmd() *cobra.Command {
	var req auth.TenantRegistrationRequest
	cmd := &cobra.Command{
		Use:   "tenant-register",
		Short: "Register as a tenant with the room code from your landlord",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}
			if err := promptIfEmpty(&req.RoomCode, "Room code", false); err != nil {
				return err
			}
			if err := promptIfEmpty(&req.Password, "Password", true); err != nil {
				return err
			}
			if err := users.ValidateEmail(req.Email); err != nil {
				return err
			}
			if err := users.ValidatePasswordStrength(req.Password); err != nil {
				return err
			}
			if err := auth.ValidateRoomCodeFormat(req.RoomCode); err != nil {
				return err
			}

			if !app.Config.GetTenantMockFallback() {
				unit, err := app.AuthAPI.ValidateRoomCode(cmd.Context(), req.RoomCode)
				if err != nil {
					return err
				}
				if unit.Building != nil {
					app.info("Room code matches unit %s at %s", unit.UnitNumber, unit.Building.Name)
				}
			}

			if _, err := app.Manager.TenantRegister(cmd.Context(), req); err != nil {
				return err
			}
			app.success("Welcome, %s! You are registered as a tenant.", app.Manager.DisplayName())
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&req.FirstName, "first-name", "", "first name")
	flags.StringVar(&req.LastName, "last-name", "", "last name")
	flags.StringVar(&req.Email, "email", "", "account email")
	flags.StringVar(&req.Password, "password", "", "password: 8+ characters with upper and lower case and a digit")
	flags.StringVar(&req.Phone, "phone", "", "phone number")
	flags.StringVar(&req.RoomCode, "room-code", "", "the unit's 8 character room code")
	flags.StringVar(&req.MoveInDate, "move-in", "", "move-in date, yyyy-MM-dd")
	flags.StringVar(&req.LeaseStartDate, "lease-start", "", "lease start date, yyyy-MM-dd")
	flags.StringVar(&req.LeaseEndDate, "lease-end", "", "lease end date, yyyy-MM-dd")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}
			app.Manager.Logout()
			app.success("Logged out")
			return nil
		},
	}
}

func newWhoAmICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}
			if app.Manager.CheckExpiry() {
				app.warning("Your session has expired. Run `colten login` to sign in again.")
				return nil
			}
			session := app.Manager.Session()
			if !session.Authenticated() {
				app.info("Not logged in")
				return nil
			}

			data := pterm.TableData{
				{"FIELD", "VALUE"},
				{"Name", session.Identity.DisplayName()},
				{"Email", session.Identity.Email},
				{"Role", session.Identity.RoleLabel()},
				{"Roles", strings.Join(session.Identity.RoleNames(), ", ")},
			}
			if credential, ok := app.Manager.Credential(); ok {
				if exp, err := token.ExpiresAt(credential); err == nil {
					data = append(data, []string{"Expires", exp.Local().Format(time.RFC1123)})
				}
			}
			return app.table(data)
		},
	}
}

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>",
		Short: "Check whether the current session may open an application page",
		Example: `  colten open /buildings
  colten open /units/12`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}
			app.Manager.CheckExpiry()
			decision := app.Router.Navigate(args[0])
			switch decision.Outcome {
			case guard.OutcomeAllow:
				app.success("%s: allowed", decision.Path)
			case guard.OutcomeRedirectToLogin:
				app.warning("%s: redirect to %s (from %s)", decision.Path, decision.RedirectTo, decision.From)
			default:
				app.warning("%s: %s", decision.Outcome, decision.Message())
			}
			return nil
		},
	}
}
