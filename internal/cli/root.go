package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jrsteele09/go-colten/auth"
	"github.com/jrsteele09/go-colten/internal/config"
	"github.com/jrsteele09/go-colten/internal/logging"
	"github.com/jrsteele09/go-colten/tokenstore"
)

type contextKey string

const appKey contextKey = "colten-app"

func withApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey, app)
}

// appFrom retrieves the App injected by the root command's PersistentPreRunE.
func appFrom(cmd *cobra.Command) (*App, error) {
	app, ok := cmd.Context().Value(appKey).(*App)
	if !ok {
		return nil, errors.New("colten: app not initialised")
	}
	return app, nil
}

type rootOptions struct {
	viper *viper.Viper
	store auth.TokenStore
	out   io.Writer
}

// RootOption customises the root command, primarily for tests.
type RootOption func(*rootOptions)

// WithViper uses v instead of loading the config file and environment.
func WithViper(v *viper.Viper) RootOption {
	return func(o *rootOptions) {
		o.viper = v
	}
}

// WithTokenStore persists the session in store instead of the session directory.
func WithTokenStore(store auth.TokenStore) RootOption {
	return func(o *rootOptions) {
		o.store = store
	}
}

func WithOutput(w io.Writer) RootOption {
	return func(o *rootOptions) {
		o.out = w
	}
}

// NewRootCmd builds the colten command tree.
func NewRootCmd(options ...RootOption) *cobra.Command {
	opts := &rootOptions{out: os.Stdout}
	for _, opt := range options {
		opt(opts)
	}

	var (
		cfgFile string
		app     *App
	)

	rootCmd := &cobra.Command{
		Use:           "colten",
		Short:         "Colten property management client",
		Long:          `colten signs owners and tenants in to the Colten API and manages buildings, units and tenancies from the terminal.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := opts.viper
			if v == nil {
				loaded, err := config.Load(cfgFile)
				if err != nil {
					return err
				}
				v = loaded
			}
			if err := bindFlags(cmd.Flags(), v); err != nil {
				return err
			}
			cfg := config.New(v)
			logging.Setup(cfg.GetLogLevel(), cfg.GetEnv())

			store := opts.store
			if store == nil {
				fileStore, err := tokenstore.NewFileStore(cfg.GetSessionDir())
				if err != nil {
					return errors.Wrap(err, "failed to open session store")
				}
				store = fileStore
			}

			var err error
			app, err = NewApp(cfg, store, opts.out)
			if err != nil {
				return err
			}
			app.Start()
			cmd.SetContext(withApp(cmd.Context(), app))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				app.Close()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.colten.yml)")
	flags.String("api-base-url", "", "Colten API base URL (default http://localhost:8080/api)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("session-dir", "", "directory the session is persisted in (default $HOME/.colten)")
	flags.Bool("tenant-mock-fallback", false, "register tenants locally when the API is unavailable (development only)")

	rootCmd.AddCommand(
		newLoginCmd(),
		newRegisterCmd(),
		newTenantRegisterCmd(),
		newLogoutCmd(),
		newWhoAmICmd(),
		newOpenCmd(),
		newBuildingsCmd(),
		newUnitsCmd(),
		newTenantsCmd(),
		newIssuesCmd(),
		newPaymentsCmd(),
		newDashboardCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

// bindFlags binds each changed flag to its viper key, e.g. --api-base-url to api_base_url,
// so flags override the config file and COLTEN_* environment variables.
func bindFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || !f.Changed {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
			bindErr = fmt.Errorf("bind flag %s: %w", f.Name, err)
		}
	})
	return bindErr
}
