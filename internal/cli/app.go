package cli

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-colten/apiclient"
	"github.com/jrsteele09/go-colten/auth"
	"github.com/jrsteele09/go-colten/guard"
	"github.com/jrsteele09/go-colten/internal/config"
	"github.com/jrsteele09/go-colten/token"
)

// App is everything a command needs: the session, the API and the route guard.
type App struct {
	Config  config.Config
	Manager *auth.Manager
	Client  *apiclient.Client
	AuthAPI *apiclient.AuthAPI
	Router  *guard.Router
	Out     io.Writer

	mu         sync.Mutex
	redirectTo string
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// NewApp wires the API client, the session manager and the router over store.
func NewApp(cfg config.Config, store auth.TokenStore, out io.Writer) (*App, error) {
	if out == nil {
		out = os.Stdout
	}
	a := &App{Config: cfg, Out: out}

	a.Client = apiclient.New(cfg.GetAPIBaseURL(),
		apiclient.WithCredentials(store),
		apiclient.WithInvalidator(a),
		apiclient.WithTimeout(cfg.GetRequestTimeout()),
		apiclient.WithCache(cfg.GetCacheSize(), cfg.GetCacheTTL()),
	)
	a.AuthAPI = apiclient.NewAuthAPI(a.Client)

	var tenants auth.TenantRegistrar = a.AuthAPI
	if cfg.GetTenantMockFallback() {
		log.Warn().Msg("tenant registration falls back to the local mock")
		tenants = auth.FallbackTenantRegistrar{
			Primary:  a.AuthAPI,
			Fallback: auth.NewMockTenantRegistrar(token.NewHMACSigner(cfg.GetJWTSecret())),
		}
	}

	manager, err := auth.NewManager(store, a.AuthAPI, tenants,
		auth.WithLoginTimeout(cfg.GetLoginTimeout()),
		auth.WithLoginPath(guard.RouteLogin),
	)
	if err != nil {
		return nil, errors.Wrap(err, "[NewApp] failed to create session manager")
	}
	a.Manager = manager
	a.Router = guard.NewRouter(manager)
	return a, nil
}

// Invalidate forwards a rejected credential to the session manager.
func (a *App) Invalidate(credential string, reason auth.LogoutReason) bool {
	return a.Manager.Invalidate(credential, reason)
}

// Start restores the persisted session and begins reacting to session events: every
// event drops cached responses and a logout records where to go next.
func (a *App) Start() auth.Session {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	cacheEvents, unsubscribeCache := a.Manager.Subscribe()
	navEvents, unsubscribeNav := a.Manager.Subscribe()

	a.wg.Add(2)
	go func() {
		defer a.wg.Done()
		defer unsubscribeCache()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-cacheEvents:
				if !ok {
					return
				}
				a.Client.Purge()
			}
		}
	}()
	go func() {
		defer a.wg.Done()
		defer unsubscribeNav()
		guard.Navigator{}.Watch(ctx, navEvents, func(path string) {
			a.mu.Lock()
			a.redirectTo = path
			a.mu.Unlock()
		})
	}()

	return a.Manager.Start()
}

// Close stops event handling.
func (a *App) Close() {
	if a.cancel != nil {
		a.cancel()
	}
	a.wg.Wait()
}

// RedirectTo is the path the last logout redirected to, if any.
func (a *App) RedirectTo() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.redirectTo
}

// Navigate runs the route guard for path and returns an error unless it is allowed.
// An expired credential is logged out first.
func (a *App) Navigate(path string) error {
	a.Manager.CheckExpiry()
	decision := a.Router.Navigate(path)
	log.Debug().Str("path", decision.Path).Str("outcome", decision.Outcome.String()).Msg("cli: navigate")
	if decision.Outcome == guard.OutcomeAllow {
		return nil
	}
	return &NavigationError{Decision: decision}
}

// NavigationError is a navigation the guard did not allow.
type NavigationError struct {
	Decision guard.Decision
}

func (e *NavigationError) Error() string {
	if e.Decision.Outcome == guard.OutcomeRedirectToLogin {
		return e.Decision.Message() + " Run `colten login` first."
	}
	return e.Decision.Message()
}

func (a *App) success(format string, args ...any) {
	pterm.Success.WithWriter(a.Out).Printfln(format, args...)
}

func (a *App) info(format string, args ...any) {
	pterm.Info.WithWriter(a.Out).Printfln(format, args...)
}

func (a *App) warning(format string, args ...any) {
	pterm.Warning.WithWriter(a.Out).Printfln(format, args...)
}

func (a *App) table(data pterm.TableData) error {
	return pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(a.Out).Render()
}
