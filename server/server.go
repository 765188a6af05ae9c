package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-colten/internal/config"
	"github.com/jrsteele09/go-colten/server/propertyrepo"
	"github.com/jrsteele09/go-colten/token"
	"github.com/jrsteele09/go-colten/users"
)

// Server is the development stand-in for the Colten REST API.
type Server struct {
	env        string // Environment (e.g., "DEV", "PROD")
	router     chi.Router
	config     config.Config
	accounts   users.AccountRepo
	properties propertyrepo.Repo
	signer     token.Signer
	tokenTTL   time.Duration
	nowTime    func() time.Time
	seed       bool
}

// Option defines a function type to modify the Server instance.
type Option func(*Server)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) Option {
	return func(s *Server) {
		s.nowTime = nowFunc
	}
}

// WithoutSeedData skips creating the demo owner, building and unit.
func WithoutSeedData() Option {
	return func(s *Server) {
		s.seed = false
	}
}

func New(cfg config.Config, accounts users.AccountRepo, properties propertyrepo.Repo, options ...Option) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("[Server New] config is required")
	}
	if accounts == nil || properties == nil {
		return nil, errors.New("[Server New] account and property repos are required")
	}

	s := &Server{
		env:        cfg.GetEnv(),
		config:     cfg,
		accounts:   accounts,
		properties: properties,
		signer:     token.NewHMACSigner(cfg.GetJWTSecret()),
		tokenTTL:   cfg.GetTokenExpiry(),
		nowTime:    time.Now,
		seed:       true,
	}
	for _, opt := range options {
		opt(s)
	}
	if s.tokenTTL <= 0 {
		s.tokenTTL = 24 * time.Hour
	}

	if s.seed {
		if err := s.InitialiseSystem(); err != nil {
			return nil, errors.Wrap(err, "[Server New] failed to initialise the system")
		}
	}

	s.router = s.initRoutes()
	s.logRoutes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Signer is the key the server signs access tokens with.
func (s *Server) Signer() token.Signer {
	return s.signer
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return
	}
	_ = chi.Walk(s.router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		log.Debug().Str("method", fmt.Sprintf("%-7s", method)).Msg(strings.TrimSuffix(route, "/*"))
		return nil
	})
}

func (s *Server) timestamp() string {
	return s.nowTime().UTC().Format(time.RFC3339)
}
