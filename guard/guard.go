package guard

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/jrsteele09/go-colten/auth"
	"github.com/jrsteele09/go-colten/users"
)

// Outcome is what a navigation should do.
type Outcome int

const (
	OutcomeWait Outcome = iota
	OutcomeAllow
	OutcomeRedirectToLogin
	OutcomeDeny
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAllow:
		return "allow"
	case OutcomeRedirectToLogin:
		return "redirect"
	case OutcomeDeny:
		return "deny"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "wait"
	}
}

// Decision is the result of guarding one navigation.
// From is the originally requested path so a login can return to it.
type Decision struct {
	Outcome      Outcome
	Path         string
	From         string
	RedirectTo   string
	RequiredRole users.RoleType
	ActualRoles  []users.RoleType
}

// Message is a short human explanation of the decision.
func (d Decision) Message() string {
	switch d.Outcome {
	case OutcomeWait:
		return "Checking authentication..."
	case OutcomeRedirectToLogin:
		return fmt.Sprintf("Please sign in to continue (redirecting to %s)", d.RedirectTo)
	case OutcomeDeny:
		actual := lo.Map(d.ActualRoles, func(r users.RoleType, _ int) string { return string(r) })
		return fmt.Sprintf("Access denied. You don't have permission to access this page. Required role: %s. Your roles: %s",
			d.RequiredRole.Bare(), strings.Join(actual, ", "))
	case OutcomeNotFound:
		return fmt.Sprintf("%s: page not found", d.Path)
	default:
		return ""
	}
}

// Check decides whether session may view path. An empty requiredRole means any
// authenticated identity may.
func Check(session auth.Session, path string, requiredRole users.RoleType) Decision {
	if session.Status == auth.StatusInitializing || session.Loading {
		return Decision{Outcome: OutcomeWait, Path: path}
	}
	if !session.Authenticated() {
		return Decision{Outcome: OutcomeRedirectToLogin, Path: path, From: path, RedirectTo: RouteLogin}
	}
	if requiredRole == "" || HasRole(session.Identity.Roles, requiredRole) {
		return Decision{Outcome: OutcomeAllow, Path: path}
	}
	return Decision{
		Outcome:      OutcomeDeny,
		Path:         path,
		RequiredRole: requiredRole,
		ActualRoles:  append([]users.RoleType(nil), session.Identity.Roles...),
	}
}

// HasRole reports whether roles satisfy required in either its bare or prefixed form.
// Admins satisfy every role.
func HasRole(roles []users.RoleType, required users.RoleType) bool {
	want := required.Canonical()
	return lo.ContainsBy(roles, func(r users.RoleType) bool {
		c := r.Canonical()
		return c == want || c == users.RoleAdmin
	})
}
