package auth

import "github.com/jrsteele09/go-colten/users"

// Status is the authentication state of the session.
type Status int

const (
	StatusInitializing Status = iota
	StatusAuthenticated
	StatusUnauthenticated
)

func (s Status) String() string {
	switch s {
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	default:
		return "initializing"
	}
}

// Session is a snapshot of the manager's state. Loading is set while a login or
// registration call is in flight and is independent of Status.
type Session struct {
	Status   Status
	Identity *users.Identity
	Loading  bool
}

func (s Session) Authenticated() bool {
	return s.Status == StatusAuthenticated && s.Identity != nil
}

type EventKind int

const (
	EventLoggedIn EventKind = iota
	EventLoggedOut
)

func (k EventKind) String() string {
	if k == EventLoggedIn {
		return "logged_in"
	}
	return "logged_out"
}

// LogoutReason says why a session ended.
type LogoutReason string

const (
	ReasonUserLogout   LogoutReason = "logout"
	ReasonExpired      LogoutReason = "expired"
	ReasonUnauthorized LogoutReason = "unauthorized"
)

// Event is published to subscribers on every login and logout.
// RedirectTo is set on logout to the public entry point.
type Event struct {
	Kind       EventKind
	Reason     LogoutReason
	RedirectTo string
	Identity   *users.Identity
}
