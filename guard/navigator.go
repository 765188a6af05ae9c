package guard

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-colten/auth"
)

// Navigator turns session events into navigation. It is the single place that reacts
// to a logout by redirecting.
type Navigator struct{}

// Watch calls onRedirect for every logout event until ctx is done or events is closed.
func (Navigator) Watch(ctx context.Context, events <-chan auth.Event, onRedirect func(path string)) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.Kind != auth.EventLoggedOut {
				continue
			}
			target := ev.RedirectTo
			if target == "" {
				target = RouteLogin
			}
			log.Debug().Str("reason", string(ev.Reason)).Str("to", target).Msg("navigator: redirecting after logout")
			onRedirect(target)
		}
	}
}
