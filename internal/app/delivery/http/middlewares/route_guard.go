package middlewares

import (
	"gobarber-dashboard/internal/app/models"
	"gobarber-dashboard/internal/pkg/constvars"
	"gobarber-dashboard/internal/pkg/metrics"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// Decision is the outcome of guarding a route: either render it, or redirect
// to RedirectTo remembering From.
type Decision struct {
	Render     bool
	RedirectTo string
	From       string
}

// Decide renders a route exactly when its privacy matches whether a user is
// signed in. Signed-in users are sent to the dashboard, anonymous ones to the
// sign-in page.
func Decide(isPrivate bool, user *models.User, location string) Decision {
	signedIn := user != nil
	if isPrivate == signedIn {
		return Decision{Render: true}
	}

	target := constvars.RouteAuthenticatedLanding
	if isPrivate {
		target = constvars.RoutePublicLanding
	}
	return Decision{RedirectTo: target, From: location}
}

// URL is the redirect location with From carried as a query parameter.
func (d Decision) URL() string {
	if d.From == "" {
		return d.RedirectTo
	}
	return d.RedirectTo + "?" + url.Values{constvars.QueryParamFrom: []string{d.From}}.Encode()
}

func (m *Middlewares) RouteGuard(isPrivate bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, _ := m.AuthState.CurrentUser(r.Context())

			// Only a GET location can be revisited after the redirect.
			replayable := r.Method == http.MethodGet || r.Method == http.MethodHead
			location := ""
			if replayable {
				location = r.URL.RequestURI()
			}

			decision := Decide(isPrivate, user, location)
			if decision.Render {
				next.ServeHTTP(w, r)
				return
			}

			status := http.StatusSeeOther
			if replayable {
				status = http.StatusFound
			}

			m.Log.Info("Middlewares.RouteGuard redirecting",
				zap.Any(constvars.LoggingRequestIDKey, r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY)),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRedirectToKey, decision.RedirectTo),
				zap.String(constvars.LoggingFromKey, decision.From),
			)
			metrics.RecordRouteGuardRedirect(decision.RedirectTo)
			http.Redirect(w, r, decision.URL(), status)
		})
	}
}
