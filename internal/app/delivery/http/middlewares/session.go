package middlewares

import (
	"context"
	"errors"
	"gobarber-dashboard/internal/pkg/constvars"
	"gobarber-dashboard/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// SessionOptional resolves the session cookie into the request context. A
// missing or unusable cookie leaves the request anonymous; an unusable one is
// also cleared.
func (m *Middlewares) SessionOptional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(constvars.SessionCookieName)
		if errors.Is(err, http.ErrNoCookie) || (err == nil && cookie.Value == "") {
			next.ServeHTTP(w, r)
			return
		}

		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		sessionID, err := utils.ParseJWT(cookie.Value, m.InternalConfig.JWT.Secret)
		if err != nil {
			m.Log.Info("Middlewares.SessionOptional discarded invalid session cookie",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.ClearSessionCookie(w, m.InternalConfig.App.SecureCookie)
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.SessionService.GetSession(r.Context(), sessionID)
		if err != nil {
			m.Log.Info("Middlewares.SessionOptional session not available",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(err),
			)
			utils.ClearSessionCookie(w, m.InternalConfig.App.SecureCookie)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
