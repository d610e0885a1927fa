package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/oauth"

	"github.com/mbolis/intake-form/httpx"
	"github.com/mbolis/intake-form/lang"
	"github.com/mbolis/intake-form/log"
)

// Admin checks for a valid bearer token carrying the 'admin' role.
func Admin(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return chi.Chain(oauth.Authorize(secret, nil), admin).Handler(next)
	}
}

func admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ := r.Context().Value(oauth.ClaimsContext).(map[string]string)

		isAdmin := false
		for _, role := range strings.Split(claims["roles"], ",") {
			if strings.TrimSpace(role) == "admin" {
				isAdmin = true
				break
			}
		}

		if !isAdmin {
			httpx.LogStatus(w, r, http.StatusForbidden, log.DebugLevel, "auth.admin_role")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Language gives every request its own language state, Arabic unless the
// lang query parameter asks otherwise. onSwitch, when not nil, observes the
// switch together with the request that asked for it.
func Language(onSwitch func(*http.Request, lang.Language)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := lang.NewState()
			if onSwitch != nil {
				defer state.Subscribe(func(l lang.Language) { onSwitch(r, l) })()
			}

			if q := r.URL.Query().Get("lang"); q != "" {
				l, err := lang.Parse(q)
				if err != nil {
					httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.DebugLevel, "request.lang", "unsupported language %q", q)
					return
				}
				err = state.SetLanguage(l)
				if err != nil {
					httpx.LogInternalError(w, r, "request.lang_state", err)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(lang.WithState(r.Context(), state)))
		})
	}
}

// RequestLogger logs one line per request through the application logger.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		entry := log.WithFields(log.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"bytes":      ww.BytesWritten(),
			"duration":   time.Since(start).String(),
			"remote":     r.RemoteAddr,
			"request_id": middleware.GetReqID(r.Context()),
		})
		switch {
		case ww.Status() >= 500:
			entry.Error("request")
		case ww.Status() >= 400:
			entry.Info("request")
		default:
			entry.Debug("request")
		}
	})
}
