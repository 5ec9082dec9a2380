package session

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

const CookieName = "sid"

type ctxKey string

const sessionKey ctxKey = "session"

// FromContext returns the request's session. Only valid below Middleware.
func FromContext(ctx context.Context) (Session, bool) {
	sess, ok := ctx.Value(sessionKey).(Session)
	return sess, ok
}

// ContextWith injects a session, for handler tests that bypass Middleware.
func ContextWith(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// Middleware resolves the session named by the sid cookie, creating a new
// session and setting the cookie when the request carries none, an invalid
// one, or one pointing at an expired session.
func Middleware(store *Store, codec *CookieCodec, secure bool, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := resolve(store, codec, r)
			if !ok {
				sess = store.Create()

				value, err := codec.Sign(sess.ID, TTL)
				if err != nil {
					if log != nil {
						log.Error("sign session cookie failed", zap.Error(err))
					}
					http.Error(w, "server error", http.StatusInternalServerError)
					return
				}

				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    value,
					Path:     "/",
					MaxAge:   int(TTL.Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(ContextWith(r.Context(), sess)))
		})
	}
}

func resolve(store *Store, codec *CookieCodec, r *http.Request) (Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return Session{}, false
	}

	id, err := codec.Parse(cookie.Value)
	if err != nil {
		return Session{}, false
	}

	return store.Get(id)
}
