package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/smartfocus/smartfocus-backend/pkg/ctxutil"
)

// UserIDHeader is set by the gateway after it has authenticated the caller.
// This service trusts it; credential verification happens upstream.
const UserIDHeader = "X-User-Id"

// Identity returns middleware that reads the gateway-authenticated user id
// into the request context. Requests without a parseable id proceed
// anonymously; handlers that need an identity reject them.
func Identity() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(UserIDHeader)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}
			userID, err := uuid.Parse(raw)
			if err != nil {
				http.Error(w, "invalid user id", http.StatusBadRequest)
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
