package httpapi

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const identityKey ctxKey = "identity"

// Identity is what the guard hands to note handlers: the verified subject
// and, when the token carries one, the username.
type Identity struct {
	UserID   string
	Username string
}

func identityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// authenticate is the access guard: it extracts the bearer token from the
// Authorization header, verifies it, and injects the identity into the
// request context. It knows nothing about notes.
//
// The header is split on whitespace and the second field is taken. A header
// without the "Bearer " prefix yields an empty candidate, which fails
// verification and is rejected as an invalid token rather than a missing one.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get("Authorization")
		if header == "" {
			writeMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var candidate string
		if fields := strings.Fields(header); len(fields) > 1 {
			candidate = fields[1]
		}

		claims, err := s.tokens.Verify(candidate)
		if err != nil {
			// err names which check failed; the response does not
			s.logger.Warn(r.Context(), "token rejected", "reason", err.Error())
			writeMessage(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		identity := Identity{UserID: claims.Subject, Username: claims.Username}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, identity)))
	})
}
