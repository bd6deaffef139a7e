package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Header carries the request id in both directions.
const Header = "X-Request-ID"

const maxLength = 128

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Middleware reuses a well-formed client id or generates a UUID, stores it
// in the request context and echoes it back in the response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !Valid(id) {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}

// Valid reports whether a client-supplied id may be propagated.
func Valid(id string) bool {
	return id != "" && len(id) <= maxLength && validID.MatchString(id)
}
