package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sarefinport/sarefinport/pkg/httputil"
	"github.com/sarefinport/sarefinport/pkg/logging"
)

// Messages written by the Gate.
const (
	MsgTokenRequired = "Access token required"
	MsgInvalidToken  = "Invalid token"
	MsgAdminRequired = "Admin access required"
)

// RejectReason says why the Gate or a login turned a caller away.
type RejectReason string

const (
	RejectMissingToken   RejectReason = "missing_token"
	RejectInvalidToken   RejectReason = "invalid_token"
	RejectNotAdmin       RejectReason = "not_admin"
	RejectBadCredentials RejectReason = "bad_credentials"
)

// Gate authenticates bearer tokens and enforces the admin role.
type Gate struct {
	verifier *Verifier
	log      *slog.Logger
	onReject func(RejectReason)
}

// NewGate returns a Gate backed by verifier. A nil logger discards output.
func NewGate(verifier *Verifier, log *slog.Logger) *Gate {
	if log == nil {
		log = logging.Nop()
	}
	return &Gate{verifier: verifier, log: log, onReject: func(RejectReason) {}}
}

// OnReject registers fn to be called for every rejected request.
func (g *Gate) OnReject(fn func(RejectReason)) {
	if fn != nil {
		g.onReject = fn
	}
}

// BearerToken extracts the credential from the Authorization header. The
// scheme word is not checked, so "Bearer x" and "Token x" both yield "x".
func BearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return ""
	}
	_, token, ok := strings.Cut(header, " ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// Authenticate verifies the request token and stores the identity in the
// request context.
func (g *Gate) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := g.verifier.Verify(BearerToken(r))
		if err != nil {
			if errors.Is(err, ErrMissingToken) {
				g.onReject(RejectMissingToken)
				httputil.WriteError(w, http.StatusUnauthorized, MsgTokenRequired)
				return
			}
			g.onReject(RejectInvalidToken)
			g.log.Debug("rejected token", "path", r.URL.Path, "error", err)
			httputil.WriteError(w, http.StatusForbidden, MsgInvalidToken)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}

// RequireAdmin rejects requests whose identity is not an admin. It must run
// after Authenticate.
func (g *Gate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := FromContext(r.Context())
		if !ok || !id.IsAdmin() {
			g.onReject(RejectNotAdmin)
			httputil.WriteError(w, http.StatusForbidden, MsgAdminRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Admin chains Authenticate and RequireAdmin around h.
func (g *Gate) Admin(h http.HandlerFunc) http.Handler {
	return g.Authenticate(g.RequireAdmin(h))
}
