package gate

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pranayama-studio/pranayama-api/internal/shared"
	"github.com/pranayama-studio/pranayama-api/internal/token"
)

// Role is the sole authorization dimension. Accounts registered without
// a role carry RoleUnset until an assignment lands.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
	RoleUnset      Role = ""
)

const unauthorizedMessage = "unauthorized access"

// RoleLookup resolves the current role for an account email. Gates call
// it on every request so role changes take effect immediately.
type RoleLookup interface {
	RoleByEmail(ctx context.Context, email string) (Role, error)
}

// Authenticator verifies bearer tokens and attaches the decoded claims
// to the request context.
type Authenticator struct {
	logger *slog.Logger
	codec  *token.Codec
}

// NewAuthenticator constructs an Authenticator instance.
func NewAuthenticator(logger *slog.Logger, codec *token.Codec) *Authenticator {
	return &Authenticator{logger: logger, codec: codec}
}

// Middleware rejects requests without a verifiable credential.
// Expired and malformed tokens surface identically to the caller.
func (a *Authenticator) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				shared.RespondAuthError(w, http.StatusUnauthorized, unauthorizedMessage)
				return
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[1] == "" {
				shared.RespondAuthError(w, http.StatusUnauthorized, unauthorizedMessage)
				return
			}
			claims, err := a.codec.Verify(parts[1])
			if err != nil {
				shared.RespondAuthError(w, http.StatusUnauthorized, unauthorizedMessage)
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
		})
	}
}

// RoleGate authorizes requests by account role. It is constructed from
// an Authenticator, and Require composes authentication ahead of the
// role check, so the gate ordering is structural rather than a
// call-site convention.
type RoleGate struct {
	auth   *Authenticator
	lookup RoleLookup
	logger *slog.Logger
}

// NewRoleGate constructs a RoleGate instance.
func NewRoleGate(logger *slog.Logger, auth *Authenticator, lookup RoleLookup) *RoleGate {
	return &RoleGate{auth: auth, lookup: lookup, logger: logger}
}

// Require returns middleware that authenticates the request and then
// rejects callers whose current role differs from the required one.
func (g *RoleGate) Require(role Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return g.auth.Middleware()(g.check(role, next))
	}
}

func (g *RoleGate) check(role Role, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			shared.RespondAuthError(w, http.StatusUnauthorized, unauthorizedMessage)
			return
		}
		current, err := g.lookup.RoleByEmail(r.Context(), claims.Email)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			g.logger.Error("role lookup", slog.Any("error", err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if err != nil || current != role {
			shared.RespondAuthError(w, http.StatusForbidden, forbiddenMessage(role))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func forbiddenMessage(role Role) string {
	switch role {
	case RoleInstructor:
		return "Forbidden: Only instructors can access this resource."
	case RoleStudent:
		return "Forbidden: Access denied"
	default:
		return "forbidden message"
	}
}
