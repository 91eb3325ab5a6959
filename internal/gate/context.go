package gate

import (
	"context"

	"github.com/pranayama-studio/pranayama-api/internal/token"
)

type claimsContextKey struct{}

// ContextWithClaims stores verified session claims in the context.
func ContextWithClaims(ctx context.Context, claims token.Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

// ClaimsFromContext extracts session claims attached by the
// authentication gate. ok is false when no gate has run.
func ClaimsFromContext(ctx context.Context) (token.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(token.Claims)
	return claims, ok
}
