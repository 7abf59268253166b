package auth

import (
	"context"
	"strings"
	"time"
)

// Role is the authorization level carried by a token.
type Role int

const (
	// RoleAnonymous is any caller whose token does not claim admin.
	RoleAnonymous Role = iota
	// RoleAdmin may mutate portfolio content.
	RoleAdmin
)

const adminClaim = "admin"

// ParseRole decodes a role claim. Only "admin" maps to RoleAdmin.
func ParseRole(s string) Role {
	if strings.TrimSpace(s) == adminClaim {
		return RoleAdmin
	}
	return RoleAnonymous
}

func (r Role) String() string {
	if r == RoleAdmin {
		return adminClaim
	}
	return "anonymous"
}

// Identity is the verified caller behind a request.
type Identity struct {
	Subject   string
	Role      Role
	ExpiresAt time.Time
}

// IsAdmin reports whether the identity may use admin routes.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the identity stored by the Gate, if any.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
