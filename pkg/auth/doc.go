// Package auth verifies bearer tokens and gates admin-only routes.
//
// Tokens are HS256 JWTs carrying a "role" claim. A Verifier turns a token into
// an Identity; a Gate wraps handlers so that only admin identities reach them.
// An Issuer mints tokens for the login endpoint and the token CLI command.
package auth
