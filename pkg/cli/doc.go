// Package cli implements the sarefinport command line.
//
// serve runs the HTTP API and is the default when no subcommand is given.
// migrate creates or updates the schema, token mints a bearer token signed
// with the configured secret, and hash-password produces a bcrypt hash for
// ADMIN_PASSWORD_HASH.
//
// Every command reads configuration the same way: built-in defaults, then the
// YAML file named by --config, then environment variables, then flags.
package cli
