package api

import (
	"log/slog"
	"time"

	"github.com/sarefinport/sarefinport/pkg/auth"
	"github.com/sarefinport/sarefinport/pkg/metrics"
)

// Option configures the API.
type Option func(*API)

// WithLogger sets the operational logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *API) {
		if log != nil {
			a.log = log
		}
	}
}

// WithMetrics enables request metrics and the /metrics endpoint.
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *API) {
		a.metrics = m
	}
}

// WithBasePath mounts resource routes under path. "" or "/" mounts them at
// the root.
func WithBasePath(path string) Option {
	return func(a *API) {
		a.basePath = path
	}
}

// WithCORS sets the CORS configuration.
func WithCORS(config CORSConfig) Option {
	return func(a *API) {
		a.corsConfig = config
	}
}

// WithVersion sets the version reported by /health.
func WithVersion(version string) Option {
	return func(a *API) {
		a.version = version
	}
}

// WithLogin enables POST /auth/login for a single admin account. Tokens are
// signed by issuer and live for ttl.
func WithLogin(issuer *auth.Issuer, creds auth.Credentials, ttl time.Duration) Option {
	return func(a *API) {
		if issuer == nil || creds.Email == "" || creds.PasswordHash == "" {
			return
		}
		a.issuer = issuer
		a.credentials = creds
		a.tokenTTL = ttl
	}
}
