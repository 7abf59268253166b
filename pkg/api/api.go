package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sarefinport/sarefinport/pkg/auth"
	"github.com/sarefinport/sarefinport/pkg/logging"
	"github.com/sarefinport/sarefinport/pkg/metrics"
	"github.com/sarefinport/sarefinport/pkg/store"
)

// DefaultBasePath is where resource routes are mounted.
const DefaultBasePath = "/api"

// API is the HTTP front of the portfolio store.
type API struct {
	store   store.Store
	gate    *auth.Gate
	log     *slog.Logger
	metrics *metrics.Metrics

	basePath   string
	corsConfig CORSConfig
	version    string
	startTime  time.Time

	// Admin login, enabled by WithLogin.
	issuer      *auth.Issuer
	credentials auth.Credentials
	tokenTTL    time.Duration

	handler http.Handler
}

// New builds the API. verifier authenticates admin requests.
func New(st store.Store, verifier *auth.Verifier, opts ...Option) *API {
	a := &API{
		store:      st,
		log:        logging.Nop(),
		basePath:   DefaultBasePath,
		corsConfig: DefaultCORSConfig(),
		startTime:  time.Now(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.basePath = normalizeBasePath(a.basePath)

	a.gate = auth.NewGate(verifier, a.log)
	a.gate.OnReject(func(reason auth.RejectReason) {
		a.metrics.ObserveAuthFailure(string(reason))
	})

	mux := http.NewServeMux()
	a.registerRoutes(mux)
	a.handler = a.withMiddleware(mux)
	return a
}

// ServeHTTP implements http.Handler.
func (a *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

// BasePath returns the prefix resource routes are mounted under.
func (a *API) BasePath() string {
	return a.basePath
}

// LoginEnabled reports whether POST /auth/login is served.
func (a *API) LoginEnabled() bool {
	return a.issuer != nil
}

// Uptime returns the time since the API was created.
func (a *API) Uptime() time.Duration {
	return time.Since(a.startTime)
}

// withMiddleware wraps the mux. Metrics and access logging sit directly
// around the mux so the matched pattern is visible to them.
func (a *API) withMiddleware(mux http.Handler) http.Handler {
	h := mux
	if a.metrics != nil {
		h = a.metrics.Middleware(h)
	}
	h = accessLog(a.log, h)
	h = a.cors(h)
	return SecurityHeadersMiddleware(h)
}

func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || p == "/" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(p, "/")
}
