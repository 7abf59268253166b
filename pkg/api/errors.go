package api

import (
	"errors"
	"net/http"

	"github.com/sarefinport/sarefinport/pkg/httputil"
	"github.com/sarefinport/sarefinport/pkg/store"
)

// Request-level error messages.
const (
	ErrMsgInvalidJSON   = "Invalid JSON in request body"
	ErrMsgUnknownField  = "Unknown field in request body"
	ErrMsgBodyTooLarge  = "Request body too large"
	ErrMsgRouteNotFound = "Route not found"
)

// Error kinds reported to metrics.
const (
	kindBadRequest = "bad_request"
	kindNotFound   = "not_found"
	kindValidation = "validation"
	kindConflict   = "conflict"
	kindInternal   = "internal"
)

// operation names a handler action and its client-facing messages.
type operation struct {
	name     string // for logs
	failed   string // returned for every failure but not-found
	notFound string
}

// writeStoreError maps err to a status code and writes the operation's fixed
// message. The cause is only logged.
func (a *API) writeStoreError(w http.ResponseWriter, r *http.Request, op operation, err error) {
	status, kind := http.StatusInternalServerError, kindInternal
	switch {
	case errors.Is(err, store.ErrNotFound):
		status, kind = http.StatusNotFound, kindNotFound
	case errors.Is(err, store.ErrValidation):
		status, kind = http.StatusBadRequest, kindValidation
	case errors.Is(err, store.ErrConflict):
		status, kind = http.StatusConflict, kindConflict
	}
	a.metrics.ObserveError(kind)

	msg := op.failed
	switch status {
	case http.StatusNotFound:
		if op.notFound != "" {
			msg = op.notFound
		}
		a.log.Debug("resource not found", "operation", op.name, "path", r.URL.Path)
	case http.StatusInternalServerError:
		a.log.Error("operation failed", "operation", op.name, "path", r.URL.Path, "error", err)
	default:
		a.log.Warn("request rejected", "operation", op.name, "path", r.URL.Path, "error", err)
	}
	httputil.WriteError(w, status, msg)
}

// decode reads a JSON body into dst. An empty body leaves dst untouched. On
// failure it writes a 4xx response and returns false.
func (a *API) decode(w http.ResponseWriter, r *http.Request, op operation, dst any) bool {
	err := httputil.DecodeJSON(w, r, dst)
	if err == nil || errors.Is(err, httputil.ErrEmptyBody) {
		return true
	}
	a.metrics.ObserveError(kindBadRequest)

	switch {
	case errors.Is(err, httputil.ErrBodyTooLarge):
		httputil.WriteError(w, http.StatusRequestEntityTooLarge, ErrMsgBodyTooLarge)
	default:
		if field, ok := httputil.UnknownField(err); ok {
			a.log.Debug("unknown field in request", "operation", op.name, "field", field)
			httputil.WriteError(w, http.StatusBadRequest, ErrMsgUnknownField)
			return false
		}
		a.log.Debug("invalid JSON in request", "operation", op.name, "error", err)
		httputil.WriteError(w, http.StatusBadRequest, ErrMsgInvalidJSON)
	}
	return false
}
