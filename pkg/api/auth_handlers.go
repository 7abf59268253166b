package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/sarefinport/sarefinport/pkg/auth"
	"github.com/sarefinport/sarefinport/pkg/httputil"
)

const (
	msgCredentialsRequired = "Email and password are required"
	msgInvalidCredentials  = "Invalid credentials"
)

var opLogin = operation{name: "login", failed: "Failed to log in"}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !a.decode(w, r, opLogin, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		httputil.WriteError(w, http.StatusBadRequest, msgCredentialsRequired)
		return
	}

	if err := a.credentials.Check(req.Email, req.Password); err != nil {
		a.metrics.ObserveAuthFailure(string(auth.RejectBadCredentials))
		a.log.Warn("admin login failed", "remote", r.RemoteAddr)
		httputil.WriteError(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	token, expiresAt, err := a.issuer.Issue(a.credentials.Email, auth.RoleAdmin, a.tokenTTL)
	if err != nil {
		a.writeStoreError(w, r, opLogin, err)
		return
	}
	a.log.Info("admin logged in", "remote", r.RemoteAddr)
	httputil.WriteOK(w, loginResponse{Token: token, ExpiresAt: expiresAt})
}
