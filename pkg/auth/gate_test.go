package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer", ""},
		{"Bearer abc", "abc"},
		{"Bearer   abc  ", "abc"},
		{"Token abc", "abc"},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			r.Header.Set("Authorization", tt.header)
		}
		assert.Equal(t, tt.want, BearerToken(r), "header %q", tt.header)
	}
}

func TestGate_AdminMatrix(t *testing.T) {
	iss, v := newPair(t, "")
	gate := NewGate(v, nil)
	var rejects []RejectReason
	gate.OnReject(func(r RejectReason) { rejects = append(rejects, r) })

	adminToken, _, err := iss.Issue("owner", RoleAdmin, time.Hour)
	require.NoError(t, err)
	userToken, _, err := iss.Issue("visitor", RoleAnonymous, time.Hour)
	require.NoError(t, err)

	var seen Identity
	h := gate.Admin(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		auth       string
		wantStatus int
		wantError  string
	}{
		{name: "no token", auth: "", wantStatus: http.StatusUnauthorized, wantError: MsgTokenRequired},
		{name: "invalid token", auth: "Bearer nope", wantStatus: http.StatusForbidden, wantError: MsgInvalidToken},
		{name: "non-admin", auth: "Bearer " + userToken, wantStatus: http.StatusForbidden, wantError: MsgAdminRequired},
		{name: "admin", auth: "Bearer " + adminToken, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/projects", nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError == "" {
				assert.Equal(t, "owner", seen.Subject)
				return
			}
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
	assert.Equal(t, []RejectReason{RejectMissingToken, RejectInvalidToken, RejectNotAdmin}, rejects)
}

func TestRequireAdmin_WithoutAuthenticate(t *testing.T) {
	_, v := newPair(t, "")
	h := NewGate(v, nil).RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/skills/1", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
