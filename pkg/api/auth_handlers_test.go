package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarefinport/sarefinport/pkg/auth"
)

func newLoginEnv(t *testing.T) *testEnv {
	t.Helper()
	issuer, err := auth.NewIssuer(testSecret, "")
	require.NoError(t, err)
	hash, err := auth.HashPassword("correct horse battery")
	require.NoError(t, err)
	return newTestEnv(t, WithLogin(issuer, auth.Credentials{
		Email:        "owner@example.com",
		PasswordHash: hash,
	}, time.Hour))
}

func TestLogin_Disabled(t *testing.T) {
	env := newTestEnv(t)
	assert.False(t, env.api.LoginEnabled())

	rec := env.do(t, http.MethodPost, "/api/auth/login", `{"email":"a","password":"b"}`, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogin(t *testing.T) {
	env := newLoginEnv(t)
	require.True(t, env.api.LoginEnabled())

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{name: "missing password", body: `{"email":"owner@example.com"}`, wantStatus: http.StatusBadRequest, wantError: "Email and password are required"},
		{name: "blank email", body: `{"email":"  ","password":"x"}`, wantStatus: http.StatusBadRequest, wantError: "Email and password are required"},
		{name: "wrong password", body: `{"email":"owner@example.com","password":"nope"}`, wantStatus: http.StatusUnauthorized, wantError: "Invalid credentials"},
		{name: "wrong email", body: `{"email":"intruder@example.com","password":"correct horse battery"}`, wantStatus: http.StatusUnauthorized, wantError: "Invalid credentials"},
		{name: "unknown field", body: `{"email":"owner@example.com","password":"x","role":"admin"}`, wantStatus: http.StatusBadRequest, wantError: ErrMsgUnknownField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/auth/login", tt.body, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, errorMessage(t, rec))
		})
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(env.metrics.AuthFailures.WithLabelValues(string(auth.RejectBadCredentials))))
}

func TestLogin_TokenGrantsAdmin(t *testing.T) {
	env := newLoginEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/login",
		`{"email":"Owner@Example.com","password":"correct horse battery"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[loginResponse](t, rec)
	require.NotEmpty(t, resp.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, time.Minute)

	rec = env.do(t, http.MethodGet, "/api/contact/messages", "", resp.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
}
