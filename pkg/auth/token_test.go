package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-0123456789")

func newPair(t *testing.T, issuer string) (*Issuer, *Verifier) {
	t.Helper()
	iss, err := NewIssuer(testSecret, issuer)
	require.NoError(t, err)
	v, err := NewVerifier(testSecret, issuer)
	require.NoError(t, err)
	return iss, v
}

func signClaims(t *testing.T, method jwt.SigningMethod, claims jwt.Claims, key any) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleAnonymous, ParseRole("Admin"))
	assert.Equal(t, RoleAnonymous, ParseRole("user"))
	assert.Equal(t, RoleAnonymous, ParseRole(""))
	assert.Equal(t, "admin", RoleAdmin.String())
	assert.Equal(t, "anonymous", RoleAnonymous.String())
}

func TestIssueAndVerify(t *testing.T) {
	iss, v := newPair(t, "")

	token, exp, err := iss.Issue("owner@example.com", RoleAdmin, time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	id, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", id.Subject)
	assert.Equal(t, RoleAdmin, id.Role)
	assert.True(t, id.IsAdmin())
	assert.Equal(t, exp.Unix(), id.ExpiresAt.Unix())
}

func TestVerify_NonAdminRole(t *testing.T) {
	iss, v := newPair(t, "")
	token, _, err := iss.Issue("visitor", RoleAnonymous, time.Hour)
	require.NoError(t, err)

	id, err := v.Verify(token)
	require.NoError(t, err)
	assert.False(t, id.IsAdmin())
}

func TestVerify_Failures(t *testing.T) {
	_, v := newPair(t, "")
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "empty", token: "", want: ErrMissingToken},
		{name: "blank", token: "   ", want: ErrMissingToken},
		{name: "garbage", token: "not.a.jwt", want: ErrInvalidToken},
		{
			name: "wrong secret",
			token: signClaims(t, jwt.SigningMethodHS256, Claims{
				Role:             "admin",
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
			}, []byte("some-other-secret-value")),
			want: ErrInvalidToken,
		},
		{
			name: "expired",
			token: signClaims(t, jwt.SigningMethodHS256, Claims{
				Role: "admin",
				RegisteredClaims: jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
				},
			}, testSecret),
			want: ErrInvalidToken,
		},
		{
			name: "missing exp",
			token: signClaims(t, jwt.SigningMethodHS256, Claims{
				Role: "admin",
			}, testSecret),
			want: ErrInvalidToken,
		},
		{
			name: "other hmac algorithm",
			token: signClaims(t, jwt.SigningMethodHS512, Claims{
				Role:             "admin",
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
			}, testSecret),
			want: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(tt.token)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestVerify_Issuer(t *testing.T) {
	wrong, err := NewIssuer(testSecret, "someone-else")
	require.NoError(t, err)
	iss, v := newPair(t, "sarefinport")

	token, _, err := wrong.Issue("x", RoleAdmin, time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	token, _, err = iss.Issue("x", RoleAdmin, time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(token)
	assert.NoError(t, err)
}

func TestConstructors_RequireSecret(t *testing.T) {
	_, err := NewVerifier(nil, "")
	assert.Error(t, err)
	_, err = NewIssuer(nil, "")
	assert.Error(t, err)

	iss, _ := newPair(t, "")
	_, _, err = iss.Issue("x", RoleAdmin, 0)
	assert.Error(t, err)
}
