package session_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumistore/backoffice/internal/pkg/auth"
	"github.com/lumistore/backoffice/internal/session"
)

func signedCredential(t *testing.T, claims jwt.MapClaims) session.Credential {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	return session.Credential(signed)
}

func staffCredential(t *testing.T, userID string, role auth.Role, expiresAt time.Time) session.Credential {
	t.Helper()

	return signedCredential(t, jwt.MapClaims{
		"userId": userID,
		"role":   string(role),
		"exp":    expiresAt.Unix(),
	})
}

func TestDecodeCredential_Returns(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour)

	tests := []struct {
		name       string
		credential func(t *testing.T) session.Credential
		expect     func(t *testing.T, claims session.Claims, err error)
	}{
		{
			name: "success",
			credential: func(t *testing.T) session.Credential {
				return staffCredential(t, "staff-42", auth.RoleManager, expiresAt)
			},
			expect: func(t *testing.T, claims session.Claims, err error) {
				require.NoError(t, err)
				assert.Equal(t, "staff-42", claims.UserID)
				assert.Equal(t, auth.RoleManager, claims.Role)
				assert.WithinDuration(t, expiresAt, claims.ExpiresAt, time.Second)
			},
		},
		{
			name: "error_when_malformed",
			credential: func(*testing.T) session.Credential {
				return "not.a.credential"
			},
			expect: func(t *testing.T, _ session.Claims, err error) {
				assert.ErrorIs(t, err, session.ErrCredentialInvalid)
			},
		},
		{
			name: "error_when_expired",
			credential: func(t *testing.T) session.Credential {
				return staffCredential(t, "staff-42", auth.RoleAdmin, time.Now().Add(-time.Minute))
			},
			expect: func(t *testing.T, _ session.Claims, err error) {
				assert.ErrorIs(t, err, session.ErrCredentialExpired)
			},
		},
		{
			name: "error_when_expiry_missing",
			credential: func(t *testing.T) session.Credential {
				return signedCredential(t, jwt.MapClaims{
					"userId": "staff-42",
					"role":   string(auth.RoleAdmin),
				})
			},
			expect: func(t *testing.T, _ session.Claims, err error) {
				assert.ErrorIs(t, err, session.ErrCredentialInvalid)
			},
		},
		{
			name: "error_when_role_unknown",
			credential: func(t *testing.T) session.Credential {
				return signedCredential(t, jwt.MapClaims{
					"userId": "staff-42",
					"role":   "Intern",
					"exp":    expiresAt.Unix(),
				})
			},
			expect: func(t *testing.T, _ session.Claims, err error) {
				assert.ErrorIs(t, err, session.ErrCredentialInvalid)
			},
		},
		{
			name: "error_when_user_id_missing",
			credential: func(t *testing.T) session.Credential {
				return signedCredential(t, jwt.MapClaims{
					"role": string(auth.RoleSale),
					"exp":  expiresAt.Unix(),
				})
			},
			expect: func(t *testing.T, _ session.Claims, err error) {
				assert.ErrorIs(t, err, session.ErrCredentialInvalid)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			claims, err := session.DecodeCredential(tc.credential(t))
			tc.expect(t, claims, err)
		})
	}
}
