package infrastructure

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"todo-service/internal/domain/entities"
)

func TestSessionTokenService_RoundTrip(t *testing.T) {
	svc := NewSessionTokenService("secret")
	session := entities.NewSession(7, time.Hour)

	token, err := svc.GenerateToken(session)
	require.NoError(t, err)

	id, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, session.Id, id)
}

func TestSessionTokenService_RejectsOtherSecret(t *testing.T) {
	token, err := NewSessionTokenService("secret").GenerateToken(entities.NewSession(7, time.Hour))
	require.NoError(t, err)

	_, err = NewSessionTokenService("other").ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestSessionTokenService_RejectsExpired(t *testing.T) {
	svc := NewSessionTokenService("secret")
	session := entities.NewSession(7, time.Hour)
	session.CreatedAt = time.Now().Add(-2 * time.Hour)
	session.ExpiresAt = time.Now().Add(-time.Hour)

	token, err := svc.GenerateToken(session)
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestSessionTokenService_RejectsForeignTokens(t *testing.T) {
	svc := NewSessionTokenService("secret")

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, SessionClaims{
		SessionID: "00000000-0000-0000-0000-000000000000",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionTokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	wrongIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		SessionID: "00000000-0000-0000-0000-000000000000",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	badSid, err := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		SessionID: "not-a-uuid",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionTokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", noneToken, wrongIssuer, badSid} {
		_, err := svc.ParseToken(token)
		assert.ErrorIs(t, err, ErrInvalidSessionToken)
	}
}
