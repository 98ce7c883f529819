package infrastructure

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"todo-service/internal/domain/entities"
)

const sessionTokenIssuer = "todo-service"

var ErrInvalidSessionToken = errors.New("invalid session token")

// SessionClaims ties a signed cookie to a server-side session record.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type SessionTokenService struct {
	secretKey []byte
}

func NewSessionTokenService(secretKey string) *SessionTokenService {
	return &SessionTokenService{
		secretKey: []byte(secretKey),
	}
}

func (j *SessionTokenService) GenerateToken(session *entities.Session) (string, error) {
	claims := SessionClaims{
		SessionID: session.Id.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionTokenIssuer,
			Subject:   fmt.Sprint(session.UserId),
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// ParseToken verifies signature and expiry and returns the session id.
func (j *SessionTokenService) ParseToken(tokenString string) (uuid.UUID, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionTokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}
	if !token.Valid {
		return uuid.Nil, ErrInvalidSessionToken
	}

	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}
	return sessionID, nil
}
