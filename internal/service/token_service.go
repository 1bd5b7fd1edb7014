package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "recipe-service"

// TokenService issues and validates the signed tokens that identify a client.
type TokenService interface {
	// NewClient creates a client id and a token for it.
	NewClient() (clientID, token string, expiresAt time.Time, err error)
	// Issue signs a token for an existing client id.
	Issue(clientID string) (token string, expiresAt time.Time, err error)
	// Validate checks a token and returns the client id it carries.
	Validate(token string) (string, error)
}

// TokenServiceImpl implements TokenService with HS256 JWTs.
type TokenServiceImpl struct {
	secretKey []byte
	ttl       time.Duration
}

// NewTokenService creates a new token service.
func NewTokenService(secretKey string, ttl time.Duration) TokenService {
	return &TokenServiceImpl{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
}

// NewClient creates a client id and a token for it.
func (s *TokenServiceImpl) NewClient() (string, string, time.Time, error) {
	clientID := uuid.NewString()
	token, expiresAt, err := s.Issue(clientID)
	if err != nil {
		return "", "", time.Time{}, err
	}
	return clientID, token, expiresAt, nil
}

// Issue signs a token for clientID.
func (s *TokenServiceImpl) Issue(clientID string) (string, time.Time, error) {
	if clientID == "" {
		return "", time.Time{}, errors.New("client id is empty, cannot create token")
	}

	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   clientID,
		Issuer:    tokenIssuer,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Validate parses tokenString and returns its client id.
func (s *TokenServiceImpl) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
