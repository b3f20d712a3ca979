package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/projectdeck/project-management-api/internal/models"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed payload, or expiry. Callers cannot tell expired tokens
// apart from forged ones.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the subject user id plus the email, so authenticated
// requests that only need display identity skip a store lookup.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID returns the subject as an EntityID.
func (c *Claims) UserID() models.EntityID {
	return models.EntityID(c.Subject)
}

// Pair is an access/refresh token pair as returned to the client.
type Pair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Service issues and verifies signed access and refresh tokens. Access
// and refresh tokens use distinct secrets so compromise of one class
// cannot forge the other.
type Service struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewService creates a token Service with the given secrets and lifetimes.
func NewService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// IssueAccessToken signs a short-lived access token.
func (s *Service) IssueAccessToken(userID models.EntityID, email string) (string, error) {
	return s.issue(userID, email, s.accessSecret, s.accessTTL)
}

// IssueRefreshToken signs a long-lived refresh token.
func (s *Service) IssueRefreshToken(userID models.EntityID, email string) (string, error) {
	return s.issue(userID, email, s.refreshSecret, s.refreshTTL)
}

// IssuePair issues an access and refresh token for the same identity.
func (s *Service) IssuePair(userID models.EntityID, email string) (*Pair, error) {
	accessToken, err := s.IssueAccessToken(userID, email)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.IssueRefreshToken(userID, email)
	if err != nil {
		return nil, err
	}
	return &Pair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// VerifyAccessToken verifies a token against the access secret.
func (s *Service) VerifyAccessToken(tokenString string) (*Claims, error) {
	return s.verify(tokenString, s.accessSecret)
}

// VerifyRefreshToken verifies a token against the refresh secret.
func (s *Service) VerifyRefreshToken(tokenString string) (*Claims, error) {
	return s.verify(tokenString, s.refreshSecret)
}

func (s *Service) issue(userID models.EntityID, email string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *Service) verify(tokenString string, secret []byte) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
