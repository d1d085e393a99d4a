// Package auth issues and verifies the HS256 JSON web tokens that guard the
// API, and provides the chi middleware that enforces them.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

type Claims struct {
	TokenType TokenType `json:"token_type"`
	Staff     bool      `json:"staff"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

type Pair struct {
	Access  string
	Refresh string
}

type Issuer struct {
	secret     []byte
	audience   string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

type IssuerOption func(*Issuer)

func WithClock(now func() time.Time) IssuerOption {
	return func(i *Issuer) { i.now = now }
}

func NewIssuer(secret, audience string, accessTTL, refreshTTL time.Duration, opts ...IssuerOption) *Issuer {
	i := &Issuer{
		secret:     []byte(secret),
		audience:   audience,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Pair issues a fresh access and refresh token for a user.
func (i *Issuer) Pair(userID uuid.UUID, staff bool) (Pair, error) {
	access, err := i.issue(TokenAccess, userID.String(), staff)
	if err != nil {
		return Pair{}, err
	}

	refresh, err := i.issue(TokenRefresh, userID.String(), staff)
	if err != nil {
		return Pair{}, err
	}

	return Pair{Access: access, Refresh: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The staff
// flag comes from current, so a demoted or deactivated account does not keep
// the privileges it had when the refresh token was issued.
func (i *Issuer) Refresh(refreshToken string, current func(userID uuid.UUID) (staff bool, err error)) (string, error) {
	claims, err := i.Parse(refreshToken, TokenRefresh)
	if err != nil {
		return "", err
	}

	userID, err := claims.UserID()
	if err != nil {
		return "", fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	staff, err := current(userID)
	if err != nil {
		return "", fmt.Errorf("resolving refresh subject: %w", err)
	}

	return i.issue(TokenAccess, claims.Subject, staff)
}

func (i *Issuer) issue(typ TokenType, subject string, staff bool) (string, error) {
	now := i.now()

	ttl := i.accessTTL
	if typ == TokenRefresh {
		ttl = i.refreshTTL
	}

	claims := Claims{
		TokenType: typ,
		Staff:     staff,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Audience:  jwt.ClaimStrings{i.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing %s token: %w", typ, err)
	}

	return signed, nil
}

// Parse verifies signature, audience and expiry, and that the token is of the
// wanted type. An empty want accepts either type.
func (i *Issuer) Parse(raw string, want TokenType) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(i.audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if want != "" && claims.TokenType != want {
		return nil, fmt.Errorf("%w: expected %s token, got %q", ErrInvalidToken, want, claims.TokenType)
	}

	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	return claims, nil
}
