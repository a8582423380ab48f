package processor

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer      = "reward-platform"
	tokenTypeRefresh = "refresh"
)

var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrExpiredToken    = errors.New("token expired")
)

// BaseClaims are the claims carried by access and refresh tokens
type BaseClaims struct {
	ExpirationTime *jwt.NumericDate `json:"exp"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	NotBefore      *jwt.NumericDate `json:"nbf,omitempty"`
	Issuer         string           `json:"iss"`
	Subject        string           `json:"sub"`
	Audience       jwt.ClaimStrings `json:"aud,omitempty"`
	ID             string           `json:"jti,omitempty"`
	Username       string           `json:"username,omitempty"`
	Role           string           `json:"role,omitempty"`
	Type           string           `json:"typ,omitempty"`
}

func (b *BaseClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	return b.ExpirationTime, nil
}

func (b *BaseClaims) GetIssuedAt() (*jwt.NumericDate, error) {
	return b.IssuedAt, nil
}

func (b *BaseClaims) GetNotBefore() (*jwt.NumericDate, error) {
	return b.NotBefore, nil
}

func (b *BaseClaims) GetIssuer() (string, error) {
	return b.Issuer, nil
}

func (b *BaseClaims) GetSubject() (string, error) {
	return b.Subject, nil
}

func (b *BaseClaims) GetAudience() (jwt.ClaimStrings, error) {
	return b.Audience, nil
}

func signToken(claims BaseClaims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func newClaims(subject string, issuedAt time.Time, ttl time.Duration) BaseClaims {
	return BaseClaims{
		ExpirationTime: jwt.NewNumericDate(issuedAt.Add(ttl)),
		IssuedAt:       jwt.NewNumericDate(issuedAt),
		Issuer:         tokenIssuer,
		Subject:        subject,
	}
}

// ValidateJWTToken verifies an HS256 token signed with secret and returns its claims
func ValidateJWTToken(tokenString, secret string) (BaseClaims, error) {
	var claims BaseClaims
	t, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return BaseClaims{}, ErrExpiredToken
		}
		return BaseClaims{}, fmt.Errorf("%w: %w", ErrInvalidJWTToken, err)
	}
	if !t.Valid || claims.Subject == "" {
		return BaseClaims{}, ErrInvalidJWTToken
	}
	return claims, nil
}

// ValidateAccessToken verifies an access token; refresh tokens are rejected
func ValidateAccessToken(tokenString, secret string) (BaseClaims, error) {
	claims, err := ValidateJWTToken(tokenString, secret)
	if err != nil {
		return BaseClaims{}, err
	}
	if claims.Type == tokenTypeRefresh {
		return BaseClaims{}, ErrInvalidJWTToken
	}
	return claims, nil
}

// tokenDigest is the form in which refresh tokens are stored
func tokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
