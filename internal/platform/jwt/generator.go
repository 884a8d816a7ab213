package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"videotube_backend/internal/app/config"
)

// Generator issues and verifies the access/refresh token pair.
// Access and refresh tokens are signed with distinct secrets so a leaked
// refresh secret does not mint access tokens and vice versa.
type Generator struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewGenerator creates a Generator from the token configuration.
func NewGenerator(cfg config.TokenConfig) *Generator {
	return &Generator{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
	}
}

// GenerateAccessToken creates a signed short-lived token carrying the user ID.
func (g *Generator) GenerateAccessToken(userID uint) (string, error) {
	return sign(g.accessSecret, userID, g.accessTTL)
}

// GenerateRefreshToken creates a signed long-lived token carrying the user ID.
func (g *Generator) GenerateRefreshToken(userID uint) (string, error) {
	return sign(g.refreshSecret, userID, g.refreshTTL)
}

// VerifyAccessToken checks signature and expiry of an access token and
// returns the user ID it was issued for.
func (g *Generator) VerifyAccessToken(token string) (uint, error) {
	return verify(g.accessSecret, token)
}

// VerifyRefreshToken checks signature and expiry of a refresh token and
// returns the user ID it was issued for.
func (g *Generator) VerifyRefreshToken(token string) (uint, error) {
	return verify(g.refreshSecret, token)
}

// sign creates an HS256 token. The user ID is the only claim of interest;
// exp/iat bound its validity window.
func sign(secret []byte, userID uint, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// verify parses the token, enforcing the HMAC signing method, and extracts
// the "sub" claim.
func verify(secret []byte, tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("unexpected claims type")
	}
	sub, ok := claims["sub"].(float64) // JWT numbers decode as float64
	if !ok {
		return 0, fmt.Errorf("missing sub claim")
	}
	return uint(sub), nil
}
