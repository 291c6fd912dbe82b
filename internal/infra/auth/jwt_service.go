// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"markethub/config"
	"markethub/internal/domain/service"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// sessionClaims embeds the registered claims plus the account identity
// carried by both token kinds.
type sessionClaims struct {
	jwt.RegisteredClaims

	Email     string `json:"email"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	TokenType string `json:"type"`
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL := defaultAccessTTL
	refreshTTL := defaultRefreshTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTTL > 0 {
			accessTTL = cfg.Auth.AccessTTL
		}
		if cfg.Auth.RefreshTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTTL
		}
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// GeneratePair creates an access token and a refresh token for a user.
func (s *jwtService) GeneratePair(claims service.TokenClaims) (string, string, error) {
	accessToken, err := s.generateToken(claims, s.accessTTL, s.accessSecret, tokenTypeAccess)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign access token")
	}

	refreshToken, err := s.generateToken(claims, s.refreshTTL, s.refreshSecret, tokenTypeRefresh)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign refresh token")
	}

	return accessToken, refreshToken, nil
}

// ValidateAccess parses and verifies an access token.
func (s *jwtService) ValidateAccess(tokenString string) (*service.TokenClaims, error) {
	return s.validateToken(tokenString, s.accessSecret, tokenTypeAccess)
}

// ValidateRefresh parses and verifies a refresh token.
func (s *jwtService) ValidateRefresh(tokenString string) (*service.TokenClaims, error) {
	return s.validateToken(tokenString, s.refreshSecret, tokenTypeRefresh)
}

// HashToken returns the SHA-256 hex digest used to store refresh tokens.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// RefreshTTL returns the configured refresh token lifetime.
func (s *jwtService) RefreshTTL() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) generateToken(
	claims service.TokenClaims, ttl time.Duration, secret, tokenType string,
) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:     claims.Email,
		Role:      claims.Role,
		Name:      claims.Name,
		TokenType: tokenType,
	})

	return token.SignedString([]byte(secret))
}

func (s *jwtService) validateToken(tokenString, secret, wantType string) (*service.TokenClaims, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.TokenType != wantType {
		return nil, errors.Errorf("unexpected token type: %s", claims.TokenType)
	}

	return &service.TokenClaims{
		Email: claims.Email,
		Role:  claims.Role,
		Name:  claims.Name,
	}, nil
}
