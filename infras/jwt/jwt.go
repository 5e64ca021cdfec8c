package jwt

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"todos/config"
	"todos/infras/otel"
	"todos/shared/constant"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
	ErrInvalidKey   = errors.New("invalid verification key")
)

// Algorithm is the only signing method accepted by the verifier.
const Algorithm = "RS256"

// Claims represents the JWT claims structure. The subject identifies the caller.
type Claims struct {
	jwt.RegisteredClaims
}

// JWT verifies bearer tokens issued by the identity provider.
type JWT interface {
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Service handles JWT operations
type Service struct {
	key    *rsa.PublicKey
	parser *jwt.Parser
	otel   otel.Otel
}

// New creates a verifier from the configured PEM material.
func New(cfg *config.Config, otel otel.Otel) (JWT, error) {
	key, err := ParsePublicKey(cfg.Auth.VerificationKey)
	if err != nil {
		return nil, err
	}

	return NewWithKey(key, cfg.Auth.Issuer, cfg.Auth.Audience, otel), nil
}

// NewWithKey creates a verifier for an already parsed key. Empty issuer or
// audience disables that check.
func NewWithKey(key *rsa.PublicKey, issuer, audience string, otel otel.Otel) *Service {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{Algorithm}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}

	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	return &Service{
		key:    key,
		parser: jwt.NewParser(opts...),
		otel:   otel,
	}
}

// ParsePublicKey accepts a PEM certificate, PKIX or PKCS1 public key. Escaped
// newlines, as commonly found in environment variables, are expanded.
func ParsePublicKey(material string) (*rsa.PublicKey, error) {
	pem := strings.ReplaceAll(strings.TrimSpace(material), `\n`, "\n")

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return key, nil
}

// ValidateToken validates and parses a JWT token
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (claims *Claims, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "jwt.ValidateToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	token, err := s.parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return s.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// NewToken signs an RS256 token for subject. It is used by the local token
// tool and by tests; production tokens come from the identity provider.
func NewToken(key *rsa.PrivateKey, subject, issuer string, issuedAt time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
