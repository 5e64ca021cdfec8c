package jwt

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrMissingCredential = errors.New("authorization header is required")
	ErrInvalidScheme     = errors.New("authorization header must use the Bearer scheme")
)

const bearerScheme = "Bearer"

// Outcome is the terminal state of identity extraction.
type Outcome int

const (
	Denied Outcome = iota
	Authenticated
)

// Identity is the verified caller of a single request.
type Identity struct {
	UserID string
}

// Result carries either an Identity or the reason extraction was denied.
type Result struct {
	Outcome  Outcome
	Identity Identity
	Reason   error
}

func (r Result) Authenticated() bool {
	return r.Outcome == Authenticated
}

func deny(reason error) Result {
	return Result{Outcome: Denied, Reason: reason}
}

// Extractor turns a raw Authorization credential into a Result.
type Extractor struct {
	verifier JWT
}

func NewExtractor(verifier JWT) *Extractor {
	return &Extractor{verifier: verifier}
}

// Extract never returns an error: every failure is a Denied result.
func (e *Extractor) Extract(ctx context.Context, authHeader string) Result {
	token, err := ExtractTokenFromHeader(authHeader)
	if err != nil {
		return deny(err)
	}

	claims, err := e.verifier.ValidateToken(ctx, token)
	if err != nil {
		return deny(err)
	}

	return Result{
		Outcome:  Authenticated,
		Identity: Identity{UserID: claims.Subject},
	}
}

// ExtractTokenFromHeader extracts JWT token from Authorization header. The
// scheme is matched case-insensitively.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", ErrMissingCredential
	}

	scheme, token, _ := strings.Cut(authHeader, " ")
	if !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidScheme
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingCredential
	}

	return token, nil
}
