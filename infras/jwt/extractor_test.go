package jwt_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todos/infras/jwt"
)

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lower case scheme", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "upper case scheme", header: "BEARER abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty", header: "", wantErr: jwt.ErrMissingCredential},
		{name: "whitespace only", header: "   ", wantErr: jwt.ErrMissingCredential},
		{name: "scheme without token", header: "Bearer ", wantErr: jwt.ErrMissingCredential},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: jwt.ErrInvalidScheme},
		{name: "raw token", header: "abc.def.ghi", wantErr: jwt.ErrInvalidScheme},
		{name: "prefix lookalike", header: "Bearerabc.def.ghi", wantErr: jwt.ErrInvalidScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jwt.ExtractTokenFromHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractor_Extract(t *testing.T) {
	trusted, rogue := keys(t)
	extractor := jwt.NewExtractor(newVerifier(t, ""))

	valid, err := jwt.NewToken(trusted, "auth0|user-a", "", time.Now(), time.Hour)
	require.NoError(t, err)

	forged, err := jwt.NewToken(rogue, "auth0|user-a", "", time.Now(), time.Hour)
	require.NoError(t, err)

	expired, err := jwt.NewToken(trusted, "auth0|user-a", "", time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantOK     bool
		wantUserID string
		wantReason error
	}{
		{name: "authenticated", header: "Bearer " + valid, wantOK: true, wantUserID: "auth0|user-a"},
		{name: "case insensitive scheme", header: "bearer " + valid, wantOK: true, wantUserID: "auth0|user-a"},
		{name: "no token", header: "", wantReason: jwt.ErrMissingCredential},
		{name: "wrong scheme", header: "Token " + valid, wantReason: jwt.ErrInvalidScheme},
		{name: "forged", header: "Bearer " + forged, wantReason: jwt.ErrInvalidToken},
		{name: "expired", header: "Bearer " + expired, wantReason: jwt.ErrExpiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractor.Extract(context.Background(), tt.header)

			assert.Equal(t, tt.wantOK, result.Authenticated())

			if tt.wantOK {
				assert.Equal(t, jwt.Authenticated, result.Outcome)
				assert.Equal(t, tt.wantUserID, result.Identity.UserID)
				assert.NoError(t, result.Reason)

				return
			}

			assert.Equal(t, jwt.Denied, result.Outcome)
			assert.Empty(t, result.Identity.UserID)
			assert.ErrorIs(t, result.Reason, tt.wantReason)
		})
	}
}
