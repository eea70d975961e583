package token

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := tok.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)
	return raw
}

func rawSegments(parts ...string) string {
	encoded := make([]string, len(parts))
	for i, p := range parts {
		encoded[i] = base64.RawURLEncoding.EncodeToString([]byte(p))
	}
	out := encoded[0]
	for _, e := range encoded[1:] {
		out += "." + e
	}
	return out
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		claims  jwt.MapClaims
		want    Identity
		wantErr string
	}{
		{
			name:   "subject claim",
			claims: jwt.MapClaims{"sub": "a@b.com", "exp": float64(9999999999)},
			want:   Identity{Subject: "a@b.com"},
		},
		{
			name:   "email fallback",
			claims: jwt.MapClaims{"email": "a@b.com"},
			want:   Identity{Subject: "a@b.com"},
		},
		{
			name:   "sub wins over email",
			claims: jwt.MapClaims{"sub": "primary@b.com", "email": "other@b.com"},
			want:   Identity{Subject: "primary@b.com"},
		},
		{
			name:   "optional ids",
			claims: jwt.MapClaims{"sub": "a@b.com", "user_id": float64(42), "business_id": float64(7)},
			want:   Identity{Subject: "a@b.com", UserID: 42, BusinessID: 7},
		},
		{
			name:    "no subject at all",
			claims:  jwt.MapClaims{"exp": float64(9999999999)},
			wantErr: ErrClaimMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := signedToken(t, tt.claims)
			id, err := Decode(raw)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, IsTokenError(err, tt.wantErr), "error = %v", err)
				assert.Nil(t, id)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, *id)
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"single segment", "notatoken"},
		{"garbage payload", rawSegments(`{"alg":"HS256","typ":"JWT"}`, "not json")},
		{"garbage base64", "a.!!!.c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Decode(tt.raw)
			require.Error(t, err)
			assert.Nil(t, id)
			assert.True(t, IsTokenError(err, ErrTokenMalformed) || IsTokenError(err, ErrTokenInvalid),
				"unexpected error: %v", err)
		})
	}
}

// Some issuers hand out header.payload tokens with no signature
// segment at all; the decoder accepts those too.
func TestDecodeTwoSegments(t *testing.T) {
	raw := rawSegments(`{"alg":"none","typ":"JWT"}`, `{"sub":"a@b.com"}`)
	id, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", id.Subject)
}

// Decoding is a pure projection: the same token always yields the
// same identity.
func TestDecodeIdempotent(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{"sub": "a@b.com", "user_id": float64(5), "exp": float64(9999999999)})

	first, err := Decode(raw)
	require.NoError(t, err)
	second, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLiveAt(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{"sub": "a@b.com", "exp": float64(1000)})

	assert.True(t, LiveAt(raw, time.UnixMilli(999000)), "token should be live just before exp")
	assert.False(t, LiveAt(raw, time.UnixMilli(1000000)), "token is dead exactly at exp")
	assert.False(t, LiveAt(raw, time.UnixMilli(1000001)), "token is dead after exp")
}

func TestLiveAtMissingExp(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{"sub": "a@b.com"})
	assert.False(t, LiveAt(raw, time.UnixMilli(0)), "missing exp is dead on arrival")
}

func TestLiveAtUndecodable(t *testing.T) {
	assert.False(t, LiveAt("garbage", time.Now()))
	assert.False(t, LiveAt("", time.Now()))
}

func TestExpiry(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{"sub": "a@b.com", "exp": float64(1234567890)})

	exp, ok := Expiry(raw)
	require.True(t, ok)
	assert.Equal(t, time.Unix(1234567890, 0).UTC(), exp.UTC())

	_, ok = Expiry(signedToken(t, jwt.MapClaims{"sub": "a@b.com"}))
	assert.False(t, ok)

	_, ok = Expiry("garbage")
	assert.False(t, ok)
}

func TestTokenErrorUnwrap(t *testing.T) {
	cause := assert.AnError
	err := WrapError(ErrTokenMalformed, "failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), ErrTokenMalformed)
}
