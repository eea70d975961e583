// Package token decodes LeadNest session tokens on the client side.
//
// The backend issues JWT-shaped tokens. The client never verifies the
// signature: trust is established at the point a token is received
// from a successful login or register call, not re-derived from the
// token itself. Decoded claims are display convenience only and are
// never used for authorization decisions; the server re-checks every
// request.
package token

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the client-side projection of a session token's claims.
// It has no lifecycle of its own: it exists exactly while a valid
// token exists and is recomputed whenever the token changes.
type Identity struct {
	// Subject is the authenticated principal, usually an email address.
	Subject string

	// UserID is the numeric user id claim, 0 when absent.
	UserID int64

	// BusinessID is the tenant id claim, 0 when absent.
	BusinessID int64
}

// sessionClaims mirrors the payload the LeadNest backend puts in its
// session tokens.
type sessionClaims struct {
	jwt.RegisteredClaims

	Email      string `json:"email,omitempty"`
	UserID     int64  `json:"user_id,omitempty"`
	BusinessID int64  `json:"business_id,omitempty"`
}

// Decode extracts the Identity from a session token without verifying
// the signature. It returns a TokenError on any malformed input; it
// never panics.
//
// The subject comes from the "sub" claim, falling back to "email".
// A token with neither is rejected.
func Decode(raw string) (*Identity, error) {
	claims, err := parseClaims(raw)
	if err != nil {
		return nil, err
	}

	subject := claims.Subject
	if subject == "" {
		subject = claims.Email
	}
	if subject == "" {
		return nil, NewError(ErrClaimMissing, "token has neither sub nor email claim")
	}

	return &Identity{
		Subject:    subject,
		UserID:     claims.UserID,
		BusinessID: claims.BusinessID,
	}, nil
}

// IsLive reports whether the token is currently valid for use.
func IsLive(raw string) bool {
	return LiveAt(raw, time.Now())
}

// LiveAt reports whether the token is valid at the given instant.
//
// A token that fails to decode is not live. A token without an "exp"
// claim is not live either: expiry is mandatory, missing means dead
// on arrival (fail closed).
func LiveAt(raw string, at time.Time) bool {
	claims, err := parseClaims(raw)
	if err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return at.Before(claims.ExpiresAt.Time)
}

// Expiry returns the token's expiry time. The second return value is
// false when the token cannot be decoded or carries no exp claim.
func Expiry(raw string) (time.Time, bool) {
	claims, err := parseClaims(raw)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func parseClaims(raw string) (*sessionClaims, error) {
	segments := strings.Split(raw, ".")
	if len(segments) < 2 {
		return nil, NewError(ErrTokenMalformed, "token must have at least header and payload segments")
	}
	// Some backends omit the signature segment entirely. The parser
	// wants three segments, so pad with an empty one; it is unverified
	// either way.
	if len(segments) == 2 {
		raw += "."
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(raw, &sessionClaims{})
	if err != nil {
		return nil, WrapError(ErrTokenMalformed, "failed to parse token", err)
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok {
		return nil, NewError(ErrTokenInvalid, "unexpected claims type")
	}
	return claims, nil
}
