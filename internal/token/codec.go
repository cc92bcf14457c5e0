// Package token decodes claim payloads from compact JWT-style tokens.
// Decoding is purely informational: no signature verification happens
// here, the backend enforces trust on every request.
package token

import (
	"encoding/json"
	"strings"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload segment of an access token.
type Claims map[string]interface{}

// Decode splits a compact token on "." and decodes the payload segment
// (base64url, re-padded) as JSON. It returns nil for anything it cannot
// decode; malformed tokens are never an error at this layer.
func Decode(token string) Claims {
	segments := strings.Split(token, ".")
	if len(segments) < 2 || segments[1] == "" {
		return nil
	}

	payload, err := jwtlib.NewParser().DecodeSegment(segments[1])
	if err != nil {
		return nil
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil
	}
	return claims
}

// Role extracts the role claim ("rol", falling back to "role").
// Returns "" when the token is undecodable or the claim is absent.
func Role(token string) string {
	claims := Decode(token)
	if claims == nil {
		return ""
	}
	if rol, ok := claims["rol"].(string); ok {
		return rol
	}
	if role, ok := claims["role"].(string); ok {
		return role
	}
	return ""
}

// Subject extracts the "sub" claim. Non-string subjects are treated as
// absent.
func Subject(token string) string {
	claims := Decode(token)
	if claims == nil {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}
