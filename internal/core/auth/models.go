package auth

import "github.com/golang-jwt/jwt/v5"

// Identity is the authenticated caller as asserted by the identity provider.
type Identity struct {
	Subject string `json:"subject"`
	Email   string `json:"email"`
}

// IdentityClaims are the claims carried by an identity-provider session token
type IdentityClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
