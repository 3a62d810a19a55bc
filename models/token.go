package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token is the bearer credential handed out by register and login.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form.
	SignedString string `json:"-"`

	// UserID is the "sub" claim.
	UserID string `json:"-"`
}

// AuthorizationHeader returns the value sent in the Authorization header.
func (t Token) AuthorizationHeader() string {
	return "Bearer " + t.SignedString
}

func (t Token) String() string {
	return t.SignedString
}
