// Package auth implements the minimal credential check behind the
// login endpoint. There is no user table: exactly one admin identity is
// configured through the environment, matching the single-tenant setup
// of the browser client.
package auth

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AdminVerifier checks login attempts against the configured admin
// credentials. The password may be configured either as a bcrypt hash
// (recognized by its prefix) or as plaintext for local setups; both are
// compared in constant time.
type AdminVerifier struct {
	email    string
	password string
	name     string
}

// NewAdminVerifier creates a verifier for the configured admin.
func NewAdminVerifier(email, password, name string) *AdminVerifier {
	return &AdminVerifier{email: email, password: password, name: name}
}

// Name returns the admin display name.
func (a *AdminVerifier) Name() string { return a.name }

// Verify checks the submitted credentials. Returns
// ErrInvalidCredentials on any mismatch without revealing which field
// was wrong.
func (a *AdminVerifier) Verify(email, password string) error {
	emailOK := subtle.ConstantTimeCompare([]byte(strings.ToLower(email)), []byte(strings.ToLower(a.email))) == 1

	var passwordOK bool
	if strings.HasPrefix(a.password, "$2a$") || strings.HasPrefix(a.password, "$2b$") || strings.HasPrefix(a.password, "$2y$") {
		passwordOK = bcrypt.CompareHashAndPassword([]byte(a.password), []byte(password)) == nil
	} else {
		passwordOK = subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	}

	if !emailOK || !passwordOK {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPassword returns the bcrypt hash of a password, for generating
// the ADMIN_PASSWORD value out of band.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
