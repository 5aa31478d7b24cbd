// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/ballotbox/apperr"
)

// secretAlphabet is the symbol set for generated voter secrets. 83
// symbols, comfortably above the 70-symbol floor the credential policy
// requires.
const secretAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*()-_=+[]{}<>?"

// SecretLength is the length of generated voter secrets.
const SecretLength = 16

const bcryptCost = 12

// GenerateSecret creates a random credential from the secret alphabet.
// The caller discloses it to the administrator exactly once; only the
// bcrypt hash is ever stored.
func GenerateSecret() (string, error) {
	alphabetLen := big.NewInt(int64(len(secretAlphabet)))
	secret := make([]byte, SecretLength)
	for i := range secret {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate secret: %w", err)
		}
		secret[i] = secretAlphabet[n.Int64()]
	}
	return string(secret), nil
}

// HashSecret returns the bcrypt hash of a plaintext secret.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hash), nil
}

// VerifySecret compares a stored hash against a login attempt. Returns
// apperr.ErrInvalidCredentials on mismatch so callers never branch on
// bcrypt internals.
func VerifySecret(hash, secret string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)); err != nil {
		return apperr.ErrInvalidCredentials
	}
	return nil
}
