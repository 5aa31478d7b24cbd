// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential generation and verification.

# Voter Secrets

Secrets are generated from an 83-symbol alphabet at length 16:

	secret, err := auth.GenerateSecret()

The plaintext is returned to the administrator exactly once at user
creation; the database stores only a bcrypt hash.

# Hashing

bcrypt with cost 12:

	hash, err := auth.HashSecret(secret)
	err = auth.VerifySecret(hash, attempt)

VerifySecret returns apperr.ErrInvalidCredentials on mismatch, never a
bcrypt-specific error, so transport code maps it straight to 401.
*/
package auth
