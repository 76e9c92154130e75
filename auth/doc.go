// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session token generation and password hashing.

# Session Tokens

GenerateSessionToken returns a 192-bit random token, URL-safe base64 without
padding. Tokens are opaque bearer credentials sent in the X-Session-Token
header and stored server-side with an expiry (SessionTTL, 30 days).

# Passwords

HashPassword / CheckPassword wrap bcrypt at the default cost. CheckPassword
collapses any mismatch to ErrInvalidCredentials so login responses cannot
distinguish a wrong password from an unknown email.
*/
package auth
