// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Claims are the payload fields the storefront reads out of a bearer credential.
// They are decoded without signature verification and only drive UI gating;
// every backend re-validates the credential it receives.
type Claims struct {
	Subject   string    // Stable user identifier (the customer's DNI).
	Role      Role      // Normalized, upper-case role.
	IssuedAt  time.Time // Zero when the credential carries no iat claim.
	ExpiresAt time.Time // Always set; decoding fails without an exp claim.
}

// IsExpired reports whether claims are absent or no longer valid at now.
// A credential expiring exactly at now is already expired.
func IsExpired(claims *Claims, now time.Time) bool {
	if claims == nil {
		return true
	}

	return !claims.ExpiresAt.After(now)
}

// TTL returns how long the claims stay valid after now, or zero once expired.
func (c *Claims) TTL(now time.Time) time.Duration {
	if IsExpired(c, now) {
		return 0
	}

	return c.ExpiresAt.Sub(now)
}
