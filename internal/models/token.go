package models

import "time"

// BearerClaims carries the subset of token claims the gateway reads.
// Tokens are issued and verified by the upstream auth service; the
// gateway only parses them unverified for logging and view keying.
type BearerClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token's expiry has passed. Tokens without
// an expiry claim never read as expired here.
func (c BearerClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
