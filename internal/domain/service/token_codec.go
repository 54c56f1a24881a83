package service

import (
	"time"

	"storefront/internal/domain/entity"
)

// TokenCodec decodes the claims of a bearer credential without contacting a server.
// Implementations must never panic and must not verify signatures.
type TokenCodec interface {
	// Decode returns the claims carried by raw, or an error for anything malformed.
	Decode(raw string) (*entity.Claims, error)

	// Valid decodes raw and reports whether it is still valid at now.
	Valid(raw string, now time.Time) (*entity.Claims, bool)
}
