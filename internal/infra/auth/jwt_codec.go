// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ErrMalformedToken is returned for anything that is not a decodable JWT.
var ErrMalformedToken = errors.New("malformed token")

// ErrMissingClaims is returned when the payload lacks a subject or an expiry.
var ErrMissingClaims = errors.New("token is missing required claims")

// jwtCodec is a concrete implementation of the TokenCodec interface using the JWT standard.
// Signatures are never checked: the storefront only reads claims for UI gating.
type jwtCodec struct {
	parser *jwt.Parser
}

// NewJWTCodec is the constructor for jwtCodec.
func NewJWTCodec() service.TokenCodec {
	return &jwtCodec{
		parser: jwt.NewParser(),
	}
}

// Decode extracts sub, role, iat and exp from raw.
func (c *jwtCodec) Decode(raw string) (claims *entity.Claims, err error) {
	// The parser is not expected to panic, but a decode must always fail closed.
	defer func() {
		if r := recover(); r != nil {
			claims, err = nil, errors.Wrapf(ErrMalformedToken, "panic while decoding: %v", r)
		}
	}()

	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "Bearer "))
	if raw == "" {
		return nil, errors.Wrap(ErrMalformedToken, "empty token")
	}

	mapClaims := jwt.MapClaims{}
	if _, _, err := c.parser.ParseUnverified(raw, mapClaims); err != nil {
		return nil, errors.Wrap(ErrMalformedToken, err.Error())
	}

	subject, err := subjectOf(mapClaims)
	if err != nil {
		return nil, err
	}

	exp, err := mapClaims.GetExpirationTime()
	if err != nil {
		return nil, errors.Wrap(ErrMalformedToken, err.Error())
	}
	if exp == nil {
		return nil, errors.Wrap(ErrMissingClaims, "exp")
	}

	iat, err := mapClaims.GetIssuedAt()
	if err != nil {
		return nil, errors.Wrap(ErrMalformedToken, err.Error())
	}

	role, _ := mapClaims["role"].(string)

	claims = &entity.Claims{
		Subject:   subject,
		Role:      entity.NormalizeRole(role),
		ExpiresAt: exp.Time,
	}
	if iat != nil {
		claims.IssuedAt = iat.Time
	}

	return claims, nil
}

// Valid decodes raw and reports whether it is still valid at now.
func (c *jwtCodec) Valid(raw string, now time.Time) (*entity.Claims, bool) {
	claims, err := c.Decode(raw)
	if err != nil {
		return nil, false
	}

	return claims, !entity.IsExpired(claims, now)
}

// subjectOf accepts both string and numeric sub claims; some backends emit the DNI as a number.
func subjectOf(claims jwt.MapClaims) (string, error) {
	switch sub := claims["sub"].(type) {
	case string:
		if strings.TrimSpace(sub) == "" {
			return "", errors.Wrap(ErrMissingClaims, "sub")
		}

		return strings.TrimSpace(sub), nil
	case float64:
		return strconv.FormatFloat(sub, 'f', -1, 64), nil
	case nil:
		return "", errors.Wrap(ErrMissingClaims, "sub")
	default:
		return "", errors.Wrapf(ErrMalformedToken, "unexpected sub type %T", sub)
	}
}
