package ports

import "time"

// TokenClaims is the verified content of a bearer token.
type TokenClaims struct {
	SubjectID string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies signed, time-limited bearer tokens.
// Verification is stateless: any process holding the signing secret can
// validate any token. Verify returns one of the domain token errors
// (ErrTokenMalformed, ErrTokenSignatureInvalid, ErrTokenExpired) on
// failure.
type TokenService interface {
	Issue(subjectID, role string) (string, error)
	Verify(token string) (*TokenClaims, error)
}
