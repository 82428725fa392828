package domain

import "errors"

// Token verification failures. The HTTP boundary normalizes all three to
// 401 so callers cannot distinguish which check failed.
var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenSignatureInvalid = errors.New("token signature invalid")
var ErrTokenExpired = errors.New("token expired")
