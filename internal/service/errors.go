package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a required field (email or
	// password) is missing from a signup or login request.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the single failure value for login. Both an
	// unknown email and a wrong password collapse into it before leaving the
	// service so that callers cannot distinguish the two cases by response
	// shape (anti-enumeration). This unification is deliberate source
	// behavior; do not split it into separate errors.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the single failure value for token
	// verification. Bad signature, malformed token, wrong issuer, and expiry
	// all collapse into it.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
