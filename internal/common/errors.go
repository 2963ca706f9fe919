package common

import "errors"

var (

	// repository specific errors
	ErrorNotFound = errors.New("not found")

	// service specific errors
	ErrorInternal = errors.New("internal error")

	// auth-specific errors
	ErrorUserExists         = errors.New("user already exists")
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// token verification outcomes; handlers collapse all three to 401,
	// logging keeps them apart
	ErrorTokenExpired          = errors.New("token expired")
	ErrorTokenSignatureInvalid = errors.New("token signature invalid")
	ErrorTokenMalformed        = errors.New("token malformed")

	// sharing-specific errors
	ErrorPermissionDenied = errors.New("permission denied")
	ErrorUserNotFound     = errors.New("user not found")
	ErrorAlreadyShared    = errors.New("already shared")
)
