package errors

var (
	// Domain errors — used in services/repository
	ErrEmailTaken = AlreadyExists("user with this email already exists")
	// Login failures for an unknown email and for a wrong password share one
	// message so responses cannot be used for account enumeration.
	ErrInvalidCredentials = InvalidArg("invalid email or password")
	ErrUserNotFound       = NotFound("user not found")
	ErrInvalidToken       = Unauthorized("invalid or expired token")
	ErrTokenRevoked       = Unauthorized("token has been revoked")
	ErrMissingToken       = Unauthorized("missing or invalid authorization header")
)
