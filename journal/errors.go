package journal

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrPasswordTooShort   = errors.New("password must be at least 4 characters long")
	ErrMissingField       = errors.New("title and content are required")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrNotAdmin           = errors.New("admin role required")
	ErrUnknownPost        = errors.New("unknown post")
	ErrUnknownUser        = errors.New("unknown user")
	ErrProtectedUser      = errors.New("admin accounts cannot be deleted")
	ErrNoPendingDelete    = errors.New("no pending deletion")
)
