package journal

import (
	"strings"

	"dailythoughts/constants"
)

// Login returns the matching user. Both username and password are
// compared case-sensitively; any mismatch is ErrInvalidCredentials.
func Login(username, password string, users []User) (User, error) {
	for _, u := range users {
		if u.Username == username && u.Password == password {
			return u, nil
		}
	}
	return User{}, ErrInvalidCredentials
}

// SignUp validates and builds a new user. The "admin" username (any
// casing) gets the admin role, everyone else is a regular user.
func SignUp(username, password string, users []User) (User, error) {
	for _, u := range users {
		if u.Username == username {
			return User{}, ErrUsernameTaken
		}
	}
	if len(password) < constants.MIN_PASSWORD_LENGTH {
		return User{}, ErrPasswordTooShort
	}

	role := RoleUser
	if strings.EqualFold(username, "admin") {
		role = RoleAdmin
	}
	return User{Username: username, Password: password, Role: role}, nil
}
