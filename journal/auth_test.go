package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	users := []User{
		{Username: "alice", Password: "pass1", Role: RoleUser},
		{Username: "Admin", Password: "secret", Role: RoleAdmin},
	}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{"exact match", "alice", "pass1", false},
		{"wrong password", "alice", "pass2", true},
		{"wrong username", "alicia", "pass1", true},
		{"username case matters", "Alice", "pass1", true},
		{"password case matters", "Admin", "Secret", true},
		{"admin match", "Admin", "secret", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := Login(tt.username, tt.password, users)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.username, user.Username)
			}
		})
	}
}

func TestSignUp(t *testing.T) {
	existing := []User{{Username: "alice", Password: "pass1", Role: RoleUser}}

	t.Run("taken username", func(t *testing.T) {
		_, err := SignUp("alice", "newpass", existing)
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("different case is a different username", func(t *testing.T) {
		user, err := SignUp("Alice", "pass1", existing)
		require.NoError(t, err)
		assert.Equal(t, RoleUser, user.Role)
	})

	t.Run("password length 3 rejected", func(t *testing.T) {
		_, err := SignUp("bob", "abc", existing)
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("password length 4 accepted", func(t *testing.T) {
		user, err := SignUp("bob", "abcd", existing)
		require.NoError(t, err)
		assert.Equal(t, "abcd", user.Password, "password is stored untransformed")
	})

	t.Run("admin role from username", func(t *testing.T) {
		for _, name := range []string{"admin", "Admin", "ADMIN"} {
			user, err := SignUp(name, "pass1", existing)
			require.NoError(t, err)
			assert.Equal(t, RoleAdmin, user.Role, name)
		}
	})
}
