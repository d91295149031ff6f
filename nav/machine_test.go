package nav

import (
	"testing"

	"dailythoughts/journal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialState(t *testing.T) {
	assert.Equal(t, PageLogin, NewMachine(false).Page())
	assert.Equal(t, PageHome, NewMachine(true).Page(), "a persisted session resumes on home")
}

func TestLoggedOutToggle(t *testing.T) {
	m := NewMachine(false)

	m.ToSignUp()
	assert.Equal(t, PageSignUp, m.Page())
	m.ToLogin()
	assert.Equal(t, PageLogin, m.Page())

	// toggles only apply while logged out
	m.ToHome()
	m.ToSignUp()
	assert.Equal(t, PageHome, m.Page())
}

func TestViewCarriesPost(t *testing.T) {
	m := NewMachine(true)
	post := journal.Post{ID: "p1", Title: "t"}

	m.ToView(post)
	assert.Equal(t, PageView, m.Page())
	require.NotNil(t, m.Selected())
	assert.Equal(t, "p1", m.Selected().ID)

	m.ToHome()
	assert.Equal(t, PageHome, m.Page())
	assert.Nil(t, m.Selected(), "leaving the view clears the carried post")
}

func TestLogoutFromAnywhere(t *testing.T) {
	m := NewMachine(true)
	m.ToView(journal.Post{ID: "p1"})

	m.Logout()
	assert.Equal(t, PageLogin, m.Page())
	assert.Nil(t, m.Selected())
}

func TestAdminGuard(t *testing.T) {
	m := NewMachine(true)

	err := m.ToAdmin(journal.RoleUser)
	assert.ErrorIs(t, err, journal.ErrNotAdmin)
	assert.Equal(t, PageHome, m.Page(), "denied transition leaves the state unchanged")

	require.NoError(t, m.ToAdmin(journal.RoleAdmin))
	assert.Equal(t, PageAdmin, m.Page())
}

func TestConfirmPage(t *testing.T) {
	m := NewMachine(true)
	m.ToAdmin(journal.RoleAdmin)
	m.ToConfirm()
	assert.Equal(t, PageConfirm, m.Page())
}
