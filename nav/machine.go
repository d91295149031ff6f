// Package nav holds the page-level state machine: which view is
// active and the post carried by the viewing page. Handlers drive
// transitions; GET / renders whatever page the machine is on.
package nav

import "dailythoughts/journal"

type Page int

const (
	PageLogin Page = iota
	PageSignUp
	PageHome
	PageNew
	PageView
	PageAdmin
	PageConfirm
)

func (p Page) String() string {
	switch p {
	case PageLogin:
		return "login"
	case PageSignUp:
		return "signup"
	case PageHome:
		return "home"
	case PageNew:
		return "new"
	case PageView:
		return "view"
	case PageAdmin:
		return "admin"
	case PageConfirm:
		return "confirm"
	}
	return "unknown"
}

type Machine struct {
	page     Page
	selected *journal.Post
}

// NewMachine starts on the home page when a persisted session
// survived the restart, otherwise on the login page.
func NewMachine(loggedIn bool) *Machine {
	if loggedIn {
		return &Machine{page: PageHome}
	}
	return &Machine{page: PageLogin}
}

func (m *Machine) Page() Page { return m.page }

// Selected returns the post carried by the viewing page, nil elsewhere.
func (m *Machine) Selected() *journal.Post { return m.selected }

// ToSignUp and ToLogin toggle between the two logged-out pages. They
// are no-ops from any authenticated page.
func (m *Machine) ToSignUp() {
	if m.page == PageLogin {
		m.page = PageSignUp
	}
}

func (m *Machine) ToLogin() {
	if m.page == PageSignUp {
		m.page = PageLogin
	}
}

// Logout drops to the login page from anywhere and clears any carried
// post.
func (m *Machine) Logout() {
	m.page = PageLogin
	m.selected = nil
}

func (m *Machine) ToHome() {
	m.page = PageHome
	m.selected = nil
}

func (m *Machine) ToNew() {
	m.page = PageNew
	m.selected = nil
}

func (m *Machine) ToView(p journal.Post) {
	m.page = PageView
	m.selected = &p
}

// ToAdmin re-checks the role on the transition itself rather than
// trusting that the link was only rendered for admins.
func (m *Machine) ToAdmin(role journal.Role) error {
	if role != journal.RoleAdmin {
		return journal.ErrNotAdmin
	}
	m.page = PageAdmin
	m.selected = nil
	return nil
}

func (m *Machine) ToConfirm() {
	m.page = PageConfirm
}
