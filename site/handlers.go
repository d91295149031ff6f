package site

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"sync"

	"dailythoughts/constants"
	"dailythoughts/journal"
	"dailythoughts/nav"
	"dailythoughts/quote"
	"dailythoughts/templates"

	"github.com/charmbracelet/log"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
	g "github.com/maragudk/gomponents"
)

// Site maps HTTP requests onto controller operations and renders the
// page the navigation machine lands on. All state mutations happen
// under mu, mirroring the single-event-loop model of the app; the
// only work done outside the lock is the AI collaborator calls, so a
// slow generation never blocks other requests.
type Site struct {
	mu      sync.Mutex
	app     *journal.App
	machine *nav.Machine
	quotes  *quote.Cache

	// where to land after the confirm/cancel step
	returnToAdmin bool
}

func New(app *journal.App, machine *nav.Machine, quotes *quote.Cache) *Site {
	return &Site{app: app, machine: machine, quotes: quotes}
}

func render(w http.ResponseWriter, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := node.Render(w); err != nil {
		log.Error("Failed to render page", "err", err)
	}
}

// Index renders whatever page the machine is currently on.
func (s *Site) Index(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()

	// no session means only the login and sign-up views exist
	if !s.app.LoggedIn() && s.machine.Page() != nav.PageSignUp {
		s.machine.Logout()
	}

	page := s.machine.Page()
	user := s.app.CurrentUser()

	switch page {
	case nav.PageLogin:
		s.mu.Unlock()
		render(w, templates.LoginPage(""))

	case nav.PageSignUp:
		s.mu.Unlock()
		render(w, templates.SignUpPage(""))

	case nav.PageNew:
		s.mu.Unlock()
		render(w, templates.NewPostPage(user, ""))

	case nav.PageView:
		selected := s.machine.Selected()
		if selected == nil {
			s.machine.ToHome()
			s.mu.Unlock()
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		props := templates.PostViewProps{
			CurrentUser: user,
			Post:        *selected,
			Reflection:  s.app.Reflection(),
		}
		s.mu.Unlock()
		render(w, templates.PostViewPage(props))

	case nav.PageAdmin:
		props := templates.AdminProps{
			CurrentUser: user,
			Users:       s.app.Users(),
			Posts:       s.app.Posts().All(),
		}
		s.mu.Unlock()
		render(w, templates.AdminPage(props))

	case nav.PageConfirm:
		intent := s.app.PendingDelete()
		if intent == nil {
			s.machine.ToHome()
			s.mu.Unlock()
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		s.mu.Unlock()
		render(w, templates.ConfirmPage(templates.ConfirmProps{CurrentUser: user, Intent: intent}))

	default: // home
		term := r.URL.Query().Get("q")
		posts := s.app.Posts().Filter(term)
		s.mu.Unlock()

		// collaborator call held outside the lock
		daily := s.quotes.Get(r.Context(), quote.Today())
		render(w, templates.HomePage(templates.HomeProps{
			CurrentUser: user,
			Quote:       daily,
			SearchTerm:  term,
			Posts:       posts,
		}))
	}
}

func (s *Site) Login(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	s.mu.Lock()
	_, err := s.app.Login(username, password)
	if err != nil {
		s.mu.Unlock()
		render(w, templates.LoginPage("Invalid username or password."))
		return
	}
	s.machine.ToHome()
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Site) SignUp(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	s.mu.Lock()
	_, err := s.app.SignUp(username, password)
	if err != nil {
		s.mu.Unlock()
		var msg string
		switch {
		case errors.Is(err, journal.ErrUsernameTaken):
			msg = "Username already taken. Please choose another."
		case errors.Is(err, journal.ErrPasswordTooShort):
			msg = "Password must be at least 4 characters long."
		default:
			msg = "Could not create account."
		}
		render(w, templates.SignUpPage(msg))
		return
	}
	s.machine.ToHome()
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Site) Logout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.app.Logout()
	s.machine.Logout()
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Site) SwitchToSignUp(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.machine.ToSignUp()
	s.mu.Unlock()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Site) SwitchToLogin(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.machine.ToLogin()
	s.mu.Unlock()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Site) ComposePost(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if !s.app.LoggedIn() {
		s.machine.Logout()
	} else {
		s.machine.ToNew()
	}
	s.mu.Unlock()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Site) SavePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(constants.MAX_IMAGE_BYTES); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	newPost := journal.NewPost{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
	}

	if file, _, err := r.FormFile("picture"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			http.Error(w, "Failed to read uploaded image", http.StatusBadRequest)
			return
		}
		if len(data) > 0 {
			newPost.ImageURL = dataURI(data)
		}
	}

	s.mu.Lock()
	_, err := s.app.CreatePost(newPost)
	if err != nil {
		user := s.app.CurrentUser()
		s.mu.Unlock()
		if errors.Is(err, journal.ErrMissingField) {
			render(w, templates.NewPostPage(user, "Title and content are required."))
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.machine.ToHome()
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// dataURI encodes an uploaded image the same way the browser's
// FileReader.readAsDataURL does, with a sniffed content type.
func dataURI(data []byte) string {
	mtype := mimetype.Detect(data)
	return "data:" + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func (s *Site) CancelPost(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.machine.ToHome()
	s.mu.Unlock()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Site) ViewPost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	s.mu.Lock()
	post, ok := s.app.Posts().Get(postID)
	if !ok {
		s.mu.Unlock()
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}
	s.app.ClearReflection()
	s.machine.ToView(post)
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Site) Back(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.app.ClearReflection()
	s.machine.ToHome()
	s.mu.Unlock()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Site) Reflect(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	s.mu.Lock()
	post, ok := s.app.Posts().Get(postID)
	s.mu.Unlock()
	if !ok {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	// not cancellable; a result arriving after the user navigated
	// away is simply discarded
	reflection := s.quotes.Reflect(r.Context(), post.Content)

	s.mu.Lock()
	if sel := s.machine.Selected(); s.machine.Page() == nav.PageView && sel != nil && sel.ID == post.ID {
		s.app.SetReflection(reflection)
	}
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Site) Admin(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	user := s.app.CurrentUser()
	if user == nil {
		s.machine.Logout()
		s.mu.Unlock()
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := s.machine.ToAdmin(user.Role); err != nil {
		s.mu.Unlock()
		http.Error(w, "Admin role required", http.StatusForbidden)
		return
	}
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Site) RequestDeletePost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	s.mu.Lock()
	err := s.app.RequestDeletePost(postID)
	if err != nil {
		s.mu.Unlock()
		deleteError(w, err)
		return
	}
	s.returnToAdmin = s.machine.Page() == nav.PageAdmin
	s.machine.ToConfirm()
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Site) RequestDeleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	s.mu.Lock()
	err := s.app.RequestDeleteUser(username)
	if err != nil {
		s.mu.Unlock()
		deleteError(w, err)
		return
	}
	s.returnToAdmin = true
	s.machine.ToConfirm()
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func deleteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, journal.ErrUnknownPost), errors.Is(err, journal.ErrUnknownUser):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, journal.ErrNotAdmin), errors.Is(err, journal.ErrProtectedUser):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, journal.ErrNotLoggedIn):
		http.Error(w, "Not logged in", http.StatusUnauthorized)
	default:
		http.Error(w, "Could not delete", http.StatusInternalServerError)
	}
}

func (s *Site) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if err := s.app.ConfirmDelete(); err != nil {
		log.Warn("Confirm with nothing pending", "err", err)
	}
	s.afterConfirmLocked()
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Site) CancelDelete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.app.CancelDelete()
	s.afterConfirmLocked()
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// afterConfirmLocked returns to the page the deletion started from.
func (s *Site) afterConfirmLocked() {
	user := s.app.CurrentUser()
	if s.returnToAdmin && user != nil {
		if err := s.machine.ToAdmin(user.Role); err == nil {
			s.returnToAdmin = false
			return
		}
	}
	s.returnToAdmin = false
	s.machine.ToHome()
}
