package journal

// Saver persists the full application state. Every committed mutation
// triggers a synchronous full rewrite of all three records.
type Saver interface {
	Save(posts []Post, users []User, session *User)
}

type IntentKind int

const (
	IntentDeletePost IntentKind = iota
	IntentDeleteUser
)

// DeleteIntent is the first half of the two-step deletion protocol:
// a handler records the intent, the confirm page shows Label, and
// ConfirmDelete executes it.
type DeleteIntent struct {
	Kind  IntentKind
	ID    string
	Label string
}

// App owns all mutable state: the post collection, the users
// collection, the single session and the pending delete intent.
// Nothing outside this package mutates that state directly.
type App struct {
	saver Saver

	posts   *Repository
	users   []User
	session *User

	pending    *DeleteIntent
	reflection string
}

func NewApp(saver Saver, posts []Post, users []User, session *User) *App {
	return &App{
		saver:   saver,
		posts:   NewRepository(posts),
		users:   users,
		session: session,
	}
}

func (a *App) persist() {
	a.saver.Save(a.posts.All(), a.users, a.session)
}

func (a *App) Posts() *Repository { return a.posts }
func (a *App) Users() []User      { return a.users }

func (a *App) LoggedIn() bool { return a.session != nil }

// CurrentUser returns a copy of the session user, or nil when logged out.
func (a *App) CurrentUser() *User {
	if a.session == nil {
		return nil
	}
	u := *a.session
	return &u
}

func (a *App) IsAdmin() bool {
	return a.session != nil && a.session.Role == RoleAdmin
}

func (a *App) Login(username, password string) (User, error) {
	user, err := Login(username, password, a.users)
	if err != nil {
		return User{}, err
	}
	session := user
	a.session = &session
	a.persist()
	return user, nil
}

func (a *App) SignUp(username, password string) (User, error) {
	user, err := SignUp(username, password, a.users)
	if err != nil {
		return User{}, err
	}
	a.users = append(a.users, user)
	session := user
	a.session = &session
	a.persist()
	return user, nil
}

func (a *App) Logout() {
	a.session = nil
	a.pending = nil
	a.reflection = ""
	a.persist()
}

func (a *App) CreatePost(np NewPost) (Post, error) {
	if a.session == nil {
		return Post{}, ErrNotLoggedIn
	}
	post, err := a.posts.Create(np, a.session.Username)
	if err != nil {
		return Post{}, err
	}
	a.persist()
	return post, nil
}

// RequestDeletePost records a pending deletion for a post. Owners may
// delete their own posts; deleting someone else's requires admin.
func (a *App) RequestDeletePost(id string) error {
	if a.session == nil {
		return ErrNotLoggedIn
	}
	post, ok := a.posts.Get(id)
	if !ok {
		return ErrUnknownPost
	}
	if post.Author != a.session.Username && a.session.Role != RoleAdmin {
		return ErrNotAdmin
	}
	a.pending = &DeleteIntent{Kind: IntentDeletePost, ID: id, Label: post.Title}
	return nil
}

// RequestDeleteUser records a pending user deletion. Admin only, and
// admin accounts themselves are off limits.
func (a *App) RequestDeleteUser(username string) error {
	if !a.IsAdmin() {
		return ErrNotAdmin
	}
	for _, u := range a.users {
		if u.Username == username {
			if u.Role == RoleAdmin {
				return ErrProtectedUser
			}
			a.pending = &DeleteIntent{Kind: IntentDeleteUser, ID: username, Label: username}
			return nil
		}
	}
	return ErrUnknownUser
}

func (a *App) PendingDelete() *DeleteIntent { return a.pending }

// ConfirmDelete executes the pending intent. User deletion cascades
// to every post by that author.
func (a *App) ConfirmDelete() error {
	if a.pending == nil {
		return ErrNoPendingDelete
	}
	intent := *a.pending
	a.pending = nil

	switch intent.Kind {
	case IntentDeletePost:
		a.posts.Delete(intent.ID)
	case IntentDeleteUser:
		if !a.IsAdmin() {
			return ErrNotAdmin
		}
		kept := a.users[:0]
		for _, u := range a.users {
			if u.Username != intent.ID {
				kept = append(kept, u)
			}
		}
		a.users = kept
		a.posts.DeleteByAuthor(intent.ID)
	}
	a.persist()
	return nil
}

func (a *App) CancelDelete() {
	a.pending = nil
}

// Reflection is the transient AI response shown on the view page. It
// is never persisted and is discarded on navigation.
func (a *App) Reflection() string     { return a.reflection }
func (a *App) SetReflection(s string) { a.reflection = s }
func (a *App) ClearReflection()       { a.reflection = "" }
