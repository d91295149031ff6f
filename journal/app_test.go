package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSaver captures every persisted snapshot so tests can check
// that each committed mutation triggers a rewrite.
type recordingSaver struct {
	saves   int
	posts   []Post
	users   []User
	session *User
}

func (r *recordingSaver) Save(posts []Post, users []User, session *User) {
	r.saves++
	r.posts = posts
	r.users = users
	r.session = session
}

func newTestApp(t *testing.T) (*App, *recordingSaver) {
	t.Helper()
	saver := &recordingSaver{}
	return NewApp(saver, nil, nil, nil), saver
}

func TestAppSignUpLoginLogout(t *testing.T) {
	app, saver := newTestApp(t)

	alice, err := app.SignUp("alice", "pass1")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, alice.Role)
	require.NotNil(t, app.CurrentUser())
	assert.Equal(t, "alice", app.CurrentUser().Username)
	assert.Equal(t, 1, saver.saves)

	app.Logout()
	assert.Nil(t, app.CurrentUser())
	assert.Nil(t, saver.session, "logged-out session must be persisted as absent")

	_, err = app.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, app.CurrentUser(), "failed login must not alter session state")

	_, err = app.Login("alice", "pass1")
	require.NoError(t, err)
	require.NotNil(t, saver.session)
	assert.Equal(t, "alice", saver.session.Username)
}

func TestAppFailedSignUpLeavesUsersUnchanged(t *testing.T) {
	app, saver := newTestApp(t)
	_, err := app.SignUp("alice", "pass1")
	require.NoError(t, err)
	savesBefore := saver.saves

	_, err = app.SignUp("alice", "other")
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Len(t, app.Users(), 1)
	assert.Equal(t, savesBefore, saver.saves, "failed signup must not persist")
}

func TestAppCreatePostRequiresSession(t *testing.T) {
	app, _ := newTestApp(t)
	_, err := app.CreatePost(NewPost{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = app.SignUp("alice", "pass1")
	require.NoError(t, err)

	post, err := app.CreatePost(NewPost{Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.Equal(t, "alice", post.Author)
}

func TestAppTwoStepPostDeletion(t *testing.T) {
	app, _ := newTestApp(t)
	_, err := app.SignUp("alice", "pass1")
	require.NoError(t, err)
	post, err := app.CreatePost(NewPost{Title: "t", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, app.RequestDeletePost(post.ID))
	assert.Equal(t, 1, app.Posts().Len(), "nothing is deleted before confirmation")

	require.NoError(t, app.ConfirmDelete())
	assert.Equal(t, 0, app.Posts().Len())
	assert.Nil(t, app.PendingDelete())
}

func TestAppCancelDelete(t *testing.T) {
	app, _ := newTestApp(t)
	_, err := app.SignUp("alice", "pass1")
	require.NoError(t, err)
	post, err := app.CreatePost(NewPost{Title: "t", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, app.RequestDeletePost(post.ID))
	app.CancelDelete()
	assert.Nil(t, app.PendingDelete())
	assert.Equal(t, 1, app.Posts().Len())

	assert.ErrorIs(t, app.ConfirmDelete(), ErrNoPendingDelete)
}

func TestAppDeletePostAuthorization(t *testing.T) {
	saver := &recordingSaver{}
	app := NewApp(saver, nil, nil, nil)
	_, err := app.SignUp("alice", "pass1")
	require.NoError(t, err)
	alicePost, err := app.CreatePost(NewPost{Title: "t", Content: "c"})
	require.NoError(t, err)
	app.Logout()

	_, err = app.SignUp("bob", "pass1")
	require.NoError(t, err)
	assert.ErrorIs(t, app.RequestDeletePost(alicePost.ID), ErrNotAdmin,
		"non-admins cannot delete other users' posts")
	app.Logout()

	_, err = app.SignUp("admin", "pass1")
	require.NoError(t, err)
	assert.NoError(t, app.RequestDeletePost(alicePost.ID), "admins can delete any post")

	assert.ErrorIs(t, app.RequestDeletePost("missing"), ErrUnknownPost)
}

func TestAppDeleteUserCascades(t *testing.T) {
	app, saver := newTestApp(t)

	_, err := app.SignUp("alice", "pass1")
	require.NoError(t, err)
	_, err = app.CreatePost(NewPost{Title: "a1", Content: "c"})
	require.NoError(t, err)
	app.Logout()

	_, err = app.SignUp("bob", "pass1")
	require.NoError(t, err)
	bobPost, err := app.CreatePost(NewPost{Title: "b1", Content: "c"})
	require.NoError(t, err)
	app.Logout()

	_, err = app.SignUp("Admin", "pass1")
	require.NoError(t, err)

	require.NoError(t, app.RequestDeleteUser("alice"))
	require.NoError(t, app.ConfirmDelete())

	usernames := make([]string, 0, len(app.Users()))
	for _, u := range app.Users() {
		usernames = append(usernames, u.Username)
	}
	assert.ElementsMatch(t, []string{"bob", "Admin"}, usernames)

	require.Equal(t, 1, app.Posts().Len(), "only alice's posts are cascade-deleted")
	assert.Equal(t, bobPost.ID, app.Posts().All()[0].ID)
	assert.Len(t, saver.posts, 1)
}

func TestAppDeleteUserGuards(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := app.SignUp("alice", "pass1")
	require.NoError(t, err)
	assert.ErrorIs(t, app.RequestDeleteUser("alice"), ErrNotAdmin,
		"regular users cannot delete accounts")
	app.Logout()

	_, err = app.SignUp("Admin", "pass1")
	require.NoError(t, err)
	assert.ErrorIs(t, app.RequestDeleteUser("Admin"), ErrProtectedUser,
		"admin accounts have no delete action")
	assert.ErrorIs(t, app.RequestDeleteUser("ghost"), ErrUnknownUser)
}

func TestAppReflectionIsTransient(t *testing.T) {
	app, saver := newTestApp(t)
	_, err := app.SignUp("alice", "pass1")
	require.NoError(t, err)
	savesBefore := saver.saves

	app.SetReflection("What made today special?")
	assert.Equal(t, "What made today special?", app.Reflection())
	assert.Equal(t, savesBefore, saver.saves, "reflections are never persisted")

	app.ClearReflection()
	assert.Empty(t, app.Reflection())
}
