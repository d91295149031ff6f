package journal

import (
	"strings"
	"time"

	"dailythoughts/constants"

	"github.com/google/uuid"
)

// Repository holds the in-memory post collection, newest first. It is
// purely in-memory; the owning App re-persists after every mutation.
type Repository struct {
	posts []Post
}

func NewRepository(posts []Post) *Repository {
	return &Repository{posts: posts}
}

// All returns the collection in newest-first order.
func (r *Repository) All() []Post {
	return r.posts
}

func (r *Repository) Len() int {
	return len(r.posts)
}

func (r *Repository) Get(id string) (Post, bool) {
	for _, p := range r.posts {
		if p.ID == id {
			return p, true
		}
	}
	return Post{}, false
}

// Create stamps id and creation time and prepends the post, so the
// collection stays newest-first without re-sorting.
func (r *Repository) Create(np NewPost, author string) (Post, error) {
	if strings.TrimSpace(np.Title) == "" || strings.TrimSpace(np.Content) == "" {
		return Post{}, ErrMissingField
	}

	post := Post{
		ID:       uuid.NewString(),
		Title:    np.Title,
		Content:  np.Content,
		Date:     time.Now(),
		ImageURL: np.ImageURL,
		Author:   author,
	}
	r.posts = append([]Post{post}, r.posts...)
	return post, nil
}

// Delete removes the post with the given id. Absent ids are a no-op;
// confirmation is the caller's concern.
func (r *Repository) Delete(id string) {
	kept := r.posts[:0]
	for _, p := range r.posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.posts = kept
}

// DeleteByAuthor removes every post authored by username (cascade
// from user deletion).
func (r *Repository) DeleteByAuthor(username string) {
	kept := r.posts[:0]
	for _, p := range r.posts {
		if p.Author != username {
			kept = append(kept, p)
		}
	}
	r.posts = kept
}

// Filter returns posts whose title or displayed date contains term,
// case-insensitively. An empty term returns the whole collection.
func (r *Repository) Filter(term string) []Post {
	if term == "" {
		return r.posts
	}

	needle := strings.ToLower(term)
	var matched []Post
	for _, p := range r.posts {
		title := strings.ToLower(p.Title)
		date := strings.ToLower(p.Date.Format(constants.DATE_DISPLAY_FORMAT))
		if strings.Contains(title, needle) || strings.Contains(date, needle) {
			matched = append(matched, p)
		}
	}
	return matched
}
