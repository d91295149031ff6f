package journal

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is stored as-is; passwords are intentionally kept in plaintext
// since this is a self-hosted single-tenant app with no security model.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

type Post struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	ImageURL string    `json:"imageUrl,omitempty"`
	Author   string    `json:"author"`
}

// NewPost is the compose-form payload before the repository stamps
// id, date and author.
type NewPost struct {
	Title    string
	Content  string
	ImageURL string
}
