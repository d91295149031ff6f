package templates

import (
	"strings"
	"testing"
	"unicode/utf8"

	"dailythoughts/constants"
	"dailythoughts/journal"

	"github.com/stretchr/testify/assert"
)

func TestPostURL(t *testing.T) {
	post := journal.Post{ID: "abc123", Title: "Morning Walk"}
	assert.Equal(t, "/post/abc123/morning-walk", PostURL(post))
}

func TestPostURLUnsluggableTitle(t *testing.T) {
	// punctuation-only titles slug to the empty string; the URL must
	// still carry a final segment so the view route matches
	for _, title := range []string{"!!!", "...", "???"} {
		post := journal.Post{ID: "abc123", Title: title}
		assert.Equal(t, "/post/abc123/post", PostURL(post), title)
	}
}

func TestPreviewTextShortContentUntouched(t *testing.T) {
	assert.Equal(t, "short entry", previewText("short entry"))
}

func TestPreviewTextKeepsRuneBoundaries(t *testing.T) {
	long := strings.Repeat("é", constants.POST_PREVIEW_LENGTH+10)

	got := previewText(long)

	assert.True(t, utf8.ValidString(got), "truncation must not split a rune")
	assert.Equal(t, strings.Repeat("é", constants.POST_PREVIEW_LENGTH)+"...", got)
}
