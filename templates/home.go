package templates

import (
	"dailythoughts/constants"
	"dailythoughts/journal"

	"github.com/gosimple/slug"
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

type HomeProps struct {
	CurrentUser *journal.User
	Quote       string
	SearchTerm  string
	Posts       []journal.Post
}

func HomePage(props HomeProps) g.Node {
	return Layout(LayoutProps{Title: constants.APP_NAME, CurrentUser: props.CurrentUser},
		DailyMotivationComponent(props.Quote),
		SearchBarComponent(props.SearchTerm),
		Div(Class("post-grid"),
			g.If(len(props.Posts) > 0,
				g.Group(g.Map(props.Posts, PostCardComponent)),
			),
			g.If(len(props.Posts) == 0,
				Div(Class("empty-journal"),
					P(Class("lead"), g.Text("No thoughts penned down yet.")),
					P(g.Text("Why not write your first post?")),
				),
			),
		),
	)
}

func DailyMotivationComponent(quote string) g.Node {
	return Div(Class("daily-motivation card"),
		H3(g.Text("Daily Motivation")),
		P(Class("quote"), g.Textf("“%s”", quote)),
	)
}

func SearchBarComponent(term string) g.Node {
	return FormEl(Method("get"), Action("/"), Class("search-bar"),
		Input(Type("text"), Name("q"), Value(term),
			Placeholder("Search posts by title or date...")),
	)
}

func PostCardComponent(post journal.Post) g.Node {
	preview := previewText(post.Content)

	return A(Class("post-card card"), Href(PostURL(post)),
		g.If(post.ImageURL != "",
			Img(Src(post.ImageURL), Alt(post.Title), Class("card-image")),
		),
		Div(Class("card-body"),
			Div(Class("card-meta"),
				Span(Class("date"), g.Text(post.Date.Format(constants.DATE_DISPLAY_FORMAT))),
				Span(Class("author"), g.Textf("by %s", post.Author)),
			),
			H2(g.Text(post.Title)),
			P(g.Text(preview)),
		),
	)
}

// previewText truncates on a rune boundary so multi-byte content
// never yields invalid UTF-8 in the card preview.
func previewText(content string) string {
	runes := []rune(content)
	if len(runes) > constants.POST_PREVIEW_LENGTH {
		return string(runes[:constants.POST_PREVIEW_LENGTH]) + "..."
	}
	return content
}

// PostURL carries a slugged vanity segment after the id; only the id
// is routed on. Titles with no sluggable characters get a fixed
// segment so the URL still matches the route.
func PostURL(post journal.Post) string {
	seg := slug.Make(post.Title)
	if seg == "" {
		seg = "post"
	}
	return "/post/" + post.ID + "/" + seg
}
