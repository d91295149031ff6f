package templates

import (
	"dailythoughts/constants"
	"dailythoughts/journal"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

func NewPostPage(user *journal.User, errorMsg string) g.Node {
	return Layout(LayoutProps{Title: "New Post - " + constants.APP_NAME, CurrentUser: user},
		Div(Class("compose card"),
			H2(g.Text("What's on your mind?")),
			FormEl(Method("post"), Action("/post/new"), EncType("multipart/form-data"),
				Label(For("title"), g.Text("Title")),
				Input(Type("text"), ID("title"), Name("title"), Placeholder("A wonderful day")),
				Label(For("content"), g.Text("Content")),
				Textarea(ID("content"), Name("content"), Rows("10"), Placeholder("Today was...")),
				Label(For("picture"), g.Text("Upload a picture (optional)")),
				Input(Type("file"), ID("picture"), Name("picture"), Accept("image/*")),
				errorLine(errorMsg),
				Div(Class("form-actions"),
					A(Class("button clear"), Href("/post/cancel"), g.Text("Cancel")),
					Button(Type("submit"), Class("button primary"), g.Text("Save Post")),
				),
			),
		),
	)
}

type PostViewProps struct {
	CurrentUser *journal.User
	Post        journal.Post
	Reflection  string
}

func PostViewPage(props PostViewProps) g.Node {
	post := props.Post
	user := props.CurrentUser
	canDelete := user != nil && (user.Username == post.Author || user.Role == journal.RoleAdmin)

	return Layout(LayoutProps{Title: post.Title + " - " + constants.APP_NAME, CurrentUser: user},
		Div(Class("post-view card"),
			FormEl(Method("post"), Action("/back"), Class("inline-form"),
				Button(Type("submit"), Class("button clear"), g.Text("← Back to Journal")),
			),
			Article(
				H1(g.Text(post.Title)),
				Div(Class("card-meta"),
					Span(Class("date"), g.Text(post.Date.Format("Monday, January 2, 2006"))),
					Span(Class("author"), g.Textf("by %s", post.Author)),
				),
				g.If(post.ImageURL != "",
					Img(Src(post.ImageURL), Alt(post.Title), Class("post-image")),
				),
				Div(Class("post-content"), renderMarkdown(post.Content)),
			),
			Div(Class("reflection"),
				FormEl(Method("post"), Action("/post/"+post.ID+"/reflect"), Class("inline-form"),
					Button(Type("submit"), Class("button"), g.Text("Reflect with AI ✨")),
				),
				g.If(props.Reflection != "",
					BlockQuote(Class("reflection-box"),
						P(g.Textf("“%s”", props.Reflection)),
					),
				),
			),
			g.If(canDelete,
				FormEl(Method("post"), Action("/post/"+post.ID+"/delete"), Class("inline-form"),
					Button(Type("submit"), Class("button error"), g.Text("Delete Post")),
				),
			),
		),
	)
}

func renderMarkdown(markdownStr string) g.Node {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(markdownStr))

	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	opts := html.RendererOptions{Flags: htmlFlags}
	renderer := html.NewRenderer(opts)

	return g.Raw(string(markdown.Render(doc, renderer)))
}
