package templates

import (
	"dailythoughts/constants"
	"dailythoughts/journal"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

type LayoutProps struct {
	Title       string
	CurrentUser *journal.User
}

func HeaderComponent(props LayoutProps) g.Node {
	user := props.CurrentUser

	return Nav(Class("nav"),
		Div(Class("nav-left"),
			Div(Class("brand"), A(Href("/"), g.Text(constants.APP_NAME))),
		),
		Div(Class("nav-links nav-right"),
			g.If(user != nil,
				Div(Class("row"),
					Span(Class("welcome"), g.Textf("Welcome, %s!", username(user))),
					g.If(user != nil && user.Role == journal.RoleAdmin,
						A(Href("/admin"), g.Text("Admin")),
					),
					A(Class("button primary"), Href("/post/new"), g.Text("Write Post")),
					FormEl(Method("post"), Action("/logout"), Class("inline-form"),
						Button(Type("submit"), Class("button clear"), g.Text("Logout")),
					),
				),
			),
		),
	)
}

func username(u *journal.User) string {
	if u == nil {
		return ""
	}
	return u.Username
}

func FooterComponent() g.Node {
	return Footer(Class("footer"),
		P(Class("with-love"),
			Small(g.Text("Created with love by Sels 💕")),
		),
	)
}

func Layout(props LayoutProps, children ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Link(Rel("icon"), Type("image/png"), Href("data:image/svg+xml,<svg xmlns=%22http://www.w3.org/2000/svg%22 viewBox=%220 0 100 100%22><text y=%22.9em%22 font-size=%2290%22>📓</text></svg>")),

				Link(Rel("stylesheet"), Href("/assets/css/chota.min.css")),
				Link(Rel("stylesheet"), Href("/assets/css/main.css")),

				TitleEl(g.Text(props.Title)),
			),
			Body(
				Div(Class("container"), Style("margin-top: 1.5em;"),
					HeaderComponent(props),
					Main(
						g.Group(children),
					),
				),
				FooterComponent(),
			),
		),
	)
}
