package templates

import (
	"dailythoughts/constants"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// LoginPage and SignUpPage are the only pages reachable while logged
// out. ErrorMsg carries inline form failures.

func LoginPage(errorMsg string) g.Node {
	return authShell("Sign In - "+constants.APP_NAME,
		H1(g.Text(constants.APP_NAME)),
		P(Class("subtitle"), g.Text("Sign in to continue to your journal.")),
		FormEl(Method("post"), Action("/login"),
			Label(For("username"), g.Text("Username")),
			Input(Type("text"), ID("username"), Name("username"), Required()),
			Label(For("password"), g.Text("Password")),
			Input(Type("password"), ID("password"), Name("password"), Required()),
			errorLine(errorMsg),
			Button(Type("submit"), Class("button primary"), g.Text("Login")),
		),
		P(Class("switch-auth"),
			g.Text("Don't have an account? "),
			A(Href("/switch/signup"), g.Text("Sign up")),
		),
	)
}

func SignUpPage(errorMsg string) g.Node {
	return authShell("Sign Up - "+constants.APP_NAME,
		H1(g.Text("Create Your Journal")),
		P(Class("subtitle"), g.Text("Join our community of thinkers.")),
		FormEl(Method("post"), Action("/signup"),
			Label(For("username"), g.Text("Username")),
			Input(Type("text"), ID("username"), Name("username"), Required()),
			Label(For("password"), g.Text("Password")),
			Input(Type("password"), ID("password"), Name("password"), Required()),
			errorLine(errorMsg),
			Button(Type("submit"), Class("button primary"), g.Text("Sign Up")),
		),
		P(Class("switch-auth"),
			g.Text("Already have an account? "),
			A(Href("/switch/login"), g.Text("Log in")),
		),
	)
}

// authShell skips the app header since no session exists yet.
func authShell(title string, children ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Link(Rel("stylesheet"), Href("/assets/css/chota.min.css")),
				Link(Rel("stylesheet"), Href("/assets/css/main.css")),
				TitleEl(g.Text(title)),
			),
			Body(
				Div(Class("container auth-card"),
					g.Group(children),
				),
			),
		),
	)
}

func errorLine(msg string) g.Node {
	return g.If(msg != "",
		P(Class("text-error"), g.Text(msg)),
	)
}
