package templates

import (
	"dailythoughts/constants"
	"dailythoughts/journal"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

type AdminProps struct {
	CurrentUser *journal.User
	Users       []journal.User
	Posts       []journal.Post
}

func AdminPage(props AdminProps) g.Node {
	return Layout(LayoutProps{Title: "Admin - " + constants.APP_NAME, CurrentUser: props.CurrentUser},
		H1(g.Text("Admin Dashboard")),

		Div(Class("card"),
			H2(g.Textf("Manage Users (%d)", len(props.Users))),
			Table(
				THead(
					Tr(Th(g.Text("Username")), Th(g.Text("Role")), Th(g.Text("Actions"))),
				),
				TBody(
					g.Group(g.Map(props.Users, adminUserRow)),
				),
			),
		),

		Div(Class("card"),
			H2(g.Textf("Manage Posts (%d)", len(props.Posts))),
			Table(
				THead(
					Tr(Th(g.Text("Title")), Th(g.Text("Author")), Th(g.Text("Date")), Th(g.Text("Actions"))),
				),
				TBody(
					g.Group(g.Map(props.Posts, adminPostRow)),
				),
			),
		),
	)
}

func adminUserRow(user journal.User) g.Node {
	return Tr(
		Td(g.Text(user.Username)),
		Td(g.Text(string(user.Role))),
		Td(
			// admin accounts get no delete action
			g.If(user.Role != journal.RoleAdmin,
				FormEl(Method("post"), Action("/user/"+user.Username+"/delete"), Class("inline-form"),
					Button(Type("submit"), Class("button error"), g.Text("Delete")),
				),
			),
		),
	)
}

func adminPostRow(post journal.Post) g.Node {
	return Tr(
		Td(g.Text(post.Title)),
		Td(g.Text(post.Author)),
		Td(g.Text(post.Date.Format(constants.DATE_DISPLAY_FORMAT))),
		Td(
			FormEl(Method("post"), Action("/post/"+post.ID+"/delete"), Class("inline-form"),
				Button(Type("submit"), Class("button error"), g.Text("Delete")),
			),
		),
	)
}
