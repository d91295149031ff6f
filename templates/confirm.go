package templates

import (
	"dailythoughts/constants"
	"dailythoughts/journal"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

type ConfirmProps struct {
	CurrentUser *journal.User
	Intent      *journal.DeleteIntent
}

// ConfirmPage is the second step of the deletion protocol: nothing is
// removed until the user submits here.
func ConfirmPage(props ConfirmProps) g.Node {
	var question string
	switch props.Intent.Kind {
	case journal.IntentDeleteUser:
		question = "Are you sure you want to delete user \"" + props.Intent.Label +
			"\"? This will also delete all their posts."
	default:
		question = "Are you sure you want to delete the post \"" + props.Intent.Label + "\"?"
	}

	return Layout(LayoutProps{Title: "Confirm - " + constants.APP_NAME, CurrentUser: props.CurrentUser},
		Div(Class("confirm card"),
			H2(g.Text("Please Confirm")),
			P(g.Text(question)),
			Div(Class("form-actions"),
				FormEl(Method("post"), Action("/cancel"), Class("inline-form"),
					Button(Type("submit"), Class("button clear"), g.Text("Cancel")),
				),
				FormEl(Method("post"), Action("/confirm"), Class("inline-form"),
					Button(Type("submit"), Class("button error"), g.Text("Delete")),
				),
			),
		),
	)
}
