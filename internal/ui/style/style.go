// Package style defines how each kind of terminal message is marked and colored.
package style

import "github.com/charmbracelet/lipgloss"

// Badge is the marker and color a message is printed with.
// A badge without a mark leaves the message text bare.
type Badge struct {
	Mark  string
	Color lipgloss.Color
}

// Badges by severity.
var (
	Failure = Badge{Mark: "✗", Color: lipgloss.Color("#D93025")}
	Caution = Badge{Mark: "!", Color: lipgloss.Color("#F59E0B")}
	Trace   = Badge{Mark: "~", Color: lipgloss.Color("#8B5CF6")}
	Plain   = Badge{Color: lipgloss.Color("#667085")}
)

// Decorate puts the badge mark in front of msg.
func (b Badge) Decorate(msg string) string {
	if b.Mark == "" {
		return msg
	}
	return b.Mark + " " + msg
}
