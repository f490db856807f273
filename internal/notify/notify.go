// Package notify reports action outcomes to the user.
//
// Every action ends in exactly one notification. The desktop backend
// uses the beeep library, which speaks D-Bus or notify-send on Linux;
// the writer backend prints to a stream for non-graphical sessions.
package notify

import (
	"fmt"
	"io"

	"github.com/gen2brain/beeep"
)

// appName is the notification title shown by desktop environments.
const appName = "gitpick"

// Notifier delivers one outcome message to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Desktop sends desktop notifications. Delivery failures are swallowed:
// a broken notification daemon must not fail the action itself.
type Desktop struct{}

func (Desktop) Success(msg string) {
	_ = beeep.Notify(appName, msg, "")
}

func (Desktop) Error(msg string) {
	_ = beeep.Alert(appName, msg, "")
}

// Writer prints outcomes as single lines to a stream.
type Writer struct {
	Out io.Writer
}

func (w Writer) Success(msg string) {
	fmt.Fprintf(w.Out, "✓ %s\n", msg)
}

func (w Writer) Error(msg string) {
	fmt.Fprintf(w.Out, "✗ %s\n", msg)
}

// Multi fans one outcome out to several notifiers.
type Multi []Notifier

func (m Multi) Success(msg string) {
	for _, n := range m {
		n.Success(msg)
	}
}

func (m Multi) Error(msg string) {
	for _, n := range m {
		n.Error(msg)
	}
}
