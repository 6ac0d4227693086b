// Package clipboard copies report text to the system clipboard.
package clipboard

import (
	"fmt"
	"os"

	atotto "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Clipboard defines the interface for clipboard operations.
type Clipboard interface {
	Copy(text string) error
}

// System implements Clipboard using the system clipboard. Over SSH and in
// GNU screen it writes OSC 52 escape sequences to the terminal; otherwise
// it uses the native clipboard tools.
type System struct{}

// Copy copies text to the system clipboard.
func (System) Copy(text string) error {
	if isRemoteSession() || isGNUScreen() {
		return copyViaOSC52(text)
	}
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// isRemoteSession returns true if running over SSH.
func isRemoteSession() bool {
	return os.Getenv("SSH_TTY") != "" ||
		os.Getenv("SSH_CLIENT") != "" ||
		os.Getenv("SSH_CONNECTION") != ""
}

// isGNUScreen returns true if running in GNU screen.
func isGNUScreen() bool {
	return os.Getenv("STY") != ""
}

// sequence builds the OSC 52 sequence for text, wrapped for tmux or screen
// passthrough when needed.
func sequence(text string) osc52.Sequence {
	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case isGNUScreen():
		seq = seq.Screen()
	}
	return seq
}

// copyViaOSC52 writes the sequence to /dev/tty so it reaches the terminal
// even while Bubble Tea owns stdout.
func copyViaOSC52(text string) (err error) {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("failed to open /dev/tty: %w", err)
	}
	defer func() {
		if closeErr := tty.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	_, err = sequence(text).WriteTo(tty)
	return err
}
