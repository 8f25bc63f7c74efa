// Package view holds the game front-ends. Interactive views report guesses
// to an Observer; every view renders the outcomes it is handed.
package view

import "github.com/idilsaglam/drawnumber/internal/model"

// Observer receives user-initiated game events.
type Observer interface {
	NewAttempt(n int)
	ResetGame()
	Quit()
}

// View is a game front-end. SetObserver must be called before Start.
type View interface {
	SetObserver(o Observer)
	Start()
	Result(r model.Result)
	// DisplayError reports a fatal problem; the application quits after it.
	DisplayError(msg string)
	NumberIncorrect()
}

var (
	_ View = (*Stream)(nil)
	_ View = (*Console)(nil)
	_ View = (*TUI)(nil)
)

const (
	incorrectText = "Incorrect number: outside the allowed range"
	errorPrefix   = "Error: "
)

func formatErrorText(input string) string {
	return "Number format error: " + quoteInput(input) + " is not a number"
}

func quoteInput(s string) string {
	if r := []rune(s); len(r) > 20 {
		s = string(r[:17]) + "..."
	}
	return `"` + s + `"`
}
