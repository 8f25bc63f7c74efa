package view

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/drawnumber/internal/model"
)

func runConsole(t *testing.T, input string, obs *recorder) (*Console, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(input), &out)
	c.SetObserver(obs)
	c.Start()
	select {
	case <-c.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("console loop did not finish")
	}
	return c, &out
}

func TestConsoleForwardsGuesses(t *testing.T) {
	obs := &recorder{}
	_, out := runConsole(t, "10\n  42 \n\n-3\n", obs)

	attempts, resets, quits := obs.snapshot()
	assert.Equal(t, []int{10, 42, -3}, attempts)
	assert.Zero(t, resets)
	assert.Equal(t, 1, quits, "end of input quits")
	assert.Equal(t, 5, strings.Count(out.String(), consolePrompt))
}

func TestConsoleFormatErrorReprompts(t *testing.T) {
	obs := &recorder{}
	_, out := runConsole(t, "twelve\n12\n", obs)

	attempts, _, _ := obs.snapshot()
	assert.Equal(t, []int{12}, attempts, "unparseable input never reaches the observer")
	assert.Contains(t, out.String(), `Number format error: "twelve" is not a number`)
	assert.Equal(t, 3, strings.Count(out.String(), consolePrompt))
}

func TestConsoleCommands(t *testing.T) {
	obs := &recorder{}
	_, out := runConsole(t, "RESET\nquit\n7\n", obs)

	attempts, resets, quits := obs.snapshot()
	assert.Empty(t, attempts, "input after quit is not read")
	assert.Equal(t, 1, resets)
	assert.Equal(t, 1, quits)
	assert.Contains(t, out.String(), "new round")
}

func TestConsoleRendersOutcomes(t *testing.T) {
	var out bytes.Buffer
	obs := &recorder{}
	c := NewConsole(strings.NewReader(""), &out)
	c.SetObserver(obs)

	c.Result(model.TooHigh)
	c.Result(model.Correct)
	c.NumberIncorrect()
	c.DisplayError("boom")

	got := out.String()
	assert.Contains(t, got, "• Your guess is too high")
	assert.Contains(t, got, "✔ You won!")
	assert.Contains(t, got, "type reset for a new round")
	assert.Contains(t, got, "✖ "+incorrectText)
	assert.Contains(t, got, "✖ Error: boom")
}

func TestConsoleStartWithoutObserver(t *testing.T) {
	c := NewConsole(strings.NewReader(""), &bytes.Buffer{})
	require.Panics(t, c.Start)
}

func TestConsoleOverlongLine(t *testing.T) {
	obs := &recorder{}
	long := strings.Repeat("9", 100_000)
	_, out := runConsole(t, long+"\n42\n", obs)

	attempts, _, quits := obs.snapshot()
	assert.Equal(t, []int{42}, attempts, "an overlong line is rejected and reading goes on")
	assert.Equal(t, 1, quits)
	assert.Contains(t, out.String(), `Number format error: "99999999999999999..." is not a number`)
}

func TestConsoleOverlongLastLine(t *testing.T) {
	obs := &recorder{}
	_, out := runConsole(t, strings.Repeat("x", 3*maxLine), obs)

	attempts, _, quits := obs.snapshot()
	assert.Empty(t, attempts)
	assert.Equal(t, 1, quits)
	assert.Contains(t, out.String(), "Number format error")
}
