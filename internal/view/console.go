package view

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/idilsaglam/drawnumber/internal/model"
)

const consolePrompt = "Your guess (reset, quit): "

// maxLine bounds one line of input; longer lines are dropped whole.
const maxLine = 4096

// Console is a line-oriented interactive view: one guess per line of input.
// End of input quits the game.
type Console struct {
	in       io.Reader
	out      io.Writer
	styles   palette
	observer Observer

	mu   sync.Mutex // guards out
	done chan struct{}
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:     in,
		out:    out,
		styles: paletteFor(out),
		done:   make(chan struct{}),
	}
}

func (c *Console) SetObserver(o Observer) { c.observer = o }

// Start runs the prompt loop in its own goroutine.
func (c *Console) Start() {
	if c.observer == nil {
		panic("view: Console.Start called before SetObserver")
	}
	go c.loop()
}

// Done is closed once the prompt loop has stopped reading.
func (c *Console) Done() <-chan struct{} { return c.done }

func (c *Console) loop() {
	defer close(c.done)
	r := bufio.NewReaderSize(c.in, maxLine)
	c.prompt()
	for {
		raw, tooLong, err := readLine(r)
		if err != nil {
			break
		}
		if tooLong {
			c.println(c.styles.fail(formatErrorText(raw)))
			c.prompt()
			continue
		}
		line := strings.TrimSpace(raw)
		switch strings.ToLower(line) {
		case "":
		case "reset":
			c.observer.ResetGame()
			c.println(c.styles.ok("new round"))
		case "quit", "exit":
			c.observer.Quit()
			return
		default:
			n, err := strconv.Atoi(line)
			if err != nil {
				c.println(c.styles.fail(formatErrorText(line)))
				break
			}
			c.observer.NewAttempt(n)
		}
		c.prompt()
	}
	c.observer.Quit()
}

// readLine returns the next line without its terminator. A line longer
// than the reader's buffer is consumed and reported with tooLong, carrying
// only its first chunk.
func readLine(r *bufio.Reader) (line string, tooLong bool, err error) {
	b, isPrefix, err := r.ReadLine()
	if err != nil {
		return "", false, err
	}
	if !isPrefix {
		return string(b), false, nil
	}
	line = string(b)
	for isPrefix {
		if _, isPrefix, err = r.ReadLine(); err != nil {
			break
		}
	}
	return line, true, nil
}

func (c *Console) prompt() {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.out, c.styles.accent.Render(consolePrompt))
}

func (c *Console) println(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fprintln(c.out, s)
}

func (c *Console) Result(r model.Result) {
	c.println(c.styles.result(r.String(), r == model.Correct, r == model.NoAttemptsLeft))
	if r.Over() {
		c.println(c.styles.muted.Render("type reset for a new round"))
	}
}

func (c *Console) DisplayError(msg string) { c.println(c.styles.fail(errorPrefix + msg)) }
func (c *Console) NumberIncorrect()        { c.println(c.styles.fail(incorrectText)) }
