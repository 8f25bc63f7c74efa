package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/drawnumber/internal/logger"
	"github.com/idilsaglam/drawnumber/internal/model"
)

// maxHistory bounds the result lines kept on screen.
const maxHistory = 12

type (
	resultMsg    struct{ result model.Result }
	incorrectMsg struct{}
	fatalMsg     struct{ text string }
	resetDoneMsg struct{}
)

type tuiKeys struct {
	Submit key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

func (k tuiKeys) ShortHelp() []key.Binding  { return []key.Binding{k.Submit, k.Reset, k.Quit} }
func (k tuiKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func newTUIKeys() tuiKeys {
	return tuiKeys{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "guess")),
		Reset:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "new round")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// TUI is the full-screen interactive view. Guesses typed into the input are
// sent to the observer from a tea.Cmd; outcomes come back as messages.
type TUI struct {
	opts     []tea.ProgramOption
	observer Observer
	errOut   io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	err     error
	fatal   []string
}

// NewTUI builds the view. Fatal errors still pending when the program is
// closed are written to errOut so they survive the teardown.
func NewTUI(errOut io.Writer, opts ...tea.ProgramOption) *TUI {
	return &TUI{opts: opts, errOut: errOut, done: make(chan struct{})}
}

func (v *TUI) SetObserver(o Observer) { v.observer = o }

// Start runs the Bubble Tea program in its own goroutine. When the user
// leaves the program the terminal is restored before the observer quits.
func (v *TUI) Start() {
	if v.observer == nil {
		panic("view: TUI.Start called before SetObserver")
	}
	p := tea.NewProgram(newTUIModel(v.observer), v.opts...)
	v.mu.Lock()
	v.program = p
	v.mu.Unlock()
	logger.SetInteractiveMode(true)

	go func() {
		_, err := p.Run()
		v.mu.Lock()
		v.err = err
		v.mu.Unlock()
		close(v.done)
		v.observer.Quit()
	}()
}

// Done is closed once the program has exited.
func (v *TUI) Done() <-chan struct{} { return v.done }

// Err returns the error the program exited with, if any.
func (v *TUI) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

func (v *TUI) send(msg tea.Msg) {
	v.mu.Lock()
	p := v.program
	v.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

func (v *TUI) Result(r model.Result) { v.send(resultMsg{result: r}) }
func (v *TUI) DisplayError(msg string) {
	v.mu.Lock()
	v.fatal = append(v.fatal, msg)
	v.mu.Unlock()
	v.send(fatalMsg{text: msg})
}
func (v *TUI) NumberIncorrect() { v.send(incorrectMsg{}) }

// Close stops the program, waits briefly for the terminal to be restored
// and then prints any fatal error the last frame may not have shown.
func (v *TUI) Close() error {
	v.mu.Lock()
	p := v.program
	v.mu.Unlock()
	if p != nil {
		p.Kill()
		select {
		case <-v.done:
		case <-time.After(time.Second):
		}
	}
	logger.SetInteractiveMode(false)

	v.mu.Lock()
	fatal := v.fatal
	v.fatal = nil
	v.mu.Unlock()
	if v.errOut == nil {
		return nil
	}
	pal := paletteFor(v.errOut)
	for _, msg := range fatal {
		fprintln(v.errOut, pal.fail(errorPrefix+msg))
	}
	return nil
}

type tuiModel struct {
	observer Observer
	input    textinput.Model
	keys     tuiKeys
	help     help.Model

	lastGuess int
	history   []attempt
	inputErr  string
	fatal     string
	over      bool
}

type attempt struct {
	guess  int
	result model.Result
}

func (a attempt) String() string { return fmt.Sprintf("%d: %s", a.guess, a.result) }

func newTUIModel(o Observer) tuiModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Your guess..."
	ti.CharLimit = 20
	ti.Focus()
	return tuiModel{
		observer: o,
		input:    ti,
		keys:     newTUIKeys(),
		help:     help.New(),
	}
}

func (m tuiModel) Init() tea.Cmd { return textinput.Blink }

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			m.inputErr = ""
			return m, m.resetCmd()
		case key.Matches(msg, m.keys.Submit):
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			n, err := strconv.Atoi(text)
			if err != nil {
				m.inputErr = formatErrorText(text)
				return m, nil
			}
			m.inputErr = ""
			m.lastGuess = n
			m.input.SetValue("")
			return m, m.attemptCmd(n)
		}

	case resultMsg:
		m.over = msg.result.Over()
		m.history = append(m.history, attempt{guess: m.lastGuess, result: msg.result})
		if len(m.history) > maxHistory {
			m.history = m.history[len(m.history)-maxHistory:]
		}
		return m, nil

	case incorrectMsg:
		m.inputErr = fmt.Sprintf("%d: %s", m.lastGuess, incorrectText)
		return m, nil

	case fatalMsg:
		m.fatal = msg.text
		return m, nil

	case resetDoneMsg:
		m.history = nil
		m.over = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m tuiModel) attemptCmd(n int) tea.Cmd {
	o := m.observer
	return func() tea.Msg {
		o.NewAttempt(n)
		return nil
	}
}

func (m tuiModel) resetCmd() tea.Cmd {
	o := m.observer
	return func() tea.Msg {
		o.ResetGame()
		return resetDoneMsg{}
	}
}

func (m tuiModel) View() string {
	lines := []string{styles.title.Render("Draw Number"), ""}
	if len(m.history) == 0 {
		lines = append(lines, styles.muted.Render("no guesses yet"))
	}
	for _, a := range m.history {
		lines = append(lines, styles.result(a.String(), a.result == model.Correct, a.result == model.NoAttemptsLeft))
	}
	lines = append(lines, "")
	if m.over {
		lines = append(lines, styles.muted.Render("round over, ctrl+r starts a new one"))
	}
	if m.inputErr != "" {
		lines = append(lines, styles.fail(m.inputErr))
	}
	if m.fatal != "" {
		lines = append(lines, styles.fail(errorPrefix+m.fatal))
	}
	lines = append(lines, m.input.View(), "", m.help.View(m.keys))
	return styles.panel(lines)
}
