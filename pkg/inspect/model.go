package inspect

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/junk-io/jsbind/pkg/jsbind"
)

// model represents the state of the inspector TUI.
type model struct {
	viewport viewport.Model
	input    textinput.Model

	eval       *evaluator
	objectName string

	history    *strings.Builder
	lastResult string

	width  int
	height int
	ready  bool

	status string
}

// resultMsg carries the outcome of one evaluated command back into Update.
type resultMsg struct {
	input  string
	result string
	script string
	err    error
}

func newModel(exec jsbind.Executor, objectName string) (*model, error) {
	eval, err := newEvaluator(exec, objectName)
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Placeholder = "attribute name or :command (try :help)"
	ti.Prompt = promptStyle.Render("» ")
	ti.Focus()

	return &model{
		input:      ti,
		eval:       eval,
		objectName: objectName,
		history:    &strings.Builder{},
	}, nil
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		vpCmd tea.Cmd
		tiCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowResize(msg)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+y":
			m.copyLastResult()
			return m, nil
		case "enter":
			input := strings.TrimSpace(m.input.Value())
			if input == "" {
				return m, nil
			}
			m.input.Reset()
			m.status = "evaluating..."
			return m, m.evalCmd(input)
		}

	case resultMsg:
		m.appendResult(msg)
		m.status = ""
		return m, nil
	}

	m.input, tiCmd = m.input.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

func (m *model) View() string {
	if !m.ready {
		return "initializing..."
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("jsbind inspector · %s", m.objectName)))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(inputBoxStyle.Width(m.width - 2).Render(m.input.View()))
	b.WriteString("\n")

	status := m.status
	if status == "" {
		status = "enter evaluate · ctrl+y copy · esc quit"
	}
	b.WriteString(statusBarStyle.Render(status))
	return b.String()
}

func (m *model) handleWindowResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	// header + input box (3 lines with border) + status bar
	vpHeight := msg.Height - 6
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = vpHeight
	}
	m.input.Width = msg.Width - 6
	m.viewport.SetContent(m.history.String())
}

// evalCmd evaluates one command off the update loop.
func (m *model) evalCmd(input string) tea.Cmd {
	return func() tea.Msg {
		result, script, err := m.eval.eval(context.Background(), input)
		return resultMsg{input: input, result: result, script: script, err: err}
	}
}

func (m *model) appendResult(msg resultMsg) {
	fmt.Fprintf(m.history, "%s %s\n", promptStyle.Render("»"), msg.input)
	if msg.script != "" {
		fmt.Fprintf(m.history, "%s\n", scriptLabelStyle.Render("script:"))
		fmt.Fprintf(m.history, "%s\n", highlightJS(msg.script))
	}
	if msg.err != nil {
		fmt.Fprintf(m.history, "%s\n\n", errorStyle.Render("error: "+msg.err.Error()))
		m.lastResult = msg.err.Error()
	} else {
		fmt.Fprintf(m.history, "%s\n\n", resultStyle.Render(msg.result))
		m.lastResult = msg.result
	}

	m.viewport.SetContent(m.history.String())
	m.viewport.GotoBottom()
}

func (m *model) copyLastResult() {
	if m.lastResult == "" {
		m.status = "nothing to copy"
		return
	}
	if err := clipboard.WriteAll(m.lastResult); err != nil {
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = "copied last result"
}

// Run starts the interactive inspector bound to the named global object.
func Run(exec jsbind.Executor, objectName string) error {
	m, err := newModel(exec, objectName)
	if err != nil {
		return fmt.Errorf("failed to bind %q: %w", objectName, err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("inspector terminated: %w", err)
	}
	return nil
}
