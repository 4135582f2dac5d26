package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hearthlabs/parley/internal/core/services"
)

const (
	greetingText = `Hello! Ask me anything, or say "goodbye" to leave.`
	farewellText = "Goodbye, have a nice day!"
)

// responseMsg carries a composed response back into the update loop.
type responseMsg struct {
	text string
}

// errMsg carries a resolution error back into the update loop.
type errMsg struct {
	err error
}

// styles holds the lipgloss styles for the chat transcript.
type chatStyles struct {
	Title lipgloss.Style
	User  lipgloss.Style
	Bot   lipgloss.Style
	Error lipgloss.Style
	Muted lipgloss.Style
}

func defaultChatStyles() chatStyles {
	return chatStyles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		User:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4")),
		Bot:   lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4")),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	}
}

// App is the chat TUI following the Elm architecture. It implements
// tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles chatStyles

	viewport   viewport.Model
	input      textinput.Model
	transcript []string

	waiting bool
	leaving bool
	ready   bool
	width   int
	height  int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new chat TUI with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "Type a question..."
	input.Prompt = "> "
	input.Focus()

	greeting := ports.Greeting
	if greeting == "" {
		greeting = greetingText
	}

	s := defaultChatStyles()
	return &App{
		ports:      ports,
		ctx:        context.Background(),
		styles:     s,
		input:      input,
		transcript: []string{s.Bot.Render("parley: " + greeting)},
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		inputHeight := 3
		if !a.ready {
			a.viewport = viewport.New(msg.Width, msg.Height-inputHeight)
			a.ready = true
		} else {
			a.viewport.Width = msg.Width
			a.viewport.Height = msg.Height - inputHeight
		}
		a.refreshViewport()
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return a, tea.Quit
		case tea.KeyEnter:
			return a.submit()
		}

	case responseMsg:
		a.waiting = false
		a.append(a.styles.Bot.Render("parley: " + msg.text))
		return a, nil

	case errMsg:
		a.waiting = false
		if services.IsRecoverable(msg.err) {
			a.append(a.styles.Error.Render(fmt.Sprintf("error: %v", msg.err)))
			return a, nil
		}
		return a, tea.Quit
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	cmds = append(cmds, cmd)
	a.viewport, cmd = a.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

// submit handles an Enter press: echoes the utterance, quits on a
// farewell, otherwise kicks off resolution.
func (a *App) submit() (tea.Model, tea.Cmd) {
	if a.waiting || a.leaving {
		return a, nil
	}

	utterance := strings.TrimSpace(a.input.Value())
	if utterance == "" {
		return a, nil
	}
	a.input.Reset()
	a.append(a.styles.User.Render("you: ") + utterance)

	if strings.EqualFold(utterance, "goodbye") {
		a.leaving = true
		a.append(a.styles.Bot.Render("parley: " + farewellText))
		return a, tea.Quit
	}

	a.waiting = true
	return a, a.resolve(utterance)
}

// resolve runs the pipeline off the update loop.
func (a *App) resolve(utterance string) tea.Cmd {
	return func() tea.Msg {
		result, err := a.ports.Resolver.Understand(a.ctx, utterance)
		if err != nil {
			return errMsg{err: err}
		}
		return responseMsg{text: a.ports.Resolver.Respond(result)}
	}
}

func (a *App) append(line string) {
	a.transcript = append(a.transcript, line)
	a.refreshViewport()
}

func (a *App) refreshViewport() {
	if !a.ready {
		return
	}
	a.viewport.SetContent(strings.Join(a.transcript, "\n"))
	a.viewport.GotoBottom()
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	status := a.styles.Muted.Render("enter to send, esc to quit")
	if a.waiting {
		status = a.styles.Muted.Render("thinking...")
	}

	return fmt.Sprintf("%s\n%s\n%s",
		a.viewport.View(),
		a.input.View(),
		status,
	)
}

// Transcript returns the rendered transcript lines. Used by tests.
func (a *App) Transcript() []string {
	return a.transcript
}
