package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/loan-mgt/ipfs-viewer/internal/usecase"
)

type model struct {
	theme Theme
	deps  Deps

	input textinput.Model
	vp    viewport.Model
	ready bool

	session     *usecase.Session
	cancelFetch context.CancelFunc

	loading bool
	out     *usecase.ViewOutput
	errMsg  string
	toast   string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	ti := textinput.New()
	ti.Placeholder = "ipfs://bafy... or a bare CID"
	ti.Prompt = "locator> "
	ti.Focus()

	return model{
		theme:   DefaultTheme(),
		deps:    deps,
		input:   ti,
		session: usecase.NewSession(),
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 6
		if !m.ready {
			m.vp = viewport.New(msg.Width-4, msg.Height-headerHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width - 4
			m.vp.Height = msg.Height - headerHeight
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.teardown()
			return m, tea.Quit

		case "esc":
			if m.input.Focused() {
				m.input.Blur()
			} else {
				m.input.Focus()
			}
			return m, nil

		case "enter":
			return m.startView()
		}

		// q and s are plain runes in the CID base32 alphabet, so they only
		// act as commands while the locator input is blurred.
		if !m.input.Focused() {
			switch msg.String() {
			case "q":
				m.teardown()
				return m, tea.Quit

			case "s":
				if m.out != nil && m.out.Result.Download != nil && m.deps.Store != nil {
					m.toast = "Saving..."
					return m, cmdSave(m.deps, *m.out)
				}
			}
		}

	case viewDoneMsg:
		return m.finishView(msg)

	case saveDoneMsg:
		if msg.err != nil {
			m.deps.Logger.Error("save.failed", "error", msg.err)
			m.errMsg = userMessage(msg.err)
			m.toast = ""
			return m, nil
		}
		m.toast = "Saved to " + msg.path
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.vp, cmd = m.vp.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// startView supersedes any in-flight request: the previous fetch is
// cancelled and its eventual answer (if it still arrives) is dropped by
// token comparison.
func (m model) startView() (tea.Model, tea.Cmd) {
	locator := strings.TrimSpace(m.input.Value())
	if locator == "" {
		return m, nil
	}

	// Land in browse mode so s/q act on the result; esc refocuses the input.
	m.input.Blur()

	if m.cancelFetch != nil {
		m.cancelFetch()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelFetch = cancel

	token := m.session.Next()
	m.loading = true
	m.errMsg = ""
	m.toast = ""

	m.deps.Logger.Info("view.requested", "locator", locator)
	return m, cmdView(m.deps, ctx, token, locator)
}

func (m model) finishView(msg viewDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if m.session.Latest(msg.token) {
			m.loading = false
			m.errMsg = userMessage(msg.err)
			m.deps.Logger.Warn("view.failed", "error", msg.err)
		}
		return m, nil
	}

	if msg.out.RenderErr != nil {
		if m.session.Latest(msg.token) {
			m.loading = false
			m.errMsg = renderMessage(msg.out.RenderErr)
			m.deps.Logger.Warn("view.render_error", "stage", msg.out.RenderErr.Stage, "message", msg.out.RenderErr.Message)
		}
		return m, nil
	}

	if !m.session.Commit(msg.token, msg.out.Result) {
		// Superseded; Commit already released the resource handle.
		return m, nil
	}

	m.loading = false
	out := msg.out
	m.out = &out
	m.vp.SetContent(resultView(m.theme, out, m.vp.Width))
	m.vp.GotoTop()
	return m, nil
}

func (m *model) teardown() {
	if m.cancelFetch != nil {
		m.cancelFetch()
	}
	m.session.Close()
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("ipfs-viewer") + "\n")
	b.WriteString(m.input.View() + "\n")

	switch {
	case m.loading:
		b.WriteString(m.theme.Subtitle.Render("Fetching...") + "\n")
	case m.errMsg != "":
		b.WriteString(m.theme.Error.Render(m.errMsg) + "\n")
	case m.toast != "":
		b.WriteString(m.theme.Subtitle.Render(m.toast) + "\n")
	default:
		b.WriteString("\n")
	}

	if m.ready {
		b.WriteString(m.vp.View() + "\n")
	}
	if m.input.Focused() {
		b.WriteString(m.theme.Help.Render("enter: view · esc: browse"))
	} else {
		b.WriteString(m.theme.Help.Render("esc: edit locator · s: save · q: quit"))
	}

	return wrap.Render(b.String())
}
