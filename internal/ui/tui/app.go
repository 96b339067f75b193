package tui

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/imperial/internal/domain"
	"github.com/aalvaropc/imperial/internal/infra/clock"
	"github.com/aalvaropc/imperial/internal/usecase"
)

type screen int

const (
	screenBrowse screen = iota
	screenJump
	screenLists
	screenListView
)

type listItem struct {
	ref domain.DateListRef
	rel string
}

func (i listItem) Title() string       { return i.ref.Name }
func (i listItem) Description() string { return i.rel }
func (i listItem) FilterValue() string { return i.ref.Name }

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	scr   screen
	date  domain.CalendarDate
	class int

	jump    textinput.Model
	lists   list.Model
	listRes usecase.ListResult

	workspaceFound bool
	workspaceRoot  string
	cwd            string

	toast string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Clock == nil {
		deps.Clock = clock.New(time.Local)
	}
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	ti := textinput.New()
	ti.Placeholder = domain.CalendarLayout
	ti.CharLimit = len(domain.CalendarLayout)
	ti.Width = 20

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Date lists"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	class := deps.DateClass
	if domain.ValidateDateClass(class) != nil {
		class = domain.MinDateClass
	}

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		log:   log.With("component", "tui"),
		scr:   screenBrowse,
		date:  domain.NewCalendarDate(deps.Clock.Now()),
		class: class,
		jump:  ti,
		lists: l,
	}
}

func (m model) Init() tea.Cmd { return cmdRefreshWorkspace(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.lists.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.cwd = msg.cwd
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.log.Error("tui.init_workspace", "root", msg.root, "err", msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace initialized at " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case dateListsLoadedMsg:
		if msg.err != nil && !domain.IsKind(msg.err, domain.KindNotFound) {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			rel, err := filepath.Rel(msg.root, r.Path)
			if err != nil {
				rel = r.Path
			}
			items = append(items, listItem{ref: r, rel: rel})
		}
		cmd := m.lists.SetItems(items)
		m.scr = screenLists
		return m, cmd

	case dateListConvertedMsg:
		if msg.err != nil {
			m.log.Error("tui.convert_list", "err", msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.listRes = msg.res
		m.scr = screenListView
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scr {
		case screenJump:
			return m.updateJump(msg)
		case screenLists:
			return m.updateLists(msg)
		case screenListView:
			return m.updateListView(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	if m.scr == screenJump {
		var cmd tea.Cmd
		m.jump, cmd = m.jump.Update(msg)
		return m, cmd
	}
	if m.scr == screenLists {
		var cmd tea.Cmd
		m.lists, cmd = m.lists.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.toast = ""

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left":
		return m.moveTo(m.date.AddDays(-1)), nil
	case "right":
		return m.moveTo(m.date.AddDays(1)), nil
	case "up":
		return m.moveTo(m.date.AddDays(-7)), nil
	case "down":
		return m.moveTo(m.date.AddDays(7)), nil
	case "pgup":
		return m.moveTo(m.date.AddMonths(-1)), nil
	case "pgdown":
		return m.moveTo(m.date.AddMonths(1)), nil
	case "+", "=":
		return m.setClass(m.class + 1), nil
	case "-", "_":
		return m.setClass(m.class - 1), nil
	case "t":
		return m.moveTo(domain.NewCalendarDate(m.deps.Clock.Now())), nil
	case "g":
		m.scr = screenJump
		m.jump.SetValue("")
		return m, m.jump.Focus()
	case "l":
		root := m.workspaceRoot
		if !m.workspaceFound {
			root = m.cwd
		}
		return m, cmdLoadDateLists(root)
	case "i":
		if m.workspaceFound {
			m.toast = "Workspace already exists at " + m.workspaceRoot
			return m, nil
		}
		return m, cmdInitWorkspaceHere(m.deps, m.cwd)
	}
	return m, nil
}

func (m model) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.jump.Blur()
		m.scr = screenBrowse
		return m, nil
	case "enter":
		d, err := domain.ParseCalendarDate(m.jump.Value())
		if err != nil {
			m.toast = userMessage(err)
			return m, nil
		}
		m.jump.Blur()
		m.scr = screenBrowse
		return m.moveTo(d), nil
	}

	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

func (m model) updateLists(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Let the list own keys while its filter is being typed.
	if m.lists.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.lists, cmd = m.lists.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "esc", "b":
		m.scr = screenBrowse
		return m, nil
	case "enter":
		it, ok := m.lists.SelectedItem().(listItem)
		if !ok {
			return m, nil
		}
		root := m.workspaceRoot
		if !m.workspaceFound {
			root = m.cwd
		}
		return m, cmdConvertDateList(root, it.ref.Path)
	}

	var cmd tea.Cmd
	m.lists, cmd = m.lists.Update(msg)
	return m, cmd
}

func (m model) updateListView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b":
		m.scr = screenLists
	case "q":
		m.scr = screenBrowse
	}
	return m, nil
}

// moveTo selects d when it is a supported date; otherwise the selection is
// kept and the reason is shown.
func (m model) moveTo(d domain.CalendarDate) model {
	if err := d.Validate(); err != nil {
		m.toast = userMessage(err)
		return m
	}
	m.date = d
	if m.deps.Debug {
		m.log.Debug("tui.move", "date", d.String(), "class", m.class)
	}
	return m
}

func (m model) setClass(class int) model {
	if err := domain.ValidateDateClass(class); err != nil {
		m.toast = userMessage(err)
		return m
	}
	m.class = class
	return m
}

func (m model) current() (*domain.ImperialDate, error) {
	return domain.New(domain.WithDate(m.date), domain.WithDateClass(m.class))
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Imperial") + "\n" +
		m.theme.Subtitle.Render("Calendar dates in millennium/year-fraction notation") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Help.Render("No workspace found (press i to create one here)")
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenBrowse:
		help := m.theme.Help.Render("←/→ day • ↑/↓ week • pgup/pgdn month • +/- class • t today • g go to • l lists • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.renderDateCard() + toast + "\n" + help)

	case screenJump:
		card := m.theme.Card.Render(
			m.theme.Title.Render("Go to date") + "\n\n" + m.jump.View(),
		)
		help := m.theme.Help.Render("enter go • esc cancel")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + card + toast + "\n" + help)

	case screenLists:
		help := m.theme.Help.Render("↑/↓ navigate • enter convert • / search • esc back")
		body := m.theme.Card.Render(m.lists.View())
		if len(m.lists.Items()) == 0 {
			body = m.theme.Card.Render("No date lists found under " + m.datesHint())
		}
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + body + toast + "\n" + help)

	case screenListView:
		help := m.theme.Help.Render("esc/b back • q home")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(renderListResult(m.theme, m.listRes)) + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (m model) renderDateCard() string {
	id, err := m.current()
	if err != nil {
		return m.theme.Card.Render(userMessage(err))
	}
	return m.theme.Card.Render(renderDate(m.theme, id))
}

func (m model) datesHint() string {
	root := m.workspaceRoot
	if !m.workspaceFound {
		root = m.cwd
	}
	return filepath.Join(root, "dates")
}
