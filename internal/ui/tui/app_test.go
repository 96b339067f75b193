package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/imperial/internal/domain"
	"github.com/aalvaropc/imperial/internal/usecase"
)

type fakeClock struct{ now time.Time }

func (c fakeClock) Now() time.Time { return c.now }

func testModel(t *testing.T, y int, mo time.Month, d int) model {
	t.Helper()
	return newModel(Deps{Clock: fakeClock{now: time.Date(y, mo, d, 12, 0, 0, 0, time.UTC)}})
}

func keyRune(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

func press(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		mm, ok := next.(model)
		if !ok {
			t.Fatalf("expected model from Update, got %T", next)
		}
		m = mm
	}
	return m
}

func TestNewModel_StartsToday(t *testing.T) {
	m := testModel(t, 2016, time.June, 23)
	if m.date.String() != "2016-06-23" || m.class != 0 {
		t.Fatalf("unexpected initial state: %s class %d", m.date, m.class)
	}
	if !strings.Contains(m.View(), "0 478 016.M3") {
		t.Fatalf("expected imperial rendering in view, got:\n%s", m.View())
	}
}

func TestNewModel_UsesConfiguredClass(t *testing.T) {
	m := newModel(Deps{Clock: fakeClock{now: time.Now()}, DateClass: 4})
	if m.class != 4 {
		t.Fatalf("expected class 4, got %d", m.class)
	}
	m = newModel(Deps{Clock: fakeClock{now: time.Now()}, DateClass: 42})
	if m.class != 0 {
		t.Fatalf("expected out-of-range class to fall back to 0, got %d", m.class)
	}
}

func TestBrowse_MovesDate(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.Msg
		want string
	}{
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, "2016-02-28"},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, "2016-03-01"},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, "2016-02-22"},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, "2016-03-07"},
		{"pgup", tea.KeyMsg{Type: tea.KeyPgUp}, "2016-01-29"},
		{"pgdown", tea.KeyMsg{Type: tea.KeyPgDown}, "2016-03-29"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := press(t, testModel(t, 2016, time.February, 29), c.msg)
			if m.date.String() != c.want {
				t.Fatalf("expected %s, got %s", c.want, m.date)
			}
		})
	}
}

func TestBrowse_TodayResets(t *testing.T) {
	m := testModel(t, 2016, time.June, 23)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyPgDown}, tea.KeyMsg{Type: tea.KeyRight}, keyRune('t'))
	if m.date.String() != "2016-06-23" {
		t.Fatalf("expected today, got %s", m.date)
	}
}

func TestBrowse_ClassBounds(t *testing.T) {
	m := testModel(t, 2016, time.June, 23)

	m = press(t, m, keyRune('-'))
	if m.class != 0 || m.toast == "" {
		t.Fatalf("expected class to stay 0 with a toast, got %d %q", m.class, m.toast)
	}

	for i := 0; i < 12; i++ {
		m = press(t, m, keyRune('+'))
	}
	if m.class != domain.MaxDateClass {
		t.Fatalf("expected class clamped at %d, got %d", domain.MaxDateClass, m.class)
	}
	if !strings.Contains(m.toast, "between 0 and 9") {
		t.Fatalf("expected bounds in toast, got %q", m.toast)
	}
	if !strings.Contains(m.View(), "9 478 016.M3") {
		t.Fatalf("expected class 9 rendering, got:\n%s", m.View())
	}
}

func TestBrowse_StopsAtSupportedRange(t *testing.T) {
	m := testModel(t, 9999, time.December, 31)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.date.String() != "9999-12-31" {
		t.Fatalf("expected date to stay at upper bound, got %s", m.date)
	}
	if m.toast == "" {
		t.Fatal("expected toast explaining the rejected move")
	}
}

func TestJump(t *testing.T) {
	m := testModel(t, 2016, time.June, 23)
	m = press(t, m, keyRune('g'))
	if m.scr != screenJump {
		t.Fatalf("expected jump screen, got %v", m.scr)
	}

	for _, r := range "5098-12-25" {
		m = press(t, m, keyRune(r))
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.scr != screenBrowse || m.date.String() != "5098-12-25" {
		t.Fatalf("expected jump to 5098-12-25, got %s on screen %v", m.date, m.scr)
	}
	if !strings.Contains(m.View(), "098.M6") {
		t.Fatalf("expected millennium label in view, got:\n%s", m.View())
	}
}

func TestJump_InvalidInputKeepsScreen(t *testing.T) {
	m := testModel(t, 2016, time.June, 23)
	m = press(t, m, keyRune('g'))
	for _, r := range "TEST" {
		m = press(t, m, keyRune(r))
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.scr != screenJump || m.date.String() != "2016-06-23" {
		t.Fatalf("expected to stay on jump screen with old date, got %s on %v", m.date, m.scr)
	}
	if m.toast == "" {
		t.Fatal("expected toast for invalid input")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scr != screenBrowse {
		t.Fatalf("expected esc to return to browse, got %v", m.scr)
	}
}

func TestListsFlow(t *testing.T) {
	m := testModel(t, 2016, time.June, 23)
	m = press(t, m, workspaceRefreshedMsg{cwd: "/ws", found: true, root: "/ws"})

	m = press(t, m, dateListsLoadedMsg{root: "/ws", refs: []domain.DateListRef{
		{Name: "Chapter", Path: "/ws/dates/chapter.yaml"},
	}})
	if m.scr != screenLists || len(m.lists.Items()) != 1 {
		t.Fatalf("expected lists screen with one item, got %v / %d", m.scr, len(m.lists.Items()))
	}

	id, err := domain.New(domain.WithDate(domain.CalendarDate{Year: 2016, Month: time.June, Day: 23}))
	if err != nil {
		t.Fatal(err)
	}
	m = press(t, m, dateListConvertedMsg{res: usecase.ListResult{
		Name:    "Chapter",
		Path:    "/ws/dates/chapter.yaml",
		Entries: []usecase.ListEntry{{Name: "founding", Date: id}},
	}})
	if m.scr != screenListView {
		t.Fatalf("expected list view, got %v", m.scr)
	}
	if v := m.View(); !strings.Contains(v, "founding") || !strings.Contains(v, "0 478 016.M3") {
		t.Fatalf("expected converted entry in view, got:\n%s", v)
	}

	m = press(t, m, keyRune('b'))
	if m.scr != screenLists {
		t.Fatalf("expected back to lists, got %v", m.scr)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scr != screenBrowse {
		t.Fatalf("expected back to browse, got %v", m.scr)
	}
}

func TestListsLoadError_ShowsToast(t *testing.T) {
	m := testModel(t, 2016, time.June, 23)
	m = press(t, m, dateListsLoadedMsg{err: &domain.OpError{
		Op:   "workspacefinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: "/ws/imperial.yaml",
		Err:  errors.New("yaml: line 3: did not find expected key"),
	}})
	if m.scr != screenBrowse {
		t.Fatalf("expected to stay on browse, got %v", m.scr)
	}
	if m.toast != "Invalid YAML at imperial.yaml line 3" {
		t.Fatalf("unexpected toast %q", m.toast)
	}
}

func TestInitWorkspaceDone(t *testing.T) {
	m := testModel(t, 2016, time.June, 23)

	next, cmd := m.Update(initWorkspaceDoneMsg{root: "/ws"})
	m = next.(model)
	if cmd == nil || !strings.Contains(m.toast, "/ws") {
		t.Fatalf("expected refresh cmd and toast, got %v %q", cmd, m.toast)
	}

	m = press(t, m, initWorkspaceDoneMsg{root: "/ws", err: errors.New("boom")})
	if m.toast != "Unexpected error (see logs)" {
		t.Fatalf("unexpected toast %q", m.toast)
	}
}

func TestQuit(t *testing.T) {
	m := testModel(t, 2016, time.June, 23)
	_, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("expected quit cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
