// Package tui implements the interactive collection browser. One browser
// shows one collection: a filter input, the current page of records, and a
// status line fed by the TUI error handler.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/resourcehub/hubctl/internal/collection"
	"github.com/resourcehub/hubctl/internal/errors"
	"github.com/resourcehub/hubctl/internal/format"
)

// Source is the slice of a resource handle the browser drives.
type Source[T collection.Record] interface {
	Name() string
	Load(ctx context.Context) error
	View() *collection.View[T]
	Delete(ctx context.Context, id string) error
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	footerStyle   = lipgloss.NewStyle().Faint(true)
)

type loadedMsg struct{ err error }

type mutationDoneMsg struct{ err error }

// Browser is the bubbletea model for one collection.
type Browser[T collection.Record] struct {
	source    Source[T]
	columns   []format.Column[T]
	filterKey string

	filter    textinput.Model
	filtering bool
	selected  int
	loading   bool

	status     string
	statusType errors.MessageType
	handler    *errors.TUIHandler
}

// NewBrowser creates a browser over a source. filterKey is the criterion the
// filter input feeds, usually "name".
func NewBrowser[T collection.Record](source Source[T], columns []format.Column[T], filterKey string) *Browser[T] {
	input := textinput.New()
	input.Placeholder = "type to filter"
	input.CharLimit = 64

	b := &Browser[T]{
		source:    source,
		columns:   columns,
		filterKey: filterKey,
		filter:    input,
	}
	b.handler = errors.NewTUIHandler(func(msg errors.Message) {
		b.status = msg.Text
		b.statusType = msg.Type
	})
	return b
}

// Init triggers the initial load.
func (b *Browser[T]) Init() tea.Cmd {
	b.loading = true
	return b.loadCmd()
}

func (b *Browser[T]) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{err: b.source.Load(context.Background())}
	}
}

// Update handles key presses and load/mutation results.
func (b *Browser[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		b.loading = false
		if msg.err != nil {
			errors.Report(b.handler, msg.err)
		} else {
			b.status = ""
		}
		b.clampSelection()
		return b, nil

	case mutationDoneMsg:
		if msg.err != nil {
			errors.Report(b.handler, msg.err)
		} else {
			b.handler.Success("deleted")
		}
		b.clampSelection()
		return b, nil

	case tea.KeyMsg:
		if b.filtering {
			return b.updateFilterInput(msg)
		}
		return b.handleKey(msg)
	}
	return b, nil
}

func (b *Browser[T]) updateFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		b.filtering = false
		b.filter.Blur()
		return b, nil
	}
	var cmd tea.Cmd
	b.filter, cmd = b.filter.Update(msg)
	b.source.View().SetCriterion(b.filterKey, collection.Criterion{Text: b.filter.Value()})
	b.clampSelection()
	return b, cmd
}

func (b *Browser[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := b.source.View()
	switch msg.String() {
	case "q", "ctrl+c":
		return b, tea.Quit
	case "/":
		b.filtering = true
		b.filter.Focus()
		return b, textinput.Blink
	case "n", "right":
		view.Next()
		b.selected = 0
	case "p", "left":
		view.Prev()
		b.selected = 0
	case "g":
		view.First()
		b.selected = 0
	case "up", "k":
		if b.selected > 0 {
			b.selected--
		}
	case "down", "j":
		if b.selected < len(view.Page().VisibleItems)-1 {
			b.selected++
		}
	case "r":
		b.loading = true
		return b, b.loadCmd()
	case "x", "delete":
		return b.deleteSelected()
	case "esc":
		b.filter.SetValue("")
		view.ClearCriteria()
		b.clampSelection()
	}
	return b, nil
}

func (b *Browser[T]) deleteSelected() (tea.Model, tea.Cmd) {
	page := b.source.View().Page()
	if b.selected >= len(page.VisibleItems) {
		return b, nil
	}
	id := page.VisibleItems[b.selected].RecordID()
	return b, func() tea.Msg {
		return mutationDoneMsg{err: b.source.Delete(context.Background(), id)}
	}
}

func (b *Browser[T]) clampSelection() {
	visible := len(b.source.View().Page().VisibleItems)
	if b.selected >= visible {
		b.selected = visible - 1
	}
	if b.selected < 0 {
		b.selected = 0
	}
}

// View renders the browser.
func (b *Browser[T]) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(b.source.Name()))
	sb.WriteString("\n")
	if b.filtering || b.filter.Value() != "" {
		sb.WriteString(b.filter.View())
		sb.WriteString("\n")
	}

	if b.loading {
		sb.WriteString("loading...\n")
		return sb.String()
	}

	view := b.source.View()
	page := view.Page()

	var header []string
	for _, col := range b.columns {
		header = append(header, format.Pad(col.Name, col.Width, "left"))
	}
	sb.WriteString(headerStyle.Render(strings.Join(header, "  ")))
	sb.WriteString("\n")

	for i, item := range page.VisibleItems {
		var cells []string
		for _, col := range b.columns {
			cells = append(cells, format.Truncate(col.Extract(item), col.Width))
		}
		line := strings.Join(cells, "  ")
		if i == b.selected {
			line = selectedStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	if len(page.VisibleItems) == 0 {
		sb.WriteString("no records match\n")
	}

	sb.WriteString(footerStyle.Render(fmt.Sprintf(
		"page %d/%d (%d records)  / filter  n/p page  x delete  r reload  q quit",
		page.CurrentPage, page.TotalPages, view.FilteredLen())))
	sb.WriteString("\n")

	if b.status != "" {
		style := statusStyle
		if b.statusType == errors.MessageTypeError {
			style = errorStyle
		}
		sb.WriteString(style.Render(b.status))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Run starts the browser program and blocks until quit.
func Run[T collection.Record](source Source[T], columns []format.Column[T], filterKey string) error {
	program := tea.NewProgram(NewBrowser(source, columns, filterKey), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
