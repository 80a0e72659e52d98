package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resourcehub/hubctl/internal/collection"
	hberrors "github.com/resourcehub/hubctl/internal/errors"
	"github.com/resourcehub/hubctl/internal/format"
)

type browseRecord struct {
	ID   string
	Name string
}

func (r browseRecord) RecordID() string { return r.ID }

type fakeSource struct {
	cache     *collection.Cache[browseRecord]
	view      *collection.View[browseRecord]
	loadErr   error
	deleteErr error
	deleted   []string
}

func newFakeSource(t *testing.T, names ...string) *fakeSource {
	t.Helper()
	items := make([]browseRecord, len(names))
	for i, name := range names {
		items[i] = browseRecord{ID: name, Name: name}
	}
	cache := collection.NewCache[browseRecord]()
	require.NoError(t, cache.ApplyLoad(cache.BeginLoad(), items, nil))

	schema := collection.Schema[browseRecord]{
		"name": {
			Kind: collection.FieldText,
			Text: func(r browseRecord) (string, bool) { return r.Name, true },
		},
	}
	return &fakeSource{
		cache: cache,
		view:  collection.NewView(cache, schema, 3),
	}
}

func (f *fakeSource) Name() string                       { return "records" }
func (f *fakeSource) Load(context.Context) error         { return f.loadErr }
func (f *fakeSource) View() *collection.View[browseRecord] { return f.view }

func (f *fakeSource) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	f.cache.Remove(id)
	return nil
}

func browseColumns() []format.Column[browseRecord] {
	return []format.Column[browseRecord]{
		{Name: "Name", Width: 12, Extract: func(r browseRecord) string { return r.Name }},
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func settle(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			break
		}
		m, cmd = m.Update(msg)
	}
	return m
}

func TestBrowserPagingKeys(t *testing.T) {
	src := newFakeSource(t, "a", "b", "c", "d", "e")
	b := NewBrowser(src, browseColumns(), "name")
	m := settle(t, b, b.Init())

	m, _ = m.Update(key("n"))
	assert.Equal(t, 2, src.view.Page().CurrentPage)

	// Next on the last page is a no-op.
	m, _ = m.Update(key("n"))
	assert.Equal(t, 2, src.view.Page().CurrentPage)

	m, _ = m.Update(key("p"))
	assert.Equal(t, 1, src.view.Page().CurrentPage)

	_, _ = m.Update(key("p"))
	assert.Equal(t, 1, src.view.Page().CurrentPage)
}

func TestBrowserFilterTyping(t *testing.T) {
	src := newFakeSource(t, "anna", "bob", "anthony")
	b := NewBrowser(src, browseColumns(), "name")
	m := settle(t, b, b.Init())

	m, _ = m.Update(key("/"))
	m, _ = m.Update(key("a"))
	m, _ = m.Update(key("n"))

	assert.Equal(t, 2, src.view.FilteredLen())
	view := m.(*Browser[browseRecord]).View()
	assert.Contains(t, view, "anna")
	assert.NotContains(t, view, "bob")
}

func TestBrowserDeleteSelected(t *testing.T) {
	src := newFakeSource(t, "a", "b", "c")
	b := NewBrowser(src, browseColumns(), "name")
	m := settle(t, b, b.Init())

	m, cmd := m.Update(key("x"))
	m = settle(t, m, cmd)

	assert.Equal(t, []string{"a"}, src.deleted)
	assert.Equal(t, 2, src.view.FilteredLen())
	assert.Contains(t, m.(*Browser[browseRecord]).View(), "deleted")
}

func TestBrowserDuplicateDeleteShowsWarning(t *testing.T) {
	src := newFakeSource(t, "a")
	src.deleteErr = &hberrors.DuplicateOperationError{Key: "a", Kind: "delete"}
	b := NewBrowser(src, browseColumns(), "name")
	m := settle(t, b, b.Init())

	m, cmd := m.Update(key("x"))
	m = settle(t, m, cmd)

	browser := m.(*Browser[browseRecord])
	assert.Equal(t, hberrors.MessageTypeWarning, browser.statusType)
	assert.Contains(t, browser.status, "already in progress")
}

func TestBrowserLoadErrorOnStatusLine(t *testing.T) {
	src := newFakeSource(t)
	src.loadErr = &hberrors.FetchError{Status: 500, Path: "/api/v1/records", Message: "boom"}
	b := NewBrowser(src, browseColumns(), "name")
	m := settle(t, b, b.Init())

	browser := m.(*Browser[browseRecord])
	assert.Equal(t, hberrors.MessageTypeError, browser.statusType)
	assert.Contains(t, browser.status, "boom")
}

func TestBrowserQuit(t *testing.T) {
	src := newFakeSource(t, "a")
	b := NewBrowser(src, browseColumns(), "name")
	m := settle(t, b, b.Init())

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
