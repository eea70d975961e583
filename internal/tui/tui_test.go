package tui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/useleadnest/leadnest-cli/internal/api"
	"github.com/useleadnest/leadnest-cli/internal/session"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("a@b.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("a@"))
}

func TestTerminalNotifier(t *testing.T) {
	var buf bytes.Buffer
	notifier := &TerminalNotifier{styles: DefaultStyles(), out: &buf}

	notifier.Notify(session.KindSuccess, "Logged in.")
	notifier.Notify(session.KindError, "Session expired. Please log in again.")
	notifier.Notify(session.KindInfo, "Logged out.")

	out := buf.String()
	assert.Contains(t, out, "Logged in.")
	assert.Contains(t, out, "Session expired")
	assert.Contains(t, out, "Logged out.")
}

func TestNewBrowseModel(t *testing.T) {
	leads := []api.Lead{
		{FullName: "Ada Lovelace", Email: "ada@example.com", Status: "new", QualityScore: 0.9},
		{FullName: "Grace Hopper", Email: "grace@example.com", Status: "booked"},
	}

	model := NewBrowseModel(leads)
	rows := model.table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "Ada Lovelace", rows[0][0])
	assert.Equal(t, "0.90", rows[0][4])
	assert.Equal(t, "", rows[1][4], "zero score renders blank")

	view := model.View()
	assert.Contains(t, view, "Leads")
	assert.Contains(t, view, "2 leads")
}

func TestBrowseModelQuits(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	}

	for _, key := range keys {
		model := NewBrowseModel(nil)
		_, cmd := model.Update(key)
		require.NotNil(t, cmd, "key %q should quit", key.String())
		assert.Equal(t, tea.Quit(), cmd())
	}
}
