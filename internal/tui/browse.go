package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/useleadnest/leadnest-cli/internal/api"
)

// BrowseModel is the interactive leads table.
type BrowseModel struct {
	table  table.Model
	styles Styles
	count  int
}

// NewBrowseModel builds the table from the given leads.
func NewBrowseModel(leads []api.Lead) BrowseModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Email", Width: 28},
		{Title: "Phone", Width: 14},
		{Title: "Status", Width: 10},
		{Title: "Score", Width: 6},
	}

	rows := make([]table.Row, len(leads))
	for i, lead := range leads {
		score := ""
		if lead.QualityScore > 0 {
			score = strconv.FormatFloat(lead.QualityScore, 'f', 2, 64)
		}
		rows[i] = table.Row{lead.FullName, lead.Email, lead.Phone, lead.Status, score}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		Bold(true).
		Foreground(lipgloss.Color("86")).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("241")).
		BorderBottom(true)
	tableStyles.Selected = tableStyles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("63"))
	t.SetStyles(tableStyles)

	return BrowseModel{
		table:  t,
		styles: DefaultStyles(),
		count:  len(leads),
	}
}

// Init implements tea.Model.
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 6)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m BrowseModel) View() string {
	title := m.styles.Title.Render("Leads")
	count := m.styles.Muted.Render(fmt.Sprintf("%d leads · ↑/↓ to move · q to quit", m.count))
	return title + "\n" + m.styles.Border.Render(m.table.View()) + "\n" + count + "\n"
}

// Browse runs the interactive leads table until the user quits.
func Browse(leads []api.Lead) error {
	_, err := tea.NewProgram(NewBrowseModel(leads)).Run()
	return err
}
