package listening

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type EditURLMsg struct{}

type EditNotesMsg struct{}

type FetchMsg struct{}

type MarkDoneMsg struct{}

type Model struct {
	url    string
	notes  string
	done   bool
	width  int
	height int
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	notesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			MarginTop(1)
)

func New(url, notes string, done bool, width, height int) Model {
	return Model{
		url:    url,
		notes:  notes,
		done:   done,
		width:  width,
		height: height,
	}
}

func (m *Model) SetContent(url, notes string, done bool) {
	m.url = url
	m.notes = notes
	m.done = done
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "u":
			return m, func() tea.Msg { return EditURLMsg{} }
		case "e":
			return m, func() tea.Msg { return EditNotesMsg{} }
		case "g":
			if m.url != "" {
				return m, func() tea.Msg { return FetchMsg{} }
			}
		case "m":
			if !m.done {
				return m, func() tea.Msg { return MarkDoneMsg{} }
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var sections []string

	title := "Listening"
	if m.done {
		title += "  " + doneStyle.Render("✓ done today")
	}
	sections = append(sections, titleStyle.Render(title))

	url := valueStyle.Render(m.url)
	if m.url == "" {
		url = emptyStyle.Render("not set (press 'u')")
	}
	sections = append(sections, fmt.Sprintf("%s %s", labelStyle.Render("Audio URL:"), url))

	if m.notes == "" {
		sections = append(sections, notesStyle.Render(emptyStyle.Render("No notes yet.")))
	} else {
		sections = append(sections, notesStyle.Width(m.width-8).Render(m.notes))
	}

	helpText := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		MarginTop(2).
		Render("u set URL · g fetch audio · e edit notes · m mark done")
	sections = append(sections, helpText)

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Left,
		lipgloss.Top,
		lipgloss.NewStyle().Padding(1, 4).Render(content),
	)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
