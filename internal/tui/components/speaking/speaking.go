package speaking

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type CyclePartMsg struct{}

type NewPromptMsg struct{}

type ToggleRecordMsg struct{}

type EditNotesMsg struct{}

type MarkDoneMsg struct{}

type Model struct {
	part      string
	prompt    string
	notes     string
	recording bool
	done      bool
	width     int
	height    int
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	partStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Italic(true).
			MarginTop(1).
			MarginBottom(1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	notesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			MarginTop(1)

	recordingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true).
			Blink(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

func New(part, prompt, notes string, done bool, width, height int) Model {
	return Model{
		part:   part,
		prompt: prompt,
		notes:  notes,
		done:   done,
		width:  width,
		height: height,
	}
}

func (m *Model) SetContent(part, prompt, notes string, done bool) {
	m.part = part
	m.prompt = prompt
	m.notes = notes
	m.done = done
}

func (m *Model) SetRecording(recording bool) {
	m.recording = recording
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "p":
			return m, func() tea.Msg { return CyclePartMsg{} }
		case "n":
			return m, func() tea.Msg { return NewPromptMsg{} }
		case "r":
			return m, func() tea.Msg { return ToggleRecordMsg{} }
		case "e":
			return m, func() tea.Msg { return EditNotesMsg{} }
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

	title := fmt.Sprintf("Speaking · %s", partStyle.Render(m.part))
	if m.done {
		title += "  " + doneStyle.Render("✓ done today")
	}
	if m.recording {
		title += "  " + recordingStyle.Render("● REC")
	}
	sections = append(sections, titleStyle.Render(title))

	if m.prompt == "" {
		sections = append(sections, emptyStyle.Render("No prompt yet. Press 'n' to draw one."))
	} else {
		sections = append(sections, promptStyle.Width(m.width-8).Render(m.prompt))
	}

	if m.notes == "" {
		sections = append(sections, notesStyle.Render(emptyStyle.Render("No notes yet.")))
	} else {
		sections = append(sections, notesStyle.Width(m.width-8).Render(m.notes))
	}

	helpText := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		MarginTop(2).
		Render("p cycle part · n new prompt · r record/stop · e edit notes · m mark done")
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
