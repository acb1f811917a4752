package writing

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/bandprep/internal/scoring"
)

type ToggleTaskMsg struct{}

type NewPromptMsg struct{}

type EditDraftMsg struct{}

type MarkDoneMsg struct{}

type Model struct {
	task   string
	prompt string
	draft  string
	done   bool
	width  int
	height int
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	taskStyle = lipgloss.NewStyle().
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

	draftStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	wordCountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			MarginTop(1)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

func New(task, prompt, draft string, done bool, width, height int) Model {
	return Model{
		task:   task,
		prompt: prompt,
		draft:  draft,
		done:   done,
		width:  width,
		height: height,
	}
}

func (m *Model) SetContent(task, prompt, draft string, done bool) {
	m.task = task
	m.prompt = prompt
	m.draft = draft
	m.done = done
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "t":
			return m, func() tea.Msg { return ToggleTaskMsg{} }
		case "p":
			return m, func() tea.Msg { return NewPromptMsg{} }
		case "e":
			return m, func() tea.Msg { return EditDraftMsg{} }
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

	title := fmt.Sprintf("Writing · %s", taskStyle.Render(m.task))
	if m.done {
		title += "  " + doneStyle.Render("✓ done today")
	}
	sections = append(sections, titleStyle.Render(title))

	if m.prompt == "" {
		sections = append(sections, emptyStyle.Render("No prompt yet. Press 'p' to draw one."))
	} else {
		sections = append(sections, promptStyle.Width(m.width-8).Render(m.prompt))
	}

	if m.draft == "" {
		sections = append(sections, emptyStyle.Render("No draft yet. Press 'e' to write."))
	} else {
		sections = append(sections, draftStyle.Width(m.width-8).Render(m.draft))
		sections = append(sections, wordCountStyle.Render(fmt.Sprintf("%d words", scoring.WordCount(m.draft))))
	}

	helpText := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		MarginTop(2).
		Render("t switch task · p new prompt · e edit draft · m mark done")
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
