package dashboard

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/bandprep/internal/constants"
	"github.com/julianstephens/bandprep/internal/models"
	"github.com/julianstephens/bandprep/internal/utils"
)

type EditLogsMsg struct{}

type Model struct {
	state    models.StudyState
	settings models.Settings
	width    int
	height   int
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	streakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(18)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	sectionStyle = lipgloss.NewStyle().
			MarginTop(1).
			MarginBottom(1)

	logStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

func New(state models.StudyState, settings models.Settings, width, height int) Model {
	return Model{
		state:    state,
		settings: settings,
		width:    width,
		height:   height,
	}
}

func (m *Model) SetState(state models.StudyState) {
	m.state = state
}

func (m *Model) SetSettings(settings models.Settings) {
	m.settings = settings
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "e":
			return m, func() tea.Msg { return EditLogsMsg{} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var sections []string

	sections = append(sections, titleStyle.Render("Today"))

	streakLine := fmt.Sprintf("%s %s", labelStyle.Render("Streak:"), streakStyle.Render(fmt.Sprintf("%d day(s)", m.state.Streak)))
	lastActive := m.state.LastActive
	if lastActive == "" {
		lastActive = "never"
	}
	sections = append(sections, lipgloss.JoinVertical(
		lipgloss.Left,
		streakLine,
		fmt.Sprintf("%s %s", labelStyle.Render("Last active:"), valueStyle.Render(lastActive)),
		fmt.Sprintf("%s %s", labelStyle.Render("Progress:"), valueStyle.Render(fmt.Sprintf("%d%%", m.state.Checklist.Progress()))),
	))

	var items []string
	items = append(items, titleStyle.Render("Daily Checklist"))
	for _, mod := range constants.Modules {
		if m.state.Checklist.Done(mod) {
			items = append(items, doneStyle.Render("✓ "+string(mod)))
		} else {
			items = append(items, pendingStyle.Render("○ "+string(mod)))
		}
	}
	sections = append(sections, sectionStyle.Render(lipgloss.JoinVertical(lipgloss.Left, items...)))

	var exam []string
	exam = append(exam, fmt.Sprintf("%s %s", labelStyle.Render("Target band:"), valueStyle.Render(m.settings.TargetBand)))
	if m.settings.ExamDate != "" {
		if days, err := utils.DaysUntil(m.settings.ExamDate); err == nil {
			exam = append(exam, fmt.Sprintf("%s %s", labelStyle.Render("Exam in:"), valueStyle.Render(fmt.Sprintf("%d day(s)", days))))
		}
	}
	sections = append(sections, sectionStyle.Render(lipgloss.JoinVertical(lipgloss.Left, exam...)))

	var logs []string
	logs = append(logs, titleStyle.Render("Logs"))
	logs = append(logs, fmt.Sprintf("%s %s", labelStyle.Render("Weaknesses:"), logStyle.Render(preview(m.state.WeaknessLog))))
	logs = append(logs, fmt.Sprintf("%s %s", labelStyle.Render("Vocabulary:"), logStyle.Render(preview(m.state.VocabLog))))
	sections = append(sections, sectionStyle.Render(lipgloss.JoinVertical(lipgloss.Left, logs...)))

	helpText := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		MarginTop(1).
		Render("Press 'e' to edit the weakness and vocabulary logs")
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

func preview(s string) string {
	if s == "" {
		return "(empty)"
	}
	const max = 60
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max]) + "…"
	}
	return s
}
