package settings

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/bandprep/internal/models"
	"github.com/julianstephens/bandprep/internal/utils"
)

type EditSettingsMsg struct{}

type Model struct {
	settings   models.Settings
	configPath string
	width      int
	height     int
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(16)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	sectionStyle = lipgloss.NewStyle().
			MarginTop(1).
			MarginBottom(1)
)

func New(settings models.Settings, configPath string, width, height int) Model {
	return Model{
		settings:   settings,
		configPath: configPath,
		width:      width,
		height:     height,
	}
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
			return m, func() tea.Msg { return EditSettingsMsg{} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var sections []string

	sections = append(sections, titleStyle.Render("Settings"))

	examDate := m.settings.ExamDate
	if examDate == "" {
		examDate = emptyStyle.Render("not set")
	} else if days, err := utils.DaysUntil(m.settings.ExamDate); err == nil {
		examDate = valueStyle.Render(fmt.Sprintf("%s (%d day(s) away)", m.settings.ExamDate, days))
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		fmt.Sprintf("%s %s", labelStyle.Render("Target band:"), valueStyle.Render(m.settings.TargetBand)),
		fmt.Sprintf("%s %s", labelStyle.Render("Exam date:"), examDate),
		fmt.Sprintf("%s %s", labelStyle.Render("Media dir:"), valueStyle.Render(m.settings.MediaDir)),
		fmt.Sprintf("%s %s", labelStyle.Render("Storage:"), valueStyle.Render(m.configPath)),
	)
	sections = append(sections, sectionStyle.Render(content))

	helpText := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		MarginTop(2).
		Render("Press 'e' to edit settings")
	sections = append(sections, helpText)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Left,
		lipgloss.Top,
		lipgloss.NewStyle().Padding(2, 4).Render(lipgloss.JoinVertical(lipgloss.Left, sections...)),
	)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
