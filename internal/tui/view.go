package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/bandprep/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateDashboard:
		content = m.dashboardModel.View()
	case constants.StateReading:
		content = m.readingModel.View()
	case constants.StateListening:
		content = m.listeningModel.View()
	case constants.StateWriting:
		content = m.writingModel.View()
	case constants.StateSpeaking:
		content = m.speakingModel.View()
	case constants.StateSettings:
		content = m.settingsModel.View()
	case constants.StateEditSettings, constants.StateEditURL, constants.StateEditNotes,
		constants.StateEditDraft, constants.StateEditSpeakingNotes, constants.StateEditLogs:
		content = m.form.View()
	case constants.StateConfirmClear:
		content = m.viewConfirmClear()
	case constants.StateAlert:
		content = m.viewAlert()
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)

	return ui
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Dashboard", "Reading", "Listening", "Writing", "Speaking", "Settings"}
	for i, title := range tabTitles {
		if m.state == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	streak := streakBadgeStyle.Render(fmt.Sprintf("🔥 %d", m.keeper.State().Streak))
	return lipgloss.JoinHorizontal(lipgloss.Top, append(tabs, streak)...)
}

func (m Model) viewConfirmClear() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Clear all reading answers?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewAlert() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			alertStyle.Render(m.alert),
			"",
			"Press any key to continue",
		),
	)
}
