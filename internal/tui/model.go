package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/bandprep/internal/audio"
	"github.com/julianstephens/bandprep/internal/constants"
	"github.com/julianstephens/bandprep/internal/models"
	"github.com/julianstephens/bandprep/internal/prompts"
	"github.com/julianstephens/bandprep/internal/storage"
	"github.com/julianstephens/bandprep/internal/tui/components/dashboard"
	"github.com/julianstephens/bandprep/internal/tui/components/listening"
	"github.com/julianstephens/bandprep/internal/tui/components/reading"
	"github.com/julianstephens/bandprep/internal/tui/components/settings"
	"github.com/julianstephens/bandprep/internal/tui/components/speaking"
	"github.com/julianstephens/bandprep/internal/tui/components/writing"
)

type Model struct {
	keeper   *storage.Keeper
	banks    *prompts.Banks
	recorder *audio.Recorder
	settings models.Settings

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	dashboardModel dashboard.Model
	readingModel   reading.Model
	listeningModel listening.Model
	writingModel   writing.Model
	speakingModel  speaking.Model
	settingsModel  settings.Model

	form         *huh.Form
	settingsForm *SettingsFormModel
	urlForm      *URLFormModel
	textForm     *TextFormModel
	logsForm     *LogsFormModel

	alert    string
	quitting bool
	width    int
	height   int
}

func NewModel(keeper *storage.Keeper, banks *prompts.Banks) Model {
	state := keeper.State()

	currentSettings, _ := keeper.Store().GetSettings()
	if currentSettings.TargetBand == "" {
		currentSettings.TargetBand = constants.DefaultTargetBand
	}

	m := Model{
		keeper:   keeper,
		banks:    banks,
		recorder: audio.NewRecorder(currentSettings.MediaDir),
		settings: currentSettings,
		state:    screenToState(state.Screen),
		keys:     DefaultKeyMap(),
		help:     help.New(),

		dashboardModel: dashboard.New(*state, currentSettings, 0, 0),
		readingModel:   reading.New(banks.Reading, banks.AnswerKey(), state.ReadingAnswers, 0, 0),
		listeningModel: listening.New(state.ListeningURL, state.ListeningNotes, state.Checklist.Done(constants.ModuleListening), 0, 0),
		writingModel:   writing.New(state.WritingTask, state.WritingPrompt, state.WritingDraft, state.Checklist.Done(constants.ModuleWriting), 0, 0),
		speakingModel:  speaking.New(state.SpeakingPart, state.SpeakingPrompt, state.SpeakingNotes, state.Checklist.Done(constants.ModuleSpeaking), 0, 0),
		settingsModel:  settings.New(currentSettings, keeper.Store().GetConfigPath(), 0, 0),
	}

	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateReading:
		keys = append(keys, m.keys.Up, m.keys.Down, m.keys.Enter)
	case constants.StateListening, constants.StateWriting, constants.StateSpeaking:
		keys = append(keys, m.keys.Edit, m.keys.MarkDone)
	case constants.StateDashboard, constants.StateSettings:
		keys = append(keys, m.keys.Edit)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter}
	actions := []key.Binding{m.keys.Edit, m.keys.MarkDone}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// screenToState maps a persisted screen name to a top-level tab. Unknown
// names land on the dashboard.
func screenToState(screen string) constants.SessionState {
	for i, name := range constants.ScreenNames {
		if name == screen {
			return constants.SessionState(i)
		}
	}
	return constants.StateDashboard
}

// persistScreen records the active tab in the study state so the next launch
// resumes on the same screen.
func (m *Model) persistScreen() {
	idx := int(m.state)
	if idx < 0 || idx >= len(constants.ScreenNames) {
		return
	}
	m.keeper.State().Screen = constants.ScreenNames[idx]
	m.keeper.Save()
}

// refreshAll pushes the current study state into every component that shows
// a copy of it.
func (m *Model) refreshAll() {
	state := m.keeper.State()
	m.dashboardModel.SetState(*state)
	m.dashboardModel.SetSettings(m.settings)
	m.readingModel.SetAnswers(state.ReadingAnswers)
	m.listeningModel.SetContent(state.ListeningURL, state.ListeningNotes, state.Checklist.Done(constants.ModuleListening))
	m.writingModel.SetContent(state.WritingTask, state.WritingPrompt, state.WritingDraft, state.Checklist.Done(constants.ModuleWriting))
	m.speakingModel.SetContent(state.SpeakingPart, state.SpeakingPrompt, state.SpeakingNotes, state.Checklist.Done(constants.ModuleSpeaking))
	m.speakingModel.SetRecording(m.recorder.Recording())
	m.settingsModel.SetSettings(m.settings)
}

// showAlert switches to the transient alert overlay, remembering where to
// return to.
func (m *Model) showAlert(text string) {
	m.alert = text
	m.previousState = m.state
	m.state = constants.StateAlert
}
