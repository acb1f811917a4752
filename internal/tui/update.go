package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/bandprep/internal/audio"
	"github.com/julianstephens/bandprep/internal/constants"
	"github.com/julianstephens/bandprep/internal/logger"
	"github.com/julianstephens/bandprep/internal/models"
	"github.com/julianstephens/bandprep/internal/scoring"
	"github.com/julianstephens/bandprep/internal/tui/components/dashboard"
	"github.com/julianstephens/bandprep/internal/tui/components/listening"
	"github.com/julianstephens/bandprep/internal/tui/components/reading"
	"github.com/julianstephens/bandprep/internal/tui/components/settings"
	"github.com/julianstephens/bandprep/internal/tui/components/speaking"
	"github.com/julianstephens/bandprep/internal/tui/components/writing"
	"github.com/julianstephens/bandprep/internal/utils"
)

type fetchDoneMsg struct {
	path string
	err  error
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle Edit Settings State
	if m.state == constants.StateEditSettings {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateSettings
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			m.settings.TargetBand = strings.TrimSpace(m.settingsForm.TargetBand)
			m.settings.ExamDate = strings.TrimSpace(m.settingsForm.ExamDate)
			m.settings.MediaDir = strings.TrimSpace(m.settingsForm.MediaDir)

			if err := m.keeper.Store().SaveSettings(m.settings); err != nil {
				// Stay in form state on save error
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}

			m.recorder = audio.NewRecorder(m.settings.MediaDir)
			m.refreshAll()
			m.state = constants.StateSettings
		case huh.StateAborted:
			m.state = constants.StateSettings
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Edit URL State
	if m.state == constants.StateEditURL {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateListening
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			m.keeper.State().ListeningURL = strings.TrimSpace(m.urlForm.URL)
			m.keeper.Save()
			m.refreshAll()
			m.state = constants.StateListening
		case huh.StateAborted:
			m.state = constants.StateListening
		}
		return m, tea.Batch(cmds...)
	}

	// Handle free-text edit states. They share one form model; only the
	// target field and the screen to return to differ.
	if m.state == constants.StateEditNotes || m.state == constants.StateEditDraft || m.state == constants.StateEditSpeakingNotes {
		returnState := constants.StateListening
		switch m.state {
		case constants.StateEditDraft:
			returnState = constants.StateWriting
		case constants.StateEditSpeakingNotes:
			returnState = constants.StateSpeaking
		}

		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = returnState
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			state := m.keeper.State()
			switch m.state {
			case constants.StateEditNotes:
				state.ListeningNotes = m.textForm.Text
			case constants.StateEditDraft:
				state.WritingDraft = m.textForm.Text
			case constants.StateEditSpeakingNotes:
				state.SpeakingNotes = m.textForm.Text
			}
			m.keeper.Save()
			m.refreshAll()
			m.state = returnState
		case huh.StateAborted:
			m.state = returnState
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Edit Logs State
	if m.state == constants.StateEditLogs {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateDashboard
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			state := m.keeper.State()
			state.WeaknessLog = m.logsForm.Weakness
			state.VocabLog = m.logsForm.Vocab
			m.keeper.Save()
			m.refreshAll()
			m.state = constants.StateDashboard
		case huh.StateAborted:
			m.state = constants.StateDashboard
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Clear State
	if m.state == constants.StateConfirmClear {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				state := m.keeper.State()
				state.ReadingAnswers = models.EmptyAnswers(m.banks.QuestionCount())
				m.keeper.Save()
				m.refreshAll()
				m.state = constants.StateReading
			case "n", "N", "esc", "q":
				m.state = constants.StateReading
			}
		}
		return m, nil
	}

	// Handle Alert State
	if m.state == constants.StateAlert {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.alert = ""
			m.state = m.previousState
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// Adjust height for tabs and help
		contentHeight := msg.Height - 4

		h, v := docStyle.GetFrameSize()
		m.dashboardModel.SetSize(msg.Width-h, contentHeight-v)
		m.readingModel.SetSize(msg.Width-h, contentHeight-v)
		m.listeningModel.SetSize(msg.Width-h, contentHeight-v)
		m.writingModel.SetSize(msg.Width-h, contentHeight-v)
		m.speakingModel.SetSize(msg.Width-h, contentHeight-v)
		m.settingsModel.SetSize(msg.Width-h, contentHeight-v)

	case fetchDoneMsg:
		if msg.err != nil {
			m.showAlert(fmt.Sprintf("Fetch failed: %v", msg.err))
		} else {
			m.showAlert(fmt.Sprintf("Audio saved to %s", msg.path))
		}
		return m, nil

	// Dashboard messages
	case dashboard.EditLogsMsg:
		state := m.keeper.State()
		m.logsForm = &LogsFormModel{
			Weakness: state.WeaknessLog,
			Vocab:    state.VocabLog,
		}
		m.form = NewLogsForm(m.logsForm)
		m.state = constants.StateEditLogs
		return m, m.form.Init()

	// Reading messages
	case reading.AnswersChangedMsg:
		m.keeper.State().ReadingAnswers = msg.Answers
		m.keeper.Save()
		m.readingModel.SetAnswers(msg.Answers)
		m.dashboardModel.SetState(*m.keeper.State())
		return m, nil

	case reading.SubmitMsg:
		state := m.keeper.State()
		score := scoring.Score(state.ReadingAnswers, m.banks.AnswerKey())
		total := m.banks.QuestionCount()
		// Every submission is a session; the checklist flag only ever
		// transitions to done.
		state.Checklist.MarkDone(constants.ModuleReading)
		m.keeper.Save()
		m.addSession(constants.ModuleReading, score, total)
		m.refreshAll()
		m.showAlert(fmt.Sprintf("Reading submitted: %d/%d. Module marked done.", score, total))
		return m, nil

	case reading.ClearMsg:
		m.state = constants.StateConfirmClear
		return m, nil

	// Listening messages
	case listening.EditURLMsg:
		m.urlForm = &URLFormModel{URL: m.keeper.State().ListeningURL}
		m.form = NewURLForm(m.urlForm)
		m.state = constants.StateEditURL
		return m, m.form.Init()

	case listening.EditNotesMsg:
		m.textForm = &TextFormModel{Text: m.keeper.State().ListeningNotes}
		m.form = NewTextForm("Listening Notes", m.textForm)
		m.state = constants.StateEditNotes
		return m, m.form.Init()

	case listening.FetchMsg:
		url := m.keeper.State().ListeningURL
		mediaDir := m.settings.MediaDir
		return m, func() tea.Msg {
			path, err := audio.Fetch(context.Background(), url, mediaDir)
			return fetchDoneMsg{path: path, err: err}
		}

	case listening.MarkDoneMsg:
		m.markDone(constants.ModuleListening, 0, 0)
		return m, nil

	// Writing messages
	case writing.ToggleTaskMsg:
		state := m.keeper.State()
		if state.WritingTask == constants.WritingTask1 {
			state.WritingTask = constants.WritingTask2
		} else {
			state.WritingTask = constants.WritingTask1
		}
		state.WritingPrompt = m.banks.RandomWritingPrompt(state.WritingTask)
		m.keeper.Save()
		m.refreshAll()
		return m, nil

	case writing.NewPromptMsg:
		state := m.keeper.State()
		state.WritingPrompt = m.banks.RandomWritingPrompt(state.WritingTask)
		m.keeper.Save()
		m.refreshAll()
		return m, nil

	case writing.EditDraftMsg:
		m.textForm = &TextFormModel{Text: m.keeper.State().WritingDraft}
		m.form = NewTextForm("Writing Draft", m.textForm)
		m.state = constants.StateEditDraft
		return m, m.form.Init()

	case writing.MarkDoneMsg:
		m.markDone(constants.ModuleWriting, 0, 0)
		return m, nil

	// Speaking messages
	case speaking.CyclePartMsg:
		state := m.keeper.State()
		switch state.SpeakingPart {
		case constants.SpeakingPart1:
			state.SpeakingPart = constants.SpeakingPart2
		case constants.SpeakingPart2:
			state.SpeakingPart = constants.SpeakingPart3
		default:
			state.SpeakingPart = constants.SpeakingPart1
		}
		state.SpeakingPrompt = m.banks.RandomSpeakingPrompt(state.SpeakingPart)
		m.keeper.Save()
		m.refreshAll()
		return m, nil

	case speaking.NewPromptMsg:
		state := m.keeper.State()
		state.SpeakingPrompt = m.banks.RandomSpeakingPrompt(state.SpeakingPart)
		m.keeper.Save()
		m.refreshAll()
		return m, nil

	case speaking.ToggleRecordMsg:
		if m.recorder.Recording() {
			path, err := m.recorder.Stop()
			m.speakingModel.SetRecording(false)
			if err != nil {
				m.showAlert(fmt.Sprintf("Failed to stop recording: %v", err))
			} else {
				m.showAlert(fmt.Sprintf("Recording saved to %s", path))
			}
		} else {
			if _, err := m.recorder.Start(); err != nil {
				m.showAlert(fmt.Sprintf("Failed to start recording: %v", err))
			} else {
				m.speakingModel.SetRecording(true)
			}
		}
		return m, nil

	case speaking.EditNotesMsg:
		m.textForm = &TextFormModel{Text: m.keeper.State().SpeakingNotes}
		m.form = NewTextForm("Speaking Notes", m.textForm)
		m.state = constants.StateEditSpeakingNotes
		return m, m.form.Init()

	case speaking.MarkDoneMsg:
		m.markDone(constants.ModuleSpeaking, 0, 0)
		return m, nil

	// Settings messages
	case settings.EditSettingsMsg:
		m.settingsForm = &SettingsFormModel{
			TargetBand: m.settings.TargetBand,
			ExamDate:   m.settings.ExamDate,
			MediaDir:   m.settings.MediaDir,
		}
		m.form = NewSettingsForm(m.settingsForm)
		m.state = constants.StateEditSettings
		return m, m.form.Init()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.recorder.Recording() {
				if _, err := m.recorder.Stop(); err != nil {
					logger.Warn("Failed to stop recording on quit", "error", err)
				}
			}
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab, m.keys.Right):
			m.state = (m.state + 1) % constants.NumMainTabs
			m.persistScreen()
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab, m.keys.Left):
			m.state = (m.state - 1 + constants.NumMainTabs) % constants.NumMainTabs
			m.persistScreen()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateDashboard:
		m.dashboardModel, cmd = m.dashboardModel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateReading:
		m.readingModel, cmd = m.readingModel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateListening:
		m.listeningModel, cmd = m.listeningModel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateWriting:
		m.writingModel, cmd = m.writingModel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateSpeaking:
		m.speakingModel, cmd = m.speakingModel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateSettings:
		m.settingsModel, cmd = m.settingsModel.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// markDone completes a module for today. Already-done modules stay done; the
// session row is only appended on the transition.
func (m *Model) markDone(mod constants.Module, score, total int) {
	state := m.keeper.State()
	if state.Checklist.Done(mod) {
		return
	}
	state.Checklist.MarkDone(mod)
	m.keeper.Save()
	m.addSession(mod, score, total)
	m.refreshAll()
}

func (m *Model) addSession(mod constants.Module, score, total int) {
	session := models.PracticeSession{
		ID:        uuid.New().String(),
		Module:    string(mod),
		Day:       utils.Today(),
		Score:     score,
		Total:     total,
		CreatedAt: time.Now(),
	}
	if err := m.keeper.Store().AddSession(session); err != nil {
		logger.Warn("Failed to record practice session", "module", mod, "error", err)
	}
}
