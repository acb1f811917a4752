package models

import "github.com/julianstephens/bandprep/internal/constants"

// Checklist tracks which practice modules have been completed today. The
// four fields are fixed; a module is never added or removed.
type Checklist struct {
	Reading   bool `json:"reading"`
	Listening bool `json:"listening"`
	Writing   bool `json:"writing"`
	Speaking  bool `json:"speaking"`
}

// Done reports whether the given module has been completed today.
func (c Checklist) Done(m constants.Module) bool {
	switch m {
	case constants.ModuleReading:
		return c.Reading
	case constants.ModuleListening:
		return c.Listening
	case constants.ModuleWriting:
		return c.Writing
	case constants.ModuleSpeaking:
		return c.Speaking
	}
	return false
}

// MarkDone sets the given module's flag. Marking an already-done module is a
// no-op; the flag is only cleared by the next day's rollover or an import.
func (c *Checklist) MarkDone(m constants.Module) {
	switch m {
	case constants.ModuleReading:
		c.Reading = true
	case constants.ModuleListening:
		c.Listening = true
	case constants.ModuleWriting:
		c.Writing = true
	case constants.ModuleSpeaking:
		c.Speaking = true
	}
}

// DoneCount returns how many of the four modules are completed.
func (c Checklist) DoneCount() int {
	n := 0
	for _, m := range constants.Modules {
		if c.Done(m) {
			n++
		}
	}
	return n
}

// Progress returns the completion percentage over the four modules.
func (c Checklist) Progress() int {
	return c.DoneCount() * 100 / len(constants.Modules)
}

// StudyState is the whole of the persisted study-tracking state, one typed
// record instead of loose string keys. Each field maps to exactly one
// constants.Key* slot in the store.
type StudyState struct {
	Screen         string    `json:"screen"`
	Checklist      Checklist `json:"checklist"`
	LastActive     string    `json:"last_active"` // YYYY-MM-DD, empty before first rollover
	Streak         int       `json:"streak"`
	WeaknessLog    string    `json:"weakness_log"`
	VocabLog       string    `json:"vocab_log"`
	ReadingAnswers []string  `json:"reading_answers"`
	ListeningURL   string    `json:"listening_url"`
	ListeningNotes string    `json:"listening_notes"`
	WritingTask    string    `json:"writing_task"`
	WritingPrompt  string    `json:"writing_prompt"`
	WritingDraft   string    `json:"writing_draft"`
	SpeakingPart   string    `json:"speaking_part"`
	SpeakingPrompt string    `json:"speaking_prompt"`
	SpeakingNotes  string    `json:"speaking_notes"`
}

// DefaultState returns the state a fresh install starts from. questionCount
// sizes the reading answer sheet.
func DefaultState(questionCount int) StudyState {
	return StudyState{
		Screen:         constants.ScreenDashboard,
		ReadingAnswers: EmptyAnswers(questionCount),
		WritingTask:    constants.WritingTask1,
		SpeakingPart:   constants.SpeakingPart1,
	}
}

// EmptyAnswers returns an all-empty answer sheet of the given length.
func EmptyAnswers(n int) []string {
	return make([]string, n)
}
