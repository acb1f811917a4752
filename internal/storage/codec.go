package storage

import (
	"encoding/json"
	"strconv"

	"github.com/julianstephens/bandprep/internal/constants"
	"github.com/julianstephens/bandprep/internal/models"
)

// StateToMap flattens a StudyState into the fixed key set, every field
// string-serialized the way the export format prescribes.
func StateToMap(s models.StudyState) map[string]string {
	checklist, _ := json.Marshal(s.Checklist)
	answers, _ := json.Marshal(s.ReadingAnswers)

	return map[string]string{
		constants.KeyScreen:         s.Screen,
		constants.KeyChecklist:      string(checklist),
		constants.KeyLastActive:     s.LastActive,
		constants.KeyStreak:         strconv.Itoa(s.Streak),
		constants.KeyWeaknessLog:    s.WeaknessLog,
		constants.KeyVocabLog:       s.VocabLog,
		constants.KeyReadingAnswers: string(answers),
		constants.KeyListeningURL:   s.ListeningURL,
		constants.KeyListeningNotes: s.ListeningNotes,
		constants.KeyWritingTask:    s.WritingTask,
		constants.KeyWritingPrompt:  s.WritingPrompt,
		constants.KeyWritingDraft:   s.WritingDraft,
		constants.KeySpeakingPart:   s.SpeakingPart,
		constants.KeySpeakingPrompt: s.SpeakingPrompt,
		constants.KeySpeakingNotes:  s.SpeakingNotes,
	}
}

// StateFromMap builds a typed state from raw slot values. Missing or
// unparsable entries silently fall back to their defaults; a corrupt slot
// never surfaces an error to the caller. questionCount fixes the answer
// sheet length regardless of what was stored.
func StateFromMap(raw map[string]string, questionCount int) models.StudyState {
	s := models.DefaultState(questionCount)

	if v, ok := raw[constants.KeyScreen]; ok && validScreen(v) {
		s.Screen = v
	}
	if v, ok := raw[constants.KeyChecklist]; ok {
		var c models.Checklist
		if err := json.Unmarshal([]byte(v), &c); err == nil {
			s.Checklist = c
		}
	}
	if v, ok := raw[constants.KeyLastActive]; ok {
		s.LastActive = v
	}
	if v, ok := raw[constants.KeyStreak]; ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			s.Streak = n
		}
	}
	if v, ok := raw[constants.KeyWeaknessLog]; ok {
		s.WeaknessLog = v
	}
	if v, ok := raw[constants.KeyVocabLog]; ok {
		s.VocabLog = v
	}
	if v, ok := raw[constants.KeyReadingAnswers]; ok {
		var answers []string
		if err := json.Unmarshal([]byte(v), &answers); err == nil {
			s.ReadingAnswers = normalizeAnswers(answers, questionCount)
		}
	}
	if v, ok := raw[constants.KeyListeningURL]; ok {
		s.ListeningURL = v
	}
	if v, ok := raw[constants.KeyListeningNotes]; ok {
		s.ListeningNotes = v
	}
	if v, ok := raw[constants.KeyWritingTask]; ok && (v == constants.WritingTask1 || v == constants.WritingTask2) {
		s.WritingTask = v
	}
	if v, ok := raw[constants.KeyWritingPrompt]; ok {
		s.WritingPrompt = v
	}
	if v, ok := raw[constants.KeyWritingDraft]; ok {
		s.WritingDraft = v
	}
	if v, ok := raw[constants.KeySpeakingPart]; ok && validSpeakingPart(v) {
		s.SpeakingPart = v
	}
	if v, ok := raw[constants.KeySpeakingPrompt]; ok {
		s.SpeakingPrompt = v
	}
	if v, ok := raw[constants.KeySpeakingNotes]; ok {
		s.SpeakingNotes = v
	}

	return s
}

func validScreen(name string) bool {
	for _, s := range constants.ScreenNames {
		if s == name {
			return true
		}
	}
	return false
}

func validSpeakingPart(part string) bool {
	return part == constants.SpeakingPart1 || part == constants.SpeakingPart2 || part == constants.SpeakingPart3
}

// normalizeAnswers forces the sheet to the fixed question count, truncating
// extras and padding shortfalls with empty answers.
func normalizeAnswers(answers []string, questionCount int) []string {
	out := make([]string, questionCount)
	copy(out, answers)
	return out
}
