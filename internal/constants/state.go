package constants

const (
	// Study state keys. The stored layout is a flat key-value table; these
	// names are the full set and are stable across releases. Export and
	// import operate over exactly this list.
	KeyScreen         = "ielts_screen"
	KeyChecklist      = "ielts_daily"
	KeyLastActive     = "ielts_last"
	KeyStreak         = "ielts_streak"
	KeyWeaknessLog    = "ielts_weakness"
	KeyVocabLog       = "ielts_vocab"
	KeyReadingAnswers = "ielts_reading_answers"
	KeyListeningURL   = "ielts_listening_url"
	KeyListeningNotes = "ielts_listening_notes"
	KeyWritingTask    = "ielts_writing_task"
	KeyWritingPrompt  = "ielts_writing_prompt"
	KeyWritingDraft   = "ielts_writing_draft"
	KeySpeakingPart   = "ielts_speaking_part"
	KeySpeakingPrompt = "ielts_speaking_prompt"
	KeySpeakingNotes  = "ielts_speaking_notes"

	// Settings keys
	SettingTargetBand = "settings_target_band"
	SettingExamDate   = "settings_exam_date"
	SettingMediaDir   = "settings_media_dir"

	// Default Settings Values
	DefaultTargetBand = "7.0"
)

// StateKeys is the complete ordered set of study-state keys. Every key an
// export emits and an import accepts is in this list.
var StateKeys = []string{
	KeyScreen,
	KeyChecklist,
	KeyLastActive,
	KeyStreak,
	KeyWeaknessLog,
	KeyVocabLog,
	KeyReadingAnswers,
	KeyListeningURL,
	KeyListeningNotes,
	KeyWritingTask,
	KeyWritingPrompt,
	KeyWritingDraft,
	KeySpeakingPart,
	KeySpeakingPrompt,
	KeySpeakingNotes,
}
