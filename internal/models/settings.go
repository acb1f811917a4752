package models

// Settings represents application-wide settings
type Settings struct {
	TargetBand string `json:"target_band"` // target overall band score, e.g. "7.0"
	ExamDate   string `json:"exam_date"`   // exam date (YYYY-MM-DD), empty when not set
	MediaDir   string `json:"media_dir"`   // directory for fetched audio and recordings
}
