package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/bandprep/internal/utils"
)

type SettingsFormModel struct {
	TargetBand string
	ExamDate   string
	MediaDir   string
}

type URLFormModel struct {
	URL string
}

type TextFormModel struct {
	Text string
}

type LogsFormModel struct {
	Weakness string
	Vocab    string
}

func NewSettingsForm(fm *SettingsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Target Band").
				Description("Overall band score you are aiming for, e.g. 7.0").
				Value(&fm.TargetBand).
				Validate(func(s string) error {
					band, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return fmt.Errorf("invalid band score")
					}
					if band < 1 || band > 9 {
						return fmt.Errorf("band score must be between 1.0 and 9.0")
					}
					return nil
				}),
			huh.NewInput().
				Title("Exam Date (YYYY-MM-DD)").
				Description("Leave empty if not booked yet").
				Value(&fm.ExamDate).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if !utils.ValidateDate(s) {
						return fmt.Errorf("invalid date format, use YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Title("Media Directory").
				Description("Where fetched audio and recordings are stored").
				Value(&fm.MediaDir).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("media directory cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewURLForm(fm *URLFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Audio URL").
				Description("http(s) link to a listening practice track").
				Value(&fm.URL).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return nil
					}
					if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
						return fmt.Errorf("URL must start with http:// or https://")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewTextForm(title string, fm *TextFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(title).
				Value(&fm.Text),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewLogsForm(fm *LogsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Weakness Log").
				Description("Patterns and question types to work on").
				Value(&fm.Weakness),
			huh.NewText().
				Title("Vocabulary Log").
				Description("New words and collocations").
				Value(&fm.Vocab),
		),
	).WithTheme(huh.ThemeDracula())
}
