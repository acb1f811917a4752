package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/bandprep/internal/cli"
	"github.com/julianstephens/bandprep/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	TargetBand *string `help:"Target overall band score, e.g. 7.0."`
	ExamDate   *string `help:"Exam date (YYYY-MM-DD). Pass an empty string to unset."`
	MediaDir   *string `help:"Directory for fetched audio and recordings."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Target Band: %s\n", settings.TargetBand)
		examDate := settings.ExamDate
		if examDate == "" {
			examDate = "(not set)"
		} else if days, err := utils.DaysUntil(settings.ExamDate); err == nil {
			examDate = fmt.Sprintf("%s (%d day(s) away)", settings.ExamDate, days)
		}
		fmt.Printf("  Exam Date:   %s\n", examDate)
		fmt.Printf("  Media Dir:   %s\n", settings.MediaDir)
		return nil
	}

	updated := false
	if c.TargetBand != nil {
		band, err := strconv.ParseFloat(strings.TrimSpace(*c.TargetBand), 64)
		if err != nil || band < 1 || band > 9 {
			return fmt.Errorf("invalid target band %q: must be a number between 1.0 and 9.0", *c.TargetBand)
		}
		settings.TargetBand = strings.TrimSpace(*c.TargetBand)
		updated = true
	}
	if c.ExamDate != nil {
		date := strings.TrimSpace(*c.ExamDate)
		if date != "" && !utils.ValidateDate(date) {
			return fmt.Errorf("invalid exam date %q: use YYYY-MM-DD", date)
		}
		settings.ExamDate = date
		updated = true
	}
	if c.MediaDir != nil {
		if strings.TrimSpace(*c.MediaDir) == "" {
			return fmt.Errorf("media directory cannot be empty")
		}
		settings.MediaDir = strings.TrimSpace(*c.MediaDir)
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
