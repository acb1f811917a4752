package system

import (
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/bandprep/internal/audio"
	"github.com/julianstephens/bandprep/internal/backup"
	"github.com/julianstephens/bandprep/internal/cli"
	"github.com/julianstephens/bandprep/internal/storage"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	// Check 1: storage reachable
	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storeReachable = true
	}

	// Check 2: study state loads (only if storage is reachable)
	if storeReachable {
		if err := checkStateLoads(ctx); err != nil {
			fmt.Printf("❌ Study state: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Study state: OK\n")
		}
	} else {
		fmt.Printf("⊘ Study state: SKIPPED (storage not reachable)\n")
	}

	// Check 3: settings present (only if storage is reachable)
	if storeReachable {
		if err := checkSettings(ctx); err != nil {
			fmt.Printf("❌ Settings: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Settings: OK\n")
		}
	} else {
		fmt.Printf("⊘ Settings: SKIPPED (storage not reachable)\n")
	}

	// Check 4: session day formats (SQLite only)
	if storeReachable {
		if err := checkSessionDates(ctx); err != nil {
			fmt.Printf("❌ Session date formats: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Session date formats: OK\n")
		}
	} else {
		fmt.Printf("⊘ Session date formats: SKIPPED (storage not reachable)\n")
	}

	// Check 5: prompt banks
	if err := checkBanks(ctx); err != nil {
		fmt.Printf("❌ Prompt banks: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Prompt banks: OK\n")
	}

	// Check 6: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 7: capture tool (warning only; recording is optional)
	if tool, err := audio.DetectCaptureTool(); err != nil {
		fmt.Printf("⚠ Audio capture tool: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Audio capture tool: OK (%s)\n", tool)
	}

	// Check 8: media directory writable (warning only)
	if err := checkMediaDir(ctx); err != nil {
		fmt.Printf("⚠ Media directory: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Media directory: OK\n")
	}

	// Check 9: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkStateLoads(ctx *cli.Context) error {
	if _, err := ctx.Store.GetState(ctx.Banks.QuestionCount()); err != nil {
		return fmt.Errorf("failed to load study state: %w", err)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if settings.TargetBand == "" {
		return fmt.Errorf("target band is empty (run 'bandprep settings --target-band 7.0')")
	}
	return nil
}

func checkSessionDates(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		return nil // Not SQLite, skip
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	var invalidCount int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM sessions
		WHERE day NOT GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'
	`).Scan(&invalidCount)
	if err != nil {
		return fmt.Errorf("failed to check session dates: %w", err)
	}
	if invalidCount > 0 {
		return fmt.Errorf("found %d sessions with invalid date format", invalidCount)
	}

	return nil
}

func checkBanks(ctx *cli.Context) error {
	if ctx.Banks == nil {
		return fmt.Errorf("prompt banks not loaded")
	}
	if ctx.Banks.QuestionCount() == 0 {
		return fmt.Errorf("reading drill has no questions")
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'bandprep backup create'")
	}

	return nil
}

func checkMediaDir(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if settings.MediaDir == "" {
		return fmt.Errorf("media directory is not set")
	}
	if err := os.MkdirAll(settings.MediaDir, 0700); err != nil {
		return fmt.Errorf("media directory is not writable: %w", err)
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
