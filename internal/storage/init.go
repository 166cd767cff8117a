package storage

import (
	"fmt"
	"os"
	"time"

	"github.com/ideal-institute/bookstall/internal/colors"
	"github.com/ideal-institute/bookstall/internal/config"
)

// File permission constants
const (
	FileModeDir  os.FileMode = 0755
	FileModeFile os.FileMode = 0600
)

// StateDir returns the configured state directory, creating it if needed.
func StateDir() (string, error) {
	start := time.Now()
	colors.StructuredDebug("storage", "init", "started", nil, "", nil)

	dir := config.Get("state_dir", "")
	if dir == "" {
		err := fmt.Errorf("storage initialization failed: %sSTATE_DIR not configured", config.EnvPrefix)
		colors.StructuredError("storage", "init", "failed", err, "", nil)
		return "", err
	}
	if err := os.MkdirAll(dir, FileModeDir); err != nil {
		err = fmt.Errorf("failed to create state directory: %w", err)
		colors.StructuredError("storage", "init", "failed", err, "", nil)
		return "", err
	}

	colors.StructuredDebug("storage", "init", "completed", nil, "", map[string]any{
		"state_dir":        dir,
		"duration_seconds": time.Since(start).Seconds(),
	})
	return dir, nil
}
