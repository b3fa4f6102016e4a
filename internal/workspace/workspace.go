package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"book_themes/internal/config"
)

const BaseDirName = "BookThemes"

func EnsureDefault() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return EnsureAt(filepath.Join(home, BaseDirName))
}

// EnsureAt creates the workspace layout under base and writes default
// settings when none exist yet.
func EnsureAt(base string) (string, error) {
	paths := []string{
		filepath.Join(base, "configs"),
		filepath.Join(base, "projects"),
	}

	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", p, err)
		}
	}

	settingsPath := SettingsPath(base)
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		defaults := config.Default()
		defaults.Storage.Database = DatabasePath(base)
		raw, marshalErr := config.Marshal(defaults)
		if marshalErr != nil {
			return "", marshalErr
		}
		if writeErr := os.WriteFile(settingsPath, raw, 0o644); writeErr != nil {
			return "", fmt.Errorf("write settings: %w", writeErr)
		}
	}

	return base, nil
}

func SettingsPath(base string) string {
	return filepath.Join(base, "configs", "settings.yaml")
}

func DatabasePath(base string) string {
	return filepath.Join(base, "analysis.db")
}
