// conf/utils.go various helpers
package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/aitacurator/aitacurator/internal/errors"
)

const osWindows = "windows"

// GetDefaultConfigPaths returns a list of default configuration paths for the current operating system.
// It determines paths based on standard conventions for storing application configuration files.
func GetDefaultConfigPaths() ([]string, error) {
	var configPaths []string

	// Fetch the directory of the executable.
	exePath, err := os.Executable()
	if err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryConfiguration).
			Context("operation", "get-executable-path").
			Build()
	}
	exeDir := filepath.Dir(exePath)

	// Fetch the user's home directory.
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryConfiguration).
			Context("operation", "get-home-directory").
			Build()
	}

	// Define default paths based on the operating system.
	switch runtime.GOOS {
	case osWindows:
		configPaths = []string{
			exeDir,
			filepath.Join(homeDir, "AppData", "Roaming", "aitacurator"),
		}
	default:
		configPaths = []string{
			".",
			filepath.Join(homeDir, ".config", "aitacurator"),
			"/etc/aitacurator",
		}
	}

	return configPaths, nil
}

// EnsureOutputDirs creates every directory the pipeline writes into.
// Directories that already exist are left alone.
func EnsureOutputDirs(settings *Settings) error {
	dirs := []string{
		settings.Corpus.DataDir,
		settings.Output.SamplesDir,
		settings.VerdictSamplesDir(),
		settings.StratifiedSamplesDir(),
		settings.Output.FavoritesDir,
		settings.StratifiedFavoritesDir(),
		settings.BalancedFavoritesDir(),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.New(fmt.Errorf("creating directory %s: %w", dir, err)).
				Category(errors.CategoryFileIO).
				Context("directory", dir).
				Build()
		}
	}

	return nil
}
