package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aitacurator/aitacurator/cmd"
	"github.com/aitacurator/aitacurator/internal/buildinfo"
	"github.com/aitacurator/aitacurator/internal/conf"
	"github.com/aitacurator/aitacurator/internal/logging"
)

// version and buildDate are overridden at build time:
//
//	go build -ldflags "-X main.version=v1.2.3 -X main.buildDate=2026-01-02"
var (
	version   string
	buildDate string
)

func main() {
	settings, err := conf.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	build := buildinfo.NewContext(version, buildDate)
	settings.Version = build.Version()
	settings.BuildDate = build.BuildDate()

	logging.Init()

	// Structured events go to a rotating file when enabled, the console stays
	// reserved for command output.
	if settings.Main.Log.Enabled {
		fileLogger, closeLogger, err := logging.NewFileLogger(
			settings.Main.Log.Path,
			settings.Main.Name,
			slog.LevelInfo,
			logging.FileLoggerConfig{
				MaxSizeMB:  settings.Main.Log.MaxSize,
				MaxBackups: settings.Main.Log.MaxBackups,
				MaxAgeDays: settings.Main.Log.MaxAge,
			},
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "⚠️ Cannot open log file %s: %v\n", settings.Main.Log.Path, err)
		} else {
			slog.SetDefault(fileLogger)
			defer closeLogger() //nolint:errcheck // nothing to do about a close error on exit
		}
	}

	rootCmd := cmd.RootCommand(settings)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(1)
	}
}
