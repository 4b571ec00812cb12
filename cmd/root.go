package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aitacurator/aitacurator/cmd/curate"
	"github.com/aitacurator/aitacurator/cmd/explore"
	"github.com/aitacurator/aitacurator/cmd/ingest"
	"github.com/aitacurator/aitacurator/cmd/preview"
	"github.com/aitacurator/aitacurator/cmd/sample"
	"github.com/aitacurator/aitacurator/cmd/stratify"
	"github.com/aitacurator/aitacurator/cmd/verdicts"
	"github.com/aitacurator/aitacurator/cmd/workflow"
	"github.com/aitacurator/aitacurator/internal/conf"
	"github.com/aitacurator/aitacurator/internal/logging"
)

// profile holds the --profile flag value. Empty means the sampling values
// from the configuration are used as-is.
var profile string

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "aitacurator",
		Short:         "AITA corpus curation CLI",
		Version:       fmt.Sprintf("%s (built %s)", settings.Version, settings.BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set up the global flags for the root command.
	setupFlags(rootCmd, settings)

	// Add sub-commands to the root command.
	subcommands := []*cobra.Command{
		ingest.Command(settings),
		explore.Command(settings),
		sample.Command(settings),
		verdicts.Command(settings),
		stratify.Command(settings),
		curate.Command(settings),
		preview.Command(settings),
		workflow.Command(settings),
	}

	rootCmd.AddCommand(subcommands...)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if settings.Debug {
			logging.SetLevel(slog.LevelDebug)
		}
		return applyProfile(cmd, settings)
	}

	return rootCmd
}

// applyProfile replaces the sampling parameters with the preset named by the
// --profile flag. Values set explicitly on the command line survive the
// preset, so "--profile conservative --target-n 10" works as expected.
func applyProfile(cmd *cobra.Command, settings *conf.Settings) error {
	if profile == "" {
		return nil
	}

	saved := settings.Sampling
	if err := settings.ApplyProfile(profile); err != nil {
		return err
	}

	restore := map[string]func(){
		"max-submission-chars":    func() { settings.Sampling.MaxSubmissionChars = saved.MaxSubmissionChars },
		"max-comment-chars":       func() { settings.Sampling.MaxCommentChars = saved.MaxCommentChars },
		"target-n":                func() { settings.Sampling.SamplesPerCategory = saved.SamplesPerCategory },
		"oversample-factor":       func() { settings.Sampling.OversampleFactor = saved.OversampleFactor },
		"comments-per-submission": func() { settings.Sampling.CommentsPerSubmission = saved.CommentsPerSubmission },
	}
	for name, keepFlagValue := range restore {
		if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
			keepFlagValue()
		}
	}

	return nil
}

// setupFlags defines flags that are global to the command line interface
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) error {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", viper.GetBool("debug"), "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&settings.Corpus.DataDir, "data-dir", viper.GetString("corpus.datadir"), "Directory holding the raw submission and comment tables")
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "Sampling preset to apply (conservative, standard, large)")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		return fmt.Errorf("error binding flags: %v", err)
	}

	return nil
}
