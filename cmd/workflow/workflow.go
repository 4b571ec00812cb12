package workflow

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/aitacurator/aitacurator/cmd/curate"
	"github.com/aitacurator/aitacurator/cmd/verdicts"
	"github.com/aitacurator/aitacurator/internal/conf"
	"github.com/aitacurator/aitacurator/internal/logging"
)

var printer = message.NewPrinter(language.English)

// Command flag values.
var (
	// noInteractive skips the selection step after extraction.
	noInteractive bool
	// sampleSize caps how many comments are scanned for verdicts.
	sampleSize int
	// samplesPerCategory is the size of each verdict class.
	samplesPerCategory int
	// outputPrefix names the generated files.
	outputPrefix string
	// autoYes accepts every comment during the selection step.
	autoYes bool
)

// Command creates the end-to-end balanced sampling command.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workflow",
		Short: "Run verdict extraction and interactive selection end to end",
		Long: `Chains the verdict extraction step and the balanced favorites
selection into one run, so a fresh corpus goes from raw comments to a
curated favorite set in a single command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sampleSize < 0 {
				return fmt.Errorf("sample size must not be negative, got %d", sampleSize)
			}
			if samplesPerCategory < 1 {
				return fmt.Errorf("samples per category must be at least 1, got %d", samplesPerCategory)
			}
			return runWorkflow(settings)
		},
	}

	cmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "Skip the interactive selection step")
	cmd.Flags().IntVar(&sampleSize, "sample-size", 100000, "Comments to scan for verdicts, 0 scans everything")
	cmd.Flags().IntVar(&samplesPerCategory, "samples-per-category", 10, "Comments to keep per verdict category")
	cmd.Flags().IntVar(&settings.Sampling.MaxCommentChars, "max-comment-chars", settings.Sampling.MaxCommentChars, "Maximum comment length in characters")
	cmd.Flags().StringVarP(&outputPrefix, "output-prefix", "o", "verdict", "Prefix for the generated verdict files")
	cmd.Flags().BoolVarP(&autoYes, "yes", "y", false, "Accept every comment during selection")

	return cmd
}

func runWorkflow(settings *conf.Settings) error {
	log := logging.ForService("workflow")
	start := time.Now()
	interactive := !noInteractive

	fmt.Println("🚀 Starting balanced sampling workflow")
	fmt.Println("Parameters:")
	printer.Printf("  Sample size: %d comments\n", sampleSize)
	fmt.Printf("  Samples per category: %d\n", samplesPerCategory)
	fmt.Printf("  Max comment length: %d characters\n", settings.Sampling.MaxCommentChars)
	fmt.Printf("  Output prefix: %s\n", outputPrefix)
	fmt.Printf("  Interactive selection: %t\n", interactive)

	log.Info("workflow started",
		"sample_size", sampleSize,
		"samples_per_category", samplesPerCategory,
		"interactive", interactive)

	stepHeader("Extracting verdicts and creating balanced samples")
	opts := verdicts.Options{
		SampleSize:         sampleSize,
		SamplesPerCategory: samplesPerCategory,
		MaxCommentChars:    settings.Sampling.MaxCommentChars,
		OutputPrefix:       outputPrefix,
	}
	if err := verdicts.RunExtraction(settings, opts); err != nil {
		return fmt.Errorf("workflow failed at verdict extraction step: %w", err)
	}

	if interactive {
		fmt.Println("\n" + strings.Repeat("=", 60))
		fmt.Println("Starting interactive selection...")
		fmt.Println("You'll review each comment and decide whether to keep it")
		fmt.Println(strings.Repeat("=", 60))
		if err := curate.RunBalanced(settings, autoYes); err != nil {
			return fmt.Errorf("workflow failed at selection step: %w", err)
		}
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("✅ Balanced Sampling Workflow Complete!")
	fmt.Println(strings.Repeat("=", 60))

	fmt.Println("\nGenerated files:")
	printGenerated("  📁 Verdict data: %s", settings.VerdictSamplesDir())
	if interactive {
		printGenerated("  📁 Favorites: %s", settings.BalancedFavoritesDir())
	}

	fmt.Println("\nNext steps:")
	fmt.Println("1. Review the generated CSV files")
	fmt.Println("2. Check the summary reports")
	if interactive {
		fmt.Println("3. Review your selected favorites in the favorites directory")
	} else {
		fmt.Println("3. Run interactive selection: aitacurator curate --source balanced")
	}
	fmt.Println("4. Use the samples for your analysis")

	log.Info("workflow completed", "duration_ms", time.Since(start).Milliseconds())
	return nil
}

func stepHeader(description string) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Printf("Running: %s\n", description)
	fmt.Println(strings.Repeat("=", 60))
}

// printGenerated lists the CSV and TXT files of one output directory.
func printGenerated(format, dir string) {
	if _, err := os.Stat(dir); err != nil {
		return
	}
	fmt.Printf(format+"\n", dir)
	for _, pattern := range []string{"*.csv", "*.txt"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			continue
		}
		for _, match := range matches {
			fmt.Printf("    - %s\n", filepath.Base(match))
		}
	}
}
