package verdicts

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/aitacurator/aitacurator/internal/conf"
	"github.com/aitacurator/aitacurator/internal/corpus"
	"github.com/aitacurator/aitacurator/internal/errors"
	"github.com/aitacurator/aitacurator/internal/export"
	"github.com/aitacurator/aitacurator/internal/logging"
	"github.com/aitacurator/aitacurator/internal/sampling"
	"github.com/aitacurator/aitacurator/internal/verdict"
)

var printer = message.NewPrinter(language.English)

// Options are the parameters of a verdict extraction run. The workflow
// command reuses RunExtraction with its own flag values.
type Options struct {
	// SampleSize caps how many comments are scanned for verdicts. Zero
	// means the whole corpus.
	SampleSize int
	// SamplesPerCategory is the size of each verdict class in the
	// balanced output.
	SamplesPerCategory int
	// MaxCommentChars is the length cap applied before balancing.
	MaxCommentChars int
	// OutputPrefix names the generated files.
	OutputPrefix string
}

var opts Options

// Command creates the verdict extraction command.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verdicts",
		Short: "Extract verdict labels and build a verdict-balanced comment set",
		Long: `Scans comment text for r/AmItheAsshole verdict phrases, labels each
comment with the first matching category and draws an equal number of
comments per verdict, together with the submissions they respond to.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.SampleSize < 0 {
				return fmt.Errorf("sample size must not be negative, got %d", opts.SampleSize)
			}
			if opts.SamplesPerCategory < 1 {
				return fmt.Errorf("samples per category must be at least 1, got %d", opts.SamplesPerCategory)
			}
			opts.MaxCommentChars = settings.Sampling.MaxCommentChars
			return RunExtraction(settings, opts)
		},
	}

	cmd.Flags().IntVar(&opts.SampleSize, "sample-size", 100000, "Comments to scan for verdicts, 0 scans everything")
	cmd.Flags().IntVar(&opts.SamplesPerCategory, "samples-per-category", 10, "Comments to keep per verdict category")
	cmd.Flags().IntVar(&settings.Sampling.MaxCommentChars, "max-comment-chars", settings.Sampling.MaxCommentChars, "Maximum comment length in characters")
	cmd.Flags().StringVarP(&opts.OutputPrefix, "output-prefix", "o", "verdict", "Prefix for the generated verdict files")

	return cmd
}

// RunExtraction labels comments with verdicts, balances them per category
// and writes the verdict tables.
func RunExtraction(settings *conf.Settings, opts Options) error {
	log := logging.ForService("verdicts")
	start := time.Now()

	submissions, comments, err := loadData(settings)
	if err != nil {
		return err
	}

	log.Info("verdict extraction started",
		"sample_size", opts.SampleSize,
		"samples_per_category", opts.SamplesPerCategory,
		"max_comment_chars", opts.MaxCommentChars,
		"seed", settings.Sampling.Seed)

	fmt.Println("\nExtracting verdicts from comments...")
	if opts.SampleSize > 0 && len(comments) > opts.SampleSize {
		printer.Printf("Processing sample of %d comments...\n", opts.SampleSize)
		comments = sampling.Sample(comments, opts.SampleSize, settings.Sampling.Seed)
	}

	labeled := verdict.ExtractAll(comments)
	printer.Printf("Extracted %d comments with verdicts\n", len(labeled))
	if len(labeled) == 0 {
		return errors.New(fmt.Errorf("no verdicts found in %d comments, try a larger --sample-size", len(comments))).
			Category(errors.CategoryEmptyResult).
			Context("operation", "extract-verdicts").
			Build()
	}

	fmt.Println("\nVerdict distribution:")
	for _, count := range verdict.Distribution(labeled) {
		printer.Printf("  %s: %d comments\n", count.Label, count.N)
	}

	fmt.Printf("\nCreating balanced samples (%d per category)...\n", opts.SamplesPerCategory)
	eligible := corpus.FilterCommentsByLength(labeled, opts.MaxCommentChars)
	printer.Printf("Filtered to %d comments within length limit\n", len(eligible))

	balanced, draws := sampling.PerCategory(eligible,
		func(c corpus.Comment) string { return c.Verdict },
		verdict.Categories, opts.SamplesPerCategory, settings.Sampling.Seed)
	for _, draw := range draws {
		if draw.Short() {
			fmt.Printf("Warning: Only %d comments for '%s', using all\n", draw.Available, draw.Category)
		}
	}

	fmt.Println("\nBalanced sample created:")
	fmt.Printf("  Total comments: %d\n", len(balanced))
	for _, count := range categoryCounts(balanced) {
		fmt.Printf("  %s: %d comments\n", count.Label, count.N)
	}

	if err := saveVerdicts(settings, opts.OutputPrefix, labeled, balanced, submissions); err != nil {
		return err
	}

	fmt.Println("\n✅ Verdict extraction complete!")
	fmt.Printf("Files saved in the '%s' directory\n", settings.VerdictSamplesDir())
	fmt.Println("\nNext steps:")
	fmt.Println("1. Review the balanced samples CSV")
	fmt.Println("2. Run interactive selection: aitacurator curate --source balanced")
	fmt.Println("3. Use selected favorites for your analysis")

	log.Info("verdict extraction completed",
		"labeled", len(labeled),
		"balanced", len(balanced),
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}

// loadData reads the raw corpus tables, failing early with a hint when the
// ingest step has not run yet.
func loadData(settings *conf.Settings) ([]corpus.Submission, []corpus.Comment, error) {
	submissionsPath := settings.SubmissionsPath()
	commentsPath := settings.CommentsPath()
	if _, err := os.Stat(submissionsPath); err != nil {
		return nil, nil, fmt.Errorf("submissions file not found: %s (run 'aitacurator ingest' first)", submissionsPath)
	}
	if _, err := os.Stat(commentsPath); err != nil {
		return nil, nil, fmt.Errorf("comments file not found: %s (run 'aitacurator ingest' first)", commentsPath)
	}

	fmt.Println("Loading data...")
	submissions, err := corpus.ReadSubmissions(submissionsPath)
	if err != nil {
		return nil, nil, err
	}
	comments, err := corpus.ReadComments(commentsPath)
	if err != nil {
		return nil, nil, err
	}
	printer.Printf("Loaded %d submissions and %d comments\n", len(submissions), len(comments))
	return submissions, comments, nil
}

// categoryCounts tallies the balanced set per verdict in first-seen order,
// so the report lines follow the draw order.
func categoryCounts(comments []corpus.Comment) []verdict.Count {
	byLabel := make(map[string]int)
	var order []string
	for i := range comments {
		label := comments[i].Verdict
		if _, seen := byLabel[label]; !seen {
			order = append(order, label)
		}
		byLabel[label]++
	}

	counts := make([]verdict.Count, 0, len(order))
	for _, label := range order {
		counts = append(counts, verdict.Count{Label: label, N: byLabel[label]})
	}
	return counts
}

func saveVerdicts(settings *conf.Settings, prefix string, labeled, balanced []corpus.Comment, submissions []corpus.Submission) error {
	dir := settings.VerdictSamplesDir()
	fmt.Printf("\nSaving verdict data with prefix '%s'...\n", prefix)

	if err := conf.EnsureOutputDirs(settings); err != nil {
		return err
	}

	allPath := filepath.Join(dir, conf.AllVerdictsName(prefix))
	if err := corpus.WriteComments(allPath, labeled, corpus.ColVerdict, corpus.ColCommentLength); err != nil {
		return err
	}
	printer.Printf("Saved %d verdicts to %s\n", len(labeled), allPath)

	balancedPath := filepath.Join(dir, conf.BalancedSamplesName(prefix))
	if err := corpus.WriteComments(balancedPath, balanced, corpus.ColVerdict, corpus.ColCommentLength); err != nil {
		return err
	}
	printer.Printf("Saved %d balanced samples to %s\n", len(balanced), balancedPath)

	contexts := contextSubmissions(submissions, balanced)
	contextsPath := filepath.Join(dir, conf.BalancedSubmissionsName(prefix))
	if err := corpus.WriteSubmissions(contextsPath, contexts); err != nil {
		return err
	}
	printer.Printf("Saved %d submission contexts to %s\n", len(contexts), contextsPath)

	summaryPath := filepath.Join(dir, conf.SummaryName(prefix))
	if err := export.WriteVerdictSummary(summaryPath, labeled, balanced, contexts); err != nil {
		return err
	}
	fmt.Printf("Saved summary to %s\n", summaryPath)
	return nil
}

// contextSubmissions returns the submissions the balanced comments respond
// to, in corpus order.
func contextSubmissions(submissions []corpus.Submission, balanced []corpus.Comment) []corpus.Submission {
	wanted := make(map[string]bool, len(balanced))
	for i := range balanced {
		wanted[balanced[i].SubmissionID] = true
	}

	var contexts []corpus.Submission
	for i := range submissions {
		if wanted[submissions[i].SubmissionID] {
			contexts = append(contexts, submissions[i])
		}
	}
	return contexts
}
