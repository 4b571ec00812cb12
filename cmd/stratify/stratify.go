package stratify

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

// Command flag values.
var (
	// samplesPerCategory is the target size of each verdict class.
	samplesPerCategory int
	// submissionSampleSize caps how many submissions are categorized.
	// Zero categorizes everything.
	submissionSampleSize int
	// outputPrefix names the generated files.
	outputPrefix string
)

// Command creates the verdict-stratified sampling command.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stratify",
		Short: "Draw a dominant-verdict-stratified submission sample",
		Long: `Labels comments with verdicts, aggregates them into a dominant verdict
per submission by majority vote and draws an oversampled set of
submissions from each verdict category.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if samplesPerCategory < 1 {
				return fmt.Errorf("samples per category must be at least 1, got %d", samplesPerCategory)
			}
			if submissionSampleSize < 0 {
				return fmt.Errorf("submission sample size must not be negative, got %d", submissionSampleSize)
			}
			return runStratify(settings)
		},
	}

	cmd.Flags().IntVar(&settings.Sampling.MaxSubmissionChars, "max-submission-chars", settings.Sampling.MaxSubmissionChars, "Maximum submission length in characters")
	cmd.Flags().IntVar(&settings.Sampling.MaxCommentChars, "max-comment-chars", settings.Sampling.MaxCommentChars, "Maximum comment length in characters")
	cmd.Flags().IntVar(&samplesPerCategory, "samples-per-category", 10, "Submissions to keep per verdict category")
	cmd.Flags().IntVar(&settings.Sampling.OversampleFactor, "oversample-factor", settings.Sampling.OversampleFactor, "Multiple of the target to draw for later curation")
	cmd.Flags().IntVar(&submissionSampleSize, "submission-sample-size", 10000, "Submissions to categorize, 0 categorizes everything")
	cmd.Flags().StringVarP(&outputPrefix, "output-prefix", "o", "stratified", "Prefix for the generated sample files")

	return cmd
}

func runStratify(settings *conf.Settings) error {
	log := logging.ForService("stratify")
	start := time.Now()

	submissions, comments, err := loadData(settings)
	if err != nil {
		return err
	}

	log.Info("stratified sampling started",
		"samples_per_category", samplesPerCategory,
		"oversample_factor", settings.Sampling.OversampleFactor,
		"submission_sample_size", submissionSampleSize,
		"seed", settings.Sampling.Seed)

	fmt.Printf("\nFiltering submissions to <= %d characters...\n", settings.Sampling.MaxSubmissionChars)
	submissions = corpus.FilterSubmissionsByLength(submissions, settings.Sampling.MaxSubmissionChars)
	printer.Printf("Filtered to %d submissions\n", len(submissions))

	fmt.Printf("\nFiltering comments to <= %d characters...\n", settings.Sampling.MaxCommentChars)
	comments = corpus.FilterCommentsByLength(comments, settings.Sampling.MaxCommentChars)
	printer.Printf("Filtered to %d comments\n", len(comments))

	fmt.Println("\nCategorizing submissions by verdict...")
	if submissionSampleSize > 0 && len(submissions) > submissionSampleSize {
		printer.Printf("Processing sample of %d submissions...\n", submissionSampleSize)
		submissions = sampling.Sample(submissions, submissionSampleSize, settings.Sampling.Seed)
	}

	relevant := commentsForSubmissions(submissions, comments)
	printer.Printf("Found %d comments for %d submissions\n", len(relevant), len(submissions))

	labeled := verdict.ExtractAll(relevant)
	verdicts := verdict.DominantVerdicts(labeled)
	categorized := verdict.ApplyDominantVerdicts(submissions, verdicts)
	printer.Printf("Categorized %d submissions\n", len(categorized))
	if len(categorized) == 0 {
		return errors.New(fmt.Errorf("no submissions could be categorized, try a larger --submission-sample-size")).
			Category(errors.CategoryEmptyResult).
			Context("operation", "categorize-submissions").
			Build()
	}

	fmt.Println("\nVerdict distribution:")
	for _, count := range verdict.DominantDistribution(categorized) {
		printer.Printf("  %s: %d submissions\n", count.Label, count.N)
	}

	factor := settings.Sampling.OversampleFactor
	fmt.Printf("\nCreating stratified sample (%d per category, %dx oversampling)...\n", samplesPerCategory, factor)

	sampled, draws := sampling.PerCategory(categorized,
		func(s corpus.Submission) string { return s.DominantVerdict },
		verdict.Categories, samplesPerCategory*factor, settings.Sampling.Seed)
	for _, draw := range draws {
		if draw.Short() {
			fmt.Printf("Warning: Only %d submissions for '%s', using all\n", draw.Available, draw.Category)
		}
	}

	fmt.Println("\nStratified sample created:")
	fmt.Printf("  Total submissions: %d\n", len(sampled))
	counts := make(map[string]int, len(verdict.Categories))
	for i := range sampled {
		counts[sampled[i].DominantVerdict]++
	}
	categories := 0
	for _, label := range verdict.Categories {
		if counts[label] == 0 {
			continue
		}
		categories++
		fmt.Printf("  %s: %d submissions\n", label, counts[label])
	}

	fmt.Printf("\nGetting comments for %d submissions...\n", len(sampled))
	sampleComments := verdict.AnnotateDominantVerdicts(commentsForSubmissions(sampled, relevant), verdicts)
	printer.Printf("Found %d comments\n", len(sampleComments))

	if err := saveStratified(settings, sampled, sampleComments); err != nil {
		return err
	}

	fmt.Println("\n✅ Stratified sampling complete!")
	fmt.Printf("Generated %d submissions across %d verdict categories\n", len(sampled), categories)
	fmt.Println("\nNext steps:")
	fmt.Println("1. Review the stratified samples")
	fmt.Println("2. Run 'aitacurator curate --source stratified' for interactive selection")
	fmt.Printf("3. Final sample will be %d submissions per category\n", samplesPerCategory)

	log.Info("stratified sampling completed",
		"submissions", len(sampled),
		"comments", len(sampleComments),
		"categories", categories,
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

// commentsForSubmissions keeps the comments whose submission is in the set,
// in their original order.
func commentsForSubmissions(submissions []corpus.Submission, comments []corpus.Comment) []corpus.Comment {
	wanted := make(map[string]bool, len(submissions))
	for i := range submissions {
		wanted[submissions[i].SubmissionID] = true
	}

	var kept []corpus.Comment
	for i := range comments {
		if wanted[comments[i].SubmissionID] {
			kept = append(kept, comments[i])
		}
	}
	return kept
}

func saveStratified(settings *conf.Settings, submissions []corpus.Submission, comments []corpus.Comment) error {
	dir := settings.StratifiedSamplesDir()
	fmt.Printf("\nSaving stratified samples with prefix '%s'...\n", outputPrefix)

	if err := conf.EnsureOutputDirs(settings); err != nil {
		return err
	}

	submissionsPath := filepath.Join(dir, conf.SubmissionsName(outputPrefix))
	if err := corpus.WriteSubmissions(submissionsPath, submissions,
		corpus.ColDominantVerdict, corpus.ColVerdictCount); err != nil {
		return err
	}
	printer.Printf("Saved %d submissions to %s\n", len(submissions), submissionsPath)

	commentsPath := filepath.Join(dir, conf.CommentsName(outputPrefix))
	if err := corpus.WriteComments(commentsPath, comments, corpus.ColDominantVerdict); err != nil {
		return err
	}
	printer.Printf("Saved %d comments to %s\n", len(comments), commentsPath)

	summaryPath := filepath.Join(dir, conf.SummaryName(outputPrefix))
	if err := export.WriteStratifiedSummary(summaryPath, submissions, comments); err != nil {
		return err
	}
	fmt.Printf("Saved summary to %s\n", summaryPath)
	return nil
}
