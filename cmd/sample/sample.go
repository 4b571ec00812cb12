package sample

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/aitacurator/aitacurator/internal/conf"
	"github.com/aitacurator/aitacurator/internal/corpus"
	"github.com/aitacurator/aitacurator/internal/export"
	"github.com/aitacurator/aitacurator/internal/logging"
	"github.com/aitacurator/aitacurator/internal/sampling"
)

var printer = message.NewPrinter(language.English)

// sampleType holds the --sample-type flag value. When set, the named preset
// replaces the sampling parameters before the run.
var sampleType string

// Command creates the engagement-stratified sampling command.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw an engagement-stratified sample from the corpus",
		Long: `Filters the corpus by length, splits submissions into engagement
score quintiles and draws an oversampled set from each tier, together
with the top comments per drawn submission.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sampleType != "" {
				if err := applySampleType(cmd, settings); err != nil {
					return err
				}
			}
			if settings.Sampling.SamplesPerCategory < 1 {
				return fmt.Errorf("target sample size must be at least 1, got %d", settings.Sampling.SamplesPerCategory)
			}
			if settings.Sampling.OversampleFactor < 1 {
				return fmt.Errorf("oversample factor must be at least 1, got %d", settings.Sampling.OversampleFactor)
			}
			return runSample(settings)
		},
	}

	cmd.Flags().IntVar(&settings.Sampling.MaxSubmissionChars, "max-submission-chars", settings.Sampling.MaxSubmissionChars, "Maximum submission length in characters")
	cmd.Flags().IntVar(&settings.Sampling.MaxCommentChars, "max-comment-chars", settings.Sampling.MaxCommentChars, "Maximum comment length in characters")
	cmd.Flags().IntVarP(&settings.Sampling.SamplesPerCategory, "target-n", "n", settings.Sampling.SamplesPerCategory, "Target number of submissions per engagement tier")
	cmd.Flags().IntVar(&settings.Sampling.OversampleFactor, "oversample-factor", settings.Sampling.OversampleFactor, "Multiple of the target to draw for later curation")
	cmd.Flags().IntVar(&settings.Sampling.CommentsPerSubmission, "comments-per-submission", settings.Sampling.CommentsPerSubmission, "Top comments to keep per sampled submission")
	cmd.Flags().StringVarP(&settings.Output.Prefix, "output-prefix", "o", settings.Output.Prefix, "Prefix for the generated sample files")
	cmd.Flags().StringVar(&sampleType, "sample-type", "", "Sampling preset to apply (conservative, standard, large)")

	return cmd
}

// applySampleType loads the preset but keeps any sampling value that was set
// explicitly on the command line.
func applySampleType(cmd *cobra.Command, settings *conf.Settings) error {
	saved := settings.Sampling
	if err := settings.ApplyProfile(sampleType); err != nil {
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

	fmt.Printf("Using %s sample type\n", settings.Sampling.Profile)
	return nil
}

func runSample(settings *conf.Settings) error {
	log := logging.ForService("sample")
	start := time.Now()

	if err := conf.EnsureOutputDirs(settings); err != nil {
		return err
	}

	submissions, comments, err := loadData(settings)
	if err != nil {
		return err
	}

	log.Info("sampling started",
		"max_submission_chars", settings.Sampling.MaxSubmissionChars,
		"max_comment_chars", settings.Sampling.MaxCommentChars,
		"target_n", settings.Sampling.SamplesPerCategory,
		"oversample_factor", settings.Sampling.OversampleFactor,
		"seed", settings.Sampling.Seed)

	fmt.Printf("\nFiltering submissions to <= %d characters...\n", settings.Sampling.MaxSubmissionChars)
	submissions = corpus.FilterSubmissionsByLength(submissions, settings.Sampling.MaxSubmissionChars)
	printer.Printf("Filtered to %d submissions\n", len(submissions))

	fmt.Printf("\nFiltering comments to <= %d characters...\n", settings.Sampling.MaxCommentChars)
	comments = corpus.FilterCommentsByLength(comments, settings.Sampling.MaxCommentChars)
	printer.Printf("Filtered to %d comments\n", len(comments))

	fmt.Println("\nCreating engagement tiers...")
	submissions = sampling.AssignTiers(submissions)
	tierCounts := sampling.TierCounts(submissions)
	for _, tier := range sampling.TierLabels {
		printer.Printf("  %s: %d submissions\n", tier, tierCounts[tier])
	}

	targetN := settings.Sampling.SamplesPerCategory
	factor := settings.Sampling.OversampleFactor
	fmt.Printf("\nSampling %d submissions per tier (with %dx oversampling)...\n", targetN, factor)

	sampled, draws := sampling.PerCategory(submissions,
		func(s corpus.Submission) string { return s.EngagementTier },
		sampling.TierLabels, targetN*factor, settings.Sampling.Seed)
	for _, draw := range draws {
		if draw.Short() {
			fmt.Printf("  Warning: Only %d submissions in %s tier\n", draw.Available, draw.Category)
		}
	}

	fmt.Println("\nAdding comment metrics...")
	sampled = corpus.AddCommentMetrics(sampled, comments)

	fmt.Printf("\nGetting top %d comments per submission...\n", settings.Sampling.CommentsPerSubmission)
	topComments := sampling.TopCommentsForSubmissions(sampled, comments, settings.Sampling.CommentsPerSubmission)
	printer.Printf("Selected %d comments\n", len(topComments))

	if err := saveSample(settings, sampled, topComments); err != nil {
		return err
	}

	printer.Printf("\n✅ Sampling complete! Generated %d submissions and %d comments\n", len(sampled), len(topComments))
	fmt.Printf("Files saved in the '%s' directory\n", settings.Output.SamplesDir)
	log.Info("sampling completed",
		"submissions", len(sampled),
		"comments", len(topComments),
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

func saveSample(settings *conf.Settings, submissions []corpus.Submission, comments []corpus.Comment) error {
	prefix := settings.Output.Prefix
	dir := settings.Output.SamplesDir
	fmt.Printf("\nSaving samples with prefix '%s'...\n", prefix)

	submissionsPath := filepath.Join(dir, conf.SubmissionsName(prefix))
	if err := corpus.WriteSubmissions(submissionsPath, submissions,
		corpus.ColEngagementTier, corpus.ColCommentCount, corpus.ColAvgCommentScore); err != nil {
		return err
	}
	printer.Printf("Saved %d submissions to %s\n", len(submissions), submissionsPath)

	commentsPath := filepath.Join(dir, conf.CommentsName(prefix))
	if err := corpus.WriteComments(commentsPath, comments); err != nil {
		return err
	}
	printer.Printf("Saved %d comments to %s\n", len(comments), commentsPath)

	meta := export.NewMetadata(
		export.Parameters{
			MaxSubmissionChars:    settings.Sampling.MaxSubmissionChars,
			MaxCommentChars:       settings.Sampling.MaxCommentChars,
			TargetN:               settings.Sampling.SamplesPerCategory,
			OversampleFactor:      settings.Sampling.OversampleFactor,
			CommentsPerSubmission: settings.Sampling.CommentsPerSubmission,
			OutputPrefix:          prefix,
			Seed:                  settings.Sampling.Seed,
		},
		export.Statistics{
			TotalSubmissions:       len(submissions),
			TotalComments:          len(comments),
			AvgSubmissionLength:    corpus.SubmissionLengthStats(submissions).Mean,
			AvgCommentLength:       corpus.CommentLengthStats(comments).Mean,
			EngagementDistribution: sampling.TierCounts(submissions),
		},
		export.Files{
			SubmissionsCSV: conf.SubmissionsName(prefix),
			CommentsCSV:    conf.CommentsName(prefix),
			ReviewTXT:      conf.ReviewName(prefix),
			MetadataYAML:   conf.MetadataName(prefix),
		},
	)
	metadataPath := filepath.Join(dir, conf.MetadataName(prefix))
	if err := export.WriteMetadata(metadataPath, meta); err != nil {
		return err
	}
	fmt.Printf("Saved metadata to %s\n", metadataPath)

	reviewPath := filepath.Join(dir, conf.ReviewName(prefix))
	review := export.Review{
		Title:         "SAMPLE REVIEW - " + strings.ToUpper(prefix),
		Submissions:   submissions,
		Comments:      comments,
		CommentsShown: settings.Sampling.CommentsPerSubmission,
	}
	if err := export.WriteReview(reviewPath, review); err != nil {
		return err
	}
	fmt.Printf("Saved review file to %s\n", reviewPath)

	summaryPath := filepath.Join(dir, conf.SummaryName(prefix))
	if err := export.WriteSampleSummary(summaryPath, prefix, submissions, comments); err != nil {
		return err
	}
	fmt.Printf("Saved summary to %s\n", summaryPath)
	return nil
}
