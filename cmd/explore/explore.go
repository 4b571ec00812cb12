package explore

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/aitacurator/aitacurator/internal/conf"
	"github.com/aitacurator/aitacurator/internal/corpus"
	"github.com/aitacurator/aitacurator/internal/sampling"
)

var printer = message.NewPrinter(language.English)

// Candidate thresholds for the filter impact table.
var (
	submissionLimits = []int{500, 1000, 1500, 2000, 2500, 3000}
	commentLimits    = []int{200, 300, 400, 500, 600, 800}
)

func Command(settings *conf.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Explore corpus distributions to pick filtering thresholds",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(settings)
		},
	}
}

func runExplore(settings *conf.Settings) error {
	fmt.Println("Loading data for exploration...")

	if _, err := os.Stat(settings.Corpus.DataDir); os.IsNotExist(err) {
		fmt.Printf("Data directory %s not found. Creating it...\n", settings.Corpus.DataDir)
		if err := os.MkdirAll(settings.Corpus.DataDir, 0o755); err != nil {
			return err
		}
		fmt.Printf("Please place your data files in the '%s' directory:\n", settings.Corpus.DataDir)
		fmt.Printf("  - %s\n", settings.SubmissionsPath())
		fmt.Printf("  - %s\n", settings.CommentsPath())
		return nil
	}

	for _, path := range []string{settings.SubmissionsPath(), settings.CommentsPath()} {
		if _, err := os.Stat(path); err != nil {
			fmt.Printf("Data file not found: %s\n", path)
			fmt.Println("Run 'aitacurator ingest' or place the file in the data directory.")
			return nil
		}
	}

	submissions, err := corpus.ReadSubmissions(settings.SubmissionsPath())
	if err != nil {
		return err
	}
	comments, err := corpus.ReadComments(settings.CommentsPath())
	if err != nil {
		return err
	}

	printer.Printf("Data loaded: %d submissions, %d comments\n", len(submissions), len(comments))

	submissionLengths := corpus.SubmissionLengthStats(submissions)
	commentLengths := corpus.CommentLengthStats(comments)

	fmt.Println("\n=== SUBMISSION LENGTH ANALYSIS ===")
	fmt.Printf("Mean submission length: %.1f characters\n", submissionLengths.Mean)
	fmt.Printf("Median submission length: %.1f characters\n", submissionLengths.Median)
	fmt.Printf("95th percentile: %.1f characters\n", submissionLengths.P95)
	fmt.Printf("99th percentile: %.1f characters\n", submissionLengths.P99)

	fmt.Println("\n=== COMMENT LENGTH ANALYSIS ===")
	fmt.Printf("Mean comment length: %.1f characters\n", commentLengths.Mean)
	fmt.Printf("Median comment length: %.1f characters\n", commentLengths.Median)
	fmt.Printf("95th percentile: %.1f characters\n", commentLengths.P95)
	fmt.Printf("99th percentile: %.1f characters\n", commentLengths.P99)

	submissionScores := corpus.SubmissionScoreStats(submissions)
	commentScores := corpus.CommentScoreStats(comments)

	fmt.Println("\n=== SCORE ANALYSIS ===")
	fmt.Printf("Submission scores - Mean: %.1f, Median: %.1f\n", submissionScores.Mean, submissionScores.Median)
	fmt.Printf("Comment scores - Mean: %.1f, Median: %.1f\n", commentScores.Mean, commentScores.Median)

	fmt.Println("\n=== FILTERING IMPACT ANALYSIS ===")

	fmt.Println("Submission character limits and resulting counts:")
	for _, limit := range submissionLimits {
		count := len(corpus.FilterSubmissionsByLength(submissions, limit))
		printer.Printf("  <= %d chars: %d submissions (%.1f%%)\n", limit, count,
			percentage(count, len(submissions)))
	}

	fmt.Println("\nComment character limits and resulting counts:")
	for _, limit := range commentLimits {
		count := len(corpus.FilterCommentsByLength(comments, limit))
		printer.Printf("  <= %d chars: %d comments (%.1f%%)\n", limit, count,
			percentage(count, len(comments)))
	}

	fmt.Println("\n=== ENGAGEMENT DISTRIBUTION ===")
	tiered := sampling.AssignTiers(submissions)
	tierCounts := sampling.TierCounts(tiered)
	for _, tier := range sampling.TierLabels {
		count := tierCounts[tier]
		printer.Printf("  %s: %d submissions (%.1f%%)\n", tier, count,
			percentage(count, len(submissions)))
	}

	fmt.Println("\n=== SAMPLE SHORT SUBMISSIONS FOR REVIEW ===")
	short := corpus.FilterSubmissionsByLength(submissions, 1000)
	picks := sampling.Sample(short, 5, settings.Sampling.Seed)
	for i := range picks {
		s := &picks[i]
		fmt.Printf("\nSubmission %s (Score: %d):\n", s.SubmissionID, s.Score)
		fmt.Printf("Title: %s\n", s.Title)
		fmt.Printf("Length: %d characters\n", s.Length())
		fmt.Printf("Text preview: %s...\n", preview(s.SelfText, 200))
		fmt.Println(strings.Repeat("-", 50))
	}

	return nil
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
