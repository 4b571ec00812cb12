package preview

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aitacurator/aitacurator/internal/conf"
	"github.com/aitacurator/aitacurator/internal/corpus"
	"github.com/aitacurator/aitacurator/internal/sampling"
)

// Command creates the sample preview command.
func Command(settings *conf.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Preview one sampled submission per engagement tier",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(settings)
		},
	}
}

func runPreview(settings *conf.Settings) error {
	prefix := settings.Output.Prefix
	submissionsPath := filepath.Join(settings.Output.SamplesDir, conf.SubmissionsName(prefix))
	commentsPath := filepath.Join(settings.Output.SamplesDir, conf.CommentsName(prefix))
	if _, err := os.Stat(submissionsPath); err != nil {
		return fmt.Errorf("sampled submissions not found: %s (run 'aitacurator sample' first)", submissionsPath)
	}

	submissions, err := corpus.ReadSubmissions(submissionsPath)
	if err != nil {
		return err
	}
	comments, err := corpus.ReadComments(commentsPath)
	if err != nil {
		return err
	}
	grouped := corpus.CommentsBySubmission(comments)

	fmt.Println("=== SAMPLED DATA PREVIEW ===")

	byTier := sampling.GroupByTier(submissions)
	for _, tier := range sampling.TierLabels {
		tierSubmissions := byTier[tier]
		fmt.Printf("\n--- %s ENGAGEMENT TIER ---\n", strings.ToUpper(tier))
		if len(tierSubmissions) == 0 {
			fmt.Printf("No submissions found for %s tier.\n", tier)
			continue
		}

		s := &tierSubmissions[0]
		fmt.Printf("Submission ID: %s\n", s.SubmissionID)
		fmt.Printf("Title: %s\n", s.Title)
		fmt.Printf("Score: %d\n", s.Score)
		fmt.Printf("Comment Count: %d\n", s.CommentCount)
		fmt.Printf("Length: %d characters\n", s.Length())
		fmt.Printf("Text Preview: %s...\n", preview(s.SelfText, 300))

		if top := sampling.TopComments(grouped[s.SubmissionID], 1); len(top) > 0 {
			fmt.Printf("Top Comment (Score: %d): %s...\n", top[0].Score, preview(top[0].Message, 200))
		}

		fmt.Printf("\n%s\n", strings.Repeat("=", 80))
	}

	fmt.Println("\n=== SAMPLE STATISTICS ===")
	fmt.Printf("Total submissions: %d\n", len(submissions))
	fmt.Printf("Total comments: %d\n", len(comments))
	fmt.Printf("Average submission length: %.1f characters\n", corpus.SubmissionLengthStats(submissions).Mean)
	fmt.Printf("Average comment length: %.1f characters\n", corpus.CommentLengthStats(comments).Mean)

	fmt.Println("\n=== LENGTH DISTRIBUTION ===")

	fmt.Println("Submission lengths:")
	submissionLengths := func(s corpus.Submission) int { return s.Length() }
	printBucket("Short (≤500 chars)", countRange(submissions, submissionLengths, 0, 500), len(submissions))
	printBucket("Medium (501-1000 chars)", countRange(submissions, submissionLengths, 501, 1000), len(submissions))
	printBucket("Long (1001-2000 chars)", countRange(submissions, submissionLengths, 1001, 2000), len(submissions))

	fmt.Println("\nComment lengths:")
	commentLengths := func(c corpus.Comment) int { return c.Length() }
	printBucket("Short (≤200 chars)", countRange(comments, commentLengths, 0, 200), len(comments))
	printBucket("Medium (201-400 chars)", countRange(comments, commentLengths, 201, 400), len(comments))
	printBucket("Long (401-500 chars)", countRange(comments, commentLengths, 401, 500), len(comments))

	return nil
}

// countRange counts items whose length falls within [lo, hi].
func countRange[T any](items []T, length func(T) int, lo, hi int) int {
	count := 0
	for _, item := range items {
		if n := length(item); n >= lo && n <= hi {
			count++
		}
	}
	return count
}

func printBucket(label string, count, total int) {
	share := 0.0
	if total > 0 {
		share = float64(count) / float64(total) * 100
	}
	fmt.Printf("  %s: %d (%.1f%%)\n", label, count, share)
}

// preview returns the first n runes of s, never cutting a multi-byte
// character in half.
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
