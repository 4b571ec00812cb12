package export

import (
	"bufio"
	"fmt"
	"time"

	"github.com/aitacurator/aitacurator/internal/corpus"
	"github.com/aitacurator/aitacurator/internal/sampling"
)

// Review is the input of the tier-grouped review TXT.
type Review struct {
	Title       string
	GeneratedAt time.Time // zero means now
	Submissions []corpus.Submission
	Comments    []corpus.Comment

	// CommentsShown caps the comments printed per submission; zero means 3.
	CommentsShown int
}

// WriteReview writes the human-readable review file: header with totals,
// then the submissions grouped by engagement tier with their leading
// comments. Empty tiers are omitted. Comment groups are printed in stored
// order, so feed comments already ranked per submission.
func WriteReview(path string, review Review) error {
	generated := review.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}
	shown := review.CommentsShown
	if shown == 0 {
		shown = 3
	}

	grouped := corpus.CommentsBySubmission(review.Comments)
	byTier := sampling.GroupByTier(review.Submissions)

	return writeFile(path, func(w *bufio.Writer) error {
		fmt.Fprintf(w, "%s\n", review.Title)
		fmt.Fprintf(w, "%s\n", rule("=", lineWidth))
		fmt.Fprintf(w, "Generated: %s\n", generated.Format("2006-01-02 15:04:05"))
		printer.Fprintf(w, "Total Submissions: %d\n", len(review.Submissions))
		printer.Fprintf(w, "Total Comments: %d\n\n", len(review.Comments))

		for _, tier := range sampling.TierLabels {
			tierSubmissions := byTier[tier]
			if len(tierSubmissions) == 0 {
				continue
			}

			fmt.Fprintf(w, "=== %s ENGAGEMENT TIER ===\n", upper.String(tier))
			fmt.Fprintf(w, "Submissions in this tier: %d\n\n", len(tierSubmissions))

			for idx := range tierSubmissions {
				s := &tierSubmissions[idx]
				fmt.Fprintf(w, "SUBMISSION %d: %s\n", idx+1, s.SubmissionID)
				fmt.Fprintf(w, "TITLE: %s\n", s.Title)
				fmt.Fprintf(w, "SCORE: %d\n", s.Score)
				fmt.Fprintf(w, "COMMENT COUNT: %d\n", s.CommentCount)
				fmt.Fprintf(w, "LENGTH: %d characters\n", s.Length())
				fmt.Fprintf(w, "TIER: %s\n", s.EngagementTier)
				fmt.Fprintf(w, "TEXT:\n%s\n\n", s.SelfText)

				if comments := grouped[s.SubmissionID]; len(comments) > 0 {
					fmt.Fprintf(w, "TOP COMMENTS:\n")
					for i, c := range comments {
						if i >= shown {
							break
						}
						fmt.Fprintf(w, "%d. (Score: %d): %s\n", i+1, c.Score, c.Message)
					}
					fmt.Fprintf(w, "\n")
				}

				fmt.Fprintf(w, "%s\n\n", rule("-", lineWidth))
			}
		}
		return nil
	})
}
