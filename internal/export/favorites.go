package export

import (
	"bufio"
	"fmt"
	"time"

	"github.com/aitacurator/aitacurator/internal/corpus"
	"github.com/aitacurator/aitacurator/internal/sampling"
)

const contextPreviewChars = 200

// StratifiedFavorites is the input of the per-submission favorites TXT.
type StratifiedFavorites struct {
	Title       string
	GeneratedAt time.Time // zero means now
	Submissions []corpus.Submission
	Comments    []corpus.Comment

	// CommentsShown caps the comments printed per submission; zero means 10.
	CommentsShown int
}

// WriteStratifiedFavorites writes selected submissions grouped by dominant
// verdict, each with its highest-scored comments.
func WriteStratifiedFavorites(path string, fav StratifiedFavorites) error {
	generated := fav.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}
	shown := fav.CommentsShown
	if shown == 0 {
		shown = 10
	}

	grouped := corpus.CommentsBySubmission(fav.Comments)

	return writeFile(path, func(w *bufio.Writer) error {
		fmt.Fprintf(w, "%s\n", fav.Title)
		fmt.Fprintf(w, "%s\n", rule("=", lineWidth))
		fmt.Fprintf(w, "Generated: %s\n", generated.Format("2006-01-02 15:04:05"))
		printer.Fprintf(w, "Total Submissions: %d\n", len(fav.Submissions))
		printer.Fprintf(w, "Total Comments: %d\n\n", len(fav.Comments))

		for _, category := range submissionVerdicts(fav.Submissions) {
			var categorySubmissions []corpus.Submission
			for i := range fav.Submissions {
				if fav.Submissions[i].DominantVerdict == category {
					categorySubmissions = append(categorySubmissions, fav.Submissions[i])
				}
			}

			fmt.Fprintf(w, "=== %s ===\n", upper.String(category))
			fmt.Fprintf(w, "Submissions in this category: %d\n\n", len(categorySubmissions))

			for idx := range categorySubmissions {
				s := &categorySubmissions[idx]
				fmt.Fprintf(w, "SUBMISSION %d: %s\n", idx+1, s.SubmissionID)
				fmt.Fprintf(w, "Title: %s\n", s.Title)
				fmt.Fprintf(w, "Score: %d\n", s.Score)
				fmt.Fprintf(w, "Dominant Verdict: %s\n", s.DominantVerdict)
				fmt.Fprintf(w, "Verdict Count: %d\n", s.VerdictCount)
				fmt.Fprintf(w, "Length: %d characters\n", s.Length())
				fmt.Fprintf(w, "TEXT:\n%s\n\n", s.SelfText)

				if comments := grouped[s.SubmissionID]; len(comments) > 0 {
					fmt.Fprintf(w, "COMMENTS:\n")
					for i, c := range sampling.TopComments(comments, shown) {
						fmt.Fprintf(w, "%d. (Score: %d): %s\n", i+1, c.Score, c.Message)
					}
					if len(comments) > shown {
						fmt.Fprintf(w, "... and %d more comments\n", len(comments)-shown)
					}
					fmt.Fprintf(w, "\n")
				}

				fmt.Fprintf(w, "%s\n\n", rule("-", lineWidth))
			}
		}
		return nil
	})
}

// BalancedFavorites is the input of the per-comment favorites TXT.
type BalancedFavorites struct {
	Title       string
	GeneratedAt time.Time // zero means now
	Comments    []corpus.Comment
	Submissions []corpus.Submission // context for the comments, may be partial
}

// WriteBalancedFavorites writes selected comments grouped by verdict, each
// with a short preview of its parent submission when that context is
// available.
func WriteBalancedFavorites(path string, fav BalancedFavorites) error {
	generated := fav.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}

	context := make(map[string]*corpus.Submission, len(fav.Submissions))
	for i := range fav.Submissions {
		context[fav.Submissions[i].SubmissionID] = &fav.Submissions[i]
	}

	return writeFile(path, func(w *bufio.Writer) error {
		fmt.Fprintf(w, "%s\n", fav.Title)
		fmt.Fprintf(w, "%s\n", rule("=", lineWidth))
		fmt.Fprintf(w, "Generated: %s\n", generated.Format("2006-01-02 15:04:05"))
		printer.Fprintf(w, "Total Comments: %d\n", len(fav.Comments))
		printer.Fprintf(w, "Total Submissions: %d\n\n", len(fav.Submissions))

		for _, category := range commentVerdicts(fav.Comments) {
			var categoryComments []corpus.Comment
			for i := range fav.Comments {
				if fav.Comments[i].Verdict == category {
					categoryComments = append(categoryComments, fav.Comments[i])
				}
			}

			fmt.Fprintf(w, "=== %s ===\n", upper.String(category))
			fmt.Fprintf(w, "Comments in this category: %d\n\n", len(categoryComments))

			for idx := range categoryComments {
				c := &categoryComments[idx]
				fmt.Fprintf(w, "COMMENT %d: %s\n", idx+1, c.CommentID)
				fmt.Fprintf(w, "SUBMISSION ID: %s\n", c.SubmissionID)
				fmt.Fprintf(w, "SCORE: %d\n", c.Score)
				fmt.Fprintf(w, "LENGTH: %d characters\n", c.Length())
				fmt.Fprintf(w, "VERDICT: %s\n", c.Verdict)
				fmt.Fprintf(w, "TEXT:\n%s\n\n", c.Message)

				if s, ok := context[c.SubmissionID]; ok {
					fmt.Fprintf(w, "SUBMISSION CONTEXT:\n")
					fmt.Fprintf(w, "Title: %s\n", s.Title)
					fmt.Fprintf(w, "Score: %d\n", s.Score)
					fmt.Fprintf(w, "Submission Text: %s...\n\n", truncate(s.SelfText, contextPreviewChars))
				}

				fmt.Fprintf(w, "%s\n\n", rule("-", lineWidth))
			}
		}
		return nil
	})
}

// submissionVerdicts returns the distinct dominant verdicts in first-seen
// order.
func submissionVerdicts(submissions []corpus.Submission) []string {
	var order []string
	seen := make(map[string]struct{})
	for i := range submissions {
		v := submissions[i].DominantVerdict
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		order = append(order, v)
	}
	return order
}

// commentVerdicts returns the distinct comment verdicts in first-seen order.
func commentVerdicts(comments []corpus.Comment) []string {
	var order []string
	seen := make(map[string]struct{})
	for i := range comments {
		v := comments[i].Verdict
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		order = append(order, v)
	}
	return order
}
