package curate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aitacurator/aitacurator/internal/conf"
	"github.com/aitacurator/aitacurator/internal/corpus"
	"github.com/aitacurator/aitacurator/internal/export"
	"github.com/aitacurator/aitacurator/internal/logging"
	"github.com/aitacurator/aitacurator/internal/session"
	"github.com/aitacurator/aitacurator/internal/verdict"
)

// contextPreviewChars caps the submission preview shown under each comment.
const contextPreviewChars = 300

// RunBalanced reviews every comment of the newest balanced verdict sample,
// grouped by verdict, and saves the picks together with the submissions
// they respond to. The workflow command calls this directly after its
// extraction step.
func RunBalanced(settings *conf.Settings, autoAccept bool) error {
	log := logging.ForService("curate")

	dir := settings.VerdictSamplesDir()
	balancedPath := newestMatch(filepath.Join(dir, "*_balanced_samples.csv"))
	if balancedPath == "" {
		return fmt.Errorf("no balanced samples found in %s (run 'aitacurator verdicts' first)", dir)
	}

	fmt.Printf("Loading balanced samples from %s\n", balancedPath)
	comments, err := corpus.ReadComments(balancedPath)
	if err != nil {
		return err
	}

	contexts, err := loadContexts(settings, balancedPath)
	if err != nil {
		return err
	}
	byID := make(map[string]*corpus.Submission, len(contexts))
	for i := range contexts {
		byID[contexts[i].SubmissionID] = &contexts[i]
	}

	printHeader("SELECTING FAVORITE COMMENTS FROM BALANCED SAMPLES")
	fmt.Println("You'll review comments grouped by verdict category")
	fmt.Println("Choose 'y' to select, 'n' to skip, 'q' to quit")

	shown := 0
	display := func(w io.Writer, c corpus.Comment, _, _ int) {
		shown++
		fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 80))
		fmt.Fprintf(w, "COMMENT %d/%d - %s\n", shown, len(comments), strings.ToUpper(c.Verdict))
		fmt.Fprintf(w, "%s\n", strings.Repeat("=", 80))
		fmt.Fprintf(w, "Comment ID: %s\n", c.CommentID)
		fmt.Fprintf(w, "Submission ID: %s\n", c.SubmissionID)
		fmt.Fprintf(w, "Score: %d\n", c.Score)
		fmt.Fprintf(w, "Length: %d characters\n", c.Length())
		fmt.Fprintf(w, "Verdict: %s\n", c.Verdict)
		fmt.Fprintf(w, "\nCOMMENT TEXT:\n%s\n", c.Message)
		if s, ok := byID[c.SubmissionID]; ok {
			fmt.Fprintf(w, "\nSUBMISSION CONTEXT:\n")
			fmt.Fprintf(w, "Title: %s\n", s.Title)
			fmt.Fprintf(w, "Score: %d\n", s.Score)
			fmt.Fprintf(w, "Submission Text: %s...\n", preview(s.SelfText, contextPreviewChars))
		}
		fmt.Fprintf(w, "%s\n", strings.Repeat("=", 80))
	}

	selectedCount := 0
	prompter := newPrompter(autoAccept, "Select this comment?", display, &selectedCount)

	var selected []corpus.Comment
	reviewed := 0
	for _, category := range commentCategories(comments) {
		var categoryComments []corpus.Comment
		for i := range comments {
			if comments[i].Verdict == category {
				categoryComments = append(categoryComments, comments[i])
			}
		}

		fmt.Printf("\n--- %s CATEGORY ---\n", strings.ToUpper(category))
		fmt.Printf("Showing %d comments in this category\n", len(categoryComments))

		result, err := session.Run(categoryComments, prompter)
		if err != nil {
			return err
		}
		selected = append(selected, result.Accepted...)
		reviewed += result.Reviewed
		if result.Outcome == session.Aborted {
			fmt.Println("\nSelection process ended early.")
			break
		}
	}

	if len(selected) == 0 {
		fmt.Println("\nNo comments were selected.")
		return nil
	}

	contextSubmissions := selectedContexts(selected, byID)
	if err := saveBalancedFavorites(settings, selected, contextSubmissions); err != nil {
		return err
	}

	fmt.Println("\nSELECTION SUMMARY:")
	fmt.Printf("Selected comments: %d\n", len(selected))
	fmt.Printf("Context submissions: %d\n", len(contextSubmissions))

	fmt.Println("\nVerdict distribution:")
	for _, count := range verdict.Distribution(selected) {
		fmt.Printf("  %s: %d\n", count.Label, count.N)
	}

	log.Info("balanced curation completed",
		"reviewed", reviewed,
		"selected", len(selected),
		"contexts", len(contextSubmissions))
	return nil
}

// loadContexts reads the submissions the balanced comments respond to. The
// context table generated next to the balanced samples is preferred, the
// raw corpus serves as fallback, and missing context only costs the preview
// in the review display.
func loadContexts(settings *conf.Settings, balancedPath string) ([]corpus.Submission, error) {
	contextsPath := strings.TrimSuffix(balancedPath, "_balanced_samples.csv") + "_balanced_submissions.csv"
	if _, err := os.Stat(contextsPath); err == nil {
		return corpus.ReadSubmissions(contextsPath)
	}

	if _, err := os.Stat(settings.SubmissionsPath()); err == nil {
		return corpus.ReadSubmissions(settings.SubmissionsPath())
	}

	fmt.Println("Warning: No submission context found")
	return nil, nil
}

// commentCategories returns the distinct comment verdicts in first-seen
// order.
func commentCategories(comments []corpus.Comment) []string {
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

// selectedContexts returns the distinct parent submissions of the selected
// comments, in first-selection order.
func selectedContexts(selected []corpus.Comment, byID map[string]*corpus.Submission) []corpus.Submission {
	var contexts []corpus.Submission
	seen := make(map[string]struct{})
	for i := range selected {
		id := selected[i].SubmissionID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if s, ok := byID[id]; ok {
			contexts = append(contexts, *s)
		}
	}
	return contexts
}

func saveBalancedFavorites(settings *conf.Settings, comments []corpus.Comment, contexts []corpus.Submission) error {
	if err := conf.EnsureOutputDirs(settings); err != nil {
		return err
	}
	dir := settings.BalancedFavoritesDir()

	commentsPath := filepath.Join(dir, "balanced_"+conf.FavoriteCommentsFile)
	if err := corpus.WriteComments(commentsPath, comments, corpus.ColVerdict, corpus.ColCommentLength); err != nil {
		return err
	}
	fmt.Printf("\n✅ Saved %d favorite comments to %s\n", len(comments), commentsPath)

	submissionsPath := filepath.Join(dir, "balanced_"+conf.FavoriteSubmissionsFile)
	if err := corpus.WriteSubmissions(submissionsPath, contexts); err != nil {
		return err
	}
	fmt.Printf("✅ Saved %d context submissions to %s\n", len(contexts), submissionsPath)

	reviewPath := filepath.Join(dir, "balanced_favorite_comments.txt")
	favorites := export.BalancedFavorites{
		Title:       "BALANCED FAVORITE COMMENTS",
		Comments:    comments,
		Submissions: contexts,
	}
	if err := export.WriteBalancedFavorites(reviewPath, favorites); err != nil {
		return err
	}
	fmt.Printf("✅ Saved review file to %s\n", reviewPath)
	return nil
}
