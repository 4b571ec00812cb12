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
	"github.com/aitacurator/aitacurator/internal/sampling"
	"github.com/aitacurator/aitacurator/internal/session"
	"github.com/aitacurator/aitacurator/internal/verdict"
)

// commentsShownStratified caps the comments displayed per submission during
// a stratified review.
const commentsShownStratified = 5

// runStratified reviews every submission of the newest stratified sample,
// grouped by dominant verdict, and saves the picks.
func runStratified(settings *conf.Settings) error {
	log := logging.ForService("curate")

	dir := settings.StratifiedSamplesDir()
	submissionsPath := newestMatch(filepath.Join(dir, "*_submissions.csv"))
	if submissionsPath == "" {
		return fmt.Errorf("no stratified samples found in %s (run 'aitacurator stratify' first)", dir)
	}
	commentsPath := strings.TrimSuffix(submissionsPath, "_submissions.csv") + "_comments.csv"
	if _, err := os.Stat(commentsPath); err != nil {
		return fmt.Errorf("stratified comments not found: %s (run 'aitacurator stratify' first)", commentsPath)
	}

	fmt.Printf("Loading stratified samples from %s\n", submissionsPath)
	submissions, err := corpus.ReadSubmissions(submissionsPath)
	if err != nil {
		return err
	}
	comments, err := corpus.ReadComments(commentsPath)
	if err != nil {
		return err
	}
	grouped := corpus.CommentsBySubmission(comments)

	printHeader("SELECTING FAVORITE SUBMISSIONS FROM STRATIFIED SAMPLES")
	fmt.Println("You'll review submissions grouped by verdict category")
	fmt.Println("Choose 'y' to select, 'n' to skip, 'q' to quit")

	shown := 0
	display := func(w io.Writer, s corpus.Submission, _, _ int) {
		shown++
		fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 80))
		fmt.Fprintf(w, "SUBMISSION %d/%d - %s\n", shown, len(submissions), strings.ToUpper(s.DominantVerdict))
		fmt.Fprintf(w, "%s\n", strings.Repeat("=", 80))
		fmt.Fprintf(w, "Submission ID: %s\n", s.SubmissionID)
		fmt.Fprintf(w, "Title: %s\n", s.Title)
		fmt.Fprintf(w, "Score: %d\n", s.Score)
		fmt.Fprintf(w, "Dominant Verdict: %s\n", s.DominantVerdict)
		fmt.Fprintf(w, "Verdict Count: %d\n", s.VerdictCount)
		fmt.Fprintf(w, "Length: %d characters\n", s.Length())
		fmt.Fprintf(w, "\nAITA SUBMISSION:\n%s\n", s.SelfText)

		submissionComments := grouped[s.SubmissionID]
		fmt.Fprintf(w, "\nTOP COMMENTS (%d total):\n", len(submissionComments))
		for _, c := range sampling.TopComments(submissionComments, commentsShownStratified) {
			fmt.Fprintf(w, "\nComment (Score: %d):\n%s\n", c.Score, c.Message)
		}
		if hidden := len(submissionComments) - commentsShownStratified; hidden > 0 {
			fmt.Fprintf(w, "\n... and %d more comments\n", hidden)
		}
		fmt.Fprintf(w, "%s\n", strings.Repeat("=", 80))
	}

	selectedCount := 0
	prompter := newPrompter(autoYes, "Select this submission?", display, &selectedCount)

	var selected []corpus.Submission
	reviewed := 0
	for _, category := range dominantCategories(submissions) {
		var categorySubmissions []corpus.Submission
		for i := range submissions {
			if submissions[i].DominantVerdict == category {
				categorySubmissions = append(categorySubmissions, submissions[i])
			}
		}

		fmt.Printf("\n--- %s CATEGORY ---\n", strings.ToUpper(category))
		fmt.Printf("Showing %d submissions in this category\n", len(categorySubmissions))

		result, err := session.Run(categorySubmissions, prompter)
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
		fmt.Println("\nNo submissions were selected.")
		return nil
	}

	var selectedComments []corpus.Comment
	for i := range selected {
		selectedComments = append(selectedComments, grouped[selected[i].SubmissionID]...)
	}

	if err := saveStratifiedFavorites(settings, selected, selectedComments); err != nil {
		return err
	}

	fmt.Println("\nSELECTION SUMMARY:")
	fmt.Printf("Selected submissions: %d\n", len(selected))
	fmt.Printf("Associated comments: %d\n", len(selectedComments))

	fmt.Println("\nVerdict category distribution:")
	for _, count := range verdict.DominantDistribution(selected) {
		fmt.Printf("  %s: %d\n", count.Label, count.N)
	}

	fmt.Println("\nComments per selected submission:")
	sizes := corpus.CommentGroupSizes(selectedComments)
	fmt.Printf("  Mean: %.1f\n", sizes.Mean)
	fmt.Printf("  Median: %.1f\n", sizes.Median)
	fmt.Printf("  Min: %d\n", sizes.Min)
	fmt.Printf("  Max: %d\n", sizes.Max)

	log.Info("stratified curation completed",
		"reviewed", reviewed,
		"selected", len(selected),
		"comments", len(selectedComments))
	return nil
}

// dominantCategories returns the distinct dominant verdicts in first-seen
// order.
func dominantCategories(submissions []corpus.Submission) []string {
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

func saveStratifiedFavorites(settings *conf.Settings, submissions []corpus.Submission, comments []corpus.Comment) error {
	if err := conf.EnsureOutputDirs(settings); err != nil {
		return err
	}
	dir := settings.StratifiedFavoritesDir()

	submissionsPath := filepath.Join(dir, "stratified_"+conf.FavoriteSubmissionsFile)
	if err := corpus.WriteSubmissions(submissionsPath, submissions,
		corpus.ColDominantVerdict, corpus.ColVerdictCount); err != nil {
		return err
	}
	fmt.Printf("\n✅ Saved %d favorite submissions to %s\n", len(submissions), submissionsPath)

	commentsPath := filepath.Join(dir, "stratified_"+conf.FavoriteCommentsFile)
	if err := corpus.WriteComments(commentsPath, comments, corpus.ColDominantVerdict); err != nil {
		return err
	}
	fmt.Printf("✅ Saved %d comments to %s\n", len(comments), commentsPath)

	reviewPath := filepath.Join(dir, "stratified_"+conf.FavoriteReviewFile)
	favorites := export.StratifiedFavorites{
		Title:       "STRATIFIED FAVORITE SUBMISSIONS",
		Submissions: submissions,
		Comments:    comments,
	}
	if err := export.WriteStratifiedFavorites(reviewPath, favorites); err != nil {
		return err
	}
	fmt.Printf("✅ Saved review file to %s\n", reviewPath)
	return nil
}
