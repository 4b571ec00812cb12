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
)

// submissionsPerTier is how many submissions each engagement tier offers in
// a quick session.
const submissionsPerTier = 2

// runQuick reviews a couple of submissions from each engagement tier of the
// quick sample and saves the picks as the favorite set.
func runQuick(settings *conf.Settings) error {
	log := logging.ForService("curate")

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

	printHeader("SELECTING FAVORITE SUBMISSIONS")
	fmt.Printf("You'll review %d submissions from each engagement tier (%d total)\n",
		submissionsPerTier, submissionsPerTier*len(sampling.TierLabels))
	fmt.Println("Choose 'y' to select, 'n' to skip, 'q' to quit")

	shown := 0
	total := submissionsPerTier * len(sampling.TierLabels)
	display := func(w io.Writer, s corpus.Submission, _, _ int) {
		shown++
		fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 80))
		fmt.Fprintf(w, "SUBMISSION %d/%d\n", shown, total)
		fmt.Fprintf(w, "%s\n", strings.Repeat("=", 80))
		fmt.Fprintf(w, "ID: %s\n", s.SubmissionID)
		fmt.Fprintf(w, "Title: %s\n", s.Title)
		fmt.Fprintf(w, "Score: %d\n", s.Score)
		fmt.Fprintf(w, "Engagement Tier: %s\n", s.EngagementTier)
		fmt.Fprintf(w, "Comment Count: %d\n", s.CommentCount)
		fmt.Fprintf(w, "Length: %d characters\n", s.Length())
		fmt.Fprintf(w, "\nTEXT:\n%s\n", s.SelfText)
		if topComments := sampling.TopComments(grouped[s.SubmissionID], 3); len(topComments) > 0 {
			fmt.Fprintf(w, "\nTOP COMMENTS:\n")
			for i, c := range topComments {
				fmt.Fprintf(w, "%d. (Score: %d) %s\n", i+1, c.Score, c.Message)
			}
		}
		fmt.Fprintf(w, "%s\n", strings.Repeat("=", 80))
	}

	selectedCount := 0
	prompter := newPrompter(autoYes, "Select this submission?", display, &selectedCount)

	byTier := sampling.GroupByTier(submissions)
	var selected []corpus.Submission
	reviewed := 0
	for _, tier := range sampling.TierLabels {
		tierSubmissions := byTier[tier]
		if len(tierSubmissions) == 0 {
			fmt.Printf("\nNo submissions found for %s tier.\n", tier)
			continue
		}

		fmt.Printf("\n--- %s ENGAGEMENT TIER ---\n", strings.ToUpper(tier))
		picks := sampling.Sample(tierSubmissions, submissionsPerTier, settings.Sampling.Seed)

		result, err := session.Run(picks, prompter)
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

	if err := saveQuickFavorites(settings, selected, selectedComments); err != nil {
		return err
	}

	fmt.Println("\nSELECTION SUMMARY:")
	fmt.Printf("Selected submissions: %d\n", len(selected))
	fmt.Printf("Associated comments: %d\n", len(selectedComments))
	fmt.Printf("Average submission length: %.1f characters\n", corpus.SubmissionLengthStats(selected).Mean)
	fmt.Printf("Average comment length: %.1f characters\n", corpus.CommentLengthStats(selectedComments).Mean)

	fmt.Println("\nEngagement tier distribution:")
	tierCounts := sampling.TierCounts(selected)
	for _, tier := range sampling.TierLabels {
		if tierCounts[tier] > 0 {
			fmt.Printf("  %s: %d\n", tier, tierCounts[tier])
		}
	}

	log.Info("quick curation completed",
		"reviewed", reviewed,
		"selected", len(selected),
		"comments", len(selectedComments))
	return nil
}

func saveQuickFavorites(settings *conf.Settings, submissions []corpus.Submission, comments []corpus.Comment) error {
	if err := conf.EnsureOutputDirs(settings); err != nil {
		return err
	}

	submissionsPath := filepath.Join(settings.Output.FavoritesDir, conf.FavoriteSubmissionsFile)
	if err := corpus.WriteSubmissions(submissionsPath, submissions,
		corpus.ColEngagementTier, corpus.ColCommentCount, corpus.ColAvgCommentScore); err != nil {
		return err
	}
	fmt.Printf("\n✅ Saved %d favorite submissions to %s\n", len(submissions), submissionsPath)

	commentsPath := filepath.Join(settings.Output.FavoritesDir, conf.FavoriteCommentsFile)
	if err := corpus.WriteComments(commentsPath, comments); err != nil {
		return err
	}
	fmt.Printf("✅ Saved %d comments to %s\n", len(comments), commentsPath)

	reviewPath := filepath.Join(settings.Output.FavoritesDir, conf.FavoriteReviewFile)
	review := export.Review{
		Title:       "FAVORITE SUBMISSIONS",
		Submissions: submissions,
		Comments:    comments,
	}
	if err := export.WriteReview(reviewPath, review); err != nil {
		return err
	}
	fmt.Printf("✅ Saved review file to %s\n", reviewPath)
	return nil
}
