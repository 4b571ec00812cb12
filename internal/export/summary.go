package export

import (
	"bufio"
	"fmt"

	"github.com/aitacurator/aitacurator/internal/corpus"
	"github.com/aitacurator/aitacurator/internal/sampling"
	"github.com/aitacurator/aitacurator/internal/verdict"
)

const summaryWidth = 50

// WriteSampleSummary writes the short engagement-sample summary: totals,
// average lengths and the tier distribution in tier order.
func WriteSampleSummary(path, prefix string, submissions []corpus.Submission, comments []corpus.Comment) error {
	subLengths := corpus.SubmissionLengthStats(submissions)
	comLengths := corpus.CommentLengthStats(comments)
	tierCounts := sampling.TierCounts(submissions)

	return writeFile(path, func(w *bufio.Writer) error {
		fmt.Fprintf(w, "Sample Summary - %s\n", prefix)
		fmt.Fprintf(w, "%s\n\n", rule("=", summaryWidth))
		printer.Fprintf(w, "Total submissions: %d\n", len(submissions))
		printer.Fprintf(w, "Total comments: %d\n", len(comments))
		fmt.Fprintf(w, "Average submission length: %.1f characters\n", subLengths.Mean)
		fmt.Fprintf(w, "Average comment length: %.1f characters\n\n", comLengths.Mean)

		fmt.Fprintf(w, "Engagement tier distribution:\n")
		for _, tier := range sampling.TierLabels {
			printer.Fprintf(w, "  %s: %d submissions\n", tier, tierCounts[tier])
		}
		return nil
	})
}

// WriteVerdictSummary writes the verdict-extraction summary: totals, the
// full label distribution and the balanced sample's distribution.
func WriteVerdictSummary(path string, all, balanced []corpus.Comment, contexts []corpus.Submission) error {
	return writeFile(path, func(w *bufio.Writer) error {
		fmt.Fprintf(w, "Verdict Extraction Summary\n")
		fmt.Fprintf(w, "%s\n\n", rule("=", summaryWidth))
		printer.Fprintf(w, "Total comments with verdicts: %d\n", len(all))
		printer.Fprintf(w, "Balanced samples: %d\n", len(balanced))
		printer.Fprintf(w, "Submission contexts: %d\n\n", len(contexts))

		fmt.Fprintf(w, "Verdict distribution (all):\n")
		for _, count := range verdict.Distribution(all) {
			printer.Fprintf(w, "  %s: %d\n", count.Label, count.N)
		}

		fmt.Fprintf(w, "\nBalanced sample distribution:\n")
		for _, count := range verdict.Distribution(balanced) {
			fmt.Fprintf(w, "  %s: %d\n", count.Label, count.N)
		}
		return nil
	})
}

// WriteStratifiedSummary writes the stratified-sample summary: totals,
// average lengths, the dominant-verdict distribution and the
// comments-per-submission spread.
func WriteStratifiedSummary(path string, submissions []corpus.Submission, comments []corpus.Comment) error {
	subLengths := corpus.SubmissionLengthStats(submissions)
	comLengths := corpus.CommentLengthStats(comments)
	perSubmission := corpus.CommentGroupSizes(comments)

	return writeFile(path, func(w *bufio.Writer) error {
		fmt.Fprintf(w, "Stratified AITA Sample Summary\n")
		fmt.Fprintf(w, "%s\n\n", rule("=", summaryWidth))
		printer.Fprintf(w, "Total submissions: %d\n", len(submissions))
		printer.Fprintf(w, "Total comments: %d\n", len(comments))
		fmt.Fprintf(w, "Average submission length: %.1f characters\n", subLengths.Mean)
		fmt.Fprintf(w, "Average comment length: %.1f characters\n\n", comLengths.Mean)

		fmt.Fprintf(w, "Verdict distribution:\n")
		for _, count := range verdict.DominantDistribution(submissions) {
			printer.Fprintf(w, "  %s: %d submissions\n", count.Label, count.N)
		}

		fmt.Fprintf(w, "\nComments per submission:\n")
		fmt.Fprintf(w, "  Mean: %.1f\n", perSubmission.Mean)
		fmt.Fprintf(w, "  Median: %.1f\n", perSubmission.Median)
		fmt.Fprintf(w, "  Min: %d\n", perSubmission.Min)
		fmt.Fprintf(w, "  Max: %d\n", perSubmission.Max)
		return nil
	})
}
