package verdict

import (
	"sort"

	"github.com/aitacurator/aitacurator/internal/corpus"
)

// Dominant is the majority-vote result for one submission.
type Dominant struct {
	Label           string
	LabeledComments int // total labeled comments under the submission
}

// DominantVerdicts computes the most frequent verdict label per submission
// from already-labeled comments. Candidate labels are sorted alphabetically
// before the mode is taken, so equal counts always resolve to the
// alphabetically first label. Submissions appear in the result only when at
// least one of their comments carries a label.
func DominantVerdicts(comments []corpus.Comment) map[string]Dominant {
	type tally struct {
		counts map[string]int
		total  int
	}

	bySubmission := make(map[string]*tally)
	for i := range comments {
		if comments[i].Verdict == "" {
			continue
		}
		t, ok := bySubmission[comments[i].SubmissionID]
		if !ok {
			t = &tally{counts: make(map[string]int)}
			bySubmission[comments[i].SubmissionID] = t
		}
		t.counts[comments[i].Verdict]++
		t.total++
	}

	result := make(map[string]Dominant, len(bySubmission))
	for submissionID, t := range bySubmission {
		labels := make([]string, 0, len(t.counts))
		for label := range t.counts {
			labels = append(labels, label)
		}
		sort.Strings(labels)

		best := labels[0]
		for _, label := range labels[1:] {
			if t.counts[label] > t.counts[best] {
				best = label
			}
		}

		result[submissionID] = Dominant{Label: best, LabeledComments: t.total}
	}

	return result
}

// ApplyDominantVerdicts enriches the submissions that have a dominant
// verdict and drops the rest, preserving input order. The verdict count
// recorded on each submission is the total number of labeled comments, not
// the winning label's share.
func ApplyDominantVerdicts(submissions []corpus.Submission, verdicts map[string]Dominant) []corpus.Submission {
	enriched := make([]corpus.Submission, 0, len(submissions))
	for i := range submissions {
		dominant, ok := verdicts[submissions[i].SubmissionID]
		if !ok {
			continue
		}
		submission := submissions[i]
		submission.DominantVerdict = dominant.Label
		submission.VerdictCount = dominant.LabeledComments
		enriched = append(enriched, submission)
	}
	return enriched
}

// DominantDistribution counts submissions per dominant verdict, sorted by
// count descending with alphabetical order breaking ties. Submissions
// without a dominant verdict are skipped.
func DominantDistribution(submissions []corpus.Submission) []Count {
	counts := make(map[string]int)
	for i := range submissions {
		if submissions[i].DominantVerdict != "" {
			counts[submissions[i].DominantVerdict]++
		}
	}
	return sortedCounts(counts)
}

// AnnotateDominantVerdicts copies the parent submission's dominant verdict
// onto each comment that has one, preserving input order. Comments of
// submissions without a dominant verdict are left unannotated.
func AnnotateDominantVerdicts(comments []corpus.Comment, verdicts map[string]Dominant) []corpus.Comment {
	annotated := make([]corpus.Comment, len(comments))
	copy(annotated, comments)
	for i := range annotated {
		if dominant, ok := verdicts[annotated[i].SubmissionID]; ok {
			annotated[i].DominantVerdict = dominant.Label
		}
	}
	return annotated
}
