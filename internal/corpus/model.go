// Package corpus holds the submission and comment records of a curation run
// and the file operations that load and persist them.
package corpus

import (
	"unicode/utf8"
)

// Submission is one discussion thread of the raw dump. The derived fields
// are populated by the pipeline stages and stay zero-valued until then.
type Submission struct {
	SubmissionID string
	Title        string
	SelfText     string
	Score        int

	// Derived, mutually exclusive processing paths
	EngagementTier  string // quintile tier label, engagement path
	DominantVerdict string // majority verdict label, verdict path
	VerdictCount    int    // labeled comments supporting the dominant verdict path

	// Derived comment metrics
	CommentCount    int
	AvgCommentScore float64
}

// Length returns the submission body length in characters.
func (s *Submission) Length() int {
	return utf8.RuneCountInString(s.SelfText)
}

// Comment is one comment of the raw dump, many-to-one to a submission.
// Orphan comments, whose submission is absent from the corpus, are valid but
// unjoinable.
type Comment struct {
	CommentID    string
	SubmissionID string
	Message      string
	Score        int

	// Derived
	Verdict         string // extracted verdict label, empty when no pattern matched
	DominantVerdict string // the parent submission's dominant verdict, set on sampled sets
}

// Length returns the comment message length in characters.
func (c *Comment) Length() int {
	return utf8.RuneCountInString(c.Message)
}

// CommentsBySubmission groups comments under their parent submission id,
// preserving input order within each group.
func CommentsBySubmission(comments []Comment) map[string][]Comment {
	grouped := make(map[string][]Comment)
	for i := range comments {
		grouped[comments[i].SubmissionID] = append(grouped[comments[i].SubmissionID], comments[i])
	}
	return grouped
}

// SubmissionIDs returns the distinct submission ids of the given submissions
// in input order.
func SubmissionIDs(submissions []Submission) []string {
	ids := make([]string, 0, len(submissions))
	seen := make(map[string]struct{}, len(submissions))
	for i := range submissions {
		id := submissions[i].SubmissionID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
