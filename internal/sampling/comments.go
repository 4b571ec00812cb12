package sampling

import (
	"sort"

	"github.com/aitacurator/aitacurator/internal/corpus"
)

// TopComments returns up to k comments with the highest scores, in
// descending score order. Equal scores keep their input order. With k at or
// above the pool size every comment is returned.
func TopComments(comments []corpus.Comment, k int) []corpus.Comment {
	ranked := make([]corpus.Comment, len(comments))
	copy(ranked, comments)
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})
	if k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

// TopCommentsForSubmissions picks the top k comments of each listed
// submission and concatenates the picks in submission order. Submissions
// without comments contribute nothing.
func TopCommentsForSubmissions(submissions []corpus.Submission, comments []corpus.Comment, k int) []corpus.Comment {
	grouped := corpus.CommentsBySubmission(comments)
	var selected []corpus.Comment
	for _, id := range corpus.SubmissionIDs(submissions) {
		selected = append(selected, TopComments(grouped[id], k)...)
	}
	return selected
}
