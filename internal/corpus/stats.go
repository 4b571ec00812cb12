package corpus

import (
	"sort"
)

// LengthStats summarizes a text length distribution.
type LengthStats struct {
	Count  int
	Mean   float64
	Median float64
	P95    float64
	P99    float64
	Max    int
}

// ScoreStats summarizes a score distribution.
type ScoreStats struct {
	Min    int
	Max    int
	Mean   float64
	Median float64
}

// Distribution summarizes a per-group count distribution.
type Distribution struct {
	Mean   float64
	Median float64
	Min    int
	Max    int
}

// SubmissionLengthStats computes length statistics over submission bodies.
func SubmissionLengthStats(submissions []Submission) LengthStats {
	lengths := make([]int, len(submissions))
	for i := range submissions {
		lengths[i] = submissions[i].Length()
	}
	return lengthStats(lengths)
}

// CommentLengthStats computes length statistics over comment messages.
func CommentLengthStats(comments []Comment) LengthStats {
	lengths := make([]int, len(comments))
	for i := range comments {
		lengths[i] = comments[i].Length()
	}
	return lengthStats(lengths)
}

// SubmissionScoreStats computes score statistics over submissions.
func SubmissionScoreStats(submissions []Submission) ScoreStats {
	scores := make([]int, len(submissions))
	for i := range submissions {
		scores[i] = submissions[i].Score
	}
	return scoreStats(scores)
}

// CommentScoreStats computes score statistics over comments.
func CommentScoreStats(comments []Comment) ScoreStats {
	scores := make([]int, len(comments))
	for i := range comments {
		scores[i] = comments[i].Score
	}
	return scoreStats(scores)
}

func scoreStats(scores []int) ScoreStats {
	if len(scores) == 0 {
		return ScoreStats{}
	}
	sort.Ints(scores)

	return ScoreStats{
		Min:    scores[0],
		Max:    scores[len(scores)-1],
		Mean:   meanInts(scores),
		Median: medianSorted(scores),
	}
}

// AddCommentMetrics returns a copy of the submissions enriched with the
// count and average score of their comments in the given pool. Submissions
// without comments keep zero values.
func AddCommentMetrics(submissions []Submission, comments []Comment) []Submission {
	type metrics struct {
		count    int
		scoreSum int
	}

	bySubmission := make(map[string]*metrics)
	for i := range comments {
		m, ok := bySubmission[comments[i].SubmissionID]
		if !ok {
			m = &metrics{}
			bySubmission[comments[i].SubmissionID] = m
		}
		m.count++
		m.scoreSum += comments[i].Score
	}

	enriched := make([]Submission, len(submissions))
	copy(enriched, submissions)
	for i := range enriched {
		if m, ok := bySubmission[enriched[i].SubmissionID]; ok && m.count > 0 {
			enriched[i].CommentCount = m.count
			enriched[i].AvgCommentScore = float64(m.scoreSum) / float64(m.count)
		}
	}

	return enriched
}

// CommentsPerSubmission summarizes how many comments of the pool fall under
// each of the given submissions. Submissions without comments count as zero.
func CommentsPerSubmission(submissions []Submission, comments []Comment) Distribution {
	if len(submissions) == 0 {
		return Distribution{}
	}

	counts := make(map[string]int, len(submissions))
	for i := range submissions {
		counts[submissions[i].SubmissionID] = 0
	}
	for i := range comments {
		if _, ok := counts[comments[i].SubmissionID]; ok {
			counts[comments[i].SubmissionID]++
		}
	}

	values := make([]int, 0, len(counts))
	for _, count := range counts {
		values = append(values, count)
	}
	sort.Ints(values)

	return Distribution{
		Mean:   meanInts(values),
		Median: medianSorted(values),
		Min:    values[0],
		Max:    values[len(values)-1],
	}
}

// CommentGroupSizes summarizes the comment-group sizes of the pool, one
// group per distinct submission id. Submissions absent from the pool do not
// contribute.
func CommentGroupSizes(comments []Comment) Distribution {
	if len(comments) == 0 {
		return Distribution{}
	}

	counts := make(map[string]int)
	for i := range comments {
		counts[comments[i].SubmissionID]++
	}

	values := make([]int, 0, len(counts))
	for _, count := range counts {
		values = append(values, count)
	}
	sort.Ints(values)

	return Distribution{
		Mean:   meanInts(values),
		Median: medianSorted(values),
		Min:    values[0],
		Max:    values[len(values)-1],
	}
}

func lengthStats(lengths []int) LengthStats {
	if len(lengths) == 0 {
		return LengthStats{}
	}

	sorted := make([]int, len(lengths))
	copy(sorted, lengths)
	sort.Ints(sorted)

	return LengthStats{
		Count:  len(sorted),
		Mean:   meanInts(sorted),
		Median: medianSorted(sorted),
		P95:    percentileSorted(sorted, 0.95),
		P99:    percentileSorted(sorted, 0.99),
		Max:    sorted[len(sorted)-1],
	}
}

func meanInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// medianSorted returns the median of an ascending-sorted slice, averaging
// the middle pair for even counts.
func medianSorted(sorted []int) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return (float64(sorted[n/2-1]) + float64(sorted[n/2])) / 2
}

// percentileSorted returns the q-th percentile of an ascending-sorted slice
// using linear interpolation between the two nearest ranks.
func percentileSorted(sorted []int, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return float64(sorted[0])
	}

	rank := q * float64(n-1)
	lo := int(rank)
	if lo >= n-1 {
		return float64(sorted[n-1])
	}
	frac := rank - float64(lo)
	return float64(sorted[lo]) + frac*(float64(sorted[lo+1])-float64(sorted[lo]))
}
