package corpus

// FilterSubmissionsByLength returns the submissions whose body text is at
// most maxChars characters long, threshold inclusive. The input is never
// mutated, so filtering an already-filtered set is a no-op.
func FilterSubmissionsByLength(submissions []Submission, maxChars int) []Submission {
	filtered := make([]Submission, 0, len(submissions))
	for i := range submissions {
		if submissions[i].Length() <= maxChars {
			filtered = append(filtered, submissions[i])
		}
	}
	return filtered
}

// FilterCommentsByLength returns the comments whose message is at most
// maxChars characters long, threshold inclusive.
func FilterCommentsByLength(comments []Comment, maxChars int) []Comment {
	filtered := make([]Comment, 0, len(comments))
	for i := range comments {
		if comments[i].Length() <= maxChars {
			filtered = append(filtered, comments[i])
		}
	}
	return filtered
}
