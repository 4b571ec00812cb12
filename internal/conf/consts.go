// conf/consts.go output file naming
package conf

// Favorite set file names are fixed, the interactive selectors always write
// the same names regardless of the configured prefix.
const (
	FavoriteSubmissionsFile = "favorite_submissions.csv"
	FavoriteCommentsFile    = "favorite_comments.csv"
	FavoriteReviewFile      = "favorite_submissions.txt"
)

// Prefix-derived output file names. The prefix separates runs with different
// parameters inside the same output directory.

// SubmissionsName returns the sampled submissions table file name.
func SubmissionsName(prefix string) string { return prefix + "_submissions.csv" }

// CommentsName returns the sampled comments table file name.
func CommentsName(prefix string) string { return prefix + "_comments.csv" }

// MetadataName returns the run metadata file name.
func MetadataName(prefix string) string { return prefix + "_metadata.yaml" }

// ReviewName returns the human-readable review export file name.
func ReviewName(prefix string) string { return prefix + "_review.txt" }

// SummaryName returns the run summary file name.
func SummaryName(prefix string) string { return prefix + "_summary.txt" }

// AllVerdictsName returns the full labeled-comments table file name.
func AllVerdictsName(prefix string) string { return prefix + "_all_verdicts.csv" }

// BalancedSamplesName returns the verdict-balanced comments table file name.
func BalancedSamplesName(prefix string) string { return prefix + "_balanced_samples.csv" }

// BalancedSubmissionsName returns the context submissions table file name.
func BalancedSubmissionsName(prefix string) string { return prefix + "_balanced_submissions.csv" }
