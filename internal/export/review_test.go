package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aitacurator/aitacurator/internal/corpus"
)

var reviewTime = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

func TestWriteReviewLayout(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sampled_review.txt")
	review := Review{
		Title:       "SAMPLE REVIEW - SAMPLED",
		GeneratedAt: reviewTime,
		Submissions: []corpus.Submission{
			{SubmissionID: "s1", Title: "AITA for testing?", SelfText: "short body", Score: 5, EngagementTier: "Very Low", CommentCount: 2},
			{SubmissionID: "s2", Title: "AITA again?", SelfText: "another body", Score: 900, EngagementTier: "Very High", CommentCount: 1},
		},
		Comments: []corpus.Comment{
			{CommentID: "c1", SubmissionID: "s1", Message: "nta obviously", Score: 40},
			{CommentID: "c2", SubmissionID: "s1", Message: "agreed", Score: 12},
			{CommentID: "c3", SubmissionID: "s2", Message: "yta", Score: 3},
		},
	}
	require.NoError(t, WriteReview(path, review))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)

	assert.True(t, strings.HasPrefix(text, "SAMPLE REVIEW - SAMPLED\n"+strings.Repeat("=", 80)+"\n"))
	assert.Contains(t, text, "Generated: 2024-03-01 10:30:00\n")
	assert.Contains(t, text, "Total Submissions: 2\n")
	assert.Contains(t, text, "Total Comments: 3\n")

	assert.Contains(t, text, "=== VERY LOW ENGAGEMENT TIER ===\nSubmissions in this tier: 1\n")
	assert.Contains(t, text, "=== VERY HIGH ENGAGEMENT TIER ===")
	assert.NotContains(t, text, "=== MEDIUM ENGAGEMENT TIER ===", "empty tiers are omitted")

	assert.Contains(t, text, "SUBMISSION 1: s1\nTITLE: AITA for testing?\nSCORE: 5\nCOMMENT COUNT: 2\nLENGTH: 10 characters\nTIER: Very Low\nTEXT:\nshort body\n")
	assert.Contains(t, text, "TOP COMMENTS:\n1. (Score: 40): nta obviously\n2. (Score: 12): agreed\n")
	assert.Contains(t, text, strings.Repeat("-", 80))

	// Numbering restarts per tier
	assert.Contains(t, text, "SUBMISSION 1: s2\n")
}

func TestWriteReviewCapsCommentsShown(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "review.txt")
	review := Review{
		Title:       "REVIEW",
		GeneratedAt: reviewTime,
		Submissions: []corpus.Submission{
			{SubmissionID: "s1", SelfText: "body", EngagementTier: "Low"},
		},
		Comments: []corpus.Comment{
			{CommentID: "c1", SubmissionID: "s1", Message: "first", Score: 100},
			{CommentID: "c2", SubmissionID: "s1", Message: "second", Score: 80},
			{CommentID: "c3", SubmissionID: "s1", Message: "third", Score: 60},
			{CommentID: "c4", SubmissionID: "s1", Message: "fourth", Score: 40},
		},
	}
	require.NoError(t, WriteReview(path, review))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)

	assert.Contains(t, text, "3. (Score: 60): third\n")
	assert.NotContains(t, text, "fourth", "only the leading comments are shown")
}

func TestWriteReviewNoCommentsNoSection(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "review.txt")
	review := Review{
		Title:       "REVIEW",
		GeneratedAt: reviewTime,
		Submissions: []corpus.Submission{{SubmissionID: "s1", SelfText: "body", EngagementTier: "Medium"}},
	}
	require.NoError(t, WriteReview(path, review))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "TOP COMMENTS:")
}
