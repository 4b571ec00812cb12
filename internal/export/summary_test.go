package export

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aitacurator/aitacurator/internal/corpus"
)

func TestWriteSampleSummary(t *testing.T) {
	t.Parallel()

	comments := make([]corpus.Comment, 1200)
	for i := range comments {
		comments[i] = corpus.Comment{
			CommentID:    "c" + strconv.Itoa(i),
			SubmissionID: "s1",
			Message:      "ok",
		}
	}
	submissions := []corpus.Submission{
		{SubmissionID: "s1", SelfText: strings.Repeat("a", 100), EngagementTier: "Very Low"},
		{SubmissionID: "s2", SelfText: strings.Repeat("b", 200), EngagementTier: "Very High"},
	}

	path := filepath.Join(t.TempDir(), "sampled_summary.txt")
	require.NoError(t, WriteSampleSummary(path, "sampled", submissions, comments))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)

	assert.True(t, strings.HasPrefix(text, "Sample Summary - sampled\n"+strings.Repeat("=", 50)+"\n\n"))
	assert.Contains(t, text, "Total submissions: 2\n")
	assert.Contains(t, text, "Total comments: 1,200\n")
	assert.Contains(t, text, "Average submission length: 150.0 characters\n")
	assert.Contains(t, text, "Average comment length: 2.0 characters\n")

	// All five tiers listed in order, zero counts included
	assert.Contains(t, text, "Engagement tier distribution:\n  Very Low: 1 submissions\n  Low: 0 submissions\n  Medium: 0 submissions\n  High: 0 submissions\n  Very High: 1 submissions\n")
}

func TestWriteVerdictSummary(t *testing.T) {
	t.Parallel()

	all := []corpus.Comment{
		{CommentID: "c1", Verdict: "not the asshole"},
		{CommentID: "c2", Verdict: "not the asshole"},
		{CommentID: "c3", Verdict: "asshole"},
	}
	balanced := all[:2]
	contexts := []corpus.Submission{{SubmissionID: "s1"}}

	path := filepath.Join(t.TempDir(), "verdict_summary.txt")
	require.NoError(t, WriteVerdictSummary(path, all, balanced, contexts))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)

	assert.True(t, strings.HasPrefix(text, "Verdict Extraction Summary\n"+strings.Repeat("=", 50)+"\n\n"))
	assert.Contains(t, text, "Total comments with verdicts: 3\n")
	assert.Contains(t, text, "Balanced samples: 2\n")
	assert.Contains(t, text, "Submission contexts: 1\n")

	// Most frequent label first
	assert.Contains(t, text, "Verdict distribution (all):\n  not the asshole: 2\n  asshole: 1\n")
	assert.Contains(t, text, "Balanced sample distribution:\n  not the asshole: 2\n")
}

func TestWriteStratifiedSummary(t *testing.T) {
	t.Parallel()

	submissions := []corpus.Submission{
		{SubmissionID: "s1", SelfText: "aaaa", DominantVerdict: "asshole"},
		{SubmissionID: "s2", SelfText: "bb", DominantVerdict: "asshole"},
		{SubmissionID: "s3", SelfText: "cc", DominantVerdict: "not the asshole"},
	}
	comments := []corpus.Comment{
		{CommentID: "c1", SubmissionID: "s1", Message: "mm"},
		{CommentID: "c2", SubmissionID: "s1", Message: "nn"},
		{CommentID: "c3", SubmissionID: "s1", Message: "oo"},
		{CommentID: "c4", SubmissionID: "s2", Message: "pp"},
	}

	path := filepath.Join(t.TempDir(), "stratified_summary.txt")
	require.NoError(t, WriteStratifiedSummary(path, submissions, comments))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)

	assert.True(t, strings.HasPrefix(text, "Stratified AITA Sample Summary\n"+strings.Repeat("=", 50)+"\n\n"))
	assert.Contains(t, text, "Total submissions: 3\n")
	assert.Contains(t, text, "Total comments: 4\n")
	assert.Contains(t, text, "Verdict distribution:\n  asshole: 2 submissions\n  not the asshole: 1 submissions\n")

	// Only submissions with comments enter the spread: groups of 3 and 1
	assert.Contains(t, text, "Comments per submission:\n  Mean: 2.0\n  Median: 2.0\n  Min: 1\n  Max: 3\n")
}
