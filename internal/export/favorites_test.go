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

func TestWriteStratifiedFavoritesLayout(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stratified_favorite_submissions.txt")
	fav := StratifiedFavorites{
		Title:       "STRATIFIED FAVORITE SUBMISSIONS",
		GeneratedAt: reviewTime,
		Submissions: []corpus.Submission{
			{SubmissionID: "s1", Title: "First", SelfText: "body one", Score: 10, DominantVerdict: "not the asshole", VerdictCount: 7},
			{SubmissionID: "s2", Title: "Second", SelfText: "body two", Score: 20, DominantVerdict: "asshole", VerdictCount: 3},
		},
		Comments: []corpus.Comment{
			{CommentID: "c1", SubmissionID: "s1", Message: "low", Score: 1},
			{CommentID: "c2", SubmissionID: "s1", Message: "high", Score: 50},
		},
	}
	require.NoError(t, WriteStratifiedFavorites(path, fav))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)

	assert.True(t, strings.HasPrefix(text, "STRATIFIED FAVORITE SUBMISSIONS\n"+strings.Repeat("=", 80)+"\n"))
	assert.Contains(t, text, "Total Submissions: 2\n")

	// Categories in first-seen order
	nta := strings.Index(text, "=== NOT THE ASSHOLE ===")
	yta := strings.Index(text, "=== ASSHOLE ===")
	require.GreaterOrEqual(t, nta, 0)
	require.Greater(t, yta, nta)

	assert.Contains(t, text, "SUBMISSION 1: s1\nTitle: First\nScore: 10\nDominant Verdict: not the asshole\nVerdict Count: 7\nLength: 8 characters\nTEXT:\nbody one\n")
	assert.Contains(t, text, "COMMENTS:\n1. (Score: 50): high\n2. (Score: 1): low\n")
}

func TestWriteStratifiedFavoritesCapsComments(t *testing.T) {
	t.Parallel()

	comments := make([]corpus.Comment, 12)
	for i := range comments {
		comments[i] = corpus.Comment{
			CommentID:    "c" + strconv.Itoa(i),
			SubmissionID: "s1",
			Message:      "comment " + strconv.Itoa(i),
			Score:        100 - i,
		}
	}
	fav := StratifiedFavorites{
		Title:       "FAVORITES",
		GeneratedAt: reviewTime,
		Submissions: []corpus.Submission{{SubmissionID: "s1", SelfText: "body", DominantVerdict: "asshole"}},
		Comments:    comments,
	}

	path := filepath.Join(t.TempDir(), "favorites.txt")
	require.NoError(t, WriteStratifiedFavorites(path, fav))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)

	assert.Contains(t, text, "10. (Score: 91): comment 9\n")
	assert.NotContains(t, text, "comment 10\n")
	assert.Contains(t, text, "... and 2 more comments\n")
}

func TestWriteBalancedFavoritesLayout(t *testing.T) {
	t.Parallel()

	longBody := strings.Repeat("x", 250)
	path := filepath.Join(t.TempDir(), "balanced_favorite_comments.txt")
	fav := BalancedFavorites{
		Title:       "BALANCED FAVORITE COMMENTS",
		GeneratedAt: reviewTime,
		Comments: []corpus.Comment{
			{CommentID: "c1", SubmissionID: "s1", Message: "nta all the way", Score: 9, Verdict: "not the asshole"},
			{CommentID: "c2", SubmissionID: "missing", Message: "esh", Score: 2, Verdict: "everyone sucks"},
		},
		Submissions: []corpus.Submission{
			{SubmissionID: "s1", Title: "Context", SelfText: longBody, Score: 77},
		},
	}
	require.NoError(t, WriteBalancedFavorites(path, fav))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)

	assert.Contains(t, text, "Total Comments: 2\nTotal Submissions: 1\n")
	assert.Contains(t, text, "=== NOT THE ASSHOLE ===\nComments in this category: 1\n")
	assert.Contains(t, text, "COMMENT 1: c1\nSUBMISSION ID: s1\nSCORE: 9\nLENGTH: 15 characters\nVERDICT: not the asshole\nTEXT:\nnta all the way\n")

	// Context preview truncated to 200 characters
	assert.Contains(t, text, "SUBMISSION CONTEXT:\nTitle: Context\nScore: 77\nSubmission Text: "+strings.Repeat("x", 200)+"...\n")
	assert.NotContains(t, text, strings.Repeat("x", 201))

	// Comment without context gets no context block
	c2 := text[strings.Index(text, "COMMENT 1: c2"):]
	assert.NotContains(t, c2, "SUBMISSION CONTEXT:")
}
