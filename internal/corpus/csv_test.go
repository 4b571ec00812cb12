package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aitacurator/aitacurator/internal/errors"
)

func TestSubmissionsRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sampled_submissions.csv")

	submissions := []Submission{
		{
			SubmissionID:    "s1",
			Title:           "AITA for testing?",
			SelfText:        "Some body text",
			Score:           120,
			EngagementTier:  "Very High",
			CommentCount:    3,
			AvgCommentScore: 11.333333333333334,
		},
		{
			SubmissionID:   "s2",
			Title:          "AITA again",
			SelfText:       "More text",
			Score:          5,
			EngagementTier: "Low",
		},
	}

	require.NoError(t, WriteSubmissions(path, submissions,
		ColEngagementTier, ColCommentCount, ColAvgCommentScore))

	loaded, err := ReadSubmissions(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, submissions[0].SubmissionID, loaded[0].SubmissionID)
	assert.Equal(t, submissions[0].Score, loaded[0].Score)
	assert.Equal(t, submissions[0].EngagementTier, loaded[0].EngagementTier)
	assert.Equal(t, submissions[0].CommentCount, loaded[0].CommentCount)
	assert.InDelta(t, submissions[0].AvgCommentScore, loaded[0].AvgCommentScore, 1e-12)
	assert.Equal(t, "Low", loaded[1].EngagementTier)
	assert.Zero(t, loaded[1].CommentCount)
}

func TestCommentsRoundTripWithVerdicts(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "verdict_balanced_samples.csv")

	comments := []Comment{
		{CommentID: "c1", SubmissionID: "s1", Message: "YTA, clearly", Score: 44, Verdict: "asshole"},
		{CommentID: "c2", SubmissionID: "s1", Message: "NTA at all", Score: 12, Verdict: "not the asshole"},
	}

	require.NoError(t, WriteComments(path, comments, ColVerdict, ColCommentLength))

	loaded, err := ReadComments(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, "c1", loaded[0].CommentID)
	assert.Equal(t, "asshole", loaded[0].Verdict)
	assert.Equal(t, "not the asshole", loaded[1].Verdict)
	assert.Equal(t, 44, loaded[0].Score)
}

func TestCSVQuotingSurvivesRedditText(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "comment.csv")

	message := "So, here's the \"deal\":\nAITA? I don't think so, but...\r\nmaybe"
	comments := []Comment{
		{CommentID: "c1", SubmissionID: "s1", Message: message, Score: 1},
	}

	require.NoError(t, WriteComments(path, comments))

	loaded, err := ReadComments(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	// encoding/csv normalizes \r\n inside quoted fields to \n on read
	assert.Contains(t, loaded[0].Message, "here's the \"deal\"")
	assert.Contains(t, loaded[0].Message, "AITA? I don't think so")
}

func TestReadSubmissionsMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadSubmissions(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryFileIO))
}

func TestReadSubmissionsMissingColumn(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.csv")
	require.NoError(t, os.WriteFile(path, []byte("submission_id,title,selftext\ns1,hello,world\n"), 0o644))

	_, err := ReadSubmissions(path)
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryFileParsing))
	assert.Contains(t, err.Error(), "score")
}

func TestReadSubmissionsBadScore(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "badscore.csv")
	require.NoError(t, os.WriteFile(path, []byte("submission_id,title,selftext,score\ns1,hello,world,notanumber\n"), 0o644))

	_, err := ReadSubmissions(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestWriteSubmissionsUnknownColumn(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.csv")
	err := WriteSubmissions(path, []Submission{{SubmissionID: "s1"}}, "no_such_column")
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryValidation))
}

func TestReadCommentsEmptyFileFailsCleanly(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	_, err := ReadComments(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}
