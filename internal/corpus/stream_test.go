package corpus

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionWriterStreamsBatches(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "submission.csv")

	w, err := NewSubmissionWriter(path)
	require.NoError(t, err)

	require.NoError(t, w.Append([]Submission{
		{SubmissionID: "s1", Title: "AITA one", SelfText: "first", Score: 10},
		{SubmissionID: "s2", Title: "AITA two", SelfText: "second", Score: 20},
	}))
	require.NoError(t, w.Append([]Submission{
		{SubmissionID: "s3", Title: "AITA three", SelfText: "third, with comma", Score: -2},
	}))
	require.NoError(t, w.Close())

	loaded, err := ReadSubmissions(path)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, "s1", loaded[0].SubmissionID)
	assert.Equal(t, "third, with comma", loaded[2].SelfText)
	assert.Equal(t, -2, loaded[2].Score)
}

func TestCommentWriterStreamsBatches(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "comment.csv")

	w, err := NewCommentWriter(path)
	require.NoError(t, err)

	require.NoError(t, w.Append([]Comment{
		{CommentID: "c1", SubmissionID: "s1", Message: "NTA at all", Score: 5},
	}))
	require.NoError(t, w.Append(nil))
	require.NoError(t, w.Append([]Comment{
		{CommentID: "c2", SubmissionID: "s1", Message: "line one\nline two", Score: 1},
	}))
	require.NoError(t, w.Close())

	loaded, err := ReadComments(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "NTA at all", loaded[0].Message)
	assert.Equal(t, "line one\nline two", loaded[1].Message)
}

func TestSubmissionWriterRejectsBadPath(t *testing.T) {
	t.Parallel()

	_, err := NewSubmissionWriter(filepath.Join(t.TempDir(), "missing", "submission.csv"))
	require.Error(t, err)
}
