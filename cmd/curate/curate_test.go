package curate

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aitacurator/aitacurator/internal/session"
)

func TestFeedbackPrompterCountsAcrossRuns(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	selected := 0
	prompter := feedbackPrompter[string]{
		inner:    session.Script[string](session.Accept, session.Reject, session.Accept),
		out:      &out,
		selected: &selected,
	}

	first, err := session.Run([]string{"a", "b"}, prompter)
	require.NoError(t, err)
	require.Equal(t, session.Completed, first.Outcome)

	// The count keeps growing in the next category group.
	second, err := session.Run([]string{"c"}, prompter)
	require.NoError(t, err)
	require.Equal(t, session.Completed, second.Outcome)

	assert.Equal(t, 2, selected)
	assert.Contains(t, out.String(), "✅ Selected! (Total selected: 1)")
	assert.Contains(t, out.String(), "⏭️  Skipped.")
	assert.Contains(t, out.String(), "✅ Selected! (Total selected: 2)")
}

func TestFeedbackPrompterQuitStaysSilent(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	selected := 0
	prompter := feedbackPrompter[int]{
		inner:    session.Script[int](session.Quit),
		out:      &out,
		selected: &selected,
	}

	result, err := session.Run([]int{1, 2}, prompter)
	require.NoError(t, err)
	assert.Equal(t, session.Aborted, result.Outcome)
	assert.Zero(t, selected)
	assert.Empty(t, out.String())
}

func TestNewestMatchPicksLatest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	older := filepath.Join(dir, "first_submissions.csv")
	newer := filepath.Join(dir, "second_submissions.csv")
	require.NoError(t, os.WriteFile(older, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(newer, []byte("b"), 0o644))

	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(older, past, past))

	got := newestMatch(filepath.Join(dir, "*_submissions.csv"))
	assert.Equal(t, newer, got)
}

func TestNewestMatchNoFiles(t *testing.T) {
	t.Parallel()

	assert.Empty(t, newestMatch(filepath.Join(t.TempDir(), "*.csv")))
}

func TestPreviewTruncatesOnRunes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", preview("short", 10))
	assert.Equal(t, "héllo", preview("héllo wörld", 5))
}
