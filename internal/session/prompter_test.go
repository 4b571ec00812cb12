package session

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsolePrompterReadsDecisions(t *testing.T) {
	t.Parallel()

	in := strings.NewReader("y\nN\nq\n")
	var out strings.Builder

	var shown []string
	prompter := NewConsolePrompter(in, &out, "Select this submission?",
		func(w io.Writer, item string, position, total int) {
			shown = append(shown, fmt.Sprintf("%s %d/%d", item, position, total))
			fmt.Fprintf(w, "ITEM: %s\n", item)
		})

	d, err := prompter.Decide("first", 1, 3)
	require.NoError(t, err)
	assert.Equal(t, Accept, d)

	d, err = prompter.Decide("second", 2, 3)
	require.NoError(t, err)
	assert.Equal(t, Reject, d, "answers are case-insensitive")

	d, err = prompter.Decide("third", 3, 3)
	require.NoError(t, err)
	assert.Equal(t, Quit, d)

	assert.Equal(t, []string{"first 1/3", "second 2/3", "third 3/3"}, shown)
	assert.Contains(t, out.String(), "ITEM: first\n")
	assert.Contains(t, out.String(), "Select this submission? (y/n/q to quit): ")
}

func TestConsolePrompterRepromptsOnInvalidInput(t *testing.T) {
	t.Parallel()

	in := strings.NewReader("maybe\nsure\nyes\n")
	var out strings.Builder

	prompter := NewConsolePrompter[string](in, &out, "Select this comment?", nil)
	d, err := prompter.Decide("item", 1, 1)
	require.NoError(t, err)

	assert.Equal(t, Accept, d)
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter 'y', 'n', or 'q'"))
}

func TestConsolePrompterEndOfInputQuits(t *testing.T) {
	t.Parallel()

	prompter := NewConsolePrompter[string](strings.NewReader(""), io.Discard, "Select?", nil)
	d, err := prompter.Decide("item", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, Quit, d)
}

func TestScriptPrompterSequence(t *testing.T) {
	t.Parallel()

	p := Script[int](Accept, Reject)

	d, _ := p.Decide(0, 1, 3)
	assert.Equal(t, Accept, d)
	d, _ = p.Decide(0, 2, 3)
	assert.Equal(t, Reject, d)
	d, _ = p.Decide(0, 3, 3)
	assert.Equal(t, Quit, d, "exhausted script quits")
}

func TestDecisionStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "accept", Accept.String())
	assert.Equal(t, "reject", Reject.String())
	assert.Equal(t, "quit", Quit.String())
	assert.Equal(t, "completed", Completed.String())
	assert.Equal(t, "aborted", Aborted.String())
}
