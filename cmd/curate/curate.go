// Package curate implements the interactive favorite-selection sessions over
// previously generated samples.
package curate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aitacurator/aitacurator/internal/conf"
	"github.com/aitacurator/aitacurator/internal/session"
)

// Command flag values.
var (
	// source selects which sample set is reviewed.
	source string
	// autoYes accepts every item without prompting.
	autoYes bool
)

// Command creates the interactive curation command.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curate",
		Short: "Review sampled items interactively and save favorites",
		Long: `Walks through a generated sample one item at a time, asking whether to
keep each one, and writes the kept set as the favorite tables plus a
readable review file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch source {
			case "quick":
				return runQuick(settings)
			case "stratified":
				return runStratified(settings)
			case "balanced":
				return RunBalanced(settings, autoYes)
			default:
				return fmt.Errorf("unknown source %q, expected quick, stratified or balanced", source)
			}
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "Sample set to review (quick, stratified, balanced)")
	cmd.Flags().BoolVarP(&autoYes, "yes", "y", false, "Accept every item without prompting")
	//nolint:errcheck // the flag was registered right above
	cmd.MarkFlagRequired("source")

	return cmd
}

// feedbackPrompter decorates another prompter with per-decision feedback and
// a running selection count. The count spans the whole command, not just one
// category group.
type feedbackPrompter[T any] struct {
	inner    session.Prompter[T]
	out      io.Writer
	selected *int
}

func (p feedbackPrompter[T]) Decide(item T, position, total int) (session.Decision, error) {
	decision, err := p.inner.Decide(item, position, total)
	if err != nil || decision == session.Quit {
		return decision, err
	}

	if decision == session.Accept {
		*p.selected++
		fmt.Fprintf(p.out, "✅ Selected! (Total selected: %d)\n", *p.selected)
	} else {
		fmt.Fprintln(p.out, "⏭️  Skipped.")
	}
	return decision, nil
}

// newPrompter builds the session prompter for one curation run: auto-accept
// when requested, otherwise a console prompt with selection feedback.
func newPrompter[T any](auto bool, question string, display func(w io.Writer, item T, position, total int), selected *int) session.Prompter[T] {
	if auto {
		return session.AutoAccept[T]{}
	}
	console := session.NewConsolePrompter(os.Stdin, os.Stdout, question, display)
	return feedbackPrompter[T]{inner: console, out: os.Stdout, selected: selected}
}

func printHeader(title string) {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println(title)
	fmt.Println(strings.Repeat("=", 80))
}

// newestMatch returns the most recently modified file matching the glob
// pattern, or an empty string when nothing matches.
func newestMatch(pattern string) string {
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return ""
	}

	newest := ""
	var newestMod int64
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); newest == "" || mod > newestMod {
			newest = match
			newestMod = mod
		}
	}
	return newest
}

// preview returns the first n runes of s. Truncation is rune-based so
// multi-byte text never gets cut mid-character.
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
