package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ConsolePrompter asks the reviewer about one item at a time over a
// reader/writer pair, usually stdin/stdout. Input is accepted as y/yes,
// n/no or q/quit, case-insensitive; anything else reprompts. End of input
// counts as quit.
type ConsolePrompter[T any] struct {
	scanner  *bufio.Scanner
	out      io.Writer
	question string
	display  func(w io.Writer, item T, position, total int)
}

// NewConsolePrompter builds a prompter that shows each item through display
// (skipped when nil) and asks question until it gets a valid answer.
func NewConsolePrompter[T any](in io.Reader, out io.Writer, question string, display func(w io.Writer, item T, position, total int)) *ConsolePrompter[T] {
	return &ConsolePrompter[T]{
		scanner:  bufio.NewScanner(in),
		out:      out,
		question: question,
		display:  display,
	}
}

// Decide shows the item and reads the reviewer's answer.
func (p *ConsolePrompter[T]) Decide(item T, position, total int) (Decision, error) {
	if p.display != nil {
		p.display(p.out, item, position, total)
	}

	for {
		fmt.Fprintf(p.out, "%s (y/n/q to quit): ", p.question)
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return Quit, err
			}
			return Quit, nil
		}

		switch strings.ToLower(strings.TrimSpace(p.scanner.Text())) {
		case "y", "yes":
			return Accept, nil
		case "n", "no":
			return Reject, nil
		case "q", "quit":
			return Quit, nil
		default:
			fmt.Fprintln(p.out, "Please enter 'y', 'n', or 'q'")
		}
	}
}

// ScriptPrompter replays a fixed decision sequence; once the script runs
// out, it quits.
type ScriptPrompter[T any] struct {
	decisions []Decision
	next      int
}

// Script builds a prompter that answers with the given decisions in order.
func Script[T any](decisions ...Decision) *ScriptPrompter[T] {
	return &ScriptPrompter[T]{decisions: decisions}
}

func (p *ScriptPrompter[T]) Decide(T, int, int) (Decision, error) {
	if p.next >= len(p.decisions) {
		return Quit, nil
	}
	d := p.decisions[p.next]
	p.next++
	return d, nil
}

// AutoAccept accepts every item, for non-interactive runs.
type AutoAccept[T any] struct{}

func (AutoAccept[T]) Decide(T, int, int) (Decision, error) {
	return Accept, nil
}
