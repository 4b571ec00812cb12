// Package session runs the interactive accept/reject loops of the curation
// commands. The loop is decoupled from any terminal: a Prompter presents
// one item and yields the reviewer's decision, so tests and non-interactive
// runs script their decisions.
package session

import (
	"github.com/aitacurator/aitacurator/internal/errors"
)

// Decision is the reviewer's answer for one presented item.
type Decision int

const (
	Reject Decision = iota
	Accept
	Quit
)

func (d Decision) String() string {
	switch d {
	case Reject:
		return "reject"
	case Accept:
		return "accept"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Outcome is the terminal state of a run.
type Outcome int

const (
	// Completed means every item was reviewed.
	Completed Outcome = iota
	// Aborted means the reviewer quit before the last item.
	Aborted
)

func (o Outcome) String() string {
	if o == Aborted {
		return "aborted"
	}
	return "completed"
}

// Prompter presents one item and returns the reviewer's decision. Position
// is 1-based within the running total.
type Prompter[T any] interface {
	Decide(item T, position, total int) (Decision, error)
}

// Result holds what a run produced. Decisions made before a quit persist.
type Result[T any] struct {
	Accepted []T
	Reviewed int
	Outcome  Outcome
}

// Run presents the items in order and collects the accepted ones. A quit
// decision stops the run immediately; everything decided up to that point
// stays in the result.
func Run[T any](items []T, prompter Prompter[T]) (Result[T], error) {
	var result Result[T]
	for i := range items {
		decision, err := prompter.Decide(items[i], i+1, len(items))
		if err != nil {
			result.Outcome = Aborted
			return result, errors.New(err).
				Category(errors.CategorySession).
				Context("position", i+1).
				Context("total", len(items)).
				Build()
		}

		switch decision {
		case Accept:
			result.Accepted = append(result.Accepted, items[i])
			result.Reviewed++
		case Reject:
			result.Reviewed++
		case Quit:
			result.Outcome = Aborted
			return result, nil
		}
	}
	result.Outcome = Completed
	return result, nil
}
