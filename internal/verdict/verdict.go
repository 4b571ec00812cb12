// Package verdict extracts categorical verdict labels from comment text and
// aggregates them into per-submission dominant verdicts.
package verdict

import (
	"regexp"
	"sort"
	"strings"

	"github.com/aitacurator/aitacurator/internal/corpus"
)

// The four verdict labels of r/AmItheAsshole judgments.
const (
	Asshole        = "asshole"
	NotTheAsshole  = "not the asshole"
	EveryoneSucks  = "everyone sucks"
	NoAssholesHere = "no assholes here"
)

// Categories lists the verdict labels in extraction priority order. The
// order is part of the labeling contract: the first category with any
// matching pattern wins.
var Categories = []string{Asshole, NotTheAsshole, EveryoneSucks, NoAssholesHere}

// family is one verdict category with its ordered match patterns.
type family struct {
	label    string
	patterns []*regexp.Regexp
}

// families holds the compiled pattern table, built once at init.
//
// Note the bare `\basshole\b` pattern in the first family: it also matches
// inside the phrase "not the asshole", so a comment carrying only an NTA
// phrase labels as "asshole". Downstream consumers rely on the historical
// labeling, so the priority stays as is.
var families = []family{
	{
		label: Asshole,
		patterns: compile(
			`\byta\b`,
			`\byou'?re the asshole\b`,
			`\byou are the asshole\b`,
			`\basshole\b`,
		),
	},
	{
		label: NotTheAsshole,
		patterns: compile(
			`\bnta\b`,
			`\bnot the asshole\b`,
			`\bno asshole\b`,
		),
	},
	{
		label: EveryoneSucks,
		patterns: compile(
			`\besh\b`,
			`\beveryone sucks\b`,
			`\beverybody sucks\b`,
		),
	},
	{
		label: NoAssholesHere,
		patterns: compile(
			`\bnah\b`,
			`\bno assholes here\b`,
			`\bno one is the asshole\b`,
		),
	},
}

func compile(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, pattern := range patterns {
		compiled[i] = regexp.MustCompile(pattern)
	}
	return compiled
}

// Extract maps comment text to a verdict label. It lowercases the text and
// tests each category's patterns in order, returning on the first match
// anywhere in the text. The second return value is false when no pattern
// matched.
func Extract(text string) (string, bool) {
	lowered := strings.ToLower(text)
	for i := range families {
		for _, pattern := range families[i].patterns {
			if pattern.MatchString(lowered) {
				return families[i].label, true
			}
		}
	}
	return "", false
}

// ExtractAll labels every comment and returns copies of those that matched
// a pattern, input order preserved. Comments without a match are dropped,
// never labeled with a placeholder.
func ExtractAll(comments []corpus.Comment) []corpus.Comment {
	labeled := make([]corpus.Comment, 0, len(comments))
	for i := range comments {
		label, ok := Extract(comments[i].Message)
		if !ok {
			continue
		}
		comment := comments[i]
		comment.Verdict = label
		labeled = append(labeled, comment)
	}
	return labeled
}

// Count is one verdict label with its occurrence count.
type Count struct {
	Label string
	N     int
}

// Distribution counts the verdict labels of the given comments, sorted by
// count descending with alphabetical order breaking ties.
func Distribution(comments []corpus.Comment) []Count {
	byLabel := make(map[string]int)
	for i := range comments {
		if comments[i].Verdict != "" {
			byLabel[comments[i].Verdict]++
		}
	}
	return sortedCounts(byLabel)
}

func sortedCounts(byLabel map[string]int) []Count {
	counts := make([]Count, 0, len(byLabel))
	for label, n := range byLabel {
		counts = append(counts, Count{Label: label, N: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].N != counts[j].N {
			return counts[i].N > counts[j].N
		}
		return counts[i].Label < counts[j].Label
	})
	return counts
}
