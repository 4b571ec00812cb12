// Package sampling implements the deterministic draws of the curation
// pipeline: quintile engagement tiers, per-category oversampled selection
// and top-comment picking.
package sampling

import (
	"sort"

	"github.com/aitacurator/aitacurator/internal/corpus"
)

// TierLabels lists the engagement tiers in ascending score order.
var TierLabels = []string{"Very Low", "Low", "Medium", "High", "Very High"}

// AssignTiers returns a copy of the submissions with each assigned to one of
// five quintile tiers by score. Tier boundaries are rank-based over exactly
// this population, so every tier holds as close as possible to one fifth of
// the items. Equal scores keep their input order in the ranking, which
// decides the tier of boundary ties. Tiers computed over one population do
// not carry over to another.
func AssignTiers(submissions []corpus.Submission) []corpus.Submission {
	n := len(submissions)
	assigned := make([]corpus.Submission, n)
	copy(assigned, submissions)
	if n == 0 {
		return assigned
	}

	// Rank by score ascending, stable for ties
	ranks := make([]int, n)
	for i := range ranks {
		ranks[i] = i
	}
	sort.SliceStable(ranks, func(a, b int) bool {
		return assigned[ranks[a]].Score < assigned[ranks[b]].Score
	})

	tiers := len(TierLabels)
	for position, idx := range ranks {
		tier := position * tiers / n
		if tier >= tiers {
			tier = tiers - 1
		}
		assigned[idx].EngagementTier = TierLabels[tier]
	}

	return assigned
}

// TierCounts counts the submissions per tier in tier order. Tiers without
// submissions report zero.
func TierCounts(submissions []corpus.Submission) map[string]int {
	counts := make(map[string]int, len(TierLabels))
	for _, label := range TierLabels {
		counts[label] = 0
	}
	for i := range submissions {
		if _, ok := counts[submissions[i].EngagementTier]; ok {
			counts[submissions[i].EngagementTier]++
		}
	}
	return counts
}

// GroupByTier groups submissions by their tier label, preserving input
// order within each group.
func GroupByTier(submissions []corpus.Submission) map[string][]corpus.Submission {
	grouped := make(map[string][]corpus.Submission, len(TierLabels))
	for i := range submissions {
		tier := submissions[i].EngagementTier
		grouped[tier] = append(grouped[tier], submissions[i])
	}
	return grouped
}
