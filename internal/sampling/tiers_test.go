package sampling

import (
	"testing"

	"github.com/aitacurator/aitacurator/internal/corpus"
)

func submissionsWithScores(scores []int) []corpus.Submission {
	subs := make([]corpus.Submission, len(scores))
	for i, score := range scores {
		subs[i] = corpus.Submission{SubmissionID: string(rune('a' + i%26)), Score: score}
	}
	return subs
}

func TestAssignTiersEvenSplit(t *testing.T) {
	t.Parallel()

	subs := make([]corpus.Submission, 1000)
	for i := range subs {
		subs[i] = corpus.Submission{Score: i}
	}
	assigned := AssignTiers(subs)

	counts := TierCounts(assigned)
	for _, label := range TierLabels {
		if counts[label] != 200 {
			t.Errorf("tier %q: got %d submissions, want 200", label, counts[label])
		}
	}

	// Ascending scores land in ascending tiers
	if got := assigned[0].EngagementTier; got != "Very Low" {
		t.Errorf("lowest score tier = %q, want Very Low", got)
	}
	if got := assigned[999].EngagementTier; got != "Very High" {
		t.Errorf("highest score tier = %q, want Very High", got)
	}
}

func TestAssignTiersNearEqualSizes(t *testing.T) {
	t.Parallel()

	for _, n := range []int{7, 23, 99, 101, 503} {
		subs := make([]corpus.Submission, n)
		for i := range subs {
			subs[i] = corpus.Submission{Score: i * 3}
		}
		counts := TierCounts(AssignTiers(subs))

		min, max := n, 0
		for _, label := range TierLabels {
			if counts[label] < min {
				min = counts[label]
			}
			if counts[label] > max {
				max = counts[label]
			}
		}
		if max-min > 1 {
			t.Errorf("n=%d: tier sizes range %d..%d, want spread of at most 1", n, min, max)
		}
	}
}

func TestAssignTiersTiedScoresStayStable(t *testing.T) {
	t.Parallel()

	// All scores equal: tiers follow input order
	subs := submissionsWithScores([]int{5, 5, 5, 5, 5, 5, 5, 5, 5, 5})
	assigned := AssignTiers(subs)

	want := []string{
		"Very Low", "Very Low",
		"Low", "Low",
		"Medium", "Medium",
		"High", "High",
		"Very High", "Very High",
	}
	for i, tier := range want {
		if assigned[i].EngagementTier != tier {
			t.Errorf("submission %d: tier = %q, want %q", i, assigned[i].EngagementTier, tier)
		}
	}
}

func TestAssignTiersFewerThanFive(t *testing.T) {
	t.Parallel()

	assigned := AssignTiers(submissionsWithScores([]int{30, 10, 20}))
	byScore := map[int]string{}
	for _, s := range assigned {
		byScore[s.Score] = s.EngagementTier
	}
	if byScore[10] != "Very Low" {
		t.Errorf("score 10 tier = %q, want Very Low", byScore[10])
	}
	if byScore[30] == "Very Low" {
		t.Errorf("score 30 tier = %q, want a higher tier than score 10", byScore[30])
	}
}

func TestAssignTiersDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	subs := submissionsWithScores([]int{1, 2, 3})
	AssignTiers(subs)
	for i := range subs {
		if subs[i].EngagementTier != "" {
			t.Fatalf("input submission %d mutated: tier = %q", i, subs[i].EngagementTier)
		}
	}
}

func TestAssignTiersEmpty(t *testing.T) {
	t.Parallel()

	if got := AssignTiers(nil); len(got) != 0 {
		t.Fatalf("got %d submissions for empty input", len(got))
	}
}

func TestTierCountsIncludesEmptyTiers(t *testing.T) {
	t.Parallel()

	counts := TierCounts([]corpus.Submission{{EngagementTier: "High"}})
	if len(counts) != len(TierLabels) {
		t.Fatalf("got %d tiers, want %d", len(counts), len(TierLabels))
	}
	if counts["High"] != 1 {
		t.Errorf("High = %d, want 1", counts["High"])
	}
	if counts["Very Low"] != 0 {
		t.Errorf("Very Low = %d, want 0", counts["Very Low"])
	}
}

func TestGroupByTierPreservesOrder(t *testing.T) {
	t.Parallel()

	subs := []corpus.Submission{
		{SubmissionID: "a", EngagementTier: "Low"},
		{SubmissionID: "b", EngagementTier: "High"},
		{SubmissionID: "c", EngagementTier: "Low"},
	}
	grouped := GroupByTier(subs)
	if len(grouped["Low"]) != 2 || grouped["Low"][0].SubmissionID != "a" || grouped["Low"][1].SubmissionID != "c" {
		t.Errorf("Low group = %+v, want [a c] in order", grouped["Low"])
	}
	if len(grouped["High"]) != 1 {
		t.Errorf("High group has %d submissions, want 1", len(grouped["High"]))
	}
}
