package verdict

import (
	"testing"

	"github.com/aitacurator/aitacurator/internal/corpus"
)

func TestDominantVerdictsMajority(t *testing.T) {
	t.Parallel()

	comments := []corpus.Comment{
		{SubmissionID: "s1", Verdict: NotTheAsshole},
		{SubmissionID: "s1", Verdict: NotTheAsshole},
		{SubmissionID: "s1", Verdict: NotTheAsshole},
		{SubmissionID: "s1", Verdict: Asshole},
		{SubmissionID: "s1", Verdict: Asshole},
	}

	verdicts := DominantVerdicts(comments)

	dominant, ok := verdicts["s1"]
	if !ok {
		t.Fatal("s1 missing from result")
	}
	if dominant.Label != NotTheAsshole {
		t.Errorf("Label = %q, want %q", dominant.Label, NotTheAsshole)
	}
	// The count is every labeled comment, not the winning label's share
	if dominant.LabeledComments != 5 {
		t.Errorf("LabeledComments = %d, want 5", dominant.LabeledComments)
	}
}

func TestDominantVerdictsTieBreaksAlphabetically(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		verdicts []string
		want     string
	}{
		{"asshole vs nta", []string{Asshole, NotTheAsshole, NotTheAsshole, Asshole}, Asshole},
		{"esh vs nah", []string{NoAssholesHere, EveryoneSucks}, EveryoneSucks},
		{"three way", []string{NotTheAsshole, EveryoneSucks, Asshole}, Asshole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			comments := make([]corpus.Comment, len(tt.verdicts))
			for i, label := range tt.verdicts {
				comments[i] = corpus.Comment{SubmissionID: "s1", Verdict: label}
			}

			verdicts := DominantVerdicts(comments)
			if got := verdicts["s1"].Label; got != tt.want {
				t.Errorf("Label = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDominantVerdictsSkipsUnlabeled(t *testing.T) {
	t.Parallel()

	comments := []corpus.Comment{
		{SubmissionID: "s1", Verdict: Asshole},
		{SubmissionID: "s2", Verdict: ""},
		{SubmissionID: "s2", Verdict: ""},
	}

	verdicts := DominantVerdicts(comments)

	if _, ok := verdicts["s2"]; ok {
		t.Error("s2 has only unlabeled comments and must not get a dominant verdict")
	}
	if _, ok := verdicts["s1"]; !ok {
		t.Error("s1 should be present")
	}
}

func TestDominantVerdictsEmptyInput(t *testing.T) {
	t.Parallel()

	if got := DominantVerdicts(nil); len(got) != 0 {
		t.Errorf("got %d entries from empty input, want 0", len(got))
	}
}

func TestApplyDominantVerdicts(t *testing.T) {
	t.Parallel()

	submissions := []corpus.Submission{
		{SubmissionID: "s1", Title: "first"},
		{SubmissionID: "s2", Title: "second"},
		{SubmissionID: "s3", Title: "third"},
	}
	verdicts := map[string]Dominant{
		"s1": {Label: Asshole, LabeledComments: 7},
		"s3": {Label: NotTheAsshole, LabeledComments: 2},
	}

	enriched := ApplyDominantVerdicts(submissions, verdicts)

	if len(enriched) != 2 {
		t.Fatalf("got %d submissions, want 2 (s2 has no labeled comments)", len(enriched))
	}
	if enriched[0].SubmissionID != "s1" || enriched[0].DominantVerdict != Asshole || enriched[0].VerdictCount != 7 {
		t.Errorf("s1 enrichment wrong: %+v", enriched[0])
	}
	if enriched[1].SubmissionID != "s3" || enriched[1].DominantVerdict != NotTheAsshole {
		t.Errorf("s3 enrichment wrong: %+v", enriched[1])
	}

	// Input stays untouched
	if submissions[0].DominantVerdict != "" {
		t.Error("ApplyDominantVerdicts mutated its input")
	}
}

func TestAnnotateDominantVerdicts(t *testing.T) {
	t.Parallel()

	comments := []corpus.Comment{
		{CommentID: "c1", SubmissionID: "s1", Verdict: NotTheAsshole},
		{CommentID: "c2", SubmissionID: "s2"},
	}
	verdicts := map[string]Dominant{
		"s1": {Label: NotTheAsshole, LabeledComments: 1},
	}

	annotated := AnnotateDominantVerdicts(comments, verdicts)

	if annotated[0].DominantVerdict != NotTheAsshole {
		t.Errorf("c1 DominantVerdict = %q, want %q", annotated[0].DominantVerdict, NotTheAsshole)
	}
	if annotated[1].DominantVerdict != "" {
		t.Errorf("c2 DominantVerdict = %q, want empty", annotated[1].DominantVerdict)
	}
}
