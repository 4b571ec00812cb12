package verdict

import (
	"testing"

	"github.com/aitacurator/aitacurator/internal/corpus"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		want    string
		matched bool
	}{
		{"yta initialism", "YTA, no question about it", Asshole, true},
		{"contracted phrase", "honestly you're the asshole here", Asshole, true},
		{"full phrase", "I think you are the asshole", Asshole, true},
		{"bare word", "what an asshole move", Asshole, true},
		{"nta initialism", "NTA, she crossed a line", NotTheAsshole, true},
		{"esh initialism", "ESH in this story", EveryoneSucks, true},
		{"everyone sucks phrase", "wow, everyone sucks here", EveryoneSucks, true},
		{"everybody sucks phrase", "everybody sucks in this one", EveryoneSucks, true},
		{"nah initialism", "NAH, just a misunderstanding", NoAssholesHere, true},
		{"no assholes here phrase", "clearly no assholes here", NoAssholesHere, true},
		{"case insensitive", "yTa obviously", Asshole, true},
		{"no match", "interesting story, thanks for sharing", "", false},
		{"empty text", "", "", false},
		{"word boundary respected", "the ytamine levels are high", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, matched := Extract(tt.text)
			if matched != tt.matched {
				t.Fatalf("Extract(%q) matched = %v, want %v", tt.text, matched, tt.matched)
			}
			if got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// The bare `\basshole\b` pattern sits in the first category and therefore
// also fires inside negated phrases like "not the asshole". These cases pin
// the historical labeling so nobody fixes it by accident.
func TestExtractBareWordShadowsNegatedPhrases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"nta phrase labels asshole", "not the asshole", Asshole},
		{"nta phrase in sentence", "OP is not the asshole in my view", Asshole},
		{"no asshole phrase", "there is no asshole in this story", Asshole},
		{"no one is the asshole", "no one is the asshole here", Asshole},
		// "assholes" does not end on a word boundary after "asshole",
		// so the plural phrase escapes the shadow
		{"plural phrase escapes", "no assholes here at all", NoAssholesHere},
		{"nta initialism escapes", "NTA in my book", NotTheAsshole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, matched := Extract(tt.text)
			if !matched {
				t.Fatalf("Extract(%q) found no verdict, want %q", tt.text, tt.want)
			}
			if got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractCategoryPriorityOrder(t *testing.T) {
	t.Parallel()

	// Multiple cues in one comment resolve to the first category in order
	got, matched := Extract("ESH, but mostly YTA")
	if !matched || got != Asshole {
		t.Errorf("Extract with YTA and ESH cues = %q, want %q", got, Asshole)
	}

	got, matched = Extract("NAH or maybe ESH")
	if !matched || got != EveryoneSucks {
		t.Errorf("Extract with ESH and NAH cues = %q, want %q", got, EveryoneSucks)
	}
}

func TestExtractAll(t *testing.T) {
	t.Parallel()

	comments := []corpus.Comment{
		{CommentID: "c1", Message: "YTA for sure"},
		{CommentID: "c2", Message: "just a story comment"},
		{CommentID: "c3", Message: "NTA, she was wrong"},
	}

	labeled := ExtractAll(comments)

	if len(labeled) != 2 {
		t.Fatalf("got %d labeled comments, want 2", len(labeled))
	}
	if labeled[0].CommentID != "c1" || labeled[0].Verdict != Asshole {
		t.Errorf("first labeled = %s/%s, want c1/%s", labeled[0].CommentID, labeled[0].Verdict, Asshole)
	}
	if labeled[1].CommentID != "c3" || labeled[1].Verdict != NotTheAsshole {
		t.Errorf("second labeled = %s/%s, want c3/%s", labeled[1].CommentID, labeled[1].Verdict, NotTheAsshole)
	}

	// Input comments stay unlabeled
	if comments[0].Verdict != "" {
		t.Error("ExtractAll mutated its input")
	}
}

func TestDistribution(t *testing.T) {
	t.Parallel()

	comments := []corpus.Comment{
		{Verdict: NotTheAsshole},
		{Verdict: NotTheAsshole},
		{Verdict: Asshole},
		{Verdict: Asshole},
		{Verdict: EveryoneSucks},
		{Verdict: ""},
	}

	counts := Distribution(comments)

	if len(counts) != 3 {
		t.Fatalf("got %d labels, want 3", len(counts))
	}
	// Tie between asshole and not the asshole resolves alphabetically
	if counts[0].Label != Asshole || counts[0].N != 2 {
		t.Errorf("first = %s/%d, want %s/2", counts[0].Label, counts[0].N, Asshole)
	}
	if counts[1].Label != NotTheAsshole || counts[1].N != 2 {
		t.Errorf("second = %s/%d, want %s/2", counts[1].Label, counts[1].N, NotTheAsshole)
	}
	if counts[2].Label != EveryoneSucks || counts[2].N != 1 {
		t.Errorf("third = %s/%d, want %s/1", counts[2].Label, counts[2].N, EveryoneSucks)
	}
}

func TestCategoriesOrder(t *testing.T) {
	t.Parallel()

	want := []string{Asshole, NotTheAsshole, EveryoneSucks, NoAssholesHere}
	if len(Categories) != len(want) {
		t.Fatalf("got %d categories, want %d", len(Categories), len(want))
	}
	for i := range want {
		if Categories[i] != want[i] {
			t.Errorf("Categories[%d] = %q, want %q", i, Categories[i], want[i])
		}
	}
}
