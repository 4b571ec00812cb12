package errors

import (
	"fmt"
	"io/fs"
	"testing"
)

func TestBuilderDefaults(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("boom")
	ee := New(err).Build()

	if ee.Err.Error() != "boom" {
		t.Errorf("Expected error message 'boom', got '%s'", ee.Err.Error())
	}

	if ee.Category != CategoryGeneric {
		t.Errorf("Expected category 'generic' for a plain error, got '%s'", ee.Category)
	}

	if ee.GetTimestamp().IsZero() {
		t.Error("Expected a non-zero timestamp")
	}
}

func TestBuilderExplicitFields(t *testing.T) {
	t.Parallel()

	ee := Newf("sample draw failed for tier %s", "Medium").
		Component("sampling").
		Category(CategorySampling).
		Context("tier", "Medium").
		Context("requested", 50).
		Build()

	if ee.GetComponent() != "sampling" {
		t.Errorf("Expected component 'sampling', got '%s'", ee.GetComponent())
	}
	if ee.Category != CategorySampling {
		t.Errorf("Expected category 'sampling', got '%s'", ee.Category)
	}

	ctx := ee.GetContext()
	if ctx["tier"] != "Medium" {
		t.Errorf("Expected context tier 'Medium', got '%v'", ctx["tier"])
	}
	if ctx["requested"] != 50 {
		t.Errorf("Expected context requested 50, got '%v'", ctx["requested"])
	}

	// Mutating the returned copy must not touch the error's own context
	ctx["tier"] = "High"
	if ee.GetContext()["tier"] != "Medium" {
		t.Error("GetContext must return a defensive copy")
	}
}

func TestCategoryDetectionHeuristics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want ErrorCategory
	}{
		{"csv parse failure", fmt.Errorf("csv: wrong number of fields"), CategoryFileParsing},
		{"missing file", fmt.Errorf("opening data/submission.bin: no such entry"), CategoryFileIO},
		{"sqlite table", fmt.Errorf("no such table: submission"), CategoryDatabase},
		{"empty stage", fmt.Errorf("empty comment pool after length limit"), CategoryEmptyResult},
		{"sampler", fmt.Errorf("tier population exhausted"), CategorySampling},
		{"unclassified", fmt.Errorf("boom"), CategoryGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := New(tt.err).Build().Category
			if got != tt.want {
				t.Errorf("detectCategory(%q) = %s, want %s", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsCategory(t *testing.T) {
	t.Parallel()

	ee := EmptyResultError("verdict-extraction")
	if !IsCategory(ee, CategoryEmptyResult) {
		t.Error("Expected IsCategory to match CategoryEmptyResult")
	}
	if IsCategory(ee, CategoryDatabase) {
		t.Error("Did not expect IsCategory to match CategoryDatabase")
	}

	// Wrapped once more, As should still find it
	wrapped := fmt.Errorf("pipeline: %w", ee)
	if !IsCategory(wrapped, CategoryEmptyResult) {
		t.Error("Expected IsCategory to see through fmt.Errorf wrapping")
	}
}

func TestUnwrapAndIsPassthrough(t *testing.T) {
	t.Parallel()

	base := fs.ErrNotExist
	ee := New(fmt.Errorf("loading corpus: %w", base)).Category(CategoryFileIO).Build()

	if !Is(ee, fs.ErrNotExist) {
		t.Error("Expected Is to unwrap through EnhancedError to fs.ErrNotExist")
	}

	if Unwrap(ee) == nil {
		t.Error("Expected Unwrap to return the wrapped error")
	}
}

func TestFileErrorContext(t *testing.T) {
	t.Parallel()

	ee := FileError(fmt.Errorf("open failed"), "data/comment.csv", 2048)
	ctx := ee.GetContext()

	if ctx["file_extension"] != "csv" {
		t.Errorf("Expected file_extension 'csv', got '%v'", ctx["file_extension"])
	}
	if ctx["file_size_category"] != "small" {
		t.Errorf("Expected file_size_category 'small', got '%v'", ctx["file_size_category"])
	}
}

func TestCategorizeFileSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		size int64
		want string
	}{
		{512, "tiny"},
		{200 * 1024, "small"},
		{5 * 1024 * 1024, "medium"},
		{50 * 1024 * 1024, "large"},
		{500 * 1024 * 1024, "very-large"},
	}

	for _, tt := range tests {
		if got := categorizeFileSize(tt.size); got != tt.want {
			t.Errorf("categorizeFileSize(%d) = %s, want %s", tt.size, got, tt.want)
		}
	}
}
