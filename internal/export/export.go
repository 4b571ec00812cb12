// Package export writes the human-facing artifacts of a curation run:
// run metadata YAML, review and favorites TXT files and stage summaries.
package export

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/aitacurator/aitacurator/internal/errors"
)

// printer renders counts with thousands separators.
var printer = message.NewPrinter(language.English)

var upper = cases.Upper(language.English)

const lineWidth = 80

func rule(ch string, width int) string {
	return strings.Repeat(ch, width)
}

// truncate cuts s after n characters. Multi-byte text is cut on rune
// boundaries.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// writeFile renders through fn into a buffered writer on a freshly created
// file.
func writeFile(path string, fn func(w *bufio.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.New(err).
			Category(errors.CategoryExport).
			Context("operation", "create-export-file").
			FileContext(path, 0).
			Build()
	}
	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return errors.New(err).
			Category(errors.CategoryExport).
			Context("operation", "flush-export-file").
			FileContext(path, 0).
			Build()
	}
	return f.Close()
}
