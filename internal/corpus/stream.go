package corpus

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/aitacurator/aitacurator/internal/errors"
)

// SubmissionWriter streams submissions into a CSV file batch by batch, so a
// full dump never has to sit in memory. Base columns only.
type SubmissionWriter struct {
	path   string
	file   *os.File
	writer *csv.Writer
}

// NewSubmissionWriter creates the target file and writes the header row.
func NewSubmissionWriter(path string) (*SubmissionWriter, error) {
	file, writer, err := createTable(path, []string{ColSubmissionID, ColTitle, ColSelfText, ColScore})
	if err != nil {
		return nil, err
	}
	return &SubmissionWriter{path: path, file: file, writer: writer}, nil
}

// Append writes one batch of submissions and flushes it to disk.
func (w *SubmissionWriter) Append(batch []Submission) error {
	for i := range batch {
		s := &batch[i]
		if err := w.writer.Write([]string{s.SubmissionID, s.Title, s.SelfText, strconv.Itoa(s.Score)}); err != nil {
			return writeError(w.path, err)
		}
	}
	w.writer.Flush()
	return flushError(w.path, w.writer.Error())
}

// Close flushes remaining rows and closes the file.
func (w *SubmissionWriter) Close() error {
	return closeTable(w.path, w.file, w.writer)
}

// CommentWriter streams comments into a CSV file batch by batch.
// Base columns only.
type CommentWriter struct {
	path   string
	file   *os.File
	writer *csv.Writer
}

// NewCommentWriter creates the target file and writes the header row.
func NewCommentWriter(path string) (*CommentWriter, error) {
	file, writer, err := createTable(path, []string{ColCommentID, ColSubmissionID, ColMessage, ColScore})
	if err != nil {
		return nil, err
	}
	return &CommentWriter{path: path, file: file, writer: writer}, nil
}

// Append writes one batch of comments and flushes it to disk.
func (w *CommentWriter) Append(batch []Comment) error {
	for i := range batch {
		c := &batch[i]
		if err := w.writer.Write([]string{c.CommentID, c.SubmissionID, c.Message, strconv.Itoa(c.Score)}); err != nil {
			return writeError(w.path, err)
		}
	}
	w.writer.Flush()
	return flushError(w.path, w.writer.Error())
}

// Close flushes remaining rows and closes the file.
func (w *CommentWriter) Close() error {
	return closeTable(w.path, w.file, w.writer)
}

func createTable(path string, header []string) (*os.File, *csv.Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.New(fmt.Errorf("creating %s: %w", path, err)).
			Category(errors.CategoryFileIO).
			Context("path", path).
			Build()
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		file.Close()
		return nil, nil, errors.New(fmt.Errorf("writing header to %s: %w", path, err)).
			Category(errors.CategoryFileIO).
			Build()
	}

	return file, writer, nil
}

func closeTable(path string, file *os.File, writer *csv.Writer) error {
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return flushError(path, err)
	}
	if err := file.Close(); err != nil {
		return errors.New(fmt.Errorf("closing %s: %w", path, err)).
			Category(errors.CategoryFileIO).
			Build()
	}
	return nil
}

func writeError(path string, err error) error {
	return errors.New(fmt.Errorf("writing row to %s: %w", path, err)).
		Category(errors.CategoryFileIO).
		Build()
}

func flushError(path string, err error) error {
	if err == nil {
		return nil
	}
	return errors.New(fmt.Errorf("flushing %s: %w", path, err)).
		Category(errors.CategoryFileIO).
		Build()
}
