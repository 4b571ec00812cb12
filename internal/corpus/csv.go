package corpus

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/aitacurator/aitacurator/internal/errors"
)

// Column names of the tabular input and output files. The raw dump ships the
// base columns, the pipeline appends the derived ones.
const (
	ColSubmissionID    = "submission_id"
	ColTitle           = "title"
	ColSelfText        = "selftext"
	ColScore           = "score"
	ColCommentID       = "comment_id"
	ColMessage         = "message"
	ColEngagementTier  = "engagement_tier"
	ColDominantVerdict = "dominant_verdict"
	ColVerdictCount    = "verdict_count"
	ColCommentCount    = "comment_count"
	ColAvgCommentScore = "avg_comment_score"
	ColVerdict         = "verdict"
	ColCommentLength   = "comment_length"
)

// ReadSubmissions loads a submissions table. The base columns are required,
// derived columns are picked up when present so persisted samples reload
// with their enrichment intact.
func ReadSubmissions(path string) ([]Submission, error) {
	records, header, err := readTable(path)
	if err != nil {
		return nil, err
	}

	required := []string{ColSubmissionID, ColTitle, ColSelfText, ColScore}
	if err := requireColumns(path, header, required); err != nil {
		return nil, err
	}

	submissions := make([]Submission, 0, len(records))
	for i, record := range records {
		row := rowReader{header: header, record: record}

		score, err := row.intValue(ColScore)
		if err != nil {
			return nil, rowError(path, i, err)
		}

		submission := Submission{
			SubmissionID:   row.value(ColSubmissionID),
			Title:          row.value(ColTitle),
			SelfText:       row.value(ColSelfText),
			Score:          score,
			EngagementTier: row.value(ColEngagementTier),
		}

		submission.DominantVerdict = row.value(ColDominantVerdict)
		if submission.VerdictCount, err = row.optionalIntValue(ColVerdictCount); err != nil {
			return nil, rowError(path, i, err)
		}
		if submission.CommentCount, err = row.optionalIntValue(ColCommentCount); err != nil {
			return nil, rowError(path, i, err)
		}
		if submission.AvgCommentScore, err = row.optionalFloatValue(ColAvgCommentScore); err != nil {
			return nil, rowError(path, i, err)
		}

		submissions = append(submissions, submission)
	}

	return submissions, nil
}

// ReadComments loads a comments table, picking up derived columns when present.
func ReadComments(path string) ([]Comment, error) {
	records, header, err := readTable(path)
	if err != nil {
		return nil, err
	}

	required := []string{ColCommentID, ColSubmissionID, ColMessage, ColScore}
	if err := requireColumns(path, header, required); err != nil {
		return nil, err
	}

	comments := make([]Comment, 0, len(records))
	for i, record := range records {
		row := rowReader{header: header, record: record}

		score, err := row.intValue(ColScore)
		if err != nil {
			return nil, rowError(path, i, err)
		}

		comments = append(comments, Comment{
			CommentID:       row.value(ColCommentID),
			SubmissionID:    row.value(ColSubmissionID),
			Message:         row.value(ColMessage),
			Score:           score,
			Verdict:         row.value(ColVerdict),
			DominantVerdict: row.value(ColDominantVerdict),
		})
	}

	return comments, nil
}

// WriteSubmissions persists a submissions table with the base columns plus
// the requested derived columns, in the given order.
func WriteSubmissions(path string, submissions []Submission, derived ...string) error {
	header := append([]string{ColSubmissionID, ColTitle, ColSelfText, ColScore}, derived...)

	rows := make([][]string, 0, len(submissions))
	for i := range submissions {
		s := &submissions[i]
		row := []string{s.SubmissionID, s.Title, s.SelfText, strconv.Itoa(s.Score)}
		for _, col := range derived {
			switch col {
			case ColEngagementTier:
				row = append(row, s.EngagementTier)
			case ColDominantVerdict:
				row = append(row, s.DominantVerdict)
			case ColVerdictCount:
				row = append(row, strconv.Itoa(s.VerdictCount))
			case ColCommentCount:
				row = append(row, strconv.Itoa(s.CommentCount))
			case ColAvgCommentScore:
				row = append(row, strconv.FormatFloat(s.AvgCommentScore, 'g', -1, 64))
			default:
				return errors.Newf("unknown submission column %q", col).
					Category(errors.CategoryValidation).
					Build()
			}
		}
		rows = append(rows, row)
	}

	return writeTable(path, header, rows)
}

// WriteComments persists a comments table with the base columns plus the
// requested derived columns, in the given order.
func WriteComments(path string, comments []Comment, derived ...string) error {
	header := append([]string{ColCommentID, ColSubmissionID, ColMessage, ColScore}, derived...)

	rows := make([][]string, 0, len(comments))
	for i := range comments {
		c := &comments[i]
		row := []string{c.CommentID, c.SubmissionID, c.Message, strconv.Itoa(c.Score)}
		for _, col := range derived {
			switch col {
			case ColVerdict:
				row = append(row, c.Verdict)
			case ColDominantVerdict:
				row = append(row, c.DominantVerdict)
			case ColCommentLength:
				row = append(row, strconv.Itoa(c.Length()))
			default:
				return errors.Newf("unknown comment column %q", col).
					Category(errors.CategoryValidation).
					Build()
			}
		}
		rows = append(rows, row)
	}

	return writeTable(path, header, rows)
}

// readTable reads a whole CSV file, returning the data records and a column
// index built from the header row.
func readTable(path string) ([][]string, map[string]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.New(fmt.Errorf("opening %s: %w", path, err)).
			Category(errors.CategoryFileIO).
			Priority(errors.PriorityCritical).
			Context("path", path).
			Build()
	}
	defer file.Close()

	reader := csv.NewReader(file)
	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.New(fmt.Errorf("reading CSV %s: %w", path, err)).
			Category(errors.CategoryFileParsing).
			Context("path", path).
			Build()
	}

	if len(all) == 0 {
		return nil, nil, errors.Newf("CSV %s has no header row", path).
			Category(errors.CategoryFileParsing).
			Context("path", path).
			Build()
	}

	header := make(map[string]int, len(all[0]))
	for i, name := range all[0] {
		header[name] = i
	}

	return all[1:], header, nil
}

// writeTable writes a header row followed by the data rows.
func writeTable(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.New(fmt.Errorf("creating %s: %w", path, err)).
			Category(errors.CategoryFileIO).
			Context("path", path).
			Build()
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return errors.New(fmt.Errorf("writing header to %s: %w", path, err)).
			Category(errors.CategoryFileIO).
			Build()
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return errors.New(fmt.Errorf("writing row to %s: %w", path, err)).
				Category(errors.CategoryFileIO).
				Build()
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.New(fmt.Errorf("flushing %s: %w", path, err)).
			Category(errors.CategoryFileIO).
			Build()
	}

	return nil
}

// requireColumns checks that every required column is present in the header.
func requireColumns(path string, header map[string]int, required []string) error {
	for _, col := range required {
		if _, ok := header[col]; !ok {
			return errors.Newf("CSV %s is missing required column %q", path, col).
				Category(errors.CategoryFileParsing).
				Context("path", path).
				Context("column", col).
				Build()
		}
	}
	return nil
}

// rowError wraps a per-row parse failure with its position. The row number
// is 1-based and counts the header row, matching what a spreadsheet shows.
func rowError(path string, index int, err error) error {
	return errors.New(fmt.Errorf("%s row %d: %w", path, index+2, err)).
		Category(errors.CategoryFileParsing).
		Context("path", path).
		Context("row", index+2).
		Build()
}

// rowReader provides header-indexed access to one CSV record.
type rowReader struct {
	header map[string]int
	record []string
}

func (r rowReader) value(column string) string {
	idx, ok := r.header[column]
	if !ok || idx >= len(r.record) {
		return ""
	}
	return r.record[idx]
}

func (r rowReader) intValue(column string) (int, error) {
	raw := r.value(column)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("column %s: invalid integer %q", column, raw)
	}
	return value, nil
}

// optionalIntValue parses an integer column that may be absent or empty.
func (r rowReader) optionalIntValue(column string) (int, error) {
	raw := r.value(column)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("column %s: invalid integer %q", column, raw)
	}
	return value, nil
}

// optionalFloatValue parses a float column that may be absent or empty.
func (r rowReader) optionalFloatValue(column string) (float64, error) {
	raw := r.value(column)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: invalid number %q", column, raw)
	}
	return value, nil
}
