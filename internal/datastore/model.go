package datastore

import (
	"github.com/aitacurator/aitacurator/internal/corpus"
)

// RawSubmission mirrors one row of the dump's submission table.
type RawSubmission struct {
	SubmissionID string `gorm:"column:submission_id;primaryKey"`
	Title        string `gorm:"column:title"`
	SelfText     string `gorm:"column:selftext"`
	Score        int    `gorm:"column:score"`
}

func (RawSubmission) TableName() string {
	return "submission"
}

// Submission converts the raw row into a corpus record.
func (r *RawSubmission) Submission() corpus.Submission {
	return corpus.Submission{
		SubmissionID: r.SubmissionID,
		Title:        r.Title,
		SelfText:     r.SelfText,
		Score:        r.Score,
	}
}

// RawComment mirrors one row of the dump's comment table.
type RawComment struct {
	CommentID    string `gorm:"column:comment_id;primaryKey"`
	SubmissionID string `gorm:"column:submission_id;index"`
	Message      string `gorm:"column:message"`
	Score        int    `gorm:"column:score"`
}

func (RawComment) TableName() string {
	return "comment"
}

// Comment converts the raw row into a corpus record.
func (r *RawComment) Comment() corpus.Comment {
	return corpus.Comment{
		CommentID:    r.CommentID,
		SubmissionID: r.SubmissionID,
		Message:      r.Message,
		Score:        r.Score,
	}
}
