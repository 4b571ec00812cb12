package export

import (
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/aitacurator/aitacurator/internal/errors"
)

// Parameters is the sampling-parameter block of the run metadata.
type Parameters struct {
	MaxSubmissionChars    int    `yaml:"max_submission_chars"`
	MaxCommentChars       int    `yaml:"max_comment_chars"`
	TargetN               int    `yaml:"target_n"`
	OversampleFactor      int    `yaml:"oversample_factor"`
	CommentsPerSubmission int    `yaml:"comments_per_submission"`
	OutputPrefix          string `yaml:"output_prefix"`
	Seed                  int64  `yaml:"seed"`
}

// Statistics summarizes the sampled data set.
type Statistics struct {
	TotalSubmissions       int            `yaml:"total_submissions"`
	TotalComments          int            `yaml:"total_comments"`
	AvgSubmissionLength    float64        `yaml:"avg_submission_length"`
	AvgCommentLength       float64        `yaml:"avg_comment_length"`
	EngagementDistribution map[string]int `yaml:"engagement_distribution"`
}

// Files lists the artifacts the run produced.
type Files struct {
	SubmissionsCSV string `yaml:"submissions_csv"`
	CommentsCSV    string `yaml:"comments_csv"`
	ReviewTXT      string `yaml:"review_txt"`
	MetadataYAML   string `yaml:"metadata_yaml"`
}

// Metadata is the full run record persisted next to the sampled CSVs. RunID
// and Timestamp are stamped by NewMetadata; the rest comes from the run.
type Metadata struct {
	RunID              string     `yaml:"run_id"`
	Timestamp          string     `yaml:"timestamp"`
	SamplingParameters Parameters `yaml:"sampling_parameters"`
	Statistics         Statistics `yaml:"statistics"`
	Files              Files      `yaml:"files"`
}

// NewMetadata assembles a run record with a fresh run id and the current
// time.
func NewMetadata(params Parameters, stats Statistics, files Files) *Metadata {
	return &Metadata{
		RunID:              uuid.New().String(),
		Timestamp:          time.Now().Format(time.RFC3339),
		SamplingParameters: params,
		Statistics:         stats,
		Files:              files,
	}
}

// WriteMetadata marshals the run record to YAML at path.
func WriteMetadata(path string, meta *Metadata) error {
	data, err := yaml.Marshal(meta)
	if err != nil {
		return errors.New(err).
			Category(errors.CategoryExport).
			Context("operation", "marshal-metadata").
			Build()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New(err).
			Category(errors.CategoryExport).
			Context("operation", "write-metadata").
			FileContext(path, 0).
			Build()
	}
	return nil
}
