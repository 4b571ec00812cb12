// conf/validate.go

package conf

import (
	"fmt"
	"strings"
)

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []string
}

// Error returns a string representation of the validation errors
func (ve ValidationError) Error() string {
	return fmt.Sprintf("Validation errors: %v", ve.Errors)
}

// ValidateSettings validates the entire Settings struct
func ValidateSettings(settings *Settings) error {
	ve := ValidationError{}

	if err := validateCorpusSettings(&settings.Corpus); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateSamplingSettings(&settings.Sampling); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateOutputSettings(&settings.Output); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateDatabaseSettings(&settings.Database); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if len(ve.Errors) > 0 {
		return ve
	}

	return nil
}

// validateCorpusSettings checks the input table locations
func validateCorpusSettings(corpus *CorpusSettings) error {
	if corpus.DataDir == "" {
		return fmt.Errorf("corpus data directory must not be empty")
	}
	if corpus.SubmissionsFile == "" || corpus.CommentsFile == "" {
		return fmt.Errorf("corpus submissions and comments file names must not be empty")
	}
	return nil
}

// validateSamplingSettings checks the sampling parameter ranges
func validateSamplingSettings(sampling *SamplingSettings) error {
	if sampling.Profile != "" {
		if _, err := GetProfile(sampling.Profile); err != nil {
			return err
		}
	}

	if sampling.MaxSubmissionChars <= 0 {
		return fmt.Errorf("sampling.maxsubmissionchars must be positive, got %d", sampling.MaxSubmissionChars)
	}
	if sampling.MaxCommentChars <= 0 {
		return fmt.Errorf("sampling.maxcommentchars must be positive, got %d", sampling.MaxCommentChars)
	}
	if sampling.SamplesPerCategory <= 0 {
		return fmt.Errorf("sampling.samplespercategory must be positive, got %d", sampling.SamplesPerCategory)
	}
	if sampling.OversampleFactor < 1 {
		return fmt.Errorf("sampling.oversamplefactor must be at least 1, got %d", sampling.OversampleFactor)
	}
	if sampling.CommentsPerSubmission <= 0 {
		return fmt.Errorf("sampling.commentspersubmission must be positive, got %d", sampling.CommentsPerSubmission)
	}

	return nil
}

// validateOutputSettings checks the output directories and prefix
func validateOutputSettings(output *OutputSettings) error {
	if output.SamplesDir == "" || output.FavoritesDir == "" {
		return fmt.Errorf("output directories must not be empty")
	}
	if output.Prefix == "" {
		return fmt.Errorf("output prefix must not be empty")
	}
	if strings.ContainsAny(output.Prefix, `/\`) {
		return fmt.Errorf("output prefix must not contain path separators, got %q", output.Prefix)
	}
	return nil
}

// validateDatabaseSettings checks the ingest source description
func validateDatabaseSettings(db *DatabaseSettings) error {
	switch strings.ToLower(db.Type) {
	case "sqlite":
		if db.Path == "" {
			return fmt.Errorf("database.path must be set for sqlite")
		}
	case "mysql":
		if db.Host == "" || db.Database == "" {
			return fmt.Errorf("database.host and database.database must be set for mysql")
		}
	default:
		return fmt.Errorf("unsupported database type %q, must be sqlite or mysql", db.Type)
	}

	if db.BatchSize <= 0 {
		return fmt.Errorf("database.batchsize must be positive, got %d", db.BatchSize)
	}

	return nil
}
