// Package datastore reads the raw Reddit dump out of its SQLite or MySQL
// database so the pipeline can work from plain CSV snapshots.
package datastore

import (
	"log"
	"os"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/aitacurator/aitacurator/internal/conf"
	"github.com/aitacurator/aitacurator/internal/errors"
)

// Interface is the dump-reading surface the ingest stage works against.
type Interface interface {
	Open() error
	Close() error

	CountSubmissions() (int64, error)
	CountComments() (int64, error)

	// Batched reads follow primary-key order, so repeated runs stream the
	// dump in the same order.
	SubmissionsInBatches(batchSize int, fn func(batch []RawSubmission) error) error
	CommentsInBatches(batchSize int, fn func(batch []RawComment) error) error
}

// DataStore implements Interface over a GORM database.
type DataStore struct {
	DB *gorm.DB
}

// New creates a store for the configured database type.
func New(settings *conf.Settings) (Interface, error) {
	switch settings.Database.Type {
	case "sqlite":
		return &SQLiteStore{Settings: settings}, nil
	case "mysql":
		return &MySQLStore{Settings: settings}, nil
	default:
		return nil, errors.Newf("unsupported database type: %s", settings.Database.Type).
			Category(errors.CategoryConfiguration).
			Context("type", settings.Database.Type).
			Build()
	}
}

// CountSubmissions returns the number of rows in the submission table.
func (ds *DataStore) CountSubmissions() (int64, error) {
	return ds.count(&RawSubmission{}, "submission")
}

// CountComments returns the number of rows in the comment table.
func (ds *DataStore) CountComments() (int64, error) {
	return ds.count(&RawComment{}, "comment")
}

func (ds *DataStore) count(model any, table string) (int64, error) {
	var n int64
	if err := ds.DB.Model(model).Count(&n).Error; err != nil {
		return 0, errors.New(err).
			Category(errors.CategoryDatabase).
			Context("operation", "count").
			Context("table", table).
			Build()
	}
	return n, nil
}

// SubmissionsInBatches streams the submission table in primary-key order,
// handing each batch to fn. A non-nil error from fn stops the stream and is
// returned as-is.
func (ds *DataStore) SubmissionsInBatches(batchSize int, fn func(batch []RawSubmission) error) error {
	var rows []RawSubmission
	var fnErr error
	err := ds.DB.Model(&RawSubmission{}).FindInBatches(&rows, batchSize, func(*gorm.DB, int) error {
		fnErr = fn(rows)
		return fnErr
	}).Error
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return errors.New(err).
			Category(errors.CategoryDatabase).
			Context("operation", "batch-read").
			Context("table", "submission").
			Build()
	}
	return nil
}

// CommentsInBatches streams the comment table in primary-key order, handing
// each batch to fn. A non-nil error from fn stops the stream and is
// returned as-is.
func (ds *DataStore) CommentsInBatches(batchSize int, fn func(batch []RawComment) error) error {
	var rows []RawComment
	var fnErr error
	err := ds.DB.Model(&RawComment{}).FindInBatches(&rows, batchSize, func(*gorm.DB, int) error {
		fnErr = fn(rows)
		return fnErr
	}).Error
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return errors.New(err).
			Category(errors.CategoryDatabase).
			Context("operation", "batch-read").
			Context("table", "comment").
			Build()
	}
	return nil
}

// CreateSchema creates the dump tables. Ingest never calls this; it exists
// for building fixture dumps.
func (ds *DataStore) CreateSchema() error {
	if err := ds.DB.AutoMigrate(&RawSubmission{}, &RawComment{}); err != nil {
		return errors.New(err).
			Category(errors.CategoryDatabase).
			Context("operation", "create-schema").
			Build()
	}
	return nil
}

// validateSchema confirms both dump tables exist.
func (ds *DataStore) validateSchema(source string) error {
	migrator := ds.DB.Migrator()
	for _, table := range []string{"submission", "comment"} {
		if !migrator.HasTable(table) {
			return errors.Newf("dump table %q not found in %s", table, source).
				Category(errors.CategoryDatabase).
				Context("table", table).
				Context("source", source).
				Build()
		}
	}
	return nil
}

// createGormLogger keeps GORM quiet unless something is slow or wrong.
func createGormLogger(debug bool) gormlogger.Interface {
	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}
	return gormlogger.New(
		log.New(os.Stderr, "", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		},
	)
}
