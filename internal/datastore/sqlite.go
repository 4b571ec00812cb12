package datastore

import (
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aitacurator/aitacurator/internal/conf"
	"github.com/aitacurator/aitacurator/internal/errors"
)

// SQLiteStore reads the dump out of a local SQLite file.
type SQLiteStore struct {
	DataStore
	Settings *conf.Settings
}

// Open connects to the dump file. The file must already exist; a dump is
// input, never created here.
func (store *SQLiteStore) Open() error {
	path := store.Settings.Database.Path
	if _, err := os.Stat(path); err != nil {
		return errors.New(err).
			Category(errors.CategoryFileIO).
			Priority(errors.PriorityCritical).
			Context("operation", "open-dump").
			FileContext(path, 0).
			Build()
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: createGormLogger(store.Settings.Debug),
	})
	if err != nil {
		return errors.New(err).
			Category(errors.CategoryDatabase).
			Context("operation", "open-sqlite").
			FileContext(path, 0).
			Build()
	}

	store.DB = db
	return store.validateSchema(path)
}

// Close releases the database handle.
func (store *SQLiteStore) Close() error {
	if store.DB == nil {
		return nil
	}
	sqlDB, err := store.DB.DB()
	if err != nil {
		return errors.New(err).
			Category(errors.CategoryDatabase).
			Context("operation", "close-sqlite").
			Build()
	}
	return sqlDB.Close()
}
