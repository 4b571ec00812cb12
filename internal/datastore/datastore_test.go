package datastore

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/aitacurator/aitacurator/internal/conf"
	"github.com/aitacurator/aitacurator/internal/errors"
)

// createDump builds a dump fixture on disk and returns its path.
func createDump(t *testing.T, submissions []RawSubmission, comments []RawComment) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "AmItheAsshole.sqlite")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	ds := &DataStore{DB: db}
	require.NoError(t, ds.CreateSchema())

	if len(submissions) > 0 {
		require.NoError(t, db.Create(&submissions).Error)
	}
	if len(comments) > 0 {
		require.NoError(t, db.Create(&comments).Error)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	return path
}

func openStore(t *testing.T, path string, batchSize int) Interface {
	t.Helper()

	settings := &conf.Settings{}
	settings.Database = conf.DatabaseSettings{Type: "sqlite", Path: path, BatchSize: batchSize}

	store, err := New(settings)
	require.NoError(t, err)
	require.NoError(t, store.Open())
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func TestNewPicksDialect(t *testing.T) {
	t.Parallel()

	settings := &conf.Settings{}
	settings.Database.Type = "sqlite"
	store, err := New(settings)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, store)

	settings.Database.Type = "mysql"
	store, err = New(settings)
	require.NoError(t, err)
	assert.IsType(t, &MySQLStore{}, store)

	settings.Database.Type = "postgres"
	_, err = New(settings)
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryConfiguration))
}

func TestSQLiteOpenMissingDump(t *testing.T) {
	t.Parallel()

	settings := &conf.Settings{}
	settings.Database = conf.DatabaseSettings{Type: "sqlite", Path: filepath.Join(t.TempDir(), "nope.sqlite")}

	store := &SQLiteStore{Settings: settings}
	err := store.Open()
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryFileIO))
}

func TestSQLiteOpenRejectsDumpWithoutTables(t *testing.T) {
	t.Parallel()

	// A database file that exists but has no dump schema
	path := filepath.Join(t.TempDir(), "empty.sqlite")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	_, err = sqlDB.Exec("CREATE TABLE placeholder (id INTEGER)")
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	settings := &conf.Settings{}
	settings.Database = conf.DatabaseSettings{Type: "sqlite", Path: path}

	store := &SQLiteStore{Settings: settings}
	err = store.Open()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "submission")
}

func TestCountsAndBatchedReads(t *testing.T) {
	t.Parallel()

	submissions := make([]RawSubmission, 5)
	for i := range submissions {
		submissions[i] = RawSubmission{
			SubmissionID: fmt.Sprintf("s%02d", i+1),
			Title:        fmt.Sprintf("Title %d", i+1),
			SelfText:     "body",
			Score:        i * 10,
		}
	}
	comments := make([]RawComment, 7)
	for i := range comments {
		comments[i] = RawComment{
			CommentID:    fmt.Sprintf("c%02d", i+1),
			SubmissionID: "s01",
			Message:      "nta",
			Score:        i,
		}
	}
	store := openStore(t, createDump(t, submissions, comments), 2)

	nSubs, err := store.CountSubmissions()
	require.NoError(t, err)
	assert.Equal(t, int64(5), nSubs)

	nComs, err := store.CountComments()
	require.NoError(t, err)
	assert.Equal(t, int64(7), nComs)

	var batchSizes []int
	var streamed []RawSubmission
	err = store.SubmissionsInBatches(2, func(batch []RawSubmission) error {
		batchSizes = append(batchSizes, len(batch))
		streamed = append(streamed, batch...)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1}, batchSizes)
	require.Len(t, streamed, 5)
	assert.Equal(t, "s01", streamed[0].SubmissionID, "batches follow primary-key order")
	assert.Equal(t, "s05", streamed[4].SubmissionID)

	var streamedComments []RawComment
	err = store.CommentsInBatches(3, func(batch []RawComment) error {
		streamedComments = append(streamedComments, batch...)
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, streamedComments, 7)
}

func TestBatchCallbackErrorStopsStream(t *testing.T) {
	t.Parallel()

	submissions := []RawSubmission{
		{SubmissionID: "s01", SelfText: "a"},
		{SubmissionID: "s02", SelfText: "b"},
		{SubmissionID: "s03", SelfText: "c"},
	}
	store := openStore(t, createDump(t, submissions, nil), 1)

	boom := errors.NewStd("disk full")
	calls := 0
	err := store.SubmissionsInBatches(1, func([]RawSubmission) error {
		calls++
		return boom
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestRawConversions(t *testing.T) {
	t.Parallel()

	raw := RawSubmission{SubmissionID: "s1", Title: "T", SelfText: "body", Score: 9}
	s := raw.Submission()
	assert.Equal(t, "s1", s.SubmissionID)
	assert.Equal(t, "T", s.Title)
	assert.Equal(t, "body", s.SelfText)
	assert.Equal(t, 9, s.Score)

	rawC := RawComment{CommentID: "c1", SubmissionID: "s1", Message: "yta", Score: 4}
	c := rawC.Comment()
	assert.Equal(t, "c1", c.CommentID)
	assert.Equal(t, "s1", c.SubmissionID)
	assert.Equal(t, "yta", c.Message)
	assert.Equal(t, 4, c.Score)
}
