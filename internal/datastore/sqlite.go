// Package datastore persists annotation collections in a SQLite
// database, keyed by content hash so imports are idempotent.
package datastore

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dcasekit/dcase-go/internal/annotation"
	"github.com/dcasekit/dcase-go/internal/errors"
	"github.com/dcasekit/dcase-go/internal/logging"
)

var log = logging.Logger("datastore")

// Store wraps the SQLite-backed annotation database.
type Store struct {
	db *gorm.DB
}

// Open opens or creates the database at path and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Error("failed to open database", "path", path, "error", err)
		return nil, errors.Newf("opening database: %w", err).
			Component("datastore").Category(errors.CategoryDatabase).
			Context("path", path).Build()
	}

	if err := db.AutoMigrate(&EventRecord{}); err != nil {
		log.Error("failed to migrate database", "path", path, "error", err)
		return nil, errors.Newf("migrating database: %w", err).
			Component("datastore").Category(errors.CategoryDatabase).
			Context("path", path).Build()
	}

	log.Debug("database opened", "path", path)
	return &Store{db: db}, nil
}

// SaveCollection upserts every event of the collection. Events already
// present, by content hash, are left untouched. Returns the number of
// newly inserted records.
func (s *Store) SaveCollection(c *annotation.Collection) (int, error) {
	if c.Len() == 0 {
		return 0, nil
	}

	records := make([]EventRecord, 0, c.Len())
	for i := range c.Events {
		records = append(records, fromEvent(&c.Events[i]))
	}

	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "content_id"}},
		DoNothing: true,
	}).Create(&records)
	if result.Error != nil {
		log.Error("failed to save collection", "events", c.Len(), "error", result.Error)
		return 0, errors.Newf("saving collection: %w", result.Error).
			Component("datastore").Category(errors.CategoryDatabase).Build()
	}

	log.Debug("collection saved", "events", c.Len(), "inserted", result.RowsAffected)
	return int(result.RowsAffected), nil
}

// Query restricts which stored events LoadCollection returns. Empty
// fields match everything.
type Query struct {
	Filename   string
	SceneLabel string
	EventLabel string
}

// LoadCollection fetches stored events as a collection, ordered by
// filename and onset.
func (s *Store) LoadCollection(q Query) (*annotation.Collection, error) {
	tx := s.db.Model(&EventRecord{})
	if q.Filename != "" {
		tx = tx.Where("filename = ?", q.Filename)
	}
	if q.SceneLabel != "" {
		tx = tx.Where("scene_label = ?", q.SceneLabel)
	}
	if q.EventLabel != "" {
		tx = tx.Where("event_label = ?", q.EventLabel)
	}

	var records []EventRecord
	if err := tx.Order("filename, onset").Find(&records).Error; err != nil {
		log.Error("failed to load collection", "error", err)
		return nil, errors.Newf("loading collection: %w", err).
			Component("datastore").Category(errors.CategoryDatabase).Build()
	}

	c := &annotation.Collection{}
	for i := range records {
		c.Append(records[i].toEvent())
	}
	return c, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Newf("accessing database handle: %w", err).
			Component("datastore").Category(errors.CategoryDatabase).Build()
	}
	return sqlDB.Close()
}
