package database

import (
	"log"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/Maru1209/EulerQ-candidate-test/internals/configs"
	"github.com/Maru1209/EulerQ-candidate-test/internals/features/assessment/model"
)

// Connect opens the embedded database file and migrates the two tables.
// The handle is returned, not stored in a global, so tests can hold
// their own isolated files.
func Connect(cfg *configs.Config) (*gorm.DB, error) {
	log.Printf("🔌 Opening database file %s ...", cfg.DBPath)

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.Submission{}, &model.FinalSubmission{}); err != nil {
		return nil, err
	}

	log.Println("✅ DB connected & migrated.")
	return db, nil
}

// TunePool caps the pool for a single-writer file database.
func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Close releases the underlying pool on shutdown.
func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
