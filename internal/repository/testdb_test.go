package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite database with the schema created by
// hand, since the Postgres column defaults do not translate. Tests insert
// rows with explicit IDs for the same reason.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	statements := []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			profile_image_key TEXT
		)`,
		`CREATE TABLE boards (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			title TEXT NOT NULL,
			visibility TEXT NOT NULL DEFAULT 'PUBLIC',
			creator_id TEXT NOT NULL
		)`,
		`CREATE TABLE collaborators (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			board_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			UNIQUE(board_id, user_id)
		)`,
		`CREATE TABLE tasks (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			board_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			reporter_id TEXT NOT NULL,
			assignee_id TEXT,
			priority TEXT NOT NULL DEFAULT 'LOW',
			status TEXT NOT NULL DEFAULT 'TO_DO',
			time_spent INTEGER NOT NULL DEFAULT 0,
			deadline DATETIME
		)`,
		`CREATE TABLE password_reset_tokens (
			id TEXT PRIMARY KEY,
			token TEXT NOT NULL UNIQUE,
			user_id TEXT NOT NULL UNIQUE,
			created_at DATETIME NOT NULL,
			expires_at DATETIME NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to create schema: %v", err)
		}
	}

	return db
}
