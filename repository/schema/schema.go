package schema

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Statements are idempotent so they can run on every boot.
var createTableStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		username VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		location VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (user_id),
		UNIQUE KEY uq_users_email (email)
	)`,
	"CREATE TABLE IF NOT EXISTS books (" +
		"book_id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT, " +
		"owner_id BIGINT UNSIGNED NOT NULL, " +
		"title VARCHAR(255) NOT NULL, " +
		"author VARCHAR(255) NOT NULL, " +
		"`condition` VARCHAR(64) NOT NULL, " +
		"availability_type VARCHAR(16) NOT NULL, " +
		"rent_price BIGINT NULL, " +
		"sale_price BIGINT NULL, " +
		"description TEXT NULL, " +
		"location VARCHAR(255) NOT NULL, " +
		"is_available TINYINT(1) NOT NULL DEFAULT 1, " +
		"created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP, " +
		"PRIMARY KEY (book_id), " +
		"KEY idx_books_owner (owner_id)" +
		")",
	`CREATE TABLE IF NOT EXISTS requests (
		request_id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		book_id BIGINT UNSIGNED NOT NULL,
		requester_id BIGINT UNSIGNED NOT NULL,
		request_type VARCHAR(16) NOT NULL,
		message TEXT NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (request_id),
		KEY idx_requests_book (book_id),
		KEY idx_requests_requester (requester_id)
	)`,
}

// Init creates the users, books and requests tables if they are absent.
func Init(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range createTableStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
