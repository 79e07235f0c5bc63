// Package schema: safe database initialization — create only missing tables, never drop or overwrite.
package schema

import (
	"database/sql"
	"log"
)

var tableOrder = []string{
	"users",
	"officers",
	"admins",
	"complaints",
	"complaint_upvotes",
	"comments",
	"complaint_status_history",
}

// InitializeDatabase ensures all tables exist. Checks INFORMATION_SCHEMA.TABLES
// and creates only missing tables, in dependency order. Never drops or
// recreates tables; never removes data.
func InitializeDatabase(db *sql.DB) {
	for _, table := range tableOrder {
		exists, err := tableExists(db, table)
		if err != nil {
			log.Fatalf("[SCHEMA] Failed to check if table %s exists: %v", table, err)
		}
		if exists {
			log.Printf("[SCHEMA] %s table exists", table)
			continue
		}
		if _, err := db.Exec(createStatements[table]); err != nil {
			log.Fatalf("[SCHEMA] Failed to create table %s: %v", table, err)
		}
		log.Printf("[SCHEMA] created %s table", table)
	}
}

func tableExists(db *sql.DB, table string) (bool, error) {
	var count int
	query := `
		SELECT COUNT(*)
		FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = ?
	`
	if err := db.QueryRow(query, table).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

var createStatements = map[string]string{
	"users": `
CREATE TABLE IF NOT EXISTS users (
    user_id BIGINT PRIMARY KEY AUTO_INCREMENT,
    name VARCHAR(255) NOT NULL,
    email VARCHAR(255) NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    phone VARCHAR(32) NOT NULL DEFAULT '',
    city VARCHAR(128) NOT NULL DEFAULT '',
    state VARCHAR(128) NOT NULL DEFAULT '',
    ward_no VARCHAR(32) NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE KEY uq_users_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	"officers": `
CREATE TABLE IF NOT EXISTS officers (
    officer_id BIGINT PRIMARY KEY AUTO_INCREMENT,
    name VARCHAR(255) NOT NULL,
    email VARCHAR(255) NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    role ENUM('field_officer', 'call_center') NOT NULL,
    phone VARCHAR(32) NOT NULL DEFAULT '',
    address VARCHAR(512) NOT NULL DEFAULT '',
    city VARCHAR(128) NOT NULL DEFAULT '',
    state VARCHAR(128) NOT NULL DEFAULT '',
    ward_no VARCHAR(32) NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE KEY uq_officers_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	"admins": `
CREATE TABLE IF NOT EXISTS admins (
    admin_id BIGINT PRIMARY KEY AUTO_INCREMENT,
    name VARCHAR(255) NOT NULL,
    email VARCHAR(255) NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    city VARCHAR(128) NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE KEY uq_admins_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	"complaints": `
CREATE TABLE IF NOT EXISTS complaints (
    complaint_id BIGINT PRIMARY KEY AUTO_INCREMENT,
    complaint_number VARCHAR(64) NOT NULL,
    user_id BIGINT NOT NULL,
    category VARCHAR(128) NOT NULL,
    location VARCHAR(255) NOT NULL,
    image_url VARCHAR(512) NULL,
    current_status ENUM('pending', 'in_progress', 'resolved') NOT NULL DEFAULT 'pending',
    ward_no VARCHAR(32) NOT NULL DEFAULT '',
    city VARCHAR(128) NOT NULL DEFAULT '',
    state VARCHAR(128) NOT NULL DEFAULT '',
    field_officer_id BIGINT NULL,
    upvotes INT NOT NULL DEFAULT 0,
    views INT NOT NULL DEFAULT 0,
    total_comments INT NOT NULL DEFAULT 0,
    proof_image VARCHAR(512) NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NULL DEFAULT NULL,
    UNIQUE KEY uq_complaints_number (complaint_number),
    KEY idx_complaints_dup (category, location, ward_no, city),
    KEY idx_complaints_officer (field_officer_id),
    CONSTRAINT fk_complaints_user FOREIGN KEY (user_id) REFERENCES users (user_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	"complaint_upvotes": `
CREATE TABLE IF NOT EXISTS complaint_upvotes (
    upvote_id BIGINT PRIMARY KEY AUTO_INCREMENT,
    user_id BIGINT NOT NULL,
    complaint_id BIGINT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE KEY uq_upvote_pair (user_id, complaint_id),
    CONSTRAINT fk_upvotes_user FOREIGN KEY (user_id) REFERENCES users (user_id),
    CONSTRAINT fk_upvotes_complaint FOREIGN KEY (complaint_id) REFERENCES complaints (complaint_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	"comments": `
CREATE TABLE IF NOT EXISTS comments (
    comment_id BIGINT PRIMARY KEY AUTO_INCREMENT,
    user_id BIGINT NOT NULL,
    complaint_id BIGINT NOT NULL,
    comment_text TEXT NOT NULL,
    likes_count INT NOT NULL DEFAULT 0,
    views_count INT NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    KEY idx_comments_complaint (complaint_id),
    CONSTRAINT fk_comments_user FOREIGN KEY (user_id) REFERENCES users (user_id),
    CONSTRAINT fk_comments_complaint FOREIGN KEY (complaint_id) REFERENCES complaints (complaint_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	"complaint_status_history": `
CREATE TABLE IF NOT EXISTS complaint_status_history (
    history_id BIGINT PRIMARY KEY AUTO_INCREMENT,
    complaint_id BIGINT NOT NULL,
    old_status VARCHAR(32) NULL,
    new_status VARCHAR(32) NOT NULL,
    changed_by_officer_id BIGINT NULL,
    changed_by_admin_id BIGINT NULL,
    notes VARCHAR(512) NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    KEY idx_history_complaint (complaint_id),
    CONSTRAINT fk_history_complaint FOREIGN KEY (complaint_id) REFERENCES complaints (complaint_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
}
