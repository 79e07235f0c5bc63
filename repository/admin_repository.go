package repository

import (
	"database/sql"
	"fmt"

	"nagarseva/apperr"
	"nagarseva/models"
)

// AdminRepository handles database operations for administrator accounts.
// Admins are created out of band; there is no Create here on purpose.
type AdminRepository struct {
	db *sql.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetByEmail retrieves an admin by email.
func (r *AdminRepository) GetByEmail(email string) (*models.Admin, error) {
	query := `
		SELECT admin_id, name, email, password_hash, city, created_at
		FROM admins
		WHERE email = ?
		LIMIT 1
	`

	admin := &models.Admin{}
	err := r.db.QueryRow(query, email).Scan(
		&admin.AdminID,
		&admin.Name,
		&admin.Email,
		&admin.PasswordHash,
		&admin.City,
		&admin.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return admin, nil
}

// GetByID retrieves an admin by ID.
func (r *AdminRepository) GetByID(adminID int64) (*models.Admin, error) {
	query := `
		SELECT admin_id, name, email, password_hash, city, created_at
		FROM admins
		WHERE admin_id = ?
		LIMIT 1
	`

	admin := &models.Admin{}
	err := r.db.QueryRow(query, adminID).Scan(
		&admin.AdminID,
		&admin.Name,
		&admin.Email,
		&admin.PasswordHash,
		&admin.City,
		&admin.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by ID: %w", err)
	}

	return admin, nil
}

// Update persists the full admin record.
func (r *AdminRepository) Update(admin *models.Admin) error {
	query := `
		UPDATE admins
		SET name = ?, email = ?, password_hash = ?, city = ?
		WHERE admin_id = ?
	`

	result, err := r.db.Exec(
		query,
		admin.Name,
		admin.Email,
		admin.PasswordHash,
		admin.City,
		admin.AdminID,
	)
	if isDuplicateEntry(err) {
		return apperr.ErrEmailInUse
	}
	if err != nil {
		return fmt.Errorf("failed to update admin: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		var exists int
		if err := r.db.QueryRow(`SELECT COUNT(*) FROM admins WHERE admin_id = ?`, admin.AdminID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to verify admin existence: %w", err)
		}
		if exists == 0 {
			return apperr.ErrNotFound
		}
	}

	return nil
}
