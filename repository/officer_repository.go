package repository

import (
	"database/sql"
	"fmt"

	"nagarseva/apperr"
	"nagarseva/models"
)

// OfficerRepository handles database operations for staff accounts
// (field officers and call-center staff share the officers table).
type OfficerRepository struct {
	db *sql.DB
}

// NewOfficerRepository creates a new officer repository
func NewOfficerRepository(db *sql.DB) *OfficerRepository {
	return &OfficerRepository{db: db}
}

// Create inserts a new staff account. Duplicate email in the officer
// namespace surfaces as apperr.ErrEmailInUse.
func (r *OfficerRepository) Create(officer *models.Officer) error {
	query := `
		INSERT INTO officers (name, email, password_hash, role, phone, address, city, state, ward_no)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(
		query,
		officer.Name,
		officer.Email,
		officer.PasswordHash,
		officer.Role,
		officer.Phone,
		officer.Address,
		officer.City,
		officer.State,
		officer.WardNo,
	)
	if isDuplicateEntry(err) {
		return apperr.ErrEmailInUse
	}
	if err != nil {
		return fmt.Errorf("failed to create officer: %w", err)
	}

	officerID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get officer ID: %w", err)
	}

	officer.OfficerID = officerID
	return nil
}

// GetByEmail retrieves a staff account by email.
func (r *OfficerRepository) GetByEmail(email string) (*models.Officer, error) {
	query := `
		SELECT officer_id, name, email, password_hash, role, phone, address, city, state, ward_no, created_at
		FROM officers
		WHERE email = ?
		LIMIT 1
	`

	officer := &models.Officer{}
	err := r.db.QueryRow(query, email).Scan(
		&officer.OfficerID,
		&officer.Name,
		&officer.Email,
		&officer.PasswordHash,
		&officer.Role,
		&officer.Phone,
		&officer.Address,
		&officer.City,
		&officer.State,
		&officer.WardNo,
		&officer.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get officer by email: %w", err)
	}

	return officer, nil
}

// GetByID retrieves a staff account by ID.
func (r *OfficerRepository) GetByID(officerID int64) (*models.Officer, error) {
	query := `
		SELECT officer_id, name, email, password_hash, role, phone, address, city, state, ward_no, created_at
		FROM officers
		WHERE officer_id = ?
		LIMIT 1
	`

	officer := &models.Officer{}
	err := r.db.QueryRow(query, officerID).Scan(
		&officer.OfficerID,
		&officer.Name,
		&officer.Email,
		&officer.PasswordHash,
		&officer.Role,
		&officer.Phone,
		&officer.Address,
		&officer.City,
		&officer.State,
		&officer.WardNo,
		&officer.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get officer by ID: %w", err)
	}

	return officer, nil
}

// Update persists the full staff record.
func (r *OfficerRepository) Update(officer *models.Officer) error {
	query := `
		UPDATE officers
		SET name = ?, email = ?, password_hash = ?, phone = ?, address = ?, city = ?, state = ?, ward_no = ?
		WHERE officer_id = ?
	`

	result, err := r.db.Exec(
		query,
		officer.Name,
		officer.Email,
		officer.PasswordHash,
		officer.Phone,
		officer.Address,
		officer.City,
		officer.State,
		officer.WardNo,
		officer.OfficerID,
	)
	if isDuplicateEntry(err) {
		return apperr.ErrEmailInUse
	}
	if err != nil {
		return fmt.Errorf("failed to update officer: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		var exists int
		if err := r.db.QueryRow(`SELECT COUNT(*) FROM officers WHERE officer_id = ?`, officer.OfficerID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to verify officer existence: %w", err)
		}
		if exists == 0 {
			return apperr.ErrNotFound
		}
	}

	return nil
}

// Delete removes a staff account. Missing row surfaces as apperr.ErrNotFound.
func (r *OfficerRepository) Delete(officerID int64) error {
	result, err := r.db.Exec(`DELETE FROM officers WHERE officer_id = ?`, officerID)
	if err != nil {
		return fmt.Errorf("failed to delete officer: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}

	return nil
}
