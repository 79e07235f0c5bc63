package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"nagarseva/apperr"
	"nagarseva/models"
)

// mysqlDuplicateEntry is the MySQL error number for a unique-key violation.
const mysqlDuplicateEntry = 1062

// isDuplicateEntry reports whether err is a unique-key violation (ER_DUP_ENTRY).
func isDuplicateEntry(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
}

// UserRepository handles database operations for citizen accounts
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new citizen account. A duplicate email in the users
// namespace surfaces as apperr.ErrEmailInUse.
func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, phone, city, state, ward_no)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(
		query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.City,
		user.State,
		user.WardNo,
	)
	if isDuplicateEntry(err) {
		return apperr.ErrEmailInUse
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	userID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get user ID: %w", err)
	}

	user.UserID = userID
	return nil
}

// GetByEmail retrieves a citizen by email.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	query := `
		SELECT user_id, name, email, password_hash, phone, city, state, ward_no, created_at
		FROM users
		WHERE email = ?
		LIMIT 1
	`

	user := &models.User{}
	err := r.db.QueryRow(query, email).Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.City,
		&user.State,
		&user.WardNo,
		&user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// GetByID retrieves a citizen by ID.
func (r *UserRepository) GetByID(userID int64) (*models.User, error) {
	query := `
		SELECT user_id, name, email, password_hash, phone, city, state, ward_no, created_at
		FROM users
		WHERE user_id = ?
		LIMIT 1
	`

	user := &models.User{}
	err := r.db.QueryRow(query, userID).Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.City,
		&user.State,
		&user.WardNo,
		&user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return user, nil
}

// Update persists the full citizen record. The service merges partial updates
// and re-hashes any new password before calling this.
func (r *UserRepository) Update(user *models.User) error {
	query := `
		UPDATE users
		SET name = ?, email = ?, password_hash = ?, phone = ?, city = ?, state = ?, ward_no = ?
		WHERE user_id = ?
	`

	result, err := r.db.Exec(
		query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.City,
		user.State,
		user.WardNo,
		user.UserID,
	)
	if isDuplicateEntry(err) {
		return apperr.ErrEmailInUse
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		// MySQL reports 0 for a no-op update too; distinguish missing from unchanged.
		var exists int
		if err := r.db.QueryRow(`SELECT COUNT(*) FROM users WHERE user_id = ?`, user.UserID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to verify user existence: %w", err)
		}
		if exists == 0 {
			return apperr.ErrNotFound
		}
	}

	return nil
}
