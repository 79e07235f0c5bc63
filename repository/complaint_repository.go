package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"nagarseva/apperr"
	"nagarseva/models"
)

// ComplaintRepository handles database operations for complaints.
// Every check-then-set mutation runs inside a transaction with a row lock so
// concurrent requests cannot race on counters, status or assignment.
type ComplaintRepository struct {
	db *sql.DB
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *sql.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// generateComplaintNumber generates a unique complaint number.
// Format: CMP-YYYYMMDD-{UUID prefix}
func generateComplaintNumber() string {
	datePrefix := time.Now().UTC().Format("20060102")
	uniqueID := uuid.New().String()[:8]
	return fmt.Sprintf("CMP-%s-%s", datePrefix, uniqueID)
}

// Create inserts a new complaint with status pending and zeroed counters.
// At most one non-terminal complaint may exist per (category, location,
// ward_no, city); a live duplicate surfaces as apperr.ErrDuplicateComplaint.
// The probe and the insert share a transaction so two identical submissions
// cannot both pass the check.
func (r *ComplaintRepository) Create(complaint *models.Complaint) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var duplicates int
	probe := `
		SELECT COUNT(*)
		FROM complaints
		WHERE category = ? AND location = ? AND ward_no = ? AND city = ?
		  AND current_status IN ('pending', 'in_progress')
		FOR UPDATE
	`
	err = tx.QueryRow(probe, complaint.Category, complaint.Location, complaint.WardNo, complaint.City).Scan(&duplicates)
	if err != nil {
		return fmt.Errorf("failed to check for duplicate complaint: %w", err)
	}
	if duplicates > 0 {
		return apperr.ErrDuplicateComplaint
	}

	complaint.ComplaintNumber = generateComplaintNumber()
	complaint.CurrentStatus = models.StatusPending

	query := `
		INSERT INTO complaints (
			complaint_number, user_id, category, location, image_url,
			current_status, ward_no, city, state,
			upvotes, views, total_comments
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0, 0, 0)
	`
	result, err := tx.Exec(
		query,
		complaint.ComplaintNumber,
		complaint.UserID,
		complaint.Category,
		complaint.Location,
		complaint.ImageURL,
		complaint.CurrentStatus,
		complaint.WardNo,
		complaint.City,
		complaint.State,
	)
	if err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}

	complaintID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get complaint ID: %w", err)
	}
	complaint.ComplaintID = complaintID

	history := `
		INSERT INTO complaint_status_history (complaint_id, old_status, new_status, notes)
		VALUES (?, NULL, ?, 'complaint filed')
	`
	if _, err := tx.Exec(history, complaintID, models.StatusPending); err != nil {
		return fmt.Errorf("failed to create status history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit complaint creation: %w", err)
	}
	return nil
}

const complaintColumns = `
	complaint_id, complaint_number, user_id, category, location, image_url,
	current_status, ward_no, city, state, field_officer_id,
	upvotes, views, total_comments, proof_image, created_at, updated_at
`

func scanComplaint(row interface{ Scan(...interface{}) error }) (*models.Complaint, error) {
	var c models.Complaint
	err := row.Scan(
		&c.ComplaintID,
		&c.ComplaintNumber,
		&c.UserID,
		&c.Category,
		&c.Location,
		&c.ImageURL,
		&c.CurrentStatus,
		&c.WardNo,
		&c.City,
		&c.State,
		&c.FieldOfficerID,
		&c.Upvotes,
		&c.Views,
		&c.TotalComments,
		&c.ProofImage,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID retrieves a complaint by its ID.
func (r *ComplaintRepository) GetByID(complaintID int64) (*models.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE complaint_id = ?`

	complaint, err := scanComplaint(r.db.QueryRow(query, complaintID))
	if err == sql.ErrNoRows {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}
	return complaint, nil
}

// IncrementViews bumps the view counter in a single atomic statement.
func (r *ComplaintRepository) IncrementViews(complaintID int64) error {
	_, err := r.db.Exec(`UPDATE complaints SET views = views + 1 WHERE complaint_id = ?`, complaintID)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}

// List returns complaints matching the conjunction of all provided filters,
// newest first. An empty filter is unrestricted.
func (r *ComplaintRepository) List(filter models.ComplaintFilter) ([]models.Complaint, error) {
	var conditions []string
	var args []interface{}

	if filter.WardNo != "" {
		conditions = append(conditions, "ward_no = ?")
		args = append(args, filter.WardNo)
	}
	if filter.City != "" {
		conditions = append(conditions, "city = ?")
		args = append(args, filter.City)
	}
	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.OfficerID != 0 {
		conditions = append(conditions, "field_officer_id = ?")
		args = append(args, filter.OfficerID)
	}
	if filter.ComplaintID != 0 {
		conditions = append(conditions, "complaint_id = ?")
		args = append(args, filter.ComplaintID)
	}

	query := `SELECT ` + complaintColumns + ` FROM complaints`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query complaints: %w", err)
	}
	defer rows.Close()

	var complaints []models.Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan complaint: %w", err)
		}
		complaints = append(complaints, *c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating complaints: %w", err)
	}

	return complaints, nil
}

// validateStatusChange applies the lifecycle rules for an officer-driven
// status change: the actor must be the assigned officer, transitions run
// forward only, and resolving requires a proof image.
func validateStatusChange(
	current models.ComplaintStatus,
	assignedOfficer sql.NullInt64,
	officerID int64,
	newStatus models.ComplaintStatus,
	proofImage *string,
) error {
	if !newStatus.IsValid() {
		return apperr.ErrValidation
	}
	if !assignedOfficer.Valid || assignedOfficer.Int64 != officerID {
		return apperr.ErrForbidden
	}
	if !current.CanTransitionTo(newStatus) {
		return apperr.ErrValidation
	}
	if newStatus == models.StatusResolved && (proofImage == nil || *proofImage == "") {
		return apperr.ErrValidation
	}
	return nil
}

// UpdateStatus transitions a complaint's status on behalf of its assigned
// field officer. Fails with ErrForbidden when officerID is not the assigned
// officer, ErrValidation when resolving without a proof image or when the
// transition runs backward. Status and proof persist together in one
// transaction; the row is locked for the whole check-then-set.
func (r *ComplaintRepository) UpdateStatus(
	complaintID int64,
	officerID int64,
	newStatus models.ComplaintStatus,
	proofImage *string,
) (*models.Complaint, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var currentStatus models.ComplaintStatus
	var assignedOfficer sql.NullInt64
	lock := `SELECT current_status, field_officer_id FROM complaints WHERE complaint_id = ? FOR UPDATE`
	err = tx.QueryRow(lock, complaintID).Scan(&currentStatus, &assignedOfficer)
	if err == sql.ErrNoRows {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock complaint: %w", err)
	}

	if err := validateStatusChange(currentStatus, assignedOfficer, officerID, newStatus, proofImage); err != nil {
		return nil, err
	}

	var proof sql.NullString
	if proofImage != nil && *proofImage != "" {
		proof = sql.NullString{String: *proofImage, Valid: true}
	}

	update := `
		UPDATE complaints
		SET current_status = ?,
			proof_image = COALESCE(?, proof_image),
			updated_at = NOW()
		WHERE complaint_id = ?
	`
	if _, err := tx.Exec(update, newStatus, proof, complaintID); err != nil {
		return nil, fmt.Errorf("failed to update complaint status: %w", err)
	}

	history := `
		INSERT INTO complaint_status_history (complaint_id, old_status, new_status, changed_by_officer_id)
		VALUES (?, ?, ?, ?)
	`
	if _, err := tx.Exec(history, complaintID, string(currentStatus), newStatus, officerID); err != nil {
		return nil, fmt.Errorf("failed to create status history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit status update: %w", err)
	}

	return r.GetByID(complaintID)
}

// Assign binds a field officer to an unassigned complaint, exactly once.
// An already-assigned complaint surfaces as apperr.ErrAlreadyAssigned.
// The caller validates the admin and the officer's role beforehand.
func (r *ComplaintRepository) Assign(complaintID, officerID, adminID int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var currentStatus models.ComplaintStatus
	var assignedOfficer sql.NullInt64
	lock := `SELECT current_status, field_officer_id FROM complaints WHERE complaint_id = ? FOR UPDATE`
	err = tx.QueryRow(lock, complaintID).Scan(&currentStatus, &assignedOfficer)
	if err == sql.ErrNoRows {
		return apperr.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock complaint: %w", err)
	}

	if assignedOfficer.Valid {
		return apperr.ErrAlreadyAssigned
	}

	update := `UPDATE complaints SET field_officer_id = ?, updated_at = NOW() WHERE complaint_id = ?`
	if _, err := tx.Exec(update, officerID, complaintID); err != nil {
		return fmt.Errorf("failed to assign officer: %w", err)
	}

	history := `
		INSERT INTO complaint_status_history (complaint_id, old_status, new_status, changed_by_admin_id, notes)
		VALUES (?, ?, ?, ?, 'field officer assigned')
	`
	if _, err := tx.Exec(history, complaintID, string(currentStatus), currentStatus, adminID); err != nil {
		return fmt.Errorf("failed to create status history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit assignment: %w", err)
	}
	return nil
}

// GetStatusHistory retrieves the status timeline for a complaint, newest first.
func (r *ComplaintRepository) GetStatusHistory(complaintID int64) ([]models.ComplaintStatusHistory, error) {
	query := `
		SELECT history_id, complaint_id, old_status, new_status,
			changed_by_officer_id, changed_by_admin_id, notes, created_at
		FROM complaint_status_history
		WHERE complaint_id = ?
		ORDER BY created_at DESC, history_id DESC
	`

	rows, err := r.db.Query(query, complaintID)
	if err != nil {
		return nil, fmt.Errorf("failed to query status history: %w", err)
	}
	defer rows.Close()

	var history []models.ComplaintStatusHistory
	for rows.Next() {
		var h models.ComplaintStatusHistory
		err := rows.Scan(
			&h.HistoryID,
			&h.ComplaintID,
			&h.OldStatus,
			&h.NewStatus,
			&h.ChangedByOfficerID,
			&h.ChangedByAdminID,
			&h.Notes,
			&h.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan status history: %w", err)
		}
		history = append(history, h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status history: %w", err)
	}

	return history, nil
}
