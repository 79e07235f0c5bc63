package models

import (
	"database/sql"
	"time"
)

// ComplaintStatus represents the possible statuses of a complaint
type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "pending"
	StatusInProgress ComplaintStatus = "in_progress"
	StatusResolved   ComplaintStatus = "resolved"
)

// IsValid reports whether s is one of the known statuses.
func (s ComplaintStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// IsTerminal reports whether s ends the complaint lifecycle.
// Duplicate suppression only considers non-terminal complaints.
func (s ComplaintStatus) IsTerminal() bool {
	return s == StatusResolved
}

// CanTransitionTo enforces the forward-only lifecycle
// pending -> in_progress -> resolved. No backward transitions.
func (s ComplaintStatus) CanTransitionTo(next ComplaintStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusInProgress || next == StatusResolved
	case StatusInProgress:
		return next == StatusResolved
	}
	return false
}

// Role is the closed set of actor roles. Account lookup dispatches over this
// enum to a fixed repository; a role string is never interpolated into SQL.
type Role string

const (
	RoleCitizen      Role = "citizen"
	RoleFieldOfficer Role = "field_officer"
	RoleCallCenter   Role = "call_center"
	RoleAdmin        Role = "admin"
)

// ParseRole maps a wire string to a Role, rejecting anything outside the enum.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCitizen, RoleFieldOfficer, RoleCallCenter, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// IsStaff reports whether the role belongs to the officer namespace.
func (r Role) IsStaff() bool {
	return r == RoleFieldOfficer || r == RoleCallCenter
}

// User represents a citizen account. PasswordHash is never serialized.
type User struct {
	UserID       int64     `db:"user_id" json:"user_id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Phone        string    `db:"phone" json:"phone"`
	City         string    `db:"city" json:"city"`
	State        string    `db:"state" json:"state"`
	WardNo       string    `db:"ward_no" json:"ward_no"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Officer represents a staff account (field_officer or call_center).
type Officer struct {
	OfficerID    int64     `db:"officer_id" json:"officer_id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	Phone        string    `db:"phone" json:"phone"`
	Address      string    `db:"address" json:"address"`
	City         string    `db:"city" json:"city"`
	State        string    `db:"state" json:"state"`
	WardNo       string    `db:"ward_no" json:"ward_no"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Admin represents an administrator account. Created out of band; no signup route.
type Admin struct {
	AdminID      int64     `db:"admin_id" json:"admin_id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	City         string    `db:"city" json:"city"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Complaint represents a filed complaint. Counters (upvotes, views,
// total_comments) are maintained transactionally alongside their source rows.
type Complaint struct {
	ComplaintID     int64           `db:"complaint_id" json:"complaint_id"`
	ComplaintNumber string          `db:"complaint_number" json:"complaint_number"`
	UserID          int64           `db:"user_id" json:"user_id"`
	Category        string          `db:"category" json:"category"`
	Location        string          `db:"location" json:"location"`
	ImageURL        sql.NullString  `db:"image_url" json:"image_url"`
	CurrentStatus   ComplaintStatus `db:"current_status" json:"current_status"`
	WardNo          string          `db:"ward_no" json:"ward_no"`
	City            string          `db:"city" json:"city"`
	State           string          `db:"state" json:"state"`
	FieldOfficerID  sql.NullInt64   `db:"field_officer_id" json:"field_officer_id"`
	Upvotes         int             `db:"upvotes" json:"upvotes"`
	Views           int             `db:"views" json:"views"`
	TotalComments   int             `db:"total_comments" json:"total_comments"`
	ProofImage      sql.NullString  `db:"proof_image" json:"proof_image"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       sql.NullTime    `db:"updated_at" json:"updated_at"`
}

// Comment represents a citizen comment on a complaint.
// Creation increments Complaint.TotalComments in the same transaction.
type Comment struct {
	CommentID   int64     `db:"comment_id" json:"comment_id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	ComplaintID int64     `db:"complaint_id" json:"complaint_id"`
	CommentText string    `db:"comment_text" json:"comment_text"`
	LikesCount  int       `db:"likes_count" json:"likes_count"`
	ViewsCount  int       `db:"views_count" json:"views_count"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ComplaintStatusHistory is an immutable record of a status change or assignment.
type ComplaintStatusHistory struct {
	HistoryID          int64           `db:"history_id" json:"history_id"`
	ComplaintID        int64           `db:"complaint_id" json:"complaint_id"`
	OldStatus          sql.NullString  `db:"old_status" json:"old_status"`
	NewStatus          ComplaintStatus `db:"new_status" json:"new_status"`
	ChangedByOfficerID sql.NullInt64   `db:"changed_by_officer_id" json:"changed_by_officer_id"`
	ChangedByAdminID   sql.NullInt64   `db:"changed_by_admin_id" json:"changed_by_admin_id"`
	Notes              sql.NullString  `db:"notes" json:"notes"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
}

// Principal is the authenticated identity extracted from a verified session
// token. Threaded explicitly through handlers via request context.
type Principal struct {
	ID   int64  `json:"id"`
	Role Role   `json:"role"`
	City string `json:"city,omitempty"` // staff and admin tokens only
}
