package service

import "nagarseva/models"

// Store interfaces are satisfied by the concrete repositories in
// nagarseva/repository. Services depend on these so domain rules can be
// exercised against fakes in tests.

// UserStore persists citizen accounts.
type UserStore interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(userID int64) (*models.User, error)
	Update(user *models.User) error
}

// OfficerStore persists staff accounts (field officers and call-center staff).
type OfficerStore interface {
	Create(officer *models.Officer) error
	GetByEmail(email string) (*models.Officer, error)
	GetByID(officerID int64) (*models.Officer, error)
	Update(officer *models.Officer) error
	Delete(officerID int64) error
}

// AdminStore persists administrator accounts.
type AdminStore interface {
	GetByEmail(email string) (*models.Admin, error)
	GetByID(adminID int64) (*models.Admin, error)
	Update(admin *models.Admin) error
}

// ComplaintStore persists complaints, their lifecycle and assignment.
type ComplaintStore interface {
	Create(complaint *models.Complaint) error
	GetByID(complaintID int64) (*models.Complaint, error)
	IncrementViews(complaintID int64) error
	List(filter models.ComplaintFilter) ([]models.Complaint, error)
	UpdateStatus(complaintID, officerID int64, newStatus models.ComplaintStatus, proofImage *string) (*models.Complaint, error)
	Assign(complaintID, officerID, adminID int64) error
	GetStatusHistory(complaintID int64) ([]models.ComplaintStatusHistory, error)
}

// EngagementStore persists upvotes and comments with their counters.
type EngagementStore interface {
	ToggleUpvote(userID, complaintID int64) (action string, upvotes int, err error)
	AddComment(comment *models.Comment) error
	ListComments(complaintID int64) ([]models.Comment, error)
}
