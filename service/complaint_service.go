package service

import (
	"database/sql"

	"nagarseva/models"
)

// ComplaintService handles business logic for the complaint lifecycle.
type ComplaintService struct {
	complaints ComplaintStore
}

// NewComplaintService creates a new complaint service.
func NewComplaintService(complaints ComplaintStore) *ComplaintService {
	return &ComplaintService{complaints: complaints}
}

// Create files a new complaint for the citizen. Starts as pending with all
// counters at zero; a live duplicate for the same (category, location, ward,
// city) surfaces as apperr.ErrDuplicateComplaint.
func (s *ComplaintService) Create(req *models.CreateComplaintRequest, userID int64) (*models.Complaint, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	complaint := &models.Complaint{
		UserID:   userID,
		Category: req.Category,
		Location: req.Location,
		WardNo:   req.WardNo,
		City:     req.City,
		State:    req.State,
	}
	if req.ImageURL != nil && *req.ImageURL != "" {
		complaint.ImageURL = sql.NullString{String: *req.ImageURL, Valid: true}
	}

	if err := s.complaints.Create(complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// Get fetches one complaint and bumps its view counter. The bump is a single
// atomic statement; a failed bump does not block the read.
func (s *ComplaintService) Get(complaintID int64) (*models.Complaint, error) {
	if err := s.complaints.IncrementViews(complaintID); err != nil {
		// View counts are best-effort; the read still serves.
		return s.complaints.GetByID(complaintID)
	}
	return s.complaints.GetByID(complaintID)
}

// List returns complaints matching the conjunction of the provided filters.
func (s *ComplaintService) List(filter models.ComplaintFilter) ([]models.Complaint, error) {
	return s.complaints.List(filter)
}

// UpdateStatus transitions a complaint on behalf of the acting officer. All
// checks (assignment match, forward-only transition, proof on resolve) run
// inside the store's transaction.
func (s *ComplaintService) UpdateStatus(complaintID, officerID int64, newStatus models.ComplaintStatus, proofImage *string) (*models.Complaint, error) {
	return s.complaints.UpdateStatus(complaintID, officerID, newStatus, proofImage)
}

// Timeline returns the status history for a complaint, newest first.
func (s *ComplaintService) Timeline(complaintID int64) ([]models.ComplaintStatusHistory, error) {
	if _, err := s.complaints.GetByID(complaintID); err != nil {
		return nil, err
	}
	return s.complaints.GetStatusHistory(complaintID)
}
