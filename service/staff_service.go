package service

import (
	"errors"
	"fmt"

	"nagarseva/apperr"
	"nagarseva/models"
	"nagarseva/utils"
)

// StaffService implements the admin-side workflow: staff management and
// officer-to-complaint assignment.
type StaffService struct {
	officers   OfficerStore
	admins     AdminStore
	complaints ComplaintStore
}

// NewStaffService creates a new staff service.
func NewStaffService(officers OfficerStore, admins AdminStore, complaints ComplaintStore) *StaffService {
	return &StaffService{officers: officers, admins: admins, complaints: complaints}
}

// Assign binds a field officer to an unassigned complaint, exactly once.
// Validation order follows the workflow contract: acting admin must exist
// (ErrUnauthorized), the complaint must exist and be unassigned (ErrNotFound /
// ErrAlreadyAssigned, regardless of officer validity), and the officer must be
// an existing field officer (ErrInvalidOfficer). The store re-checks
// assignment under a row lock, so two concurrent assigns cannot both win.
func (s *StaffService) Assign(adminID, complaintID, officerID int64) error {
	if _, err := s.admins.GetByID(adminID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.ErrUnauthorized
		}
		return err
	}

	complaint, err := s.complaints.GetByID(complaintID)
	if err != nil {
		return err
	}
	if complaint.FieldOfficerID.Valid {
		return apperr.ErrAlreadyAssigned
	}

	officer, err := s.officers.GetByID(officerID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.ErrInvalidOfficer
		}
		return err
	}
	if officer.Role != models.RoleFieldOfficer {
		return apperr.ErrInvalidOfficer
	}

	return s.complaints.Assign(complaintID, officerID, adminID)
}

// CreateStaff creates an officer or call-center account on behalf of an
// admin. The new account's role is restricted to the staff subset; a taken
// email in the officer namespace surfaces as apperr.ErrEmailInUse.
func (s *StaffService) CreateStaff(req *models.CreateStaffRequest) (*models.Officer, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	role, ok := models.ParseRole(req.Role)
	if !ok || !role.IsStaff() {
		return nil, apperr.ErrValidation
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	officer := &models.Officer{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		WardNo:       req.WardNo,
	}
	if err := s.officers.Create(officer); err != nil {
		return nil, err
	}
	return officer, nil
}

// RemoveStaff deletes a staff account. Missing accounts surface as ErrNotFound.
func (s *StaffService) RemoveStaff(officerID int64) error {
	return s.officers.Delete(officerID)
}
