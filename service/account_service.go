package service

import (
	"fmt"

	"nagarseva/apperr"
	"nagarseva/models"
	"nagarseva/utils"
)

// AccountService looks up and updates accounts across the three namespaces.
// Dispatch is a switch over the closed role enum to a fixed repository; a
// role string never reaches SQL.
type AccountService struct {
	users    UserStore
	officers OfficerStore
	admins   AdminStore
}

// NewAccountService creates a new account service.
func NewAccountService(users UserStore, officers OfficerStore, admins AdminStore) *AccountService {
	return &AccountService{users: users, officers: officers, admins: admins}
}

// Get returns the sanitized account for (id, role).
func (s *AccountService) Get(id int64, role models.Role) (interface{}, error) {
	switch role {
	case models.RoleCitizen:
		return s.users.GetByID(id)
	case models.RoleFieldOfficer, models.RoleCallCenter:
		officer, err := s.officers.GetByID(id)
		if err != nil {
			return nil, err
		}
		if officer.Role != role {
			return nil, apperr.ErrNotFound
		}
		return officer, nil
	case models.RoleAdmin:
		return s.admins.GetByID(id)
	}
	return nil, apperr.ErrValidation
}

// Update applies a partial profile update to the account named by the
// request's id and role. A new password is re-hashed before persisting; an
// email change that collides surfaces as apperr.ErrEmailInUse.
func (s *AccountService) Update(req *models.UpdateAccountRequest) (interface{}, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	role, ok := models.ParseRole(req.Role)
	if !ok {
		return nil, apperr.ErrValidation
	}

	var passwordHash string
	if req.Password != nil {
		if *req.Password == "" {
			return nil, apperr.ErrValidation
		}
		var err error
		passwordHash, err = utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	switch role {
	case models.RoleCitizen:
		user, err := s.users.GetByID(req.ID)
		if err != nil {
			return nil, err
		}
		applyString(&user.Name, req.Name)
		applyString(&user.Email, req.Email)
		applyString(&user.Phone, req.Phone)
		applyString(&user.City, req.City)
		applyString(&user.State, req.State)
		applyString(&user.WardNo, req.WardNo)
		if passwordHash != "" {
			user.PasswordHash = passwordHash
		}
		if err := s.users.Update(user); err != nil {
			return nil, err
		}
		return user, nil

	case models.RoleFieldOfficer, models.RoleCallCenter:
		officer, err := s.officers.GetByID(req.ID)
		if err != nil {
			return nil, err
		}
		applyString(&officer.Name, req.Name)
		applyString(&officer.Email, req.Email)
		applyString(&officer.Phone, req.Phone)
		applyString(&officer.Address, req.Address)
		applyString(&officer.City, req.City)
		applyString(&officer.State, req.State)
		applyString(&officer.WardNo, req.WardNo)
		if passwordHash != "" {
			officer.PasswordHash = passwordHash
		}
		if err := s.officers.Update(officer); err != nil {
			return nil, err
		}
		return officer, nil

	case models.RoleAdmin:
		admin, err := s.admins.GetByID(req.ID)
		if err != nil {
			return nil, err
		}
		applyString(&admin.Name, req.Name)
		applyString(&admin.Email, req.Email)
		applyString(&admin.City, req.City)
		if passwordHash != "" {
			admin.PasswordHash = passwordHash
		}
		if err := s.admins.Update(admin); err != nil {
			return nil, err
		}
		return admin, nil
	}

	return nil, apperr.ErrValidation
}

// UpdateOwnProfile applies a profile update on behalf of the authenticated
// principal, ignoring any id/role in the payload.
func (s *AccountService) UpdateOwnProfile(p models.Principal, req *models.UpdateAccountRequest) (interface{}, error) {
	req.ID = p.ID
	req.Role = string(p.Role)
	return s.Update(req)
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
