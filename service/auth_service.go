package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"nagarseva/apperr"
	"nagarseva/models"
	"nagarseva/utils"
)

// validate is the shared struct-tag validator for request DTOs.
var validate = validator.New()

// validateRequest runs struct-tag validation and folds failures into the
// domain validation error so handlers map them uniformly.
func validateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}
	return nil
}

// AuthService handles signup and login for all three account namespaces and
// issues session tokens.
type AuthService struct {
	users      UserStore
	officers   OfficerStore
	admins     AdminStore
	jwtSecret  []byte
	staffTTL   time.Duration
	citizenTTL time.Duration
}

// NewAuthService creates a new auth service.
func NewAuthService(users UserStore, officers OfficerStore, admins AdminStore, jwtSecret string, staffTTLHours, citizenTTLHours int) *AuthService {
	return &AuthService{
		users:      users,
		officers:   officers,
		admins:     admins,
		jwtSecret:  []byte(jwtSecret),
		staffTTL:   time.Duration(staffTTLHours) * time.Hour,
		citizenTTL: time.Duration(citizenTTLHours) * time.Hour,
	}
}

// Signup creates a citizen account and returns a session token alongside the
// sanitized account. A taken email surfaces as apperr.ErrEmailInUse.
func (s *AuthService) Signup(req *models.SignupRequest) (*models.AuthResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		City:         req.City,
		State:        req.State,
		WardNo:       req.WardNo,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(models.Principal{ID: user.UserID, Role: models.RoleCitizen}, s.jwtSecret, s.citizenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &models.AuthResponse{Token: token, Account: user}, nil
}

// LoginCitizen authenticates a citizen. Unknown email and wrong password both
// surface as apperr.ErrInvalidCredentials.
func (s *AuthService) LoginCitizen(req *models.LoginRequest) (*models.AuthResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(req.Email)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := utils.CheckPassword(req.Password, user.PasswordHash); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(models.Principal{ID: user.UserID, Role: models.RoleCitizen}, s.jwtSecret, s.citizenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &models.AuthResponse{Token: token, Account: user}, nil
}

// LoginOfficer authenticates a staff account. The issued token carries the
// officer's role (field_officer or call_center) and city.
func (s *AuthService) LoginOfficer(req *models.LoginRequest) (*models.AuthResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	officer, err := s.officers.GetByEmail(req.Email)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := utils.CheckPassword(req.Password, officer.PasswordHash); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(models.Principal{ID: officer.OfficerID, Role: officer.Role, City: officer.City}, s.jwtSecret, s.staffTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &models.AuthResponse{Token: token, Account: officer}, nil
}

// LoginAdmin authenticates an administrator.
func (s *AuthService) LoginAdmin(req *models.LoginRequest) (*models.AuthResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	admin, err := s.admins.GetByEmail(req.Email)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := utils.CheckPassword(req.Password, admin.PasswordHash); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(models.Principal{ID: admin.AdminID, Role: models.RoleAdmin, City: admin.City}, s.jwtSecret, s.staffTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &models.AuthResponse{Token: token, Account: admin}, nil
}
