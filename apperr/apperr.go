// Package apperr defines the domain error taxonomy shared by repositories,
// services and handlers. Handlers map these to HTTP status codes; repositories
// wrap store failures with %w so errors.Is still matches.
package apperr

import "errors"

var (
	// ErrNotFound - the referenced row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmailInUse - the email already exists in the target namespace.
	ErrEmailInUse = errors.New("email already in use")

	// ErrDuplicateComplaint - a pending/in_progress complaint with the same
	// category, location, ward and city already exists.
	ErrDuplicateComplaint = errors.New("duplicate complaint already open for this location")

	// ErrAlreadyAssigned - the complaint already has a field officer.
	ErrAlreadyAssigned = errors.New("complaint already assigned to a field officer")

	// ErrInvalidOfficer - the referenced officer does not exist or is not a field officer.
	ErrInvalidOfficer = errors.New("officer is not a valid field officer")

	// ErrInvalidCredentials - login failure; never reveals which part was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation - missing or malformed input fields.
	ErrValidation = errors.New("validation error")

	// ErrUnauthorized - no usable identity (missing/expired/malformed token).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden - authenticated but not allowed (role or ownership mismatch).
	ErrForbidden = errors.New("forbidden")
)
