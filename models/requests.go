package models

// ErrorResponse is the uniform error body returned by every handler.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// SignupRequest is the citizen self-signup payload.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"required"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
	WardNo   string `json:"ward_no" validate:"required"`
}

// LoginRequest is shared by citizen, officer and admin login routes.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse returns the session token together with the sanitized account.
type AuthResponse struct {
	Token   string      `json:"token"`
	Account interface{} `json:"account"`
}

// CreateComplaintRequest is the citizen complaint-filing payload.
// Location is free text, typically "lat,lng" from the frontend map picker.
type CreateComplaintRequest struct {
	Category string  `json:"category" validate:"required"`
	Location string  `json:"location" validate:"required"`
	ImageURL *string `json:"image,omitempty"`
	WardNo   string  `json:"ward_no" validate:"required"`
	City     string  `json:"city" validate:"required"`
	State    string  `json:"state" validate:"required"`
}

// ComplaintFilter is the conjunction of optional list filters.
// Empty fields are ignored; an empty filter is unrestricted.
type ComplaintFilter struct {
	WardNo      string
	City        string
	Category    string
	OfficerID   int64
	ComplaintID int64
}

// AddCommentRequest is the comment payload.
type AddCommentRequest struct {
	CommentText string `json:"comment_text" validate:"required"`
}

// AssignOfficerRequest binds a field officer to a complaint.
type AssignOfficerRequest struct {
	ComplaintID int64 `json:"complaint_id" validate:"required"`
	OfficerID   int64 `json:"officer_id" validate:"required"`
}

// CreateStaffRequest is the admin payload for creating officer/call-center staff.
type CreateStaffRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=field_officer call_center"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
	WardNo   string `json:"ward_no" validate:"required"`
}

// UpdateAccountRequest carries partial profile updates for any role.
// Nil fields are left untouched. Password, if present, is re-hashed before persisting.
type UpdateAccountRequest struct {
	ID       int64   `json:"id" validate:"required"`
	Role     string  `json:"role" validate:"required"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	City     *string `json:"city,omitempty"`
	State    *string `json:"state,omitempty"`
	WardNo   *string `json:"ward_no,omitempty"`
}

// UpvoteResponse reports the toggle outcome ("added" or "removed") and the new count.
type UpvoteResponse struct {
	Action  string `json:"action"`
	Upvotes int    `json:"upvotes"`
}
