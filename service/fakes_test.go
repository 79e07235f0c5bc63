package service

import (
	"database/sql"

	"nagarseva/apperr"
	"nagarseva/models"
)

// In-memory store fakes for exercising service rules without a database.

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User), nextID: 1}
}

func (f *fakeUserStore) Create(user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return apperr.ErrEmailInUse
		}
	}
	user.UserID = f.nextID
	f.nextID++
	copied := *user
	f.users[user.UserID] = &copied
	return nil
}

func (f *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeUserStore) GetByID(userID int64) (*models.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) Update(user *models.User) error {
	if _, ok := f.users[user.UserID]; !ok {
		return apperr.ErrNotFound
	}
	for id, existing := range f.users {
		if id != user.UserID && existing.Email == user.Email {
			return apperr.ErrEmailInUse
		}
	}
	copied := *user
	f.users[user.UserID] = &copied
	return nil
}

type fakeOfficerStore struct {
	officers map[int64]*models.Officer
	nextID   int64
}

func newFakeOfficerStore() *fakeOfficerStore {
	return &fakeOfficerStore{officers: make(map[int64]*models.Officer), nextID: 1}
}

func (f *fakeOfficerStore) Create(officer *models.Officer) error {
	for _, existing := range f.officers {
		if existing.Email == officer.Email {
			return apperr.ErrEmailInUse
		}
	}
	officer.OfficerID = f.nextID
	f.nextID++
	copied := *officer
	f.officers[officer.OfficerID] = &copied
	return nil
}

func (f *fakeOfficerStore) GetByEmail(email string) (*models.Officer, error) {
	for _, officer := range f.officers {
		if officer.Email == email {
			copied := *officer
			return &copied, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeOfficerStore) GetByID(officerID int64) (*models.Officer, error) {
	officer, ok := f.officers[officerID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	copied := *officer
	return &copied, nil
}

func (f *fakeOfficerStore) Update(officer *models.Officer) error {
	if _, ok := f.officers[officer.OfficerID]; !ok {
		return apperr.ErrNotFound
	}
	copied := *officer
	f.officers[officer.OfficerID] = &copied
	return nil
}

func (f *fakeOfficerStore) Delete(officerID int64) error {
	if _, ok := f.officers[officerID]; !ok {
		return apperr.ErrNotFound
	}
	delete(f.officers, officerID)
	return nil
}

type fakeAdminStore struct {
	admins map[int64]*models.Admin
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[int64]*models.Admin)}
}

func (f *fakeAdminStore) GetByEmail(email string) (*models.Admin, error) {
	for _, admin := range f.admins {
		if admin.Email == email {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeAdminStore) GetByID(adminID int64) (*models.Admin, error) {
	admin, ok := f.admins[adminID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	copied := *admin
	return &copied, nil
}

func (f *fakeAdminStore) Update(admin *models.Admin) error {
	if _, ok := f.admins[admin.AdminID]; !ok {
		return apperr.ErrNotFound
	}
	copied := *admin
	f.admins[admin.AdminID] = &copied
	return nil
}

type fakeComplaintStore struct {
	complaints map[int64]*models.Complaint
	history    map[int64][]models.ComplaintStatusHistory
	nextID     int64
}

func newFakeComplaintStore() *fakeComplaintStore {
	return &fakeComplaintStore{
		complaints: make(map[int64]*models.Complaint),
		history:    make(map[int64][]models.ComplaintStatusHistory),
		nextID:     1,
	}
}

func (f *fakeComplaintStore) Create(complaint *models.Complaint) error {
	for _, existing := range f.complaints {
		if !existing.CurrentStatus.IsTerminal() &&
			existing.Category == complaint.Category &&
			existing.Location == complaint.Location &&
			existing.WardNo == complaint.WardNo &&
			existing.City == complaint.City {
			return apperr.ErrDuplicateComplaint
		}
	}
	complaint.ComplaintID = f.nextID
	complaint.CurrentStatus = models.StatusPending
	f.nextID++
	copied := *complaint
	f.complaints[complaint.ComplaintID] = &copied
	return nil
}

func (f *fakeComplaintStore) GetByID(complaintID int64) (*models.Complaint, error) {
	complaint, ok := f.complaints[complaintID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	copied := *complaint
	return &copied, nil
}

func (f *fakeComplaintStore) IncrementViews(complaintID int64) error {
	if complaint, ok := f.complaints[complaintID]; ok {
		complaint.Views++
	}
	return nil
}

func (f *fakeComplaintStore) List(filter models.ComplaintFilter) ([]models.Complaint, error) {
	var out []models.Complaint
	for _, c := range f.complaints {
		if filter.WardNo != "" && c.WardNo != filter.WardNo {
			continue
		}
		if filter.City != "" && c.City != filter.City {
			continue
		}
		if filter.Category != "" && c.Category != filter.Category {
			continue
		}
		if filter.OfficerID != 0 && (!c.FieldOfficerID.Valid || c.FieldOfficerID.Int64 != filter.OfficerID) {
			continue
		}
		if filter.ComplaintID != 0 && c.ComplaintID != filter.ComplaintID {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeComplaintStore) UpdateStatus(complaintID, officerID int64, newStatus models.ComplaintStatus, proofImage *string) (*models.Complaint, error) {
	complaint, ok := f.complaints[complaintID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	if !complaint.FieldOfficerID.Valid || complaint.FieldOfficerID.Int64 != officerID {
		return nil, apperr.ErrForbidden
	}
	if !complaint.CurrentStatus.CanTransitionTo(newStatus) {
		return nil, apperr.ErrValidation
	}
	if newStatus == models.StatusResolved && (proofImage == nil || *proofImage == "") {
		return nil, apperr.ErrValidation
	}
	complaint.CurrentStatus = newStatus
	if proofImage != nil && *proofImage != "" {
		complaint.ProofImage = sql.NullString{String: *proofImage, Valid: true}
	}
	copied := *complaint
	return &copied, nil
}

func (f *fakeComplaintStore) Assign(complaintID, officerID, adminID int64) error {
	complaint, ok := f.complaints[complaintID]
	if !ok {
		return apperr.ErrNotFound
	}
	if complaint.FieldOfficerID.Valid {
		return apperr.ErrAlreadyAssigned
	}
	complaint.FieldOfficerID = sql.NullInt64{Int64: officerID, Valid: true}
	return nil
}

func (f *fakeComplaintStore) GetStatusHistory(complaintID int64) ([]models.ComplaintStatusHistory, error) {
	return f.history[complaintID], nil
}

type upvotePair struct {
	userID, complaintID int64
}

type fakeEngagementStore struct {
	complaints *fakeComplaintStore
	upvotes    map[upvotePair]bool
	comments   map[int64][]models.Comment
	nextID     int64
}

func newFakeEngagementStore(complaints *fakeComplaintStore) *fakeEngagementStore {
	return &fakeEngagementStore{
		complaints: complaints,
		upvotes:    make(map[upvotePair]bool),
		comments:   make(map[int64][]models.Comment),
		nextID:     1,
	}
}

func (f *fakeEngagementStore) ToggleUpvote(userID, complaintID int64) (string, int, error) {
	complaint, ok := f.complaints.complaints[complaintID]
	if !ok {
		return "", 0, apperr.ErrNotFound
	}
	pair := upvotePair{userID, complaintID}
	if f.upvotes[pair] {
		delete(f.upvotes, pair)
		complaint.Upvotes--
		return "removed", complaint.Upvotes, nil
	}
	f.upvotes[pair] = true
	complaint.Upvotes++
	return "added", complaint.Upvotes, nil
}

func (f *fakeEngagementStore) AddComment(comment *models.Comment) error {
	complaint, ok := f.complaints.complaints[comment.ComplaintID]
	if !ok {
		return apperr.ErrNotFound
	}
	comment.CommentID = f.nextID
	f.nextID++
	f.comments[comment.ComplaintID] = append(f.comments[comment.ComplaintID], *comment)
	complaint.TotalComments++
	return nil
}

func (f *fakeEngagementStore) ListComments(complaintID int64) ([]models.Comment, error) {
	return f.comments[complaintID], nil
}
