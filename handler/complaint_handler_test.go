package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nagarseva/apperr"
	"nagarseva/models"
	"nagarseva/service"
)

// stubComplaintStore records List filters and serves canned complaints.
type stubComplaintStore struct {
	lastFilter models.ComplaintFilter
	complaints []models.Complaint
	getErr     error
	views      map[int64]int
}

func (s *stubComplaintStore) Create(complaint *models.Complaint) error { return nil }

func (s *stubComplaintStore) GetByID(complaintID int64) (*models.Complaint, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	for i := range s.complaints {
		if s.complaints[i].ComplaintID == complaintID {
			c := s.complaints[i]
			return &c, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (s *stubComplaintStore) IncrementViews(complaintID int64) error {
	if s.views == nil {
		s.views = make(map[int64]int)
	}
	s.views[complaintID]++
	return nil
}

func (s *stubComplaintStore) List(filter models.ComplaintFilter) ([]models.Complaint, error) {
	s.lastFilter = filter
	return s.complaints, nil
}

func (s *stubComplaintStore) UpdateStatus(complaintID, officerID int64, newStatus models.ComplaintStatus, proofImage *string) (*models.Complaint, error) {
	return nil, apperr.ErrForbidden
}

func (s *stubComplaintStore) Assign(complaintID, officerID, adminID int64) error { return nil }

func (s *stubComplaintStore) GetStatusHistory(complaintID int64) ([]models.ComplaintStatusHistory, error) {
	return nil, nil
}

func newComplaintTestHandler(store *stubComplaintStore) *ComplaintHandler {
	return NewComplaintHandler(service.NewComplaintService(store), "uploads")
}

func TestList_ParsesQueryFilters(t *testing.T) {
	store := &stubComplaintStore{}
	h := newComplaintTestHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/api/complaints?ward=5&city=Pune&category=Pothole&officer=3", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ComplaintFilter{WardNo: "5", City: "Pune", Category: "Pothole", OfficerID: 3}, store.lastFilter)
}

func TestList_InvalidOfficerFilter(t *testing.T) {
	h := newComplaintTestHandler(&stubComplaintStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/complaints?officer=abc", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestList_EmptyResultIsEmptyArray(t *testing.T) {
	h := newComplaintTestHandler(&stubComplaintStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/complaints", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestGet_BumpsViewsAndReturnsComplaint(t *testing.T) {
	store := &stubComplaintStore{
		complaints: []models.Complaint{{ComplaintID: 1, Category: "Pothole", CurrentStatus: models.StatusPending}},
	}
	h := newComplaintTestHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/api/complaint/1", nil)
	req = mux.SetURLVars(req, map[string]string{"complaint_id": "1"})
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, store.views[1])

	var got models.Complaint
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, int64(1), got.ComplaintID)
}

func TestGet_InvalidID(t *testing.T) {
	h := newComplaintTestHandler(&stubComplaintStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/complaint/abc", nil)
	req = mux.SetURLVars(req, map[string]string{"complaint_id": "abc"})
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGet_MissingComplaint(t *testing.T) {
	h := newComplaintTestHandler(&stubComplaintStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/complaint/42", nil)
	req = mux.SetURLVars(req, map[string]string{"complaint_id": "42"})
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateStatus_RequiresAuthenticatedPrincipal(t *testing.T) {
	h := newComplaintTestHandler(&stubComplaintStore{})

	req := httptest.NewRequest(http.MethodPut, "/api/complaints/1/status", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
