package service

import (
	"strings"

	"nagarseva/apperr"
	"nagarseva/models"
)

// EngagementService handles upvote toggles and comments.
type EngagementService struct {
	engagement EngagementStore
}

// NewEngagementService creates a new engagement service.
func NewEngagementService(engagement EngagementStore) *EngagementService {
	return &EngagementService{engagement: engagement}
}

// ToggleUpvote flips the citizen's upvote on the complaint and reports the
// outcome with the new counter value.
func (s *EngagementService) ToggleUpvote(userID, complaintID int64) (*models.UpvoteResponse, error) {
	action, upvotes, err := s.engagement.ToggleUpvote(userID, complaintID)
	if err != nil {
		return nil, err
	}
	return &models.UpvoteResponse{Action: action, Upvotes: upvotes}, nil
}

// AddComment records a comment on the complaint. Comments have no edit or
// delete; the adjacent total_comments counter moves with the insert.
func (s *EngagementService) AddComment(userID, complaintID int64, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperr.ErrValidation
	}

	comment := &models.Comment{
		UserID:      userID,
		ComplaintID: complaintID,
		CommentText: text,
	}
	if err := s.engagement.AddComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns all comments on a complaint, oldest first.
func (s *EngagementService) ListComments(complaintID int64) ([]models.Comment, error) {
	return s.engagement.ListComments(complaintID)
}
