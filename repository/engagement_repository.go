package repository

import (
	"database/sql"
	"fmt"

	"nagarseva/apperr"
	"nagarseva/models"
)

// EngagementRepository maintains upvote and comment counters. Every mutation
// pairs the source-row change with the counter change in one transaction so
// the invariant counter == COUNT(rows) holds under concurrent requests.
type EngagementRepository struct {
	db *sql.DB
}

// NewEngagementRepository creates a new engagement repository
func NewEngagementRepository(db *sql.DB) *EngagementRepository {
	return &EngagementRepository{db: db}
}

// ToggleUpvote adds or removes the (userID, complaintID) upvote pair and
// adjusts the complaint's upvote counter by exactly one, atomically.
// Returns "added" or "removed" plus the new counter value. The complaint row
// is locked first, which serializes concurrent toggles from the same user;
// the unique key on (user_id, complaint_id) backstops double inserts.
func (r *EngagementRepository) ToggleUpvote(userID, complaintID int64) (string, int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return "", 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var upvotes int
	lock := `SELECT upvotes FROM complaints WHERE complaint_id = ? FOR UPDATE`
	err = tx.QueryRow(lock, complaintID).Scan(&upvotes)
	if err == sql.ErrNoRows {
		return "", 0, apperr.ErrNotFound
	}
	if err != nil {
		return "", 0, fmt.Errorf("failed to lock complaint: %w", err)
	}

	var upvoteID int64
	probe := `SELECT upvote_id FROM complaint_upvotes WHERE user_id = ? AND complaint_id = ? FOR UPDATE`
	err = tx.QueryRow(probe, userID, complaintID).Scan(&upvoteID)

	var action string
	switch {
	case err == sql.ErrNoRows:
		if _, err := tx.Exec(`INSERT INTO complaint_upvotes (user_id, complaint_id) VALUES (?, ?)`, userID, complaintID); err != nil {
			return "", 0, fmt.Errorf("failed to insert upvote: %w", err)
		}
		if _, err := tx.Exec(`UPDATE complaints SET upvotes = upvotes + 1 WHERE complaint_id = ?`, complaintID); err != nil {
			return "", 0, fmt.Errorf("failed to increment upvotes: %w", err)
		}
		action = "added"
		upvotes++
	case err != nil:
		return "", 0, fmt.Errorf("failed to check upvote: %w", err)
	default:
		if _, err := tx.Exec(`DELETE FROM complaint_upvotes WHERE upvote_id = ?`, upvoteID); err != nil {
			return "", 0, fmt.Errorf("failed to delete upvote: %w", err)
		}
		if _, err := tx.Exec(`UPDATE complaints SET upvotes = upvotes - 1 WHERE complaint_id = ?`, complaintID); err != nil {
			return "", 0, fmt.Errorf("failed to decrement upvotes: %w", err)
		}
		action = "removed"
		upvotes--
	}

	if err := tx.Commit(); err != nil {
		return "", 0, fmt.Errorf("failed to commit upvote toggle: %w", err)
	}
	return action, upvotes, nil
}

// AddComment inserts a comment row and increments the complaint's
// total_comments counter in the same transaction.
func (r *EngagementRepository) AddComment(comment *models.Comment) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var total int
	lock := `SELECT total_comments FROM complaints WHERE complaint_id = ? FOR UPDATE`
	err = tx.QueryRow(lock, comment.ComplaintID).Scan(&total)
	if err == sql.ErrNoRows {
		return apperr.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock complaint: %w", err)
	}

	insert := `
		INSERT INTO comments (user_id, complaint_id, comment_text, likes_count, views_count)
		VALUES (?, ?, ?, 0, 0)
	`
	result, err := tx.Exec(insert, comment.UserID, comment.ComplaintID, comment.CommentText)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	commentID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get comment ID: %w", err)
	}
	comment.CommentID = commentID

	if _, err := tx.Exec(`UPDATE complaints SET total_comments = total_comments + 1 WHERE complaint_id = ?`, comment.ComplaintID); err != nil {
		return fmt.Errorf("failed to increment comment count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit comment: %w", err)
	}
	return nil
}

// ListComments retrieves all comments on a complaint, oldest first.
func (r *EngagementRepository) ListComments(complaintID int64) ([]models.Comment, error) {
	query := `
		SELECT comment_id, user_id, complaint_id, comment_text, likes_count, views_count, created_at
		FROM comments
		WHERE complaint_id = ?
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(query, complaintID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		err := rows.Scan(
			&c.CommentID,
			&c.UserID,
			&c.ComplaintID,
			&c.CommentText,
			&c.LikesCount,
			&c.ViewsCount,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}
