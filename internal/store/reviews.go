package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"boatdash/internal/model"
)

// ReviewRepo handles boat reviews.
type ReviewRepo struct {
	db *sql.DB
}

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{db: db} }

// ListForBoat returns all reviews for one boat, newest first.
func (r *ReviewRepo) ListForBoat(ctx context.Context, boatID string) ([]model.BoatReview, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, boat_id, name, comment, rating, created_at
	FROM boat_reviews WHERE boat_id = ? ORDER BY created_at DESC, id`, boatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.BoatReview
	for rows.Next() {
		var rv model.BoatReview
		if err := rows.Scan(&rv.ID, &rv.BoatID, &rv.Name, &rv.Comment, &rv.Rating, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

// Create inserts a review for its boat and returns the stored record.
func (r *ReviewRepo) Create(ctx context.Context, review model.BoatReview) (model.BoatReview, error) {
	if review.BoatID == "" {
		return model.BoatReview{}, fmt.Errorf("review requires a boat id")
	}
	if review.Rating < 0 || review.Rating > 5 {
		return model.BoatReview{}, fmt.Errorf("rating %d outside 0..5", review.Rating)
	}
	review.ID = uuid.NewString()
	review.CreatedAt = Now()

	_, err := r.db.ExecContext(ctx, `
	INSERT INTO boat_reviews(id, boat_id, name, comment, rating, created_at)
	VALUES(?, ?, ?, ?, ?, ?)`,
		review.ID, review.BoatID, review.Name, review.Comment, review.Rating, review.CreatedAt)
	if err != nil {
		return model.BoatReview{}, err
	}
	return review, nil
}
