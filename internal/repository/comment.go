package repository

import (
	"context"
	"fmt"

	"github.com/Jairobuifranco/A2-Group17/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

type CommentRepository struct {
	executor
}

func NewCommentRepo(db *dbpg.DB) *CommentRepository {
	return &CommentRepository{executor{db: db, strategy: defaultStrategy()}}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `INSERT INTO comments (id, event_id, user_id, body, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.exec(ctx, query, c.ID, c.EventID, c.UserID, c.Body, c.CreatedAt); err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Comment, error) {
	query := `SELECT id, event_id, user_id, body, created_at
			  FROM comments
			  WHERE event_id = $1
			  ORDER BY created_at ASC`

	rows, err := r.query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var res []*domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err = rows.Scan(&c.ID, &c.EventID, &c.UserID, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}
