package ports

import (
	"context"

	"github.com/Jairobuifranco/A2-Group17/internal/domain"
)

type CommentRepo interface {
	Create(ctx context.Context, c *domain.Comment) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Comment, error)
}
