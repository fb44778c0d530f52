package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Jairobuifranco/A2-Group17/internal/clock"
	"github.com/Jairobuifranco/A2-Group17/internal/domain"
	"github.com/Jairobuifranco/A2-Group17/internal/service/ports"
	"github.com/google/uuid"
)

const maxCommentLength = 1000

type CommentService struct {
	repo      ports.CommentRepo
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
	clock     clock.Clock
}

func NewCommentService(repo ports.CommentRepo, eventRepo ports.EventRepo, userRepo ports.UserRepo, clk clock.Clock) *CommentService {
	return &CommentService{
		repo:      repo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		clock:     clk,
	}
}

func (s *CommentService) Add(ctx context.Context, eventID, userID, body string) (*domain.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("%w: comment body is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(body) > maxCommentLength {
		return nil, fmt.Errorf("%w: comment is longer than %d characters", domain.ErrValidation, maxCommentLength)
	}

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	c := &domain.Comment{
		ID:        uuid.New().String(),
		EventID:   eventID,
		UserID:    userID,
		Body:      body,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return c, nil
}

func (s *CommentService) List(ctx context.Context, eventID string) ([]*domain.Comment, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	return s.repo.ListByEvent(ctx, eventID)
}
