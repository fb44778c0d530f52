package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Jairobuifranco/A2-Group17/internal/clock"
	"github.com/Jairobuifranco/A2-Group17/internal/domain"
	"github.com/Jairobuifranco/A2-Group17/internal/service/ports"
	"github.com/google/uuid"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 32
)

type UserService struct {
	repo  ports.UserRepo
	clock clock.Clock
}

func NewUserService(repo ports.UserRepo, clk clock.Clock) *UserService {
	return &UserService{repo: repo, clock: clk}
}

// Create registers a user. Usernames are unique; the repository reports
// duplicates as domain.ErrUsernameTaken.
func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	username, err := normalizeUsername(input.Username)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Username:       username,
		Email:          strings.ToLower(strings.TrimSpace(input.Email)),
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      s.clock.Now(),
	}

	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func normalizeUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	if username == "" {
		return "", fmt.Errorf("%w: username is required", domain.ErrValidation)
	}

	n := utf8.RuneCountInString(username)
	if n < minUsernameLength || n > maxUsernameLength {
		return "", fmt.Errorf("%w: username must be %d to %d characters",
			domain.ErrValidation, minUsernameLength, maxUsernameLength)
	}

	if strings.IndexFunc(username, unicode.IsSpace) >= 0 {
		return "", fmt.Errorf("%w: username must not contain spaces", domain.ErrValidation)
	}

	return username, nil
}
