package repository

import (
	"context"
	"fmt"

	"github.com/Jairobuifranco/A2-Group17/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

const userColumns = `id, username, email, telegram_chat_id, created_at`

type UserRepository struct {
	executor
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{executor{db: db, strategy: defaultStrategy()}}
}

func scanUser(s scanner) (*domain.User, error) {
	var u domain.User
	if err := s.Scan(&u.ID, &u.Username, &u.Email, &u.TelegramChatID, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a user. The unique index on username turns duplicates into
// domain.ErrUsernameTaken.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.exec(ctx, query, user.ID, user.Username, user.Email, user.TelegramChatID, user.CreatedAt)
	if err != nil {
		if pgCode(err) == codeUniqueViolation {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row, err := r.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		if nf := notFound(err, domain.ErrUserNotFound); nf != nil {
			return nil, nf
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	u, err := scanUser(row)
	if err != nil {
		if nf := notFound(err, domain.ErrUserNotFound); nf != nil {
			return nil, nf
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.query(ctx, `SELECT `+userColumns+` FROM users ORDER BY username ASC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, u)
	}

	return res, rows.Err()
}
