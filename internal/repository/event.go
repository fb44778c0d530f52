package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Jairobuifranco/A2-Group17/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
)

const eventColumns = `id, owner_id, title, description, venue, starts_at, ends_at,
	general_price_cents, general_capacity, vip_price_cents, vip_capacity,
	status, created_at, updated_at, category`

type EventRepository struct {
	executor
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{executor{db: db, strategy: defaultStrategy()}}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*domain.Event, error) {
	var e domain.Event
	err := s.Scan(
		&e.ID, &e.OwnerID, &e.Title, &e.Description, &e.Venue, &e.StartsAt, &e.EndsAt,
		&e.General.PriceCents, &e.General.Capacity, &e.VIP.PriceCents, &e.VIP.Capacity,
		&e.Status, &e.CreatedAt, &e.UpdatedAt, &e.Category,
	)
	if err != nil {
		return nil, err
	}
	if !e.Status.Valid() {
		return nil, fmt.Errorf("unknown event status %q", e.Status)
	}
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.exec(
		ctx, query,
		e.ID, e.OwnerID, e.Title, e.Description, e.Venue, e.StartsAt, e.EndsAt,
		e.General.PriceCents, e.General.Capacity, e.VIP.PriceCents, e.VIP.Capacity,
		e.Status, e.CreatedAt, e.UpdatedAt, e.Category,
	)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return r.get(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
}

func (r *EventRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Event, error) {
	return r.get(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1 FOR UPDATE`, id)
}

func (r *EventRepository) get(ctx context.Context, query, id string) (*domain.Event, error) {
	row, err := r.queryRow(ctx, query, id)
	if err != nil {
		if nf := notFound(err, domain.ErrEventNotFound); nf != nil {
			return nil, nf
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if nf := notFound(err, domain.ErrEventNotFound); nf != nil {
			return nil, nf
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title = $2, description = $3, venue = $4, starts_at = $5, ends_at = $6,
			      general_price_cents = $7, general_capacity = $8,
			      vip_price_cents = $9, vip_capacity = $10,
			      status = $11, updated_at = $12, category = $13
			  WHERE id = $1`
	res, err := r.exec(
		ctx, query,
		e.ID, e.Title, e.Description, e.Venue, e.StartsAt, e.EndsAt,
		e.General.PriceCents, e.General.Capacity, e.VIP.PriceCents, e.VIP.Capacity,
		e.Status, e.UpdatedAt, e.Category,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	return expectOne(res, domain.ErrEventNotFound)
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id string, status domain.EventStatus) error {
	query := `UPDATE events SET status = $2, updated_at = now() WHERE id = $1`
	res, err := r.exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update event status: %w", err)
	}

	return expectOne(res, domain.ErrEventNotFound)
}

// List returns events matching f ordered by start time. Query is matched as a
// substring of title, venue, category or description.
func (r *EventRepository) List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error) {
	where := make([]string, 0, 2)
	args := make([]any, 0, 2)
	add := func(condFmt string, val any) {
		args = append(args, val)
		where = append(where, fmt.Sprintf(condFmt, len(args)))
	}

	if f.Query != "" {
		add(`(title ILIKE $%[1]d OR venue ILIKE $%[1]d OR category ILIKE $%[1]d OR description ILIKE $%[1]d)`,
			"%"+escapeLike(f.Query)+"%")
	}
	if f.Category != "" {
		add(`lower(category) = lower($%d)`, f.Category)
	}

	query := `SELECT ` + eventColumns + ` FROM events`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY starts_at ASC`

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// escapeLike makes LIKE wildcards in s match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// MarkExpired moves Open and Sold Out events that ended before now to
// Inactive and returns them.
func (r *EventRepository) MarkExpired(ctx context.Context, now time.Time) ([]*domain.Event, error) {
	query := `UPDATE events
			  SET status = $1, updated_at = $2
			  WHERE status = ANY($3)
			    AND COALESCE(ends_at, starts_at) < $2
			  RETURNING ` + eventColumns

	rows, err := r.query(
		ctx, query,
		domain.EventStatusInactive, now,
		pq.Array([]string{string(domain.EventStatusOpen), string(domain.EventStatusSoldOut)}),
	)
	if err != nil {
		return nil, fmt.Errorf("mark expired: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}
