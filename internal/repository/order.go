package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Jairobuifranco/A2-Group17/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
)

const orderColumns = `id, event_id, user_id, tier, quantity, unit_price_cents, active, created_at, cancelled_at`

type OrderRepository struct {
	executor
}

func NewOrderRepo(db *dbpg.DB) *OrderRepository {
	return &OrderRepository{executor{db: db, strategy: defaultStrategy()}}
}

func scanOrder(s scanner) (*domain.Order, error) {
	var o domain.Order
	if err := s.Scan(
		&o.ID, &o.EventID, &o.UserID, &o.Tier, &o.Quantity,
		&o.UnitPriceCents, &o.Active, &o.CreatedAt, &o.CancelledAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	query := `INSERT INTO orders (` + orderColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.exec(
		ctx, query,
		o.ID, o.EventID, o.UserID, o.Tier, o.Quantity,
		o.UnitPriceCents, o.Active, o.CreatedAt, o.CancelledAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	row, err := r.queryRow(ctx, query, id)
	if err != nil {
		if nf := notFound(err, domain.ErrOrderNotFound); nf != nil {
			return nil, nf
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	o, err := scanOrder(row)
	if err != nil {
		if nf := notFound(err, domain.ErrOrderNotFound); nf != nil {
			return nil, nf
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}

	return o, nil
}

// Deactivate only touches an order that is still active, so a second cancel
// reports false and releases nothing.
func (r *OrderRepository) Deactivate(ctx context.Context, id string, at time.Time) (bool, error) {
	query := `UPDATE orders SET active = FALSE, cancelled_at = $2
			  WHERE id = $1 AND active`
	res, err := r.exec(ctx, query, id, at)
	if err != nil {
		return false, fmt.Errorf("deactivate order: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("order rows affected: %w", err)
	}

	return n > 0, nil
}

func (r *OrderRepository) SumActive(ctx context.Context, eventID string, tier domain.Tier) (int, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM orders
			  WHERE event_id = $1 AND tier = $2 AND active`

	row, err := r.queryRow(ctx, query, eventID, tier)
	if err != nil {
		return 0, fmt.Errorf("sum active orders: %w", err)
	}

	var total int
	if err = row.Scan(&total); err != nil {
		return 0, fmt.Errorf("scan sum: %w", err)
	}

	return total, nil
}

func (r *OrderRepository) SumActiveByTier(ctx context.Context, eventID string) (domain.TierCounts, error) {
	sums, err := r.SumActiveByEvents(ctx, []string{eventID})
	if err != nil {
		return domain.TierCounts{}, err
	}
	return sums[eventID], nil
}

// SumActiveByEvents returns per-tier sold counts for every id. Events without
// active orders map to zero counts.
func (r *OrderRepository) SumActiveByEvents(ctx context.Context, eventIDs []string) (map[string]domain.TierCounts, error) {
	res := make(map[string]domain.TierCounts, len(eventIDs))
	if len(eventIDs) == 0 {
		return res, nil
	}

	query := `SELECT event_id, tier, SUM(quantity) FROM orders
			  WHERE event_id = ANY($1) AND active
			  GROUP BY event_id, tier`

	rows, err := r.query(ctx, query, pq.Array(eventIDs))
	if err != nil {
		return nil, fmt.Errorf("sum active orders by event: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			eventID string
			tier    domain.Tier
			sum     int
		)
		if err = rows.Scan(&eventID, &tier, &sum); err != nil {
			return nil, fmt.Errorf("scan sum: %w", err)
		}

		counts := res[eventID]
		if err = counts.Add(tier, sum); err != nil {
			return nil, fmt.Errorf("event %s: %w", eventID, err)
		}
		res[eventID] = counts
	}

	return res, rows.Err()
}

func (r *OrderRepository) ListActiveByEvent(ctx context.Context, eventID string) ([]*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
			  WHERE event_id = $1 AND active
			  ORDER BY created_at ASC`
	return r.list(ctx, query, eventID)
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
			  WHERE user_id = $1
			  ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *OrderRepository) list(ctx context.Context, query, id string) ([]*domain.Order, error) {
	rows, err := r.query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var res []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		res = append(res, o)
	}

	return res, rows.Err()
}
