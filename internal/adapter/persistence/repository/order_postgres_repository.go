package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"tracker_orders/internal/domain/entities"
	"tracker_orders/internal/usecase/interfaces"

	"github.com/lib/pq"
)

const pgUniqueViolation = "23505"

// OrderPostgresRepository stores each order as a JSONB record next to the
// columns it is looked up by. version holds UpdatedAt in unix nanoseconds so
// the optimistic check does not depend on timestamp column precision.
type OrderPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IOrderRepository = (*OrderPostgresRepository)(nil)

func NewOrderPostgresRepository(ctx context.Context, db *sql.DB) (*OrderPostgresRepository, error) {
	r := &OrderPostgresRepository{db: db}
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *OrderPostgresRepository) init(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		pseudonymous_id TEXT UNIQUE,
		status TEXT NOT NULL,
		record JSONB NOT NULL,
		version BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);`)
	return err
}

func (r *OrderPostgresRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	record, err := json.Marshal(o)
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO orders (id,username,pseudonymous_id,status,record,version,created_at,updated_at)
		VALUES ($1,$2,NULLIF($3,''),$4,$5,$6,$7,$8)`,
		o.ID, o.Username, o.PseudonymousID, string(o.Status), record, o.UpdatedAt.UnixNano(), o.CreatedAt, o.UpdatedAt)
	if isUniqueViolation(err) {
		return entities.Order{}, interfaces.ErrOrderAlreadyExists
	}
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderPostgresRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	return r.getOne(ctx, `SELECT record FROM orders WHERE id=$1`, id)
}

func (r *OrderPostgresRepository) GetByUsername(ctx context.Context, username string) (entities.Order, error) {
	return r.getOne(ctx, `SELECT record FROM orders WHERE username=$1`, username)
}

func (r *OrderPostgresRepository) GetByPseudonymousID(ctx context.Context, pseudonymousID string) (entities.Order, error) {
	return r.getOne(ctx, `SELECT record FROM orders WHERE pseudonymous_id=$1`, pseudonymousID)
}

func (r *OrderPostgresRepository) Update(ctx context.Context, o entities.Order, expectedUpdatedAt time.Time) (entities.Order, error) {
	record, err := json.Marshal(o)
	if err != nil {
		return entities.Order{}, err
	}

	res, err := r.db.ExecContext(ctx, `UPDATE orders SET status=$2, record=$3, version=$4, updated_at=$5
		WHERE id=$1 AND version=$6`,
		o.ID, string(o.Status), record, o.UpdatedAt.UnixNano(), o.UpdatedAt, expectedUpdatedAt.UnixNano())
	if err != nil {
		return entities.Order{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entities.Order{}, err
	}
	if n == 0 {
		return entities.Order{}, interfaces.ErrOrderVersionConflict
	}
	return o, nil
}

func (r *OrderPostgresRepository) getOne(ctx context.Context, query string, arg string) (entities.Order, error) {
	var record []byte
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, nil
	}
	if err != nil {
		return entities.Order{}, err
	}
	return decodeRecord(record)
}

func decodeRecord(record []byte) (entities.Order, error) {
	var o entities.Order
	if err := json.Unmarshal(record, &o); err != nil {
		return entities.Order{}, err
	}
	o.CreatedAt = o.CreatedAt.UTC()
	o.UpdatedAt = o.UpdatedAt.UTC()
	return o, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}
