package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ordertrack/internal/domain"
	"github.com/GlebRadaev/ordertrack/internal/pg"
)

const orderColumns = "id, address, description, price, status, assignee, paid, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) List(ctx context.Context) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return order, nil
}

// Create inserts a row and reads it back so that storage defaults
// (status, assignee, paid, created_at) are reflected in the result.
func (r *Repository) Create(ctx context.Context, address, description string, price int64) (*domain.Order, error) {
	query := `
        INSERT INTO orders (address, description, price)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	var id int64
	if err := r.db.QueryRow(ctx, query, address, description, price).Scan(&id); err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *Repository) Take(ctx context.Context, id int64, assignee string) error {
	query := `
        UPDATE orders
        SET assignee = $1, status = $2
        WHERE id = $3
    `
	return r.update(ctx, "take", id, query, assignee, domain.OrderStatusInProgress, id)
}

func (r *Repository) Complete(ctx context.Context, id int64) error {
	return r.SetStatus(ctx, id, domain.OrderStatusDone)
}

func (r *Repository) SetStatus(ctx context.Context, id int64, status string) error {
	query := `
        UPDATE orders
        SET status = $1
        WHERE id = $2
    `
	return r.update(ctx, "set status", id, query, status, id)
}

func (r *Repository) MarkPaid(ctx context.Context, id int64) error {
	query := `
        UPDATE orders
        SET paid = TRUE
        WHERE id = $1
    `
	return r.update(ctx, "mark paid", id, query, id)
}

func (r *Repository) update(ctx context.Context, op string, id int64, query string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to update order", zap.String("op", op), zap.Int64("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	return nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		order    domain.Order
		assignee pgtype.Text
	)
	err := row.Scan(&order.ID, &order.Address, &order.Description, &order.Price, &order.Status, &assignee, &order.Paid, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	if assignee.Valid {
		order.Assignee = &assignee.String
	}
	return &order, nil
}
