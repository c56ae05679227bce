package orders

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendio/vendio/internal/platform/db"
)

// ErrNotFound is returned when a sale id matches no row.
var ErrNotFound = errors.New("sale not found")

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository interface {
	WithTx(ctx context.Context, fn func(context.Context, Repository) error) error
	ListRows(ctx context.Context, req ListSalesRequest) ([]SaleRow, error)
	RowsBySale(ctx context.Context, saleID int64) ([]SaleRow, error)
	GetSale(ctx context.Context, id int64) (Sale, error)
	InsertSale(ctx context.Context, clientID int64) (Sale, error)
	InsertLineItems(ctx context.Context, saleID int64, items []LineItem) error
	SoftDeleteSale(ctx context.Context, id int64) error
	ClientExists(ctx context.Context, clientID int64) (bool, error)
	ProductExists(ctx context.Context, productID int64) (bool, error)
}

type dbtx interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

type repository struct {
	db   dbtx
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool, pool: pool}
}

func (r *repository) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &repository{db: tx, pool: r.pool})
	})
}

func (r *repository) selectRows() sq.SelectBuilder {
	return psql.Select(
		"s.id", "s.tb_client_id", "c.name AS client_name",
		"p.name AS product_name", "i.price", "i.quantity", "s.deleted_at").
		From("tb_sales s").
		Join("tb_client c ON c.id = s.tb_client_id").
		Join("tb_sale_items i ON i.sale_id = s.id").
		Join("tb_products p ON p.id = i.tb_product_id").
		OrderBy("s.id", "i.id")
}

func (r *repository) queryRows(ctx context.Context, q sq.SelectBuilder) ([]SaleRow, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []SaleRow
	for rows.Next() {
		var row SaleRow
		if err := rows.Scan(&row.SaleID, &row.ClientID, &row.ClientName,
			&row.ProductName, &row.Price, &row.Quantity, &row.DeletedAt); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *repository) ListRows(ctx context.Context, req ListSalesRequest) ([]SaleRow, error) {
	q := r.selectRows()
	if !req.IncludeCancelled {
		q = q.Where(sq.Eq{"s.deleted_at": nil})
	}
	if req.ClientID != nil {
		q = q.Where(sq.Eq{"s.tb_client_id": *req.ClientID})
	}
	return r.queryRows(ctx, q)
}

// RowsBySale includes cancelled sales so a soft-deleted order stays
// retrievable by id with its status surfaced.
func (r *repository) RowsBySale(ctx context.Context, saleID int64) ([]SaleRow, error) {
	return r.queryRows(ctx, r.selectRows().Where(sq.Eq{"s.id": saleID}))
}

func (r *repository) GetSale(ctx context.Context, id int64) (Sale, error) {
	const query = `SELECT id, tb_client_id, created_at, updated_at, deleted_at
		FROM tb_sales WHERE id = $1`
	var s Sale
	err := r.db.QueryRow(ctx, query, id).
		Scan(&s.ID, &s.ClientID, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Sale{}, ErrNotFound
		}
		return Sale{}, err
	}
	return s, nil
}

func (r *repository) InsertSale(ctx context.Context, clientID int64) (Sale, error) {
	const query = `INSERT INTO tb_sales (tb_client_id, created_at, updated_at)
		VALUES ($1, $2, $2) RETURNING id`
	now := time.Now()
	s := Sale{ClientID: clientID, CreatedAt: now, UpdatedAt: now}
	if err := r.db.QueryRow(ctx, query, clientID, now).Scan(&s.ID); err != nil {
		return Sale{}, db.MapError(err)
	}
	return s, nil
}

func (r *repository) InsertLineItems(ctx context.Context, saleID int64, items []LineItem) error {
	q := psql.Insert("tb_sale_items").Columns("sale_id", "tb_product_id", "price", "quantity")
	for _, it := range items {
		q = q.Values(saleID, it.ProductID, it.Price, it.Quantity)
	}
	query, args, err := q.ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return db.MapError(err)
	}
	return nil
}

// SoftDeleteSale marks the sale cancelled. A second call on an already
// cancelled sale is a no-op.
func (r *repository) SoftDeleteSale(ctx context.Context, id int64) error {
	const query = `UPDATE tb_sales SET deleted_at = $2, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.Exec(ctx, query, id, time.Now())
	return err
}

func (r *repository) ClientExists(ctx context.Context, clientID int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM tb_client WHERE id = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, clientID).Scan(&exists)
	return exists, err
}

func (r *repository) ProductExists(ctx context.Context, productID int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM tb_products WHERE id = $1 AND deleted_at IS NULL)`
	var exists bool
	err := r.db.QueryRow(ctx, query, productID).Scan(&exists)
	return exists, err
}
