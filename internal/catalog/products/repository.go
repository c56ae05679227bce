package products

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendio/vendio/internal/platform/db"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository interface {
	List(ctx context.Context, req ListProductsRequest) ([]Product, error)
	Create(ctx context.Context, product Product) (Product, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

func (r *repository) List(ctx context.Context, req ListProductsRequest) ([]Product, error) {
	q := psql.Select("id", "name", "price", "description", "created_at", "updated_at", "deleted_at").
		From("tb_products").
		OrderBy("id")
	if !req.IncludeDeleted {
		q = q.Where(sq.Eq{"deleted_at": nil})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *repository) Create(ctx context.Context, product Product) (Product, error) {
	const query = `INSERT INTO tb_products (name, price, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4) RETURNING id`
	now := time.Now()
	err := r.db.QueryRow(ctx, query, product.Name, product.Price, product.Description, now).Scan(&product.ID)
	if err != nil {
		return Product{}, db.MapError(err)
	}
	product.CreatedAt = now
	product.UpdatedAt = now
	return product, nil
}
