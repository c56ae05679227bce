package clients

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendio/vendio/internal/platform/db"
)

// ErrNotFound is returned when a client id matches no row.
var ErrNotFound = errors.New("client not found")

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository interface {
	List(ctx context.Context) ([]Client, error)
	Get(ctx context.Context, id int64) (Client, error)
	Create(ctx context.Context, client Client) (Client, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

func (r *repository) List(ctx context.Context) ([]Client, error) {
	query, args, err := psql.Select("id", "name", "email", "created_at", "updated_at").
		From("tb_client").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Client, error) {
	const query = `SELECT id, name, email, created_at, updated_at FROM tb_client WHERE id = $1`
	c, err := scanClient(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Client{}, ErrNotFound
		}
		return Client{}, err
	}
	return c, nil
}

func (r *repository) Create(ctx context.Context, client Client) (Client, error) {
	const query = `INSERT INTO tb_client (name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $3) RETURNING id`
	now := time.Now()
	email := pgtype.Text{}
	if client.Email != nil {
		email = pgtype.Text{String: *client.Email, Valid: true}
	}
	if err := r.db.QueryRow(ctx, query, client.Name, email, now).Scan(&client.ID); err != nil {
		return Client{}, db.MapError(err)
	}
	client.CreatedAt = now
	client.UpdatedAt = now
	return client, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (Client, error) {
	var c Client
	var email pgtype.Text
	if err := row.Scan(&c.ID, &c.Name, &email, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return Client{}, err
	}
	if email.Valid {
		c.Email = &email.String
	}
	return c, nil
}
