package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promoted-ads/internal/core/domain"
	"promoted-ads/internal/core/port"
)

// ProductRepository implements port.ProductRepository using pgxpool.
type ProductRepository struct {
	pool *pgxpool.Pool
}

var _ port.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository returns a new repository instance.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const selectProduct = `SELECT id, title, price, category, serial_number FROM products`

// FindByIDs returns the existing products among ids ordered by id.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}
	rows, err := r.pool.Query(ctx, selectProduct+` WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	products, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	return products, nil
}

// Get returns a product by id.
func (r *ProductRepository) Get(ctx context.Context, id int64) (domain.Product, error) {
	rows, err := r.pool.Query(ctx, selectProduct+` WHERE id = $1`, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	p, err := pgx.CollectExactlyOneRow(rows, scanProduct)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, &domain.Error{
			Kind: domain.ErrNotFound,
			Msg:  fmt.Sprintf("product %d not found", id),
		}
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Create inserts p. A duplicate serial number yields ErrConflict.
func (r *ProductRepository) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO products (title, price, category, serial_number) VALUES ($1, $2, $3, $4) RETURNING id`,
		p.Title, p.Price.String(), string(p.Category), p.SerialNumber).Scan(&p.ID)
	if hasCode(err, uniqueViolation) {
		return domain.Product{}, &domain.Error{
			Kind: domain.ErrConflict,
			Msg:  fmt.Sprintf("product with serial number %q already exists", p.SerialNumber),
		}
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

func scanProduct(row pgx.CollectableRow) (domain.Product, error) {
	var (
		p        domain.Product
		category string
	)
	err := row.Scan(&p.ID, &p.Title, &p.Price, &category, &p.SerialNumber)
	p.Category = domain.Category(category)
	return p, err
}
