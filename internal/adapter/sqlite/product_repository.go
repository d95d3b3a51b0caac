package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	sqlite3lib "modernc.org/sqlite/lib"

	"promoted-ads/internal/core/domain"
	"promoted-ads/internal/core/port"
)

// ProductRepository implements port.ProductRepository on SQLite.
type ProductRepository struct {
	db *sqlx.DB
}

var _ port.ProductRepository = (*ProductRepository)(nil)

func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindByIDs returns the existing products among ids ordered by id.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}
	query, args, err := sqlx.In(`
		SELECT id, title, price, category, serial_number
		FROM products
		WHERE id IN (?)
		ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}

	var rows []productRow
	if err = r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ProductRepository) Get(ctx context.Context, id int64) (domain.Product, error) {
	var row productRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, title, price, category, serial_number FROM products WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, &domain.Error{
			Kind: domain.ErrNotFound,
			Msg:  fmt.Sprintf("product %d not found", id),
		}
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	return row.toDomain(), nil
}

// Create inserts p. A duplicate serial number yields ErrConflict.
func (r *ProductRepository) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO products (title, price, category, serial_number) VALUES (?, ?, ?, ?)`,
		p.Title, p.Price, string(p.Category), p.SerialNumber)
	if isConstraint(err, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE) {
		return domain.Product{}, &domain.Error{
			Kind: domain.ErrConflict,
			Msg:  fmt.Sprintf("product with serial number %q already exists", p.SerialNumber),
		}
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("insert product: %w", err)
	}
	if p.ID, err = res.LastInsertId(); err != nil {
		return domain.Product{}, fmt.Errorf("product id: %w", err)
	}
	return p, nil
}
