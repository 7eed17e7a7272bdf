package repository

import (
	"context"
	"database/sql"

	"github.com/shopstock/shopstock-go/internal/model"
)

// ProductRepository handles product persistence.
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List retrieves all products ordered by id.
func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `SELECT id, name, quantity, created_at, updated_at FROM products ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Quantity, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// Create inserts a product and sets the generated ID on the struct.
func (r *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO products (name, quantity) VALUES (?, ?)`,
		product.Name, product.Quantity,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	product.ID = id
	return nil
}

// Update overwrites a product's name and quantity.
func (r *ProductRepository) Update(ctx context.Context, id int64, name string, quantity int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE products SET name = ?, quantity = ? WHERE id = ?`,
		name, quantity, id,
	)
	return err
}

// Delete removes a product. Deleting an absent id is not an error; the
// operation is idempotent.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	return err
}
