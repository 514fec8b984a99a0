package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	perrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ProductStore = (*PgStore)(nil)

// uniqueViolation is the SQLSTATE reported for a violated UNIQUE constraint.
const uniqueViolation = "23505"

const productColumns = "id, name, quantity, price, created_at, updated_at"

// PgStore implements ProductStore using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
}

// NewPgStore creates a new instance of ProductStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{db: dbp}
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) FindByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	row := p.db.QueryRow(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return product, nil
}

// FindByName retrieves a product by its exact name.
// Returns ErrProductNotFound if no product has that name.
func (p *PgStore) FindByName(ctx context.Context, name string) (*Product, error) {
	row := p.db.QueryRow(ctx, "SELECT "+productColumns+" FROM products WHERE name = $1", name)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by name: %w", err)
	}
	return product, nil
}

// SearchByName returns products whose name contains query, ignoring case.
// LIKE wildcards in query are matched literally.
func (p *PgStore) SearchByName(ctx context.Context, query string) ([]Product, error) {
	rows, err := p.db.Query(ctx,
		"SELECT "+productColumns+` FROM products WHERE name ILIKE '%' || $1 || '%' ESCAPE '\' ORDER BY name, id`,
		escapeLike(query))
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	products, err := collectProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

// FindPage returns one page of products ordered by name.
func (p *PgStore) FindPage(ctx context.Context, page, size int32) (*Page, error) {
	var total int64
	if err := p.db.QueryRow(ctx, "SELECT count(*) FROM products").Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	result := &Page{
		Items:      []Product{},
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages(total, size),
	}
	if page < 0 || size <= 0 {
		return result, nil
	}

	rows, err := p.db.Query(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY name, id LIMIT $1 OFFSET $2",
		size, int64(page)*int64(size))
	if err != nil {
		return nil, fmt.Errorf("failed to find products page: %w", err)
	}
	result.Items, err = collectProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to find products page: %w", err)
	}
	return result, nil
}

// FindAll retrieves all products.
// It returns a slice of products, which may be empty if no products exist.
func (p *PgStore) FindAll(ctx context.Context) ([]Product, error) {
	rows, err := p.db.Query(ctx, "SELECT "+productColumns+" FROM products ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("failed to find all products: %w", err)
	}
	products, err := collectProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to find all products: %w", err)
	}
	return products, nil
}

// Save inserts a new product when its ID is uuid.Nil, otherwise updates the existing row.
// Returns ErrDuplicateName on a unique violation and ErrProductNotFound if the row to update is gone.
func (p *PgStore) Save(ctx context.Context, product Product) (*Product, error) {
	var row pgx.Row
	if product.ID == uuid.Nil {
		row = p.db.QueryRow(ctx,
			"INSERT INTO products (name, quantity, price) VALUES ($1, $2, $3) RETURNING "+productColumns,
			product.Name, product.Quantity, product.Price)
	} else {
		row = p.db.QueryRow(ctx,
			"UPDATE products SET name = $2, quantity = $3, price = $4, updated_at = now() WHERE id = $1 RETURNING "+productColumns,
			product.ID, product.Name, product.Quantity, product.Price)
	}

	saved, err := scanProduct(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, perrors.ErrDuplicateName
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return saved, nil
}

// Delete removes a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := p.db.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete product by ID: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return perrors.ErrProductNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*Product, error) {
	var product Product
	if err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Quantity,
		&product.Price,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &product, nil
}

func collectProducts(rows pgx.Rows) ([]Product, error) {
	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Product, error) {
		p, err := scanProduct(row)
		if err != nil {
			return Product{}, err
		}
		return *p, nil
	})
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE metacharacters so query matches literally.
func escapeLike(query string) string {
	return likeEscaper.Replace(query)
}
