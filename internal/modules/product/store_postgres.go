package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/eskrenkovic/tql"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// PostgresStore persists the catalog in a product table. Ids come from
// the table's sequence, creation timestamps from the database clock.
type PostgresStore struct {
	db *sqlx.DB
}

var _ ProductStore = (*PostgresStore)(nil)

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db}
}

func (s *PostgresStore) GetByID(ctx context.Context, id int) (Product, error) {
	const query = `
		SELECT *
		FROM product
		WHERE id = $1;`

	p, err := tql.QueryFirst[Product](ctx, s.db.DB, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrProductNotFound
	}
	if err != nil {
		return Product{}, errors.Wrap(err, "query product by id")
	}

	return p, nil
}

func (s *PostgresStore) GetAll(ctx context.Context) ([]Product, error) {
	const query = `
		SELECT *
		FROM product
		ORDER BY id ASC;`

	return tql.Query[Product](ctx, s.db.DB, query)
}

func (s *PostgresStore) GetFiltered(ctx context.Context, filter ProductFilter, page Page) ([]Product, error) {
	where, args := filterClause(filter)

	query := fmt.Sprintf(`
		SELECT *
		FROM product
		%s
		ORDER BY id ASC
		LIMIT $%d OFFSET $%d;`,
		where, len(args)+1, len(args)+2)
	args = append(args, page.Size, page.Offset())

	return tql.Query[Product](ctx, s.db.DB, query, args...)
}

func (s *PostgresStore) Count(ctx context.Context, filter ProductFilter) (int, error) {
	where, args := filterClause(filter)

	query := fmt.Sprintf(`
		SELECT count(*)
		FROM product
		%s;`, where)

	count, err := tql.QueryFirst[int](ctx, s.db.DB, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "count products")
	}

	return count, nil
}

func (s *PostgresStore) Add(ctx context.Context, p Product) (Product, error) {
	const stmt = `
		INSERT INTO product (name, price, created_at)
		VALUES ($1, $2, now())
		RETURNING *;`

	created, err := tql.QueryFirst[Product](ctx, s.db.DB, stmt, p.Name, p.Price)
	if err != nil {
		return Product{}, errors.Wrap(err, "insert product")
	}

	return created, nil
}

func (s *PostgresStore) Update(ctx context.Context, p Product) error {
	const stmt = `
		UPDATE product
		SET name = :name, price = :price
		WHERE id = :id;`

	if _, err := s.db.NamedExecContext(ctx, stmt, p); err != nil {
		return errors.Wrap(err, "update product")
	}

	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id int) error {
	const stmt = `
		DELETE FROM product
		WHERE id = $1;`

	if _, err := tql.Exec(ctx, s.db.DB, stmt, id); err != nil {
		return errors.Wrap(err, "delete product")
	}

	return nil
}

// filterClause builds the conjunctive WHERE clause for the present
// predicates, with positional parameters numbered from $1.
func filterClause(filter ProductFilter) (string, []any) {
	conditions := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if filter.Name != nil {
		args = append(args, "%"+*filter.Name+"%")
		conditions = append(conditions, fmt.Sprintf("name LIKE $%d", len(args)))
	}

	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conditions = append(conditions, fmt.Sprintf("price >= $%d", len(args)))
	}

	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conditions = append(conditions, fmt.Sprintf("price <= $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}
