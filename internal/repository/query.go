package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// conditions accumulates WHERE clauses and their positional arguments.
// Each clause uses %[1]d for its placeholder index.
type conditions struct {
	clauses []string
	args    []interface{}
}

func (c *conditions) add(clause string, value interface{}) {
	c.args = append(c.args, value)
	c.clauses = append(c.clauses, fmt.Sprintf(clause, len(c.args)))
}

func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return "WHERE 1=1"
	}
	return "WHERE 1=1 AND " + strings.Join(c.clauses, " AND ")
}

func likePattern(search string) string {
	return "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
}

func paginate(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > maxPageSize {
		size = defaultPageSize
	}
	return size, (page - 1) * size
}

func sortOrder(raw string) string {
	order := strings.ToUpper(raw)
	if order != "ASC" && order != "DESC" {
		return "DESC"
	}
	return order
}

func sortColumn(raw string, allowed map[string]string, fallback string) string {
	if column, ok := allowed[raw]; ok {
		return column
	}
	return fallback
}

// listAndCount runs a paginated select plus its matching count over the same filter.
func listAndCount(ctx context.Context, db *sqlx.DB, dest interface{}, columns, table string, cond conditions, orderBy string, page, size int, label string) (int, error) {
	limit, offset := paginate(page, size)
	base := fmt.Sprintf("FROM %s %s", table, cond.where())

	query := fmt.Sprintf("SELECT %s %s ORDER BY %s LIMIT %d OFFSET %d", columns, base, orderBy, limit, offset)
	if err := db.SelectContext(ctx, dest, query, cond.args...); err != nil {
		return 0, fmt.Errorf("list %s: %w", label, err)
	}

	var total int
	if err := db.GetContext(ctx, &total, "SELECT COUNT(*) "+base, cond.args...); err != nil {
		return 0, fmt.Errorf("count %s: %w", label, err)
	}
	return total, nil
}

// insertReturningID executes a named INSERT ... RETURNING id and yields the generated key.
func insertReturningID(ctx context.Context, db *sqlx.DB, query string, arg interface{}) (int64, error) {
	rows, err := db.NamedQueryContext(ctx, query, arg)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, err
		}
		return 0, sql.ErrNoRows
	}
	var id int64
	if err := rows.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// namedUpdate runs a named UPDATE and wraps sql.ErrNoRows when the row is gone.
func namedUpdate(ctx context.Context, db *sqlx.DB, query string, arg interface{}, entity string) error {
	res, err := db.NamedExecContext(ctx, query, arg)
	if err != nil {
		return fmt.Errorf("update %s: %w", entity, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s: %w", entity, err)
	}
	if affected == 0 {
		return fmt.Errorf("update %s: %w", entity, sql.ErrNoRows)
	}
	return nil
}

func stampCreated(createdAt *time.Time) {
	if createdAt.IsZero() {
		*createdAt = time.Now().UTC()
	}
}
