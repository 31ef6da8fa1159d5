package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// Querier is the subset of *pgxpool.Pool and *pgx.Conn used by LoadPostgres.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// TableSpec names the edge table and its columns.
// Table may be schema-qualified ("graph.edges").
// An empty WeightColumn gives every row DefaultWeight.
type TableSpec struct {
	Table        string
	FromColumn   string
	ToColumn     string
	WeightColumn string
}

// DefaultTableSpec is the layout of a plain "edges(src, dst, weight)" table.
func DefaultTableSpec() TableSpec {
	return TableSpec{Table: "edges", FromColumn: "src", ToColumn: "dst", WeightColumn: "weight"}
}

// Query renders the SELECT for t with every identifier quoted.
// A NULL in ToColumn yields an isolated vertex; a NULL weight yields DefaultWeight.
func (t TableSpec) Query() (string, error) {
	if t.Table == "" || t.FromColumn == "" || t.ToColumn == "" {
		return "", errors.New("source: table, from column and to column are required")
	}
	table := pgx.Identifier(strings.Split(t.Table, ".")).Sanitize()
	from := pgx.Identifier{t.FromColumn}.Sanitize()
	to := pgx.Identifier{t.ToColumn}.Sanitize()
	weight := fmt.Sprintf("%d::bigint", DefaultWeight)
	if t.WeightColumn != "" {
		weight = fmt.Sprintf("COALESCE(%s, %d)::bigint", pgx.Identifier{t.WeightColumn}.Sanitize(), DefaultWeight)
	}

	return fmt.Sprintf("SELECT %s::text, %s::text, %s FROM %s WHERE %s IS NOT NULL ORDER BY 1, 2",
		from, to, weight, table, from), nil
}

// LoadPostgres reads one edge per row of spec's table.
func LoadPostgres(ctx context.Context, q Querier, spec TableSpec) (*Document, error) {
	query, err := spec.Query()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(err, "source: querying %s", spec.Table)
	}
	defer rows.Close()

	doc := &Document{}
	seen := make(map[string]struct{})
	for rows.Next() {
		var (
			from string
			to   *string
			w    int64
		)
		if err = rows.Scan(&from, &to, &w); err != nil {
			return nil, errors.Wrapf(err, "source: scanning %s", spec.Table)
		}
		if to == nil {
			if _, ok := seen[from]; !ok {
				seen[from] = struct{}{}
				doc.Vertices = append(doc.Vertices, from)
			}
			continue
		}
		weight := w
		doc.Edges = append(doc.Edges, EdgeSpec{From: from, To: *to, Weight: &weight})
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "source: reading %s", spec.Table)
	}

	return doc, nil
}

// Connect opens a pgx pool for dsn and pings it.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "parsing DSN")
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errors.Wrap(err, "creating connection pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "pinging database")
	}

	return pool, nil
}
