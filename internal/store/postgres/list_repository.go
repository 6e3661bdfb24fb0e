package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lucasa/framework/core/query"
)

// ListRepository executes a query context against one table: filters become
// WHERE clauses, the sort context becomes ORDER BY in its tie-break order,
// and the pagination context becomes LIMIT/OFFSET. Each part is applied
// only when its context is enabled.
type ListRepository struct {
	client *Client
	table  string
	entity string
}

func NewListRepository(client *Client, table, entity string) *ListRepository {
	return &ListRepository{
		client: client,
		table:  table,
		entity: entity,
	}
}

func (r *ListRepository) List(ctx context.Context, qc *query.Context) (*query.Result, error) {
	stmt, args, err := buildListSQL(r.table, qc)
	if err != nil {
		return nil, fmt.Errorf("error building list query: %w", err)
	}

	rows, err := r.client.db.QueryxContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("error running list query: %w", checkPostgresError(err))
	}
	defer rows.Close()

	content := []interface{}{}
	for rows.Next() {
		row := map[string]interface{}{}
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("error scanning list row: %w", err)
		}
		content = append(content, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading list rows: %w", err)
	}

	total, err := r.count(ctx, qc)
	if err != nil {
		return nil, err
	}

	result := &query.Result{
		Content:    content,
		EntityType: r.entity,
		TotalCount: total,
	}
	if qc.Pagination.Enabled {
		result.Offset = qc.Pagination.Offset
		result.Limit = qc.Pagination.Limit
	}
	return result, nil
}

func (r *ListRepository) count(ctx context.Context, qc *query.Context) (int64, error) {
	stmt, args, err := buildCountSQL(r.table, qc)
	if err != nil {
		return 0, fmt.Errorf("error building count query: %w", err)
	}
	var total int64
	if err := r.client.db.GetContext(ctx, &total, stmt, args...); err != nil {
		return 0, fmt.Errorf("error running count query: %w", checkPostgresError(err))
	}
	return total, nil
}

func buildListSQL(table string, qc *query.Context) (string, []interface{}, error) {
	builder := applyFilters(sq.Select("*").From(table), qc)
	if qc.Sort.Enabled {
		for _, entry := range qc.Sort.Sorts {
			builder = builder.OrderBy(fmt.Sprintf("%s %s", entry.Field, entry.Direction))
		}
	}
	if qc.Pagination.Enabled {
		builder = builder.
			Limit(uint64(qc.Pagination.Limit)).
			Offset(uint64(qc.Pagination.Offset))
	}
	return builder.PlaceholderFormat(sq.Dollar).ToSql()
}

func buildCountSQL(table string, qc *query.Context) (string, []interface{}, error) {
	builder := applyFilters(sq.Select("COUNT(*)").From(table), qc)
	return builder.PlaceholderFormat(sq.Dollar).ToSql()
}

func applyFilters(builder sq.SelectBuilder, qc *query.Context) sq.SelectBuilder {
	if !qc.Filter.Enabled {
		return builder
	}
	for _, entry := range qc.Filter.Filters {
		values := make([]interface{}, 0, len(entry.Values))
		for _, v := range entry.Values {
			values = append(values, v)
		}
		builder = builder.Where(sq.Eq{entry.Field: values})
	}
	return builder
}
