package dataset

import (
	"context"
	"database/sql"
	"fmt"

	cerrors "finbot/internal/common/errors"
)

// LoadPostgres reads all metric rows from the given table and builds the
// dataset from them. Numeric columns are scanned as text so the same
// cleaning path applies regardless of source.
func LoadPostgres(ctx context.Context, db *sql.DB, table string) (*Dataset, error) {
	query := fmt.Sprintf(
		`SELECT company, year, total_revenue, net_income, total_assets, total_liabilities, cash_flow
		 FROM %s ORDER BY company, year`, table)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, cerrors.NewQueryExecutionFailedError(query, err)
	}
	defer rows.Close()

	var raw []RawRow
	for rows.Next() {
		var r RawRow
		if err := rows.Scan(
			&r.Company, &r.Year, &r.TotalRevenue, &r.NetIncome,
			&r.TotalAssets, &r.TotalLiabilities, &r.CashFlow,
		); err != nil {
			return nil, fmt.Errorf("failed to scan metrics row: %w", err)
		}
		raw = append(raw, r)
	}
	if err := rows.Err(); err != nil {
		return nil, cerrors.NewQueryExecutionFailedError(query, err)
	}

	return Build(raw)
}
