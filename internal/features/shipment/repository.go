package shipment

import (
	"context"
	"database/sql"

	"go-shipdata/internal/database"
	"go-shipdata/internal/query"
)

type ShipmentRepository interface {
	Count(ctx context.Context, stmt query.Statement) (int, error)
	QueryMaps(ctx context.Context, stmt query.Statement) ([]map[string]interface{}, error)
	GetByID(ctx context.Context, id int) (map[string]interface{}, error)
}

type ShipmentRepositoryImpl struct {
	db *database.PostgresDB
}

func NewShipmentRepository(db *database.PostgresDB) ShipmentRepository {
	return &ShipmentRepositoryImpl{db: db}
}

func (r *ShipmentRepositoryImpl) Count(ctx context.Context, stmt query.Statement) (int, error) {
	qctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	var total int
	err := r.db.DB.QueryRowContext(qctx, stmt.SQL, stmt.Args...).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ShipmentRepositoryImpl) QueryMaps(ctx context.Context, stmt query.Statement) ([]map[string]interface{}, error) {
	qctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	rows, err := r.db.DB.QueryContext(qctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rowsToMaps(rows)
}

func (r *ShipmentRepositoryImpl) GetByID(ctx context.Context, id int) (map[string]interface{}, error) {
	stmt := query.Statement{
		SQL:  "SELECT * FROM shipments WHERE id = $1",
		Args: []interface{}{id},
	}
	results, err := r.QueryMaps(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, sql.ErrNoRows
	}
	return results[0], nil
}

// rowsToMaps converts SQL rows to a slice of maps, decoding []byte values as
// strings. The shipments schema is mostly text so this keeps the JSON output
// readable without a per-column scan target.
func rowsToMaps(rows *sql.Rows) ([]map[string]interface{}, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := []map[string]interface{}{}

	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}

		row := make(map[string]interface{})
		for i, col := range columns {
			val := values[i]
			if b, ok := val.([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = val
			}
		}

		result = append(result, row)
	}

	return result, rows.Err()
}
