package stats

import (
	"context"
	"database/sql"

	"go-shipdata/internal/database"
	"go-shipdata/internal/query"
)

type StatsRepository interface {
	NameCounts(ctx context.Context, stmt query.Statement) ([]CustomerCount, error)
	CityCounts(ctx context.Context, stmt query.Statement) ([]CityCount, error)
	AvgAndCount(ctx context.Context, stmt query.Statement) (float64, int, error)
	ScanInt(ctx context.Context, stmt query.Statement) (int, error)
}

type StatsRepositoryImpl struct {
	db *database.PostgresDB
}

func NewStatsRepository(db *database.PostgresDB) StatsRepository {
	return &StatsRepositoryImpl{db: db}
}

func (r *StatsRepositoryImpl) NameCounts(ctx context.Context, stmt query.Statement) ([]CustomerCount, error) {
	rows, cancel, err := r.query(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer rows.Close()

	out := []CustomerCount{}
	for rows.Next() {
		var c CustomerCount
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *StatsRepositoryImpl) CityCounts(ctx context.Context, stmt query.Statement) ([]CityCount, error) {
	rows, cancel, err := r.query(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer rows.Close()

	out := []CityCount{}
	for rows.Next() {
		var c CityCount
		if err := rows.Scan(&c.City, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *StatsRepositoryImpl) AvgAndCount(ctx context.Context, stmt query.Statement) (float64, int, error) {
	qctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	// Aggregates over empty sets come back NULL.
	var avg sql.NullFloat64
	var count int
	if err := r.db.DB.QueryRowContext(qctx, stmt.SQL, stmt.Args...).Scan(&avg, &count); err != nil {
		return 0, 0, err
	}
	return avg.Float64, count, nil
}

func (r *StatsRepositoryImpl) ScanInt(ctx context.Context, stmt query.Statement) (int, error) {
	qctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	var v int
	if err := r.db.DB.QueryRowContext(qctx, stmt.SQL, stmt.Args...).Scan(&v); err != nil {
		return 0, err
	}
	return v, nil
}

func (r *StatsRepositoryImpl) query(ctx context.Context, stmt query.Statement) (*sql.Rows, context.CancelFunc, error) {
	qctx, cancel := r.db.WithTimeout(ctx)
	rows, err := r.db.DB.QueryContext(qctx, stmt.SQL, stmt.Args...)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	return rows, cancel, nil
}
