package database

import (
	"context"
	"database/sql"
	"log"
	"time"

	"go-shipdata/internal/config"

	_ "github.com/lib/pq"
	"go.uber.org/fx"
)

// PostgresDB holds the shipments store. The shipments table is the single
// large relational table the query engine runs against.
type PostgresDB struct {
	DB *sql.DB

	// StatementTimeout bounds every statement issued against the shipments
	// table. Client disconnects do not cancel a running statement, so the
	// timeout is enforced here at the execution boundary.
	StatementTimeout time.Duration
}

// NewPostgres opens the shipments database with lifecycle management.
func NewPostgres(lc fx.Lifecycle, cfg *config.Config) (*PostgresDB, error) {
	db, err := sql.Open("postgres", cfg.PostgresURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	log.Println("Connected to PostgreSQL!")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Println("Closing PostgreSQL pool...")
			return db.Close()
		},
	})

	return &PostgresDB{
		DB:               db,
		StatementTimeout: time.Duration(cfg.StatementTimeoutMS) * time.Millisecond,
	}, nil
}

// WithTimeout derives the per-statement context. The cancel func must stay
// alive until the returned rows are fully consumed.
func (p *PostgresDB) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, p.StatementTimeout)
}
