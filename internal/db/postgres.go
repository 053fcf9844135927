package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// ConnectPostgres opens the products database and verifies the
// connection before the server starts accepting requests.
func ConnectPostgres(url string) (*sql.DB, error) {
	if url == "" {
		return nil, fmt.Errorf("postgres connection string is empty")
	}

	database, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := database.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, nil
}
