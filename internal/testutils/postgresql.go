package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type TestDB struct {
	DB        *sql.DB
	DSN       string
	container testcontainers.Container
}

// StartTestPostgresContainer starter postgres:15 og venter til databasen svarer på ping.
func StartTestPostgresContainer(ctx context.Context) (*TestDB, error) {
	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("kunne ikke starte testcontainer: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("klarte ikke hente host fra container: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("klarte ikke hente port fra container: %w", err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sql.DB
	for retries := 0; retries < 10; retries++ {
		db, err = sql.Open("postgres", dsn)
		if err == nil {
			if err = db.PingContext(ctx); err == nil {
				slog.Info("Databasen er klar")
				break
			}
			_ = db.Close()
		}
		slog.Info("Venter på at databasen skal bli klar...", "forsøk", retries+1)
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("klarte ikke koble til databasen: %w", err)
	}

	return &TestDB{
		DB:        db,
		DSN:       dsn,
		container: container,
	}, nil
}

func (t *TestDB) Close() {
	ctx := context.Background()

	if err := t.DB.Close(); err != nil {
		slog.Warn("Kunne ikke lukke databaseforbindelsen", "error", err)
	}
	if err := t.container.Terminate(ctx); err != nil {
		slog.Warn("Kunne ikke stoppe testcontaineren", "error", err)
	}
}
