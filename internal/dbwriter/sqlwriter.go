package dbwriter

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/sagarjana00/onelink-portfolio/internal/models"
	"github.com/sagarjana00/onelink-portfolio/internal/storage"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// SQLWriter lagrer prosjekter i Postgres eller SQLite med samme skjema og spørringer.
type SQLWriter struct {
	DB      *sql.DB
	dialect storage.Dialect
}

func NewPostgresWriter(postgresdsn string) (*SQLWriter, error) {
	db, err := sql.Open(DriverPostgres, postgresdsn)
	if err != nil {
		slog.Error("Kunne ikke åpne PostgreSQL-database", "error", err)
		return nil, fmt.Errorf("kunne ikke åpne PostgreSQL-database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(10 * time.Minute)

	return &SQLWriter{DB: db, dialect: storage.Postgres}, nil
}

func NewSQLiteWriter(path string) (*SQLWriter, error) {
	db, err := sql.Open(DriverSQLite, path)
	if err != nil {
		slog.Error("Kunne ikke åpne SQLite-database", "path", path, "error", err)
		return nil, fmt.Errorf("kunne ikke åpne SQLite-database: %w", err)
	}

	// SQLite tåler bare én skriver om gangen.
	db.SetMaxOpenConns(1)

	return &SQLWriter{DB: db, dialect: storage.SQLite}, nil
}

// NewSQLWriter pakker inn en åpen forbindelse, f.eks. fra en testcontainer.
func NewSQLWriter(db *sql.DB, driver string) *SQLWriter {
	dialect := storage.Postgres
	if driver == DriverSQLite {
		dialect = storage.SQLite
	}
	return &SQLWriter{DB: db, dialect: dialect}
}

func (w *SQLWriter) EnsureSchema(ctx context.Context) error {
	if _, err := w.DB.ExecContext(ctx, storage.Schema); err != nil {
		return fmt.Errorf("kunne ikke opprette skjema: %w", err)
	}
	return nil
}

func (w *SQLWriter) Queries() *storage.Queries {
	return storage.NewWithDialect(w.DB, w.dialect)
}

// ImportProject oppdaterer prosjektraden og erstatter språkradene i én transaksjon.
// Samme entry to ganger gir samme tilstand.
func (w *SQLWriter) ImportProject(ctx context.Context, entry models.RepoEntry, snapshotDate time.Time) error {
	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("start tx: %w", err)
	}

	queries := w.Queries().WithTx(tx)
	r := entry.Repo

	if err := queries.InsertProject(ctx, ToProjectParams(entry, snapshotDate)); err != nil {
		return rollback(tx, "InsertProject", err)
	}

	if err := queries.DeleteProjectLanguages(ctx, r.ID); err != nil {
		return rollback(tx, "DeleteProjectLanguages", err)
	}

	for lang, size := range entry.Languages {
		err := queries.InsertProjectLanguage(ctx, storage.InsertProjectLanguageParams{
			GithubID:   r.ID,
			Language:   lang,
			Bytes:      int64(size),
			HentetDato: snapshotDate,
		})
		if err != nil {
			return rollback(tx, "InsertProjectLanguage", err)
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("Commit-feil – ruller tilbake", "repo", r.FullName, "error", err)
		return fmt.Errorf("commit failed: %w", err)
	}

	slog.Debug("Prosjekt lagret", "repo", r.FullName, "status", entry.Status)
	return nil
}

func (w *SQLWriter) Close() error {
	return w.DB.Close()
}

func ToProjectParams(entry models.RepoEntry, snapshotDate time.Time) storage.InsertProjectParams {
	r := entry.Repo
	return storage.InsertProjectParams{
		GithubID:        r.ID,
		Owner:           r.OwnerLogin(),
		Name:            r.Name,
		FullName:        r.FullName,
		Description:     NullString(r.Description),
		Homepage:        NullString(r.Homepage),
		HtmlUrl:         r.HtmlUrl,
		PrimaryLanguage: r.Language,
		Stars:           r.Stars,
		Forks:           r.Forks,
		Topics:          strings.Join(r.Topics, ","),
		Readme:          NullString(entry.Readme),
		DemoUrl:         NullString(entry.DemoURL),
		Status:          string(entry.Status),
		LanguageFetch:   string(entry.LanguageFetch),
		ReadmeFetch:     string(entry.ReadmeFetch),
		UpdatedAt:       r.UpdatedAt,
		PushedAt:        r.PushedAt,
		HentetDato:      snapshotDate,
	}
}

func rollback(tx *sql.Tx, op string, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil {
		return fmt.Errorf("%s feilet: %v (rollback feilet: %w)", op, err, rbErr)
	}
	return fmt.Errorf("%s feilet: %w", op, err)
}

func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
