package bqwriter

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/sagarjana00/onelink-portfolio/internal/config"
	"github.com/sagarjana00/onelink-portfolio/internal/dbwriter"
	"github.com/sagarjana00/onelink-portfolio/internal/models"
)

const (
	ProjectsTable  = "projects"
	LanguagesTable = "project_languages"
)

type BigQueryWriter struct {
	Client  *bigquery.Client
	Dataset string
}

func NewBigQueryWriter(ctx context.Context, cfg config.Config) (*BigQueryWriter, error) {
	var opts []option.ClientOption
	if cfg.BQCredentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.BQCredentials))
	}

	client, err := bigquery.NewClient(ctx, cfg.BQProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("kan ikke opprette BigQuery-klient: %w", err)
	}

	// Sørg for at hver tabell finnes
	tables := map[string]any{
		ProjectsTable:  BGProject{},
		LanguagesTable: BGProjectLanguage{},
	}

	for tableName, schemaExample := range tables {
		if err := ensureTableExists(ctx, client, cfg.BQDataset, tableName, schemaExample); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("kunne ikke sikre tabell %s: %w", tableName, err)
		}
	}

	return &BigQueryWriter{
		Client:  client,
		Dataset: cfg.BQDataset,
	}, nil
}

// ImportProject strømmer én rad per kjøring. Tabellene er append-only, så
// historikken kan leses ut fra when_collected.
func (w *BigQueryWriter) ImportProject(ctx context.Context, entry models.RepoEntry, snapshot time.Time) error {
	project := ConvertToBG(entry, snapshot)
	langs := ConvertLanguages(entry, snapshot)

	if err := insert(ctx, w.Client, w.Dataset, ProjectsTable, []BGProject{project}); err != nil {
		return fmt.Errorf("projects insert failed: %w", err)
	}
	if err := insert(ctx, w.Client, w.Dataset, LanguagesTable, langs); err != nil {
		return fmt.Errorf("project_languages insert failed: %w", err)
	}

	return nil
}

func (w *BigQueryWriter) Close() error {
	return w.Client.Close()
}

func insert[T any](ctx context.Context, client *bigquery.Client, dataset, table string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	inserter := client.Dataset(dataset).Table(table).Inserter()
	return inserter.Put(ctx, rows)
}

// ==== Data-strukturer ====

type BGProject struct {
	RepoID          int64     `bigquery:"repo_id"`
	WhenCollected   time.Time `bigquery:"when_collected"`
	Owner           string    `bigquery:"owner"`
	Name            string    `bigquery:"name"`
	FullName        string    `bigquery:"full_name"`
	Description     string    `bigquery:"description"`
	Homepage        string    `bigquery:"homepage"`
	HtmlUrl         string    `bigquery:"html_url"`
	PrimaryLanguage string    `bigquery:"primary_language"`
	Stars           int64     `bigquery:"stars"`
	Forks           int64     `bigquery:"forks"`
	Topics          string    `bigquery:"topics"`
	UpdatedAt       time.Time `bigquery:"updated_at"`
	PushedAt        time.Time `bigquery:"pushed_at"`
	CreatedAt       time.Time `bigquery:"created_at"`
	ReadmeContent   string    `bigquery:"readme_content"`
	HasReadme       bool      `bigquery:"has_readme"`
	DemoURL         string    `bigquery:"demo_url"`
	Status          string    `bigquery:"status"`
	LanguageFetch   string    `bigquery:"language_fetch"`
	ReadmeFetch     string    `bigquery:"readme_fetch"`
}

type BGProjectLanguage struct {
	RepoID        int64     `bigquery:"repo_id"`
	WhenCollected time.Time `bigquery:"when_collected"`
	Language      string    `bigquery:"language"`
	Bytes         int64     `bigquery:"bytes"`
}

// ==== Mapping-funksjoner ====

func ConvertToBG(entry models.RepoEntry, snapshot time.Time) BGProject {
	r := entry.Repo
	return BGProject{
		RepoID:          r.ID,
		WhenCollected:   snapshot,
		Owner:           r.OwnerLogin(),
		Name:            r.Name,
		FullName:        r.FullName,
		Description:     r.DescriptionText(),
		Homepage:        r.HomepageURL(),
		HtmlUrl:         r.HtmlUrl,
		PrimaryLanguage: r.Language,
		Stars:           r.Stars,
		Forks:           r.Forks,
		Topics:          strings.Join(r.Topics, ","),
		UpdatedAt:       parseTime(r.UpdatedAt),
		PushedAt:        parseTime(r.PushedAt),
		CreatedAt:       parseTime(r.CreatedAt),
		ReadmeContent:   dbwriter.SafeString(entry.Readme),
		HasReadme:       entry.Readme != nil,
		DemoURL:         dbwriter.SafeString(entry.DemoURL),
		Status:          string(entry.Status),
		LanguageFetch:   string(entry.LanguageFetch),
		ReadmeFetch:     string(entry.ReadmeFetch),
	}
}

// ConvertLanguages gir radene sortert på språknavn.
func ConvertLanguages(entry models.RepoEntry, snapshot time.Time) []BGProjectLanguage {
	var result []BGProjectLanguage
	for _, lang := range slices.Sorted(maps.Keys(entry.Languages)) {
		result = append(result, BGProjectLanguage{
			RepoID:        entry.Repo.ID,
			WhenCollected: snapshot,
			Language:      lang,
			Bytes:         int64(entry.Languages[lang]),
		})
	}
	return result
}

// ==== Hjelpefunksjoner ====

func parseTime(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

func ensureTableExists(ctx context.Context, client *bigquery.Client, dataset, table string, exampleStruct any) error {
	tbl := client.Dataset(dataset).Table(table)
	_, err := tbl.Metadata(ctx)
	if err == nil {
		return nil // tabellen finnes
	}

	if !isNotFound(err) {
		return fmt.Errorf("feil ved henting av tabell-metadata: %w", err)
	}

	schema, err := bigquery.InferSchema(exampleStruct)
	if err != nil {
		return fmt.Errorf("klarte ikke å generere schema for %s: %w", table, err)
	}

	if err := tbl.Create(ctx, &bigquery.TableMetadata{Schema: schema}); err != nil {
		return fmt.Errorf("klarte ikke å opprette tabell %s: %w", table, err)
	}

	return nil
}

func isNotFound(err error) bool {
	var gErr *googleapi.Error
	return errors.As(err, &gErr) && gErr.Code == http.StatusNotFound
}
