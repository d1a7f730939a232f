package fetcher

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path"

	"github.com/sagarjana00/onelink-portfolio/internal/models"
)

func StoreProjectsJSON(dir, user string, entries []models.RepoEntry) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("kunne ikke opprette katalog %s: %w", dir, err)
	}

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("kunne ikke serialisere prosjekter til JSON: %w", err)
	}

	file := path.Join(dir, fmt.Sprintf("%s_projects.json", user))
	if err := os.WriteFile(file, out, 0644); err != nil {
		return fmt.Errorf("kunne ikke skrive til fil %s: %w", file, err)
	}

	slog.Info("Lagret prosjekter", "count", len(entries), "file", file)
	return nil
}

// LoadProjectsJSON leser en fil skrevet av StoreProjectsJSON.
func LoadProjectsJSON(file string) ([]models.RepoEntry, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("kunne ikke lese %s: %w", file, err)
	}

	var entries []models.RepoEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("ugyldig JSON i %s: %w", file, err)
	}
	return entries, nil
}
