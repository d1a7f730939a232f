package fetcher

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/sagarjana00/onelink-portfolio/internal/models"
)

func (r *RepoFetcher) FetchLanguages(ctx context.Context, owner, name string) models.LanguageResult {
	u := fmt.Sprintf("%s/repos/%s/%s/languages", r.BaseURL, url.PathEscape(owner), url.PathEscape(name))

	var langs map[string]int
	err := r.DoRequest(ctx, http.MethodGet, u, nil, &langs)
	status := StatusFor(err)
	if err == nil && len(langs) == 0 {
		status = models.FetchEmpty
	}
	r.Metrics.ObserveRequest("languages", string(status))

	if err != nil {
		slog.Warn("Klarte ikke hente språk", "repo", owner+"/"+name, "error", err)
		return models.LanguageResult{Languages: map[string]int{}, Status: status, Err: err}
	}
	if langs == nil {
		langs = map[string]int{}
	}
	return models.LanguageResult{Languages: langs, Status: status}
}

func (r *RepoFetcher) FetchReadme(ctx context.Context, owner, name string) models.ReadmeResult {
	u := fmt.Sprintf("%s/repos/%s/%s/readme", r.BaseURL, url.PathEscape(owner), url.PathEscape(name))

	var file struct {
		Content  string `json:"content"`
		Encoding string `json:"encoding"`
	}
	if err := r.DoRequest(ctx, http.MethodGet, u, nil, &file); err != nil {
		status := StatusFor(err)
		r.Metrics.ObserveRequest("readme", string(status))
		if status == models.FetchNotFound {
			slog.Debug("Repo mangler README", "repo", owner+"/"+name)
		} else {
			slog.Warn("Klarte ikke hente README", "repo", owner+"/"+name, "error", err)
		}
		return models.ReadmeResult{Status: status, Err: err}
	}

	text, err := DecodeReadme(file.Content, file.Encoding)
	if err != nil {
		r.Metrics.ObserveRequest("readme", string(models.FetchDecodeError))
		slog.Warn("Klarte ikke dekode README", "repo", owner+"/"+name, "error", err)
		return models.ReadmeResult{Status: models.FetchDecodeError, Err: err}
	}
	if strings.TrimSpace(text) == "" {
		r.Metrics.ObserveRequest("readme", string(models.FetchEmpty))
		return models.ReadmeResult{Status: models.FetchEmpty}
	}

	r.Metrics.ObserveRequest("readme", string(models.FetchOK))
	return models.ReadmeResult{Text: text, Present: true, Status: models.FetchOK}
}

// DecodeReadme dekoder base64-innholdet fra contents-API-et til tekst.
// Linjeskift i base64 er tillatt. BOM styrer tegnsett (UTF-8/UTF-16), og
// ugyldige UTF-8-sekvenser erstattes i stedet for å gi feil.
func DecodeReadme(content, encoding string) (string, error) {
	if encoding != "" && encoding != "base64" {
		return "", fmt.Errorf("ukjent encoding %q", encoding)
	}

	raw, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return "", fmt.Errorf("ugyldig base64: %w", err)
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return "", fmt.Errorf("kunne ikke dekode tekst: %w", err)
	}

	return string(decoded), nil
}
