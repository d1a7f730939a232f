package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sagarjana00/onelink-portfolio/internal/config"
	"github.com/sagarjana00/onelink-portfolio/internal/metrics"
	"github.com/sagarjana00/onelink-portfolio/internal/models"
)

const (
	DefaultBaseURL  = "https://api.github.com"
	DefaultTimeout  = 10 * time.Second
	DefaultMaxRepos = 500
	PerPage         = 100

	userAgent = "onelink-portfolio"
)

type RepoFetcher struct {
	BaseURL    string
	Token      string
	MaxRepos   int
	HTTPClient *http.Client
	Metrics    *metrics.Recorder
}

// APIError er en ikke-2xx respons fra GitHub.
type APIError struct {
	StatusCode  int
	Body        string
	RateLimited bool
	Reset       time.Time
}

func (e *APIError) Error() string {
	if e.RateLimited {
		return fmt.Sprintf("GitHub API-feil: rate limit nådd (status %d, reset %s)", e.StatusCode, e.Reset.Format(time.RFC3339))
	}
	return fmt.Sprintf("GitHub API-feil: status %d – %s", e.StatusCode, e.Body)
}

// NewRepoFetcher lager en fetcher fra konfigurasjonen. httpClient kan være nil,
// da brukes en klient med timeout fra cfg.
func NewRepoFetcher(cfg config.Config, httpClient *http.Client, rec *metrics.Recorder) *RepoFetcher {
	if httpClient == nil {
		timeout := cfg.RequestTimeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	baseURL := strings.TrimSuffix(cfg.GitHubAPIURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &RepoFetcher{
		BaseURL:    baseURL,
		Token:      cfg.Token,
		MaxRepos:   cfg.MaxRepos,
		HTTPClient: httpClient,
		Metrics:    rec,
	}
}

// WithToken returnerer en kopi som sender et annet token, f.eks. fra OAuth.
func (r *RepoFetcher) WithToken(token string) *RepoFetcher {
	cp := *r
	cp.Token = token
	return &cp
}

func (r *RepoFetcher) maxRepos() int {
	if r.MaxRepos <= 0 {
		return DefaultMaxRepos
	}
	return r.MaxRepos
}

// DoRequest gjør ett kall mot GitHub og dekoder JSON-svaret i out.
// Det gjøres ingen retry; rate limit rapporteres som *APIError med RateLimited satt.
func (r *RepoFetcher) DoRequest(ctx context.Context, method, url string, body []byte, out any) error {
	slog.Debug("Henter URL", "url", url)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	if r.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("Klarte ikke å lukke body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(bodyBytes)),
		}
		if isRateLimited(resp) {
			apiErr.RateLimited = true
			apiErr.Reset = parseReset(resp.Header.Get("X-RateLimit-Reset"))
			slog.Warn("Rate limit nådd", "url", url, "reset", apiErr.Reset.Format(time.RFC3339))
		}
		return apiErr
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func isRateLimited(resp *http.Response) bool {
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return true
	case http.StatusForbidden:
		return resp.Header.Get("X-RateLimit-Remaining") == "0"
	}
	return false
}

func parseReset(v string) time.Time {
	ts, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(ts, 0)
}

// StatusFor oversetter en feil fra DoRequest til en FetchStatus.
func StatusFor(err error) models.FetchStatus {
	if err == nil {
		return models.FetchOK
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.RateLimited {
			return models.FetchRateLimited
		}
		if apiErr.StatusCode == http.StatusNotFound {
			return models.FetchNotFound
		}
	}
	return models.FetchFailed
}
