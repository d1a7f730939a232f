package fetcher

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"

	"github.com/sagarjana00/onelink-portfolio/internal/config"
)

// NewHTTPClient lager HTTP-klienten mot GitHub. Er GitHub App satt opp, signeres
// kallene med installasjonstoken i stedet for GITHUB_TOKEN.
func NewHTTPClient(cfg config.Config) (*http.Client, error) {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if !cfg.UsesGitHubApp() {
		return &http.Client{Timeout: timeout}, nil
	}

	tr, err := ghinstallation.NewKeyFromFile(http.DefaultTransport, cfg.AppID, cfg.AppInstallationID, cfg.AppPrivateKeyFile)
	if err != nil {
		return nil, fmt.Errorf("kunne ikke sette opp GitHub App-autentisering: %w", err)
	}
	if cfg.GitHubAPIURL != "" && cfg.GitHubAPIURL != DefaultBaseURL {
		tr.BaseURL = cfg.GitHubAPIURL
	}
	slog.Info("Bruker GitHub App-installasjon", "app_id", cfg.AppID, "installation_id", cfg.AppInstallationID)

	return &http.Client{Transport: tr, Timeout: timeout}, nil
}
