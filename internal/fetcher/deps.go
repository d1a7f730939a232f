package fetcher

import (
	"context"

	"github.com/sagarjana00/onelink-portfolio/internal/models"
)

// GitHubAPI er det pipelinen trenger fra GitHub.
type GitHubAPI interface {
	FetchUserRepos(ctx context.Context, username string) models.RepoListResult
	FetchLanguages(ctx context.Context, owner, name string) models.LanguageResult
	FetchReadme(ctx context.Context, owner, name string) models.ReadmeResult
}

var _ GitHubAPI = (*RepoFetcher)(nil)
