package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/sagarjana00/onelink-portfolio/internal/models"
)

func (r *RepoFetcher) GetReposPage(ctx context.Context, username string, page int) ([]models.RepoMeta, error) {
	u := fmt.Sprintf("%s/users/%s/repos?page=%d&per_page=%d&sort=updated", r.BaseURL, url.PathEscape(username), page, PerPage)
	var pageRepos []models.RepoMeta
	slog.Info("Henter repos", "user", username, "page", page)

	err := r.DoRequest(ctx, http.MethodGet, u, nil, &pageRepos)
	r.Metrics.ObserveRequest("repos", string(StatusFor(err)))
	if err != nil {
		return nil, err
	}

	return pageRepos, nil
}

// FetchUserRepos blar gjennom alle sider sekvensielt. Pagineringen stopper på tom side,
// på første feilende side (delresultatet beholdes) eller rett etter siden som gjør at
// antallet overstiger MaxRepos. Forks og arkiverte repos filtreres bort til slutt.
func (r *RepoFetcher) FetchUserRepos(ctx context.Context, username string) models.RepoListResult {
	result := models.RepoListResult{Status: models.FetchOK}
	var all []models.RepoMeta

	for page := 1; ; page++ {
		repos, err := r.GetReposPage(ctx, username, page)
		result.Pages = page
		if err != nil {
			slog.Warn("Henting av repo-side feilet – bruker det vi har", "user", username, "page", page, "hentet", len(all), "error", err)
			result.Status = StatusFor(err)
			result.Err = err
			break
		}
		if len(repos) == 0 {
			break
		}

		all = append(all, repos...)
		if len(all) > r.maxRepos() {
			slog.Info("Nådde maks antall repos – stopper paginering", "user", username, "hentet", len(all), "maks", r.maxRepos())
			result.Capped = true
			break
		}
	}

	result.Fetched = len(all)
	result.Repos = FilterRepos(all)
	r.Metrics.AddReposFetched(len(all))

	if result.Status == models.FetchOK && len(all) == 0 {
		result.Status = models.FetchEmpty
	}

	slog.Info("Repos hentet", "user", username, "hentet", result.Fetched, "etter_filtrering", len(result.Repos), "sider", result.Pages)
	return result
}

// FilterRepos fjerner forks og arkiverte repos og bevarer rekkefølgen.
func FilterRepos(repos []models.RepoMeta) []models.RepoMeta {
	out := make([]models.RepoMeta, 0, len(repos))
	for _, repo := range repos {
		if repo.IsFork || repo.Archived {
			continue
		}
		out = append(out, repo)
	}
	return out
}
