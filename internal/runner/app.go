package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sagarjana00/onelink-portfolio/internal/classifier"
	"github.com/sagarjana00/onelink-portfolio/internal/config"
	"github.com/sagarjana00/onelink-portfolio/internal/detector"
	"github.com/sagarjana00/onelink-portfolio/internal/fetcher"
	"github.com/sagarjana00/onelink-portfolio/internal/metrics"
	"github.com/sagarjana00/onelink-portfolio/internal/models"
)

type App struct {
	Cfg     config.Config
	Fetcher fetcher.GitHubAPI
	Writer  Writer // kan være nil, da returneres bare resultatet
	Matcher *detector.Matcher
	Metrics *metrics.Recorder
	Now     func() time.Time
}

func NewApp(cfg config.Config, f fetcher.GitHubAPI, w Writer) *App {
	return &App{
		Cfg:     cfg,
		Fetcher: f,
		Writer:  w,
		Matcher: detector.DefaultMatcher(),
		Now:     time.Now,
	}
}

// Run henter, beriker og klassifiserer alle repos for brukeren. Resultatet har samme
// rekkefølge som fra GitHub. Feil fra GitHub stopper aldri kjøringen; bare feil
// fra Writer returneres, samlet etter at alle prosjekter er forsøkt lagret.
func (a *App) Run(ctx context.Context, username string) ([]models.RepoEntry, error) {
	start := a.Now()
	slog.Info("Starter innhenting", "user", username)

	list := a.Fetcher.FetchUserRepos(ctx, username)
	if list.Err != nil {
		slog.Warn("Repo-listen er ufullstendig", "user", username, "status", list.Status, "error", list.Err)
	}

	entries := make([]models.RepoEntry, len(list.Repos))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(a.parallelism())
	for i, repo := range list.Repos {
		g.Go(func() error {
			slog.Debug("Bearbeider repo", "index", i+1, "total", len(list.Repos), "repo", repo.FullName)
			entries[i] = a.ProcessRepo(gCtx, repo)
			return nil
		})
	}
	_ = g.Wait()

	snapshot := a.Now()
	var writeErrs []error
	if a.Writer != nil {
		for _, entry := range entries {
			if err := a.Writer.ImportProject(ctx, entry, snapshot); err != nil {
				slog.Error("Kunne ikke lagre prosjekt", "repo", entry.Repo.FullName, "error", err)
				writeErrs = append(writeErrs, fmt.Errorf("%s: %w", entry.Repo.FullName, err))
			}
		}
	}

	a.Metrics.ObservePipeline(time.Since(start))
	slog.Info("Innhenting ferdig", "user", username, "prosjekter", len(entries), "lagringsfeil", len(writeErrs))

	return entries, errors.Join(writeErrs...)
}

// ProcessRepo beriker ett repo og utleder demo-URL og status. Språk og README
// hentes samtidig og uavhengig av hverandre.
func (a *App) ProcessRepo(ctx context.Context, repo models.RepoMeta) models.RepoEntry {
	owner := repo.OwnerLogin()

	var langs models.LanguageResult
	var readme models.ReadmeResult

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		langs = a.Fetcher.FetchLanguages(gCtx, owner, repo.Name)
		return nil
	})
	g.Go(func() error {
		readme = a.Fetcher.FetchReadme(gCtx, owner, repo.Name)
		return nil
	})
	_ = g.Wait()

	return a.Classify(repo, langs, readme)
}

// Classify er den rene delen av pipelinen: samme input gir alltid samme output.
func (a *App) Classify(repo models.RepoMeta, langs models.LanguageResult, readme models.ReadmeResult) models.RepoEntry {
	matcher := a.Matcher
	if matcher == nil {
		matcher = detector.DefaultMatcher()
	}

	languages := langs.Languages
	if languages == nil {
		languages = map[string]int{}
	}

	entry := models.RepoEntry{
		Repo:          repo,
		Languages:     languages,
		LanguageFetch: langs.Status,
		ReadmeFetch:   readme.Status,
	}

	readmeText := ""
	if readme.Present {
		text := readme.Text
		entry.Readme = &text
		readmeText = text
	}

	demoURL, ok := matcher.Detect(repo.HomepageURL(), readmeText)
	if ok {
		entry.DemoURL = &demoURL
	}

	entry.Status = classifier.Classify(demoURL, repo.HasHomepage(), repo.DescriptionText())
	a.Metrics.ObserveProject(string(entry.Status))

	return entry
}

func (a *App) parallelism() int {
	if a.Cfg.Parallelism <= 0 {
		return 1
	}
	return a.Cfg.Parallelism
}
