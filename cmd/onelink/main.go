package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sagarjana00/onelink-portfolio/internal/bqwriter"
	"github.com/sagarjana00/onelink-portfolio/internal/config"
	"github.com/sagarjana00/onelink-portfolio/internal/dbwriter"
	"github.com/sagarjana00/onelink-portfolio/internal/fetcher"
	"github.com/sagarjana00/onelink-portfolio/internal/logger"
	"github.com/sagarjana00/onelink-portfolio/internal/metrics"
	"github.com/sagarjana00/onelink-portfolio/internal/models"
	"github.com/sagarjana00/onelink-portfolio/internal/oauth"
	"github.com/sagarjana00/onelink-portfolio/internal/runner"
	"github.com/sagarjana00/onelink-portfolio/internal/server"
)

func main() {
	// Context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	logger.SetupLogger()

	root := &cobra.Command{
		Use:           "onelink",
		Short:         "Henter GitHub-repos og klassifiserer dem som porteføljeprosjekter",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(syncCmd(), serveCmd(), importCmd())

	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error("Applikasjonen feilet", "error", err)
		os.Exit(1)
	}
}

func syncCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Hent, klassifiser og lagre prosjektene til én bruker",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.NewConfig(user)
			if err != nil {
				return err
			}
			logger.SetDebug(cfg.Debug)

			httpClient, err := fetcher.NewHTTPClient(cfg)
			if err != nil {
				return err
			}
			gh := fetcher.NewRepoFetcher(cfg, httpClient, nil)
			if cfg.UsesGitHubApp() {
				gh = gh.WithToken("")
			}

			writer, closeWriter, err := openWriter(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := closeWriter(); cerr != nil {
					slog.Warn("Klarte ikke å lukke lagring", "error", cerr)
				}
			}()

			app := runner.NewApp(cfg, gh, writer)
			entries, err := runner.RunAppSafe(ctx, app, cfg.User)
			if cfg.Storage == config.StorageJSON {
				if jerr := fetcher.StoreProjectsJSON(cfg.DumpDir, cfg.User, entries); jerr != nil {
					err = errors.Join(err, jerr)
				}
			}
			return err
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "GitHub-bruker (overstyrer GITHUB_USER)")
	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start OAuth-innlogging og HTTP-API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.NewServeConfig()
			if err != nil {
				return err
			}
			logger.SetDebug(cfg.Debug)

			rec := metrics.NewRecorder()
			// Brukerens OAuth-token erstatter GITHUB_TOKEN per forespørsel.
			gh := fetcher.NewRepoFetcher(cfg, nil, rec)

			writer, closeWriter, err := openWriter(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := closeWriter(); cerr != nil {
					slog.Warn("Klarte ikke å lukke lagring", "error", cerr)
				}
			}()

			flow := oauth.NewFlow(cfg, oauth.NewMemoryStateStore(cfg.OAuthStateTTL, cfg.OAuthStateCapacity))
			srv := server.New(cfg, flow, gh, writer, rec)
			if cfg.Storage == config.StorageJSON {
				srv.DumpDir = cfg.DumpDir
			}

			httpServer := &http.Server{
				Addr:              cfg.ListenAddr,
				Handler:           srv.Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			go func() {
				<-ctx.Done()
				slog.Info("SIGTERM mottatt – stopper HTTP-server")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := httpServer.Shutdown(shutdownCtx); err != nil {
					slog.Warn("Klarte ikke å stoppe HTTP-server pent", "error", err)
				}
			}()

			slog.Info("Starter HTTP-server", "addr", cfg.ListenAddr)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("HTTP-server feilet: %w", err)
			}
			slog.Info("HTTP-server stoppet")
			return nil
		},
	}
}

func importCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Last en <user>_projects.json-fil inn i databasen",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := config.ValidateStorage(cfg); err != nil {
				return err
			}
			if cfg.Storage == config.StorageJSON {
				return errors.New("import krever postgres-, sqlite- eller bigquery-lagring")
			}
			logger.SetDebug(cfg.Debug)

			entries, err := fetcher.LoadProjectsJSON(file)
			if err != nil {
				return err
			}

			writer, closeWriter, err := openWriter(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := closeWriter(); cerr != nil {
					slog.Warn("Klarte ikke å lukke lagring", "error", cerr)
				}
			}()

			return importEntries(ctx, writer, entries, time.Now())
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON-fil skrevet av sync med json-lagring")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func importEntries(ctx context.Context, writer runner.Writer, entries []models.RepoEntry, snapshot time.Time) error {
	var errs []error
	for _, entry := range entries {
		if err := writer.ImportProject(ctx, entry, snapshot); err != nil {
			slog.Warn("Import feilet", "repo", entry.Repo.FullName, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", entry.Repo.FullName, err))
		}
	}
	slog.Info("Import ferdig", "prosjekter", len(entries), "feil", len(errs))
	return errors.Join(errs...)
}

// openWriter velger lagring ut fra ONELINK_STORAGE. json-lagring har ingen
// Writer; den skrives samlet etter kjøringen.
func openWriter(ctx context.Context, cfg config.Config) (runner.Writer, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Storage {
	case config.StoragePostgres:
		if err := runner.CheckDatabaseConnection(ctx, dbwriter.DriverPostgres, cfg.PostgresDSN); err != nil {
			return nil, noop, fmt.Errorf("klarte ikke å nå databasen: %w", err)
		}
		w, err := dbwriter.NewPostgresWriter(cfg.PostgresDSN)
		if err != nil {
			return nil, noop, err
		}
		if err := w.EnsureSchema(ctx); err != nil {
			_ = w.Close()
			return nil, noop, err
		}
		return w, w.Close, nil

	case config.StorageSQLite:
		w, err := dbwriter.NewSQLiteWriter(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		if err := w.EnsureSchema(ctx); err != nil {
			_ = w.Close()
			return nil, noop, err
		}
		return w, w.Close, nil

	case config.StorageBigQuery:
		w, err := bqwriter.NewBigQueryWriter(ctx, cfg)
		if err != nil {
			return nil, noop, err
		}
		return w, w.Close, nil

	case config.StorageJSON:
		return nil, noop, nil
	}

	return nil, noop, fmt.Errorf("ukjent lagringstype: %q", cfg.Storage)
}
