package runner

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/sagarjana00/onelink-portfolio/internal/models"
)

var OpenSQL = sql.Open

// RunAppSafe kjører hele pipelinen for én bruker og logger varighet og minnebruk.
func RunAppSafe(ctx context.Context, app *App, username string) ([]models.RepoEntry, error) {
	start := time.Now()

	entries, err := app.Run(ctx, username)
	if err != nil {
		slog.Debug("Runner feilet", "error", err)
		return entries, err
	}

	LogMemoryStats()
	slog.Info("Ferdig!", "varighet", time.Since(start).String(), "prosjekter", len(entries))
	return entries, nil
}

func LogMemoryStats() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	slog.Debug("Minnebruk",
		"alloc", ByteSize(m.Alloc),
		"totalAlloc", ByteSize(m.TotalAlloc),
		"sys", ByteSize(m.Sys),
		"numGC", m.NumGC)
}

func ByteSize(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := unit, 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

// CheckDatabaseConnection åpner og pinger databasen før en lang kjøring starter.
func CheckDatabaseConnection(ctx context.Context, driver, dsn string) error {
	db, err := OpenSQL(driver, dsn)
	if err != nil {
		slog.Debug("Klarte ikke å åpne databaseforbindelse", "driver", driver, "error", err)
		return fmt.Errorf("DB open-feil: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			slog.Warn("Klarte ikke å lukke testDB", "error", cerr)
		}
	}()

	if err := db.PingContext(ctx); err != nil {
		slog.Debug("Ping mot database feilet", "driver", driver, "error", err)
		return fmt.Errorf("DB ping-feil: %w", err)
	}

	slog.Info("DB-tilkobling OK", "driver", driver)
	return nil
}
