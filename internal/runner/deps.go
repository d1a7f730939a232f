package runner

import (
	"context"
	"time"

	"github.com/sagarjana00/onelink-portfolio/internal/models"
)

// Writer lagrer ett ferdig klassifisert prosjekt.
type Writer interface {
	ImportProject(ctx context.Context, entry models.RepoEntry, snapshot time.Time) error
}
