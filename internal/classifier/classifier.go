package classifier

import (
	"strings"

	"github.com/sagarjana00/onelink-portfolio/internal/models"
)

var inProgressKeywords = []string{
	"wip",
	"work in progress",
	"in progress",
	"todo",
	"experimental",
}

// Classify setter prosjektstatus. Demo-URL trumfer alt, deretter nøkkelord i beskrivelsen.
//
// hasHomepage påvirker foreløpig ikke resultatet.
func Classify(demoURL string, hasHomepage bool, description string) models.ProjectStatus {
	_ = hasHomepage

	if demoURL != "" {
		return models.StatusDeployed
	}

	desc := strings.ToLower(description)
	if desc != "" {
		for _, kw := range inProgressKeywords {
			if strings.Contains(desc, kw) {
				return models.StatusInProgress
			}
		}
	}

	return models.StatusCodeOnly
}
