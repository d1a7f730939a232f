package fetcher

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sagarjana00/onelink-portfolio/internal/models"
)

// FetchUserProfile henter brukeren som eier tokenet.
func (r *RepoFetcher) FetchUserProfile(ctx context.Context) (models.UserProfile, error) {
	var profile models.UserProfile
	err := r.DoRequest(ctx, http.MethodGet, r.BaseURL+"/user", nil, &profile)
	r.Metrics.ObserveRequest("user", string(StatusFor(err)))
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("kunne ikke hente brukerprofil: %w", err)
	}
	if profile.Login == "" {
		return models.UserProfile{}, fmt.Errorf("brukerprofil mangler login")
	}
	return profile, nil
}
