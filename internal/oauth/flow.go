package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"

	"github.com/sagarjana00/onelink-portfolio/internal/config"
)

var (
	ErrInvalidState = errors.New("ugyldig eller utløpt OAuth-state")
	ErrMissingCode  = errors.New("mangler OAuth-kode")
)

var Scopes = []string{"user:email", "public_repo", "repo"}

type Flow struct {
	Config *oauth2.Config
	States StateStore
	// HTTPClient brukes ved kode-utveksling. nil gir http.DefaultClient.
	HTTPClient *http.Client
}

func NewFlow(cfg config.Config, states StateStore) *Flow {
	endpoint := github.Endpoint
	endpoint.AuthStyle = oauth2.AuthStyleInParams

	return &Flow{
		Config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.OAuthRedirectURI,
			Scopes:       Scopes,
			Endpoint:     endpoint,
		},
		States: states,
	}
}

// Begin lager en ny state, lagrer den og returnerer URL-en brukeren skal sendes til.
func (f *Flow) Begin(ctx context.Context) (string, string, error) {
	state, err := newState()
	if err != nil {
		return "", "", fmt.Errorf("kunne ikke lage state: %w", err)
	}
	if err := f.States.Save(state); err != nil {
		return "", "", fmt.Errorf("kunne ikke lagre state: %w", err)
	}
	return f.Config.AuthCodeURL(state), state, nil
}

// Complete bruker opp state og bytter koden mot et access token.
func (f *Flow) Complete(ctx context.Context, state, code string) (*oauth2.Token, error) {
	if state == "" || !f.States.Consume(state) {
		return nil, ErrInvalidState
	}
	if code == "" {
		return nil, ErrMissingCode
	}

	if f.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, f.HTTPClient)
	}

	token, err := f.Config.Exchange(ctx, code)
	if err != nil {
		slog.Warn("Kode-utveksling mot GitHub feilet", "error", err)
		return nil, fmt.Errorf("kode-utveksling feilet: %w", err)
	}
	return token, nil
}

func newState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
