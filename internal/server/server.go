package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sagarjana00/onelink-portfolio/internal/config"
	"github.com/sagarjana00/onelink-portfolio/internal/fetcher"
	"github.com/sagarjana00/onelink-portfolio/internal/metrics"
	"github.com/sagarjana00/onelink-portfolio/internal/models"
	"github.com/sagarjana00/onelink-portfolio/internal/oauth"
	"github.com/sagarjana00/onelink-portfolio/internal/runner"
)

// Session er GitHub-tilgangen for én innlogget bruker.
type Session interface {
	fetcher.GitHubAPI
	FetchUserProfile(ctx context.Context) (models.UserProfile, error)
}

type Server struct {
	Cfg        config.Config
	Flow       *oauth.Flow
	NewSession func(token string) Session
	Writer     runner.Writer
	Metrics    *metrics.Recorder
	// DumpDir settes ved json-lagring.
	DumpDir string
}

// New kobler OAuth-flyten til en fetcher som får brukerens token etter innlogging.
func New(cfg config.Config, flow *oauth.Flow, base *fetcher.RepoFetcher, writer runner.Writer, rec *metrics.Recorder) *Server {
	return &Server{
		Cfg:  cfg,
		Flow: flow,
		NewSession: func(token string) Session {
			return base.WithToken(token)
		},
		Writer:  writer,
		Metrics: rec,
	}
}

type CallbackResult struct {
	User     models.UserProfile `json:"user"`
	Projects []models.RepoEntry `json:"projects"`
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/auth/github", func(r chi.Router) {
		r.Get("/login", s.HandleLogin)
		r.Get("/callback", s.HandleCallback)
	})

	if s.Metrics != nil {
		r.Handle("/metrics", s.Metrics.Handler())
	}

	return r
}

func (s *Server) HandleLogin(w http.ResponseWriter, r *http.Request) {
	authURL, _, err := s.Flow.Begin(r.Context())
	if err != nil {
		slog.Error("Kunne ikke starte OAuth-innlogging", "error", err)
		SendError(w, "kunne ikke starte innlogging", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, authURL, http.StatusFound)
}

func (s *Server) HandleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	token, err := s.Flow.Complete(ctx, q.Get("state"), q.Get("code"))
	switch {
	case errors.Is(err, oauth.ErrInvalidState), errors.Is(err, oauth.ErrMissingCode):
		slog.Warn("Avviste OAuth-callback", "error", err)
		SendError(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		SendError(w, "kode-utveksling mot GitHub feilet", http.StatusBadGateway)
		return
	}

	session := s.NewSession(token.AccessToken)

	profile, err := session.FetchUserProfile(ctx)
	if err != nil {
		slog.Error("Kunne ikke hente brukerprofil", "error", err)
		SendError(w, "kunne ikke hente brukerprofil fra GitHub", http.StatusBadGateway)
		return
	}

	app := runner.NewApp(s.Cfg, session, s.Writer)
	app.Metrics = s.Metrics

	projects, err := app.Run(ctx, profile.Login)
	if err != nil {
		// Prosjektene er fortsatt gyldige selv om lagringen feilet.
		slog.Error("Lagring feilet for en eller flere prosjekter", "user", profile.Login, "error", err)
	}
	if s.DumpDir != "" {
		if err := fetcher.StoreProjectsJSON(s.DumpDir, profile.Login, projects); err != nil {
			slog.Error("Kunne ikke skrive prosjekter til fil", "user", profile.Login, "error", err)
		}
	}

	SendSuccess(w, CallbackResult{User: profile, Projects: projects})
}
