package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type StorageType string

const (
	StoragePostgres StorageType = "postgres"
	StorageSQLite   StorageType = "sqlite"
	StorageBigQuery StorageType = "bigquery"
	StorageJSON     StorageType = "json"
)

type Config struct {
	Token          string
	User           string
	GitHubAPIURL   string
	RequestTimeout time.Duration
	MaxRepos       int
	Debug          bool
	Parallelism    int // maks antall samtidige repo-prosesser

	Storage       StorageType
	PostgresDSN   string
	SQLitePath    string
	DumpDir       string
	BQProjectID   string
	BQDataset     string
	BQCredentials string // Valgfritt hvis GCP auth skjer automatisk

	ClientID           string
	ClientSecret       string
	OAuthRedirectURI   string
	OAuthStateTTL      time.Duration
	OAuthStateCapacity int
	ListenAddr         string

	AppID             int64
	AppInstallationID int64
	AppPrivateKeyFile string
}

func (c Config) UsesGitHubApp() bool {
	return c.AppID != 0 && c.AppInstallationID != 0 && c.AppPrivateKeyFile != ""
}

// Load leser .env (hvis den finnes) og miljøvariabler uten å validere.
func Load() (Config, error) {
	_ = godotenv.Load()
	return LoadConfigWithEnv(os.Getenv)
}

// NewConfig laster og validerer for sync. user overstyrer GITHUB_USER når den er satt.
func NewConfig(user string) (Config, error) {
	cfg, err := Load()
	if err != nil {
		return Config{}, err
	}
	if user != "" {
		cfg.User = user
	}
	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewServeConfig er som NewConfig, men validerer for OAuth-serveren.
func NewServeConfig() (Config, error) {
	cfg, err := Load()
	if err != nil {
		return Config{}, err
	}
	if err := ValidateServeConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigWithEnv bygger konfigurasjonen fra en getenv-funksjon og fyller inn standardverdier.
func LoadConfigWithEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Token:             getenv("GITHUB_TOKEN"),
		User:              getenv("GITHUB_USER"),
		GitHubAPIURL:      withDefault(getenv("GITHUB_API_URL"), "https://api.github.com"),
		Debug:             getenv("ONELINK_DEBUG") == "true",
		Storage:           StorageType(getenv("ONELINK_STORAGE")),
		PostgresDSN:       getenv("POSTGRES_DSN"),
		SQLitePath:        withDefault(getenv("SQLITE_PATH"), "onelink_portfolio.db"),
		DumpDir:           withDefault(getenv("DUMP_DIR"), "data"),
		BQProjectID:       getenv("BQ_PROJECT_ID"),
		BQDataset:         getenv("BQ_DATASET"),
		BQCredentials:     getenv("BQ_CREDENTIALS"),
		ClientID:          getenv("GITHUB_CLIENT_ID"),
		ClientSecret:      getenv("GITHUB_CLIENT_SECRET"),
		OAuthRedirectURI:  getenv("GITHUB_OAUTH_REDIRECT_URI"),
		ListenAddr:        withDefault(getenv("LISTEN_ADDR"), ":8080"),
		AppPrivateKeyFile: getenv("GITHUB_APP_PRIVATE_KEY_FILE"),
	}

	var err error
	if cfg.RequestTimeout, err = durationEnv(getenv, "GITHUB_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.OAuthStateTTL, err = durationEnv(getenv, "OAUTH_STATE_TTL", 10*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.MaxRepos, err = positiveIntEnv(getenv, "GITHUB_MAX_REPOS", 500); err != nil {
		return Config{}, err
	}
	if cfg.Parallelism, err = positiveIntEnv(getenv, "ONELINK_PARALL", 5); err != nil {
		return Config{}, err
	}
	if cfg.OAuthStateCapacity, err = positiveIntEnv(getenv, "OAUTH_STATE_CAPACITY", 1024); err != nil {
		return Config{}, err
	}
	if cfg.AppID, err = int64Env(getenv, "GITHUB_APP_ID"); err != nil {
		return Config{}, err
	}
	if cfg.AppInstallationID, err = int64Env(getenv, "GITHUB_APP_INSTALLATION_ID"); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ValidateConfig sjekker det som trengs for å kjøre innhenting fra kommandolinjen.
func ValidateConfig(cfg Config) error {
	if cfg.Token == "" && !cfg.UsesGitHubApp() {
		return errors.New("GITHUB_TOKEN må være satt (eller GITHUB_APP_ID, GITHUB_APP_INSTALLATION_ID og GITHUB_APP_PRIVATE_KEY_FILE)")
	}
	if cfg.User == "" {
		return errors.New("GITHUB_USER må være satt")
	}
	return ValidateStorage(cfg)
}

// ValidateServeConfig sjekker det som trengs for OAuth-serveren.
func ValidateServeConfig(cfg Config) error {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return errors.New("GITHUB_CLIENT_ID og GITHUB_CLIENT_SECRET må være satt")
	}
	if cfg.OAuthRedirectURI == "" {
		return errors.New("GITHUB_OAUTH_REDIRECT_URI må være satt")
	}
	return ValidateStorage(cfg)
}

func ValidateStorage(cfg Config) error {
	switch cfg.Storage {
	case "":
		return errors.New("ONELINK_STORAGE må være satt til 'postgres', 'sqlite', 'bigquery' eller 'json'")
	case StoragePostgres:
		if cfg.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN må være satt for postgres-lagring")
		}
	case StorageSQLite:
		if cfg.SQLitePath == "" {
			return errors.New("SQLITE_PATH må være satt for sqlite-lagring")
		}
	case StorageBigQuery:
		if cfg.BQProjectID == "" || cfg.BQDataset == "" {
			return errors.New("BQ_PROJECT_ID og BQ_DATASET må være satt for bigquery-lagring")
		}
	case StorageJSON:
		if cfg.DumpDir == "" {
			return errors.New("DUMP_DIR må være satt for json-lagring")
		}
	default:
		return errors.New("ugyldig verdi for ONELINK_STORAGE – må være 'postgres', 'sqlite', 'bigquery' eller 'json'")
	}
	return nil
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func durationEnv(getenv func(string) string, key string, def time.Duration) (time.Duration, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s må være en positiv varighet, f.eks. 10s", key)
	}
	return d, nil
}

func positiveIntEnv(getenv func(string) string, key string, def int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s må være et positivt heltall", key)
	}
	return n, nil
}

func int64Env(getenv func(string) string, key string) (int64, error) {
	v := getenv(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s må være et heltall", key)
	}
	return n, nil
}
