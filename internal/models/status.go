package models

type ProjectStatus string

const (
	StatusDeployed   ProjectStatus = "deployed"
	StatusInProgress ProjectStatus = "in_progress"
	StatusCodeOnly   ProjectStatus = "code_only"
)

// FetchStatus skiller "ingenting funnet" fra "kallet feilet", selv om
// begge gir tomt resultat videre i pipelinen.
type FetchStatus string

const (
	FetchOK          FetchStatus = "ok"
	FetchEmpty       FetchStatus = "empty"
	FetchNotFound    FetchStatus = "not_found"
	FetchFailed      FetchStatus = "failed"
	FetchRateLimited FetchStatus = "rate_limited"
	FetchDecodeError FetchStatus = "decode_error"
)

type LanguageResult struct {
	Languages map[string]int
	Status    FetchStatus
	Err       error
}

type ReadmeResult struct {
	Text    string
	Present bool
	Status  FetchStatus
	Err     error
}

type RepoListResult struct {
	Repos   []RepoMeta
	Fetched int
	Pages   int
	Capped  bool
	Status  FetchStatus
	Err     error
}
