package models

import "strings"

// RepoMeta er repo-beskrivelsen slik GitHub returnerer den fra /users/{user}/repos.
type RepoMeta struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Owner       RepoOwner `json:"owner"`
	Description *string   `json:"description"`
	Homepage    *string   `json:"homepage"`
	HtmlUrl     string    `json:"html_url"`
	IsFork      bool      `json:"fork"`
	Archived    bool      `json:"archived"`
	Private     bool      `json:"private"`
	Language    string    `json:"language"`
	Stars       int64     `json:"stargazers_count"`
	Forks       int64     `json:"forks_count"`
	Topics      []string  `json:"topics"`
	UpdatedAt   string    `json:"updated_at"`
	PushedAt    string    `json:"pushed_at"`
	CreatedAt   string    `json:"created_at"`
}

type RepoOwner struct {
	Login string `json:"login"`
}

// OwnerLogin faller tilbake på full_name hvis owner mangler i responsen.
func (r RepoMeta) OwnerLogin() string {
	if r.Owner.Login != "" {
		return r.Owner.Login
	}
	if i := strings.Index(r.FullName, "/"); i > 0 {
		return r.FullName[:i]
	}
	return ""
}

func (r RepoMeta) HomepageURL() string {
	if r.Homepage == nil {
		return ""
	}
	return strings.TrimSpace(*r.Homepage)
}

func (r RepoMeta) HasHomepage() bool {
	return r.HomepageURL() != ""
}

func (r RepoMeta) DescriptionText() string {
	if r.Description == nil {
		return ""
	}
	return *r.Description
}

// RepoEntry er resultatet av pipelinen for ett repo.
type RepoEntry struct {
	Repo          RepoMeta       `json:"repo"`
	Languages     map[string]int `json:"languages"`
	Readme        *string        `json:"readme"`
	DemoURL       *string        `json:"demo_url"`
	Status        ProjectStatus  `json:"status"`
	LanguageFetch FetchStatus    `json:"language_fetch"`
	ReadmeFetch   FetchStatus    `json:"readme_fetch"`
}

type UserProfile struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	HtmlUrl   string `json:"html_url"`
	Bio       string `json:"bio"`
}
