package storage

import (
	"database/sql"
	"time"
)

type Project struct {
	GithubID        int64
	Owner           string
	Name            string
	FullName        string
	Description     sql.NullString
	Homepage        sql.NullString
	HtmlUrl         string
	PrimaryLanguage string
	Stars           int64
	Forks           int64
	Topics          string
	Readme          sql.NullString
	DemoUrl         sql.NullString
	Status          string
	LanguageFetch   string
	ReadmeFetch     string
	UpdatedAt       string
	PushedAt        string
	HentetDato      time.Time
}

type ProjectLanguage struct {
	GithubID   int64
	Language   string
	Bytes      int64
	HentetDato time.Time
}
