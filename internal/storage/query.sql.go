package storage

import (
	"context"
	"database/sql"
	"time"
)

const insertProject = `-- name: InsertProject :exec
INSERT INTO projects (
    github_id, owner, name, full_name, description, homepage, html_url,
    primary_language, stars, forks, topics, readme, demo_url, status,
    language_fetch, readme_fetch, updated_at, pushed_at, hentet_dato
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19
)
ON CONFLICT (github_id) DO UPDATE SET
    owner = EXCLUDED.owner,
    name = EXCLUDED.name,
    full_name = EXCLUDED.full_name,
    description = EXCLUDED.description,
    homepage = EXCLUDED.homepage,
    html_url = EXCLUDED.html_url,
    primary_language = EXCLUDED.primary_language,
    stars = EXCLUDED.stars,
    forks = EXCLUDED.forks,
    topics = EXCLUDED.topics,
    readme = EXCLUDED.readme,
    demo_url = EXCLUDED.demo_url,
    status = EXCLUDED.status,
    language_fetch = EXCLUDED.language_fetch,
    readme_fetch = EXCLUDED.readme_fetch,
    updated_at = EXCLUDED.updated_at,
    pushed_at = EXCLUDED.pushed_at,
    hentet_dato = EXCLUDED.hentet_dato
`

type InsertProjectParams struct {
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

func (q *Queries) InsertProject(ctx context.Context, arg InsertProjectParams) error {
	_, err := q.db.ExecContext(ctx, q.rebind(insertProject),
		arg.GithubID,
		arg.Owner,
		arg.Name,
		arg.FullName,
		arg.Description,
		arg.Homepage,
		arg.HtmlUrl,
		arg.PrimaryLanguage,
		arg.Stars,
		arg.Forks,
		arg.Topics,
		arg.Readme,
		arg.DemoUrl,
		arg.Status,
		arg.LanguageFetch,
		arg.ReadmeFetch,
		arg.UpdatedAt,
		arg.PushedAt,
		arg.HentetDato,
	)
	return err
}

const deleteProjectLanguages = `-- name: DeleteProjectLanguages :exec
DELETE FROM project_languages WHERE github_id = $1
`

func (q *Queries) DeleteProjectLanguages(ctx context.Context, githubID int64) error {
	_, err := q.db.ExecContext(ctx, q.rebind(deleteProjectLanguages), githubID)
	return err
}

const insertProjectLanguage = `-- name: InsertProjectLanguage :exec
INSERT INTO project_languages (github_id, language, bytes, hentet_dato)
VALUES ($1, $2, $3, $4)
`

type InsertProjectLanguageParams struct {
	GithubID   int64
	Language   string
	Bytes      int64
	HentetDato time.Time
}

func (q *Queries) InsertProjectLanguage(ctx context.Context, arg InsertProjectLanguageParams) error {
	_, err := q.db.ExecContext(ctx, q.rebind(insertProjectLanguage),
		arg.GithubID,
		arg.Language,
		arg.Bytes,
		arg.HentetDato,
	)
	return err
}

const getProject = `-- name: GetProject :one
SELECT github_id, owner, name, full_name, description, homepage, html_url,
       primary_language, stars, forks, topics, readme, demo_url, status,
       language_fetch, readme_fetch, updated_at, pushed_at, hentet_dato
FROM projects WHERE github_id = $1
`

func (q *Queries) GetProject(ctx context.Context, githubID int64) (Project, error) {
	row := q.db.QueryRowContext(ctx, q.rebind(getProject), githubID)
	var i Project
	err := scanProject(row, &i)
	return i, err
}

const listProjectsByOwner = `-- name: ListProjectsByOwner :many
SELECT github_id, owner, name, full_name, description, homepage, html_url,
       primary_language, stars, forks, topics, readme, demo_url, status,
       language_fetch, readme_fetch, updated_at, pushed_at, hentet_dato
FROM projects WHERE owner = $1 ORDER BY github_id
`

func (q *Queries) ListProjectsByOwner(ctx context.Context, owner string) ([]Project, error) {
	rows, err := q.db.QueryContext(ctx, q.rebind(listProjectsByOwner), owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Project
	for rows.Next() {
		var i Project
		if err := scanProject(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listProjectLanguages = `-- name: ListProjectLanguages :many
SELECT github_id, language, bytes, hentet_dato
FROM project_languages WHERE github_id = $1 ORDER BY language
`

func (q *Queries) ListProjectLanguages(ctx context.Context, githubID int64) ([]ProjectLanguage, error) {
	rows, err := q.db.QueryContext(ctx, q.rebind(listProjectLanguages), githubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ProjectLanguage
	for rows.Next() {
		var i ProjectLanguage
		if err := rows.Scan(&i.GithubID, &i.Language, &i.Bytes, &i.HentetDato); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(s scanner, i *Project) error {
	return s.Scan(
		&i.GithubID,
		&i.Owner,
		&i.Name,
		&i.FullName,
		&i.Description,
		&i.Homepage,
		&i.HtmlUrl,
		&i.PrimaryLanguage,
		&i.Stars,
		&i.Forks,
		&i.Topics,
		&i.Readme,
		&i.DemoUrl,
		&i.Status,
		&i.LanguageFetch,
		&i.ReadmeFetch,
		&i.UpdatedAt,
		&i.PushedAt,
		&i.HentetDato,
	)
}
