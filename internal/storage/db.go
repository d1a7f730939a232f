package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"regexp"
)

//go:embed schema.sql
var Schema string

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

// Spørringene skrives med $N. SQLite får ?N, som binder samme argument.
var pgParam = regexp.MustCompile(`\$(\d+)`)

func New(db DBTX) *Queries {
	return &Queries{db: db, dialect: Postgres}
}

func NewWithDialect(db DBTX, dialect Dialect) *Queries {
	return &Queries{db: db, dialect: dialect}
}

type Queries struct {
	db      DBTX
	dialect Dialect
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx, dialect: q.dialect}
}

func (q *Queries) rebind(query string) string {
	if q.dialect == SQLite {
		return pgParam.ReplaceAllString(query, "?$1")
	}
	return query
}
