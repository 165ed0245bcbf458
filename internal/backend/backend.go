// Package backend implements the row stores on PostgreSQL.
package backend

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/mishaello/re-blog/internal/utils/databaseutils"
)

type Postgres struct {
	log         *slog.Logger
	sqlTemplate *databaseutils.SQLTemplate
}

func New(db *sql.DB, log *slog.Logger) *Postgres {
	return &Postgres{
		log:         log,
		sqlTemplate: databaseutils.NewSQLTemplate(db, 3*time.Second),
	}
}
