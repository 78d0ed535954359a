// Package postgresql owns the bun handle shared by every repository.
package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"evfleet/backend/foundation/web"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
)

type Database struct {
	*bun.DB
}

func NewDatabase(username, password, host, port, name string, disableTLS bool) *Database {
	sslMode := "require"
	if disableTLS {
		sslMode = "disable"
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		username, password, host, port, name, sslMode)

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	db.AddQueryHook(bundebug.NewQueryHook(bundebug.FromEnv("BUNDEBUG")))

	return &Database{DB: db}
}

// ValidateStruct applies the same required-field rules used for request
// binding, so repositories can re-check before touching the database.
func (d *Database) ValidateStruct(s interface{}, requiredFields ...string) error {
	return web.RequireFields(s, requiredFields...)
}

// DeleteRow removes a row physically. Zero rows affected becomes a 404.
func (d *Database) DeleteRow(ctx context.Context, table string, id int) error {
	result, err := d.NewDelete().Table(table).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrapf(err, "deleting from %s", table), http.StatusInternalServerError)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "reading rows affected"), http.StatusInternalServerError)
	}
	if rows == 0 {
		return web.NewRequestError(errors.Errorf("no row with id %d in %s", id, table), http.StatusNotFound)
	}

	return nil
}
