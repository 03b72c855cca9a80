package repository

import (
	"database/sql"
	"embed"
	"fmt"
	"strings"
)

//go:embed schema_mysql.sql schema_sqlite.sql
var schemaFS embed.FS

// Dialect selects which DDL variant InitSchema applies.
type Dialect string

const (
	DialectMySQL  Dialect = "mysql"
	DialectSQLite Dialect = "sqlite3"
)

// InitSchema creates the four tables if they do not exist yet.  The DDL
// is executed statement by statement because the MySQL driver rejects
// multi-statement Exec by default.
func InitSchema(db *sql.DB, dialect Dialect) error {
	var file string
	switch dialect {
	case DialectMySQL:
		file = "schema_mysql.sql"
	case DialectSQLite:
		file = "schema_sqlite.sql"
	default:
		return fmt.Errorf("unknown dialect %q", dialect)
	}
	b, err := schemaFS.ReadFile(file)
	if err != nil {
		return err
	}
	for _, stmt := range strings.Split(string(b), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
