// Package database handles database connections and schema inspection.
//
// It wraps GORM and configures either a MySQL connection (the default) or a SQLite file
// or in-memory database from the application's configuration.
//
// # Connect
//
// Connect opens the database selected by database.driver, applies the pool settings and
// pings it with the configured timeout. SQLite databases are limited to a single connection.
//
// # Schema Inspection
//
// GetTableColumns returns the actual columns of a table (SHOW COLUMNS on MySQL, PRAGMA
// table_info on SQLite). The schema integrity check compares them against the columns
// declared on the file_records model.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return fmt.Errorf("database connection failed: %w", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "file_records")
package database
