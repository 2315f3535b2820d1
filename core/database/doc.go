// Package database opens the optional SQL database the editor exports
// definitions to, and inspects table schemas.
//
// # Connect
//
// Connect supports the mysql and sqlite drivers through GORM. The sqlite
// driver takes Name as the file path, which makes ":memory:" convenient for
// tests.
//
// # Schema Inspection
//
// GetTableColumns reads a table's columns (SHOW COLUMNS on MySQL, PRAGMA
// table_info on sqlite) and MissingColumns compares them against the columns
// an export expects.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	missing, err := database.MissingColumns(db, "item_defs", []string{"id", "name"})
package database
