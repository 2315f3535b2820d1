// Package config provides configuration management for the editor.
//
// It uses Viper to merge defaults (from `default` struct tags), an optional
// config.yaml, a .env file loaded with godotenv, and environment variables.
// Nested keys map to upper-case environment names: defs.item_path is
// DEFS_ITEM_PATH.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, body limit
//   - Log: level, format and optional log file
//   - Database: driver (mysql, sqlite) and connection details for exports
//   - Storage: MinIO/S3 credentials, bucket and key prefixes
//   - Defs: where the item and aura documents live and whether to save on exit
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Defs.ItemPath)
package config
