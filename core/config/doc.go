// Package config provides configuration management for the reconciliation
// service.
//
// It utilizes Viper for loading configuration from environment variables
// and a .env file, with defaults taken from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key, upload limit)
//   - Database: ledger MySQL connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: logging level and format
//   - Recon: reconciliation run defaults (rules path, ledger table, cache TTL)
//
// Note that the reconciliation rules themselves (merge key, comparison
// pairs, labels) live in a separate YAML file loaded by core/reconcile;
// this package only points at it.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
