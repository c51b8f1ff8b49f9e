// Package config provides configuration management for the Alma utilities.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults taken from the 'default' struct tags
// of the partial configuration structs.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Alma: API key, regional base URL, and lookup timeout
//   - Server: HTTP server settings (port, API key)
//   - Storage: S3/MinIO credentials and the imports bucket
//   - Database: optional run-history database (sqlite or mysql)
//   - Log: logging level and format
//
// Environment variables map onto nested keys by replacing dots with
// underscores, e.g. ALMA_API_KEY sets alma.api_key.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Alma.BaseURL)
package config
