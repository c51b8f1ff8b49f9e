// Package database handles connections to the optional run-history database.
//
// It provides a wrapper around GORM to configure either a local SQLite file
// (the default, suited to CLI use) or a shared MySQL server (suited to the
// HTTP server deployment) from the application's configuration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("run history disabled", zap.Error(err))
//	}
package database
