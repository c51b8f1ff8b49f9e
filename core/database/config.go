package database

// Config holds configuration for the run-history database connection.
type Config struct {
	// Enabled toggles run-history persistence. When false, runs are only logged.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Driver is the database driver (mysql or sqlite).
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Host is the database host (mysql only).
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port (mysql only).
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user (mysql only).
	User string `mapstructure:"user" default:"root"`
	// Password is the database password (mysql only).
	Password string `mapstructure:"password" default:""`
	// Name is the database name for mysql, or the file path for sqlite.
	Name string `mapstructure:"name" default:"alma-utilities.db"`
	// TimeoutSeconds is the connection/IO timeout in seconds (mysql only).
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
