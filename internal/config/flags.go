package config

import "flag"

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-driver snapshot storage driver ("file" or "sqlite")
//	-f snapshot file path (file driver)
//	-d database file path (sqlite driver)
//	-c/-config json file path with configs
//	-log-level minimum log level
//	-log-file log file path
func ParseFlags() *StructuredConfig {
	var driver string
	var snapshotPath string
	var databaseDSN string
	var jsonConfigPath string
	var logLevel string
	var logFilePath string

	flag.StringVar(&driver, "driver", "", "Snapshot storage driver (file|sqlite)")
	flag.StringVar(&snapshotPath, "f", "", "Snapshot file path")
	flag.StringVar(&databaseDSN, "d", "", "Database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level")
	flag.StringVar(&logFilePath, "log-file", "", "Log file path")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			Driver:       driver,
			SnapshotPath: snapshotPath,
			DSN:          databaseDSN,
		},
		Log: Log{
			Level:    logLevel,
			FilePath: logFilePath,
		},
		JSONFilePath: jsonConfigPath,
	}
}
