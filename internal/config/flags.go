package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-backend storage backend: sqlite, file or memory
//	-d sqlite database file path
//	-f file-backend JSON document path
//	-exports-dir directory for CSV export files
//	-snapshots-dir directory for periodic backups
//	-snapshot-interval backup interval (e.g., "10m", "1h")
//	-no-seed skip seeding the default catalog and demo accounts
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var backend string
	var dbPath string
	var filePath string
	var exportsDir string
	var snapshotsDir string
	var snapshotInterval time.Duration
	var disableSeed bool
	var jsonConfigPath string

	flag.StringVar(&backend, "backend", "", "Storage backend: sqlite, file or memory")
	flag.StringVar(&dbPath, "d", "", "SQLite database file path")
	flag.StringVar(&filePath, "f", "", "File-backend JSON document path")
	flag.StringVar(&exportsDir, "exports-dir", "", "CSV exports directory")
	flag.StringVar(&snapshotsDir, "snapshots-dir", "", "Snapshot backups directory")
	flag.DurationVar(&snapshotInterval, "snapshot-interval", 0, "Snapshot interval (e.g., 10m, 1h)")
	flag.BoolVar(&disableSeed, "no-seed", false, "Skip seeding default data on first access")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DisableSeed: disableSeed,
		},
		Storage: Storage{
			Backend: backend,
			DB: DB{
				Path: dbPath,
			},
			FilePath:     filePath,
			ExportsDir:   exportsDir,
			SnapshotsDir: snapshotsDir,
		},
		Workers: Workers{
			SnapshotInterval: snapshotInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
