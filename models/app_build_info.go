package models

// AppBuildInfo holds ldflags-injected build metadata shown on the
// start screen.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}
