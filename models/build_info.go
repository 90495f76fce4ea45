package models

// AppBuildInfo carries the ldflags-injected build identification shown on the
// version overlay.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}
