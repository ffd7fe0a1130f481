package update

// CheckResult is the outcome of a single update check.
type CheckResult struct {
	LocalVersion string // local version exactly as the caller gave it
	LatestTag    string // raw tag reported by GitHub, never the parsed form
	HasUpdate    bool   // remote strictly newer than local
}
