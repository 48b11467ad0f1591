package version

// set via ldflags on release builds
var (
	Version   = "dev"
	GitCommit = ""

	FullVersion = func() string {
		if GitCommit != "" {
			return Version + " (" + GitCommit + ")"
		}
		return Version
	}()
)
