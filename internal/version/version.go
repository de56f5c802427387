// Package version exposes build metadata injected at link time.
//
// The release build sets these with:
//
//	go build -ldflags "-X github.com/inkwellhq/blog-api/internal/version.version=v1.2.3 ..."
package version

var (
	version   = "dev"
	buildDate = "unknown"
	gitCommit = "unknown"
)

type Info struct {
	Version   string
	BuildDate string
	GitCommit string
}

func Get() Info {
	return Info{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}
}
