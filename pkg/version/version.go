package version

// Set at build time with -ldflags "-X github.com/solo-io/dbt/pkg/version.Version=..."
var (
	Version   = "dev"
	TimeStamp = "unknown"
)
