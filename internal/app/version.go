package app

import "fmt"

// Build metadata, injected with
// -ldflags "-X github.com/heartmarshall/crm-backend/internal/app.Version=1.4.0 -X ...Commit=abc123".
// Version is reported by /health and attached to every log record.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the one-line build description logged at startup.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
