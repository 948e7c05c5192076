// Package buildinfo exposes version metadata shared by robson and robson-go.
// Values are overridden at build time via -ldflags, e.g.
//
//	-X github.com/ldamasio/robson/cli/internal/buildinfo.Version=0.2.0
package buildinfo

import "strings"

var (
	// Version is the semantic version or custom string.
	Version = "dev"
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// BuildTime is the build timestamp (optional).
	BuildTime = "unknown"
)

// Summary returns a concise single-line version string.
func Summary() string {
	v := Version
	if v == "" {
		v = "dev"
	}

	parts := make([]string, 0, 2)
	if Commit != "" {
		c := Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if BuildTime != "" && BuildTime != "unknown" {
		parts = append(parts, "built="+BuildTime)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}
