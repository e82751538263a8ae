// Package version reports build information set at link time.
package version

import (
	"fmt"
	"runtime"
)

// These variables are set by the build tool using -ldflags.
var (
	Version   string
	Commit    string
	Branch    string
	BuildTool string
	Time      string
)

// GoVersion is the Go runtime version the binary is built with.
var GoVersion = runtime.Version()

// String returns a one-line description of the build.
func String() string {
	v := Version
	if v == "" {
		v = "dev"
	}

	s := v
	if Commit != "" {
		s += fmt.Sprintf(" (%s", Commit)
		if Branch != "" {
			s += fmt.Sprintf(" on %s", Branch)
		}
		s += ")"
	}

	s += fmt.Sprintf(" %s", GoVersion)

	if BuildTool != "" {
		s += fmt.Sprintf(" built by %s", BuildTool)
	}

	if Time != "" {
		s += fmt.Sprintf(" at %s", Time)
	}

	return s
}
