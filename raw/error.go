package raw

import (
	"fmt"
	"strings"
)

// VersionError reports a call gated behind a higher API tier than the
// loaded library supports.
type VersionError struct {
	Required Version
	Loaded   Version
	Call     string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("%s requires %s, loaded library supports %s", e.Call, e.Required, e.Loaded)
}

// LoadError reports a library that could not serve even the base tier: it
// either failed to open or is missing OpenCL 1.0 entry points.
type LoadError struct {
	Path    string
	Missing []string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("load %s: missing OpenCL 1.0 entry points: %s", e.Path, strings.Join(e.Missing, ", "))
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
