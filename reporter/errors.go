package reporter

import "fmt"

// ConfigurationError indicates invalid or missing construction options. It is
// the only fatal error the reporter produces: everything after construction
// is best-effort.
type ConfigurationError struct {
	Option string
	Reason string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("invalid reporter configuration (%s): %s", e.Option, e.Reason)
}
