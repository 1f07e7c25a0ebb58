package dataset

import "fmt"

// LoadErrorKind distinguishes the two ways loading a dataset can fail.
type LoadErrorKind int

const (
	// NotFound means the source path does not exist.
	NotFound LoadErrorKind = iota
	// Malformed means the source exists but could not be parsed into a table.
	Malformed
)

// LoadError is returned by the loaders. It is the only error kind that
// escapes dataset construction.
type LoadError struct {
	Kind LoadErrorKind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case NotFound:
		return fmt.Sprintf("dataset not found: %s", e.Path)
	default:
		if e.Err != nil {
			return fmt.Sprintf("malformed dataset %s: %v", e.Path, e.Err)
		}
		return fmt.Sprintf("malformed dataset: %s", e.Path)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }
