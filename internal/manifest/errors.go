package manifest

import "errors"

var (
	// ErrNotTracked reports an operation against a name the manifest does not
	// contain.
	ErrNotTracked = errors.New("framework not tracked")
	// ErrAlreadyTracked reports an attempt to track a name twice.
	ErrAlreadyTracked = errors.New("framework already tracked")
	// ErrUnknownStatus reports a status outside the known lifecycle values.
	ErrUnknownStatus = errors.New("unknown status")
)
