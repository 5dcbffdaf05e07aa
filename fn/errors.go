package fn

import "errors"

// ErrUnsupportedSource is returned by [From] for a source that is neither a
// template string, a fragment slice nor a callable bag.
var ErrUnsupportedSource = errors.New("fn: unsupported source")
