package callable

import "errors"

// Sentinel errors returned by the callable package.
var (
	// ErrNotCallable is returned by [From] when the bag has no function
	// under [Key], or the value there has an unsupported signature.
	ErrNotCallable = errors.New("callable: bag has no invocation function")

	// ErrReservedKey is returned when a write targets [Key] after adaptation.
	ErrReservedKey = errors.New("callable: key is reserved for the invocation function")
)
