package interfaces

import "errors"

// Store failures are classified by the repositories into these sentinels so
// use cases and handlers can tailor the message shown to the customer.
// Anything else is a generic store failure.
var (
	ErrStorePermissionDenied = errors.New("document store: permission denied")
	ErrStoreUnavailable      = errors.New("document store: unavailable")
	ErrStoreUnauthenticated  = errors.New("document store: unauthenticated")
)
