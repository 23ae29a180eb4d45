package repositories

import "errors"

// Sentinel errors returned by repository implementations. Handlers map
// these to HTTP statuses.
var (
	// ErrInvalidID means the given id is not a valid 24-hex ObjectID and
	// was rejected before any query was issued.
	ErrInvalidID = errors.New("invalid id format")

	// ErrUserNotFound means no user document matched the given id.
	ErrUserNotFound = errors.New("user not found")

	// ErrCommentNotFound means the user exists but no embedded comment
	// matched the given comment id.
	ErrCommentNotFound = errors.New("comment not found")
)
