package adapter

import "errors"

var (
	// ErrUnauthorized - an authenticated call was made without a session.
	// Recoverable by connecting.
	ErrUnauthorized = errors.New("drive client unauthorized")

	// ErrSessionExpired - an authenticated call discovered the session has
	// lapsed mid-flight. The engine must stop syncing and wait for an
	// external reauthentication signal; it is never retried automatically.
	ErrSessionExpired = errors.New("drive session expired")

	// ErrNotFound - the remote object no longer exists. For snapshot
	// downloads this means "no remote data yet", not a fatal condition.
	ErrNotFound = errors.New("remote object not found")

	// ErrBadRequest - the drive rejected the request as malformed.
	ErrBadRequest = errors.New("drive rejected request")

	// ErrUnavailable - transient transport or server-side failure. Surfaced
	// as the error state and retried only on the next scheduled or manual
	// sync.
	ErrUnavailable = errors.New("drive unavailable")
)
