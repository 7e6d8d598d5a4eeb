package store

import "errors"

// Sentinel errors returned by cache methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when an operation targets a record
	// (identified by collection and id) that does not exist in the cache.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrUnknownCollection is returned when an operation names a collection
	// outside the fixed syncable set.
	ErrUnknownCollection = errors.New("unknown collection")
)

// Low-level database operation errors. These are returned (or wrapped) by
// cache methods when a SQL-level operation fails before any domain logic can
// be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning column values during
	// result-set iteration fails.
	ErrScanningRows = errors.New("failed to scan record rows")
)
