package store

import "errors"

// Sentinel errors returned by datasource methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against
// these values.
var (
	// ErrBatchInsert is returned when a transactional batch upsert fails
	// on any row; nothing from the batch is persisted.
	ErrBatchInsert = errors.New("batch upsert failed")

	// ErrShareNotFound is returned when a removal targets a share that
	// is not present in the cache.
	ErrShareNotFound = errors.New("share not found in local cache")
)

// Low-level database operation errors. These are returned (or wrapped)
// by datasource methods when a SQL-level operation fails before any
// domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver
	// cannot start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back at
	// this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning column values during
	// row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
