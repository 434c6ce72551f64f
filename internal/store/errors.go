package store

import "errors"

// Sentinel errors returned by storage methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrItemNotFound is returned when a key has no value in the session.
	ErrItemNotFound = errors.New("session item not found")
)

// Low-level database operation errors. These are wrapped by the SQLite
// storage when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
