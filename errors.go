package folio

import "errors"

// The error taxonomy of the engine. Every public operation either succeeds
// or fails wrapping one of these sentinels, leaving the state unchanged.
// Match with errors.Is.
var (
	// ErrInvalidDate reports a malformed or calendar-impossible date string.
	ErrInvalidDate = errors.New("invalid date")
	// ErrUnknownTicker reports an operation referencing an asset that was
	// never registered, where registration is required.
	ErrUnknownTicker = errors.New("unknown ticker")
	// ErrIndexRange reports a transaction removal by an invalid position.
	ErrIndexRange = errors.New("transaction index out of range")
	// ErrIO reports a file open, read or write failure.
	ErrIO = errors.New("file operation failed")
	// ErrParse reports a portfolio file that is structurally unreadable or
	// missing its mandatory assets section.
	ErrParse = errors.New("unreadable portfolio file")
)
