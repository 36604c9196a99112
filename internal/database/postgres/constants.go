package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Player Operations
const (
	ErrMsgFailedToCreatePlayer = "failed to create player"
	ErrMsgFailedToUpdatePlayer = "failed to update player"
	ErrMsgFailedToScanPlayer   = "failed to scan player"
)
