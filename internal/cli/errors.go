package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts and agents.
const (
	// Configuration errors
	ErrConfigNotFound = "CONFIG_NOT_FOUND"
	ErrConfigCorrupt  = "CONFIG_CORRUPT"
	ErrConfigInvalid  = "CONFIG_INVALID"
	ErrPathConflict   = "PATH_CONFLICT"

	// Resolution errors
	ErrUnknownSpace = "UNKNOWN_SPACE"
	ErrPathEscape   = "PATH_ESCAPE"

	// Note errors
	ErrTitleEmpty   = "TITLE_EMPTY"
	ErrWriteError   = "WRITE_ERROR"
	ErrFileNotFound = "FILE_NOT_FOUND"

	// Corpus errors
	ErrScanError      = "SCAN_ERROR"
	ErrInvalidPattern = "INVALID_PATTERN"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)
