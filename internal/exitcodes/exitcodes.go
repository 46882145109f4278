package exitcodes

// Exit codes for purge-deps.
const (
	Success      = 0 // Run completed, or help/version printed
	Usage        = 2 // Unknown option, missing value or conflicting flags
	RuntimeError = 4 // Filesystem failure during the walk
)
