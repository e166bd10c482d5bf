package scriptenv

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Filtering completed successfully
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration or missing environment code
	ExitRootNotFound = 14 // Working root does not exist
)

const (
	// MarkerPrefix is the leading character of an environment-specific directory name,
	// e.g. "_dev" or "_prod".
	MarkerPrefix = "_"

	// MaxEnvironmentCodes bounds the number of environment codes accepted per run.
	// Token generation enumerates every subset of the requested codes (2^n - 1 tokens),
	// so this is a hard ceiling on input size rather than a tuning knob.
	MaxEnvironmentCodes = 16

	// EnvironmentVariable supplies comma-separated environment codes when no flag is given.
	EnvironmentVariable = "SCRIPTENV_ENVIRONMENT"

	// DocumentationURL describes the environment-aware directory naming convention.
	DocumentationURL = "https://github.com/rdagumampan/yuniql/wiki/environment-aware-scripts"

	// DefaultScriptPattern is used when the project configuration names no patterns.
	DefaultScriptPattern = "*.sql"
)

// Reserved directory names. These mark pipeline stages, never environments,
// and are compared case-insensitively with or without MarkerPrefix.
const (
	ReservedInit        = "INIT"
	ReservedPre         = "PRE"
	ReservedDraft       = "DRAFT"
	ReservedPost        = "POST"
	ReservedErase       = "ERASE"
	ReservedDrop        = "DROP"
	ReservedTransaction = "TRANSACTION"
)
