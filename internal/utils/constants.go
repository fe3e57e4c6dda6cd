package utils

// Well-known file and directory names used across the application.
const (
	// RulesFileName is the override rules file read from the repository root.
	// The file itself is always dropped from the generated document.
	RulesFileName = ".repodocrc"
	// GitDirectoryName is the repository metadata directory.
	GitDirectoryName = ".git"
	// DefaultOutputFileName is the document destination when none is given.
	DefaultOutputFileName = "repo_contents.md"
	// LocalConfigFileName is the per-repository application configuration file.
	LocalConfigFileName = ".repodoc.yaml"
	// GlobalConfigDirectoryName is the directory under the user home that
	// holds the global application configuration.
	GlobalConfigDirectoryName = ".repodoc"
	// GlobalConfigFileName is the global application configuration file.
	GlobalConfigFileName = "config.yaml"
)

// Fatal error messages reported by the application entry point.
const (
	// LoggerInitializationFailedMessageFormat reports a failed logger build.
	LoggerInitializationFailedMessageFormat = "logger initialization failed: %v"
	// ApplicationExecutionFailedMessage prefixes fatal application errors.
	ApplicationExecutionFailedMessage = "application execution failed"
)
