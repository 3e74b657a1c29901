package options

var (
	// Debuggers probed when none are configured
	DefaultDebuggers = []string{"gdb"}

	// Source extensions scanned for tests when a directory is given
	DefaultExtensions = []string{".rs", ".c", ".cpp", ".go"}

	DefaultTimeoutSeconds = 60

	DefaultOutput = "text"

	// Name of the directory in the user's home that holds the config file
	ConfigDirName  = ".dbt"
	ConfigFileName = "config.yaml"
)
