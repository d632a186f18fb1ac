package config

const (
	// DefaultTestLogFolderName is the folder created under the output directory
	DefaultTestLogFolderName = "Advanced_Logs"
	// DefaultEncoding is used to decode binary content
	DefaultEncoding = "UTF-8"
	// DefaultContextDir is where the CLI keeps its execution context
	DefaultContextDir = ".advlog"
	// DefaultContextFile is the execution context file name
	DefaultContextFile = "context.json"
	// DefaultEnvFile is the dotenv file loaded on startup
	DefaultEnvFile = ".env"
	// DefaultLogLevel is the default console verbosity
	DefaultLogLevel = "info"
)

// Environment variables
const (
	// OutputDirVariable holds the test run's default output directory
	OutputDirVariable = "OUTPUT_DIR"
	// EnvOutputDir overrides the output directory for advanced logs
	EnvOutputDir = "ADVLOG_OUTPUT_DIR"
	// EnvTestLogFolder overrides the advanced log folder name
	EnvTestLogFolder = "ADVLOG_TEST_LOG_FOLDER"
	// EnvLogLevel overrides the console verbosity
	EnvLogLevel = "ADVLOG_LOG_LEVEL"
)
