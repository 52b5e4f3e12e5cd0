package propdoc

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Document generated, or no descriptor files found
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid configuration or parameters
	ExitDiscoveryError = 11 // Metadata folder could not be walked
	ExitParseError     = 12 // Descriptor file is not valid configuration metadata
	ExitTemplateError  = 13 // Template file missing or failed to compile
	ExitWriteError     = 14 // Rendered document could not be written
	ExitApprovalDenied = 15 // User denied overwrite approval
)

const (
	// DescriptorDirName is the directory the build-time annotation processor
	// writes configuration metadata into, inside classes directories and jars.
	DescriptorDirName = "META-INF"

	// DescriptorFileName is the descriptor file name emitted by the
	// annotation processor.
	DescriptorFileName = "spring-configuration-metadata.json"

	// DefaultMetadataFolder is searched when no metadata folders are given.
	DefaultMetadataFolder = "./"

	// ProjectConfigFileName is the optional per-project configuration file
	// resolved from the working directory.
	ProjectConfigFileName = "propdoc.yaml"

	// DefaultTemplateFileName is the file name used when the embedded
	// template is extracted for customization.
	DefaultTemplateFileName = "propdoc.md.tmpl"

	// DefaultOutputFileName is the output file suggested by propdoc init.
	DefaultOutputFileName = "configuration-properties.md"
)

// Environment variables consulted during configuration resolution.
// Explicit flags win over the environment, the environment wins over
// propdoc.yaml.
const (
	EnvOutput          = "PROPDOC_OUTPUT"
	EnvTemplate        = "PROPDOC_TEMPLATE"
	EnvMetadataFolders = "PROPDOC_METADATA_FOLDERS"
)
