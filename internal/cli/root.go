package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `                           _
 _ __  _ __ ___  _ __   __| | ___   ___
| '_ \| '__/ _ \| '_ \ / _` + "`" + ` |/ _ \ / __|
| |_) | | | (_) | |_) | (_| | (_) | (__
| .__/|_|  \___/| .__/ \__,_|\___/ \___|
|_|             |_|`

var rootCmd = &cobra.Command{
	Use:   "propdoc",
	Short: "Spring Boot configuration metadata to markdown",
	Long: asciiLogo + `

propdoc scans your build output for META-INF/spring-configuration-metadata.json
descriptors and renders every documented property into a single markdown file.

Run it after the build; the annotation processor produces the metadata,
propdoc turns it into documentation your readers can actually browse.

Values resolve in order: flags, then PROPDOC_* environment variables
(a .env file in the working directory is honored), then propdoc.yaml,
then built-in defaults.

Exit Codes:
  0  - Success (including runs that find no descriptors)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Folder discovery failed
  12 - Descriptor parsing failed
  13 - Template not found or invalid
  14 - Writing the output file failed
  15 - User denied overwrite approval`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGenerate,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for propdoc")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
