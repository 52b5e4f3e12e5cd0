package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/propdoc/propdoc/internal/config"
	"github.com/propdoc/propdoc/internal/files/loader"
	"github.com/propdoc/propdoc/internal/logging"
	"github.com/propdoc/propdoc/internal/services"
	"github.com/propdoc/propdoc/pkg/propdoc"
)

type generateFlagValues struct {
	metadataFolders []string
	output          string
	template        string
}

var generateFlags generateFlagValues

func init() {
	rootCmd.Flags().StringArrayVarP(&generateFlags.metadataFolders, "metadata-location-folders", "m", nil,
		"Folder to scan recursively for META-INF/spring-configuration-metadata.json\n"+
			"(can be specified multiple times, descriptors are processed in flag order)\n"+
			"Precedence: -m > $PROPDOC_METADATA_FOLDERS (comma-separated) > propdoc.yaml > ./\n"+
			"Example: -m ./core/build/classes -m ./web/build/classes")
	rootCmd.Flags().StringVarP(&generateFlags.output, "output", "o", "",
		"Path of the markdown file to generate\n"+
			"Precedence: -o > $PROPDOC_OUTPUT > propdoc.yaml\n"+
			"Example: -o docs/configuration-properties.md")
	rootCmd.Flags().StringVarP(&generateFlags.template, "template", "t", "",
		"Custom Go template file for the generated document\n"+
			"Precedence: -t > $PROPDOC_TEMPLATE > propdoc.yaml > embedded default\n"+
			"Run 'propdoc template show' to inspect the default template")

	_ = rootCmd.RegisterFlagCompletionFunc("metadata-location-folders", completeDirectories)
	_ = rootCmd.RegisterFlagCompletionFunc("output", completeMarkdownFiles)
	_ = rootCmd.RegisterFlagCompletionFunc("template", completeTemplateFiles)
}

// loadProjectConfig loads godotenv and project configuration.
// Returns nil config if propdoc.yaml does not exist (not an error).
func loadProjectConfig(dir string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(dir)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil // Config file not found is not an error
		}
		return nil, fmt.Errorf("%w: failed to load propdoc.yaml: %w", propdoc.ErrInvalidConfig, err)
	}
	return projectCfg, nil
}

// buildGenerateConfig builds a GenerateConfig from CLI flags, environment
// variables and propdoc.yaml in the working directory.
// This function is extracted for testability and separation of concerns.
//
// Resolution order for every value: flag > environment > propdoc.yaml > default.
func buildGenerateConfig(cmd *cobra.Command, verbose bool) (propdoc.GenerateConfig, error) {
	projectCfg, err := loadProjectConfig(".")
	if err != nil {
		return propdoc.GenerateConfig{}, err
	}

	cfg := propdoc.GenerateConfig{Verbose: verbose}

	cfg.OutputPath = generateFlags.output
	if cfg.OutputPath == "" {
		cfg.OutputPath = os.Getenv(propdoc.EnvOutput)
	}
	if cfg.OutputPath == "" && projectCfg != nil {
		cfg.OutputPath = projectCfg.Output
	}

	cfg.TemplatePath = generateFlags.template
	if cfg.TemplatePath == "" {
		cfg.TemplatePath = os.Getenv(propdoc.EnvTemplate)
	}
	if cfg.TemplatePath == "" && projectCfg != nil {
		cfg.TemplatePath = projectCfg.Template
	}

	switch {
	case cmd.Flags().Changed("metadata-location-folders"):
		cfg.MetadataFolders = generateFlags.metadataFolders
	case os.Getenv(propdoc.EnvMetadataFolders) != "":
		cfg.MetadataFolders = splitFolderList(os.Getenv(propdoc.EnvMetadataFolders))
	case projectCfg != nil && len(projectCfg.MetadataFolders) > 0:
		cfg.MetadataFolders = projectCfg.MetadataFolders
	default:
		cfg.MetadataFolders = []string{propdoc.DefaultMetadataFolder}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Configuration resolved:\n")
		fmt.Fprintf(os.Stderr, "  Output: %s\n", cfg.OutputPath)
		if cfg.TemplatePath != "" {
			fmt.Fprintf(os.Stderr, "  Template: %s\n", cfg.TemplatePath)
		} else {
			fmt.Fprintf(os.Stderr, "  Template: <embedded default>\n")
		}
		fmt.Fprintf(os.Stderr, "  Metadata folders: %s\n", strings.Join(cfg.MetadataFolders, ", "))
	}

	return cfg, nil
}

// splitFolderList parses a comma-separated folder list from the environment.
// Blank entries are dropped.
func splitFolderList(value string) []string {
	var folders []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			folders = append(folders, trimmed)
		}
	}
	return folders
}

func runGenerate(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, err := buildGenerateConfig(cmd, verbose)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	documenter := services.NewDocumentationService(loader.NewLoader(), logger)

	if _, err := documenter.Generate(cfg); err != nil {
		return fmt.Errorf("documentation generation failed: %w", err)
	}
	return nil
}
