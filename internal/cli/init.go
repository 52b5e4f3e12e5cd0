package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/propdoc/propdoc/internal/config"
	"github.com/propdoc/propdoc/internal/scaffold"
	"github.com/propdoc/propdoc/internal/tui"
	"github.com/propdoc/propdoc/internal/tui/wizards"
	"github.com/propdoc/propdoc/internal/ui"
	"github.com/propdoc/propdoc/pkg/propdoc"
)

var initCmd = &cobra.Command{
	Use:   "init [target_path]",
	Short: "Initialize a propdoc project",
	Long: `Initialize a propdoc project in the given directory (default: current directory).

The init command writes:
- propdoc.yaml with the output path and metadata folders to scan
- optionally the default template, extracted for customization

In an interactive terminal a wizard collects the values. When flags are
given, or when no terminal is attached, the flags are used as-is.

Examples:
  propdoc init                       # Wizard in the current directory
  propdoc init ./service             # Wizard, files written to ./service
  propdoc init -o docs/props.md -m ./build/classes
  propdoc init --extract-template    # Also write propdoc.md.tmpl`,
	Args: optionalTargetDir,
	RunE: runInit,
}

type initFlagValues struct {
	output          string
	metadataFolders []string
	extractTemplate bool
	force           bool
}

var initFlags initFlagValues

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initFlags.output, "output", "o", propdoc.DefaultOutputFileName,
		"Output path recorded in propdoc.yaml")
	initCmd.Flags().StringArrayVarP(&initFlags.metadataFolders, "metadata-folders", "m", []string{propdoc.DefaultMetadataFolder},
		"Metadata folder recorded in propdoc.yaml (can be specified multiple times)")
	initCmd.Flags().BoolVar(&initFlags.extractTemplate, "extract-template", false,
		"Extract the default template to propdoc.md.tmpl and reference it from propdoc.yaml")
	initCmd.Flags().BoolVar(&initFlags.force, "force", false,
		"Overwrite existing files without asking\n"+
			"Required to replace propdoc.yaml in non-interactive runs")

	initCmd.ValidArgsFunction = completeDirectories
	_ = initCmd.RegisterFlagCompletionFunc("metadata-folders", completeDirectories)
	_ = initCmd.RegisterFlagCompletionFunc("output", completeMarkdownFiles)
}

func runInit(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) > 0 {
		targetDir = args[0]
	}
	verbose := getVerboseFlag(cmd)
	ctx := context.Background()

	// The wizard runs only when there is a terminal and nothing was decided
	// via flags already.
	useWizard := tui.IsInteractive() &&
		!cmd.Flags().Changed("output") &&
		!cmd.Flags().Changed("metadata-folders") &&
		!cmd.Flags().Changed("extract-template")

	// Select approver implementation based on --force flag
	var approver propdoc.Approver
	if initFlags.force {
		approver = ui.NewForcedApprover(verbose)
	} else {
		approver = ui.NewInteractiveApprover(verbose)
	}

	values := scaffold.ConfigValues{
		Output:          initFlags.output,
		MetadataFolders: initFlags.metadataFolders,
	}
	extract := initFlags.extractTemplate

	if useWizard {
		existingCfg, err := config.Load(targetDir)
		if err == nil && existingCfg != nil {
			fmt.Println("Found existing propdoc.yaml")
			if !tui.PromptContinue("Overwrite existing configuration?") {
				return fmt.Errorf("%w: keeping existing propdoc.yaml", propdoc.ErrApprovalDenied)
			}
		}

		result, err := wizards.RunInitWizard()
		if err != nil {
			return fmt.Errorf("init wizard failed: %w", err)
		}
		if result.Cancelled {
			fmt.Println("Cancelled.")
			return nil
		}
		values.Output = result.Output
		values.MetadataFolders = result.MetadataFolders
		extract = result.ExtractTemplate
	} else {
		configPath := filepath.Join(targetDir, propdoc.ProjectConfigFileName)
		if err := approveOverwrite(ctx, approver, configPath, initFlags.force); err != nil {
			return err
		}
	}

	templatePath := filepath.Join(targetDir, propdoc.DefaultTemplateFileName)
	if extract {
		// The generated config must reference the extracted template.
		values.Template = propdoc.DefaultTemplateFileName
		if err := approveOverwrite(ctx, approver, templatePath, initFlags.force); err != nil {
			return err
		}
	}

	scaffolder := scaffold.NewScaffolder(verbose)
	progress := tui.NewProgressDisplay()

	progress.Start(fmt.Sprintf("Writing %s ...", propdoc.ProjectConfigFileName))
	configPath, err := scaffolder.WriteProjectConfig(targetDir, values)
	if err != nil {
		progress.Error("Failed to write project configuration")
		return fmt.Errorf("failed to write project configuration: %w", err)
	}
	progress.Success(fmt.Sprintf("Wrote %s", configPath))

	files := []string{configPath}
	if extract {
		progress.Start(fmt.Sprintf("Extracting default template to %s ...", templatePath))
		if err := scaffolder.ExtractDefaultTemplate(templatePath); err != nil {
			progress.Error("Failed to extract default template")
			return fmt.Errorf("failed to extract default template: %w", err)
		}
		progress.Success(fmt.Sprintf("Wrote %s", templatePath))
		files = append(files, templatePath)
	}

	wizards.ShowInitComplete(targetDir, files)

	if verbose {
		if tree, treeErr := scaffold.BuildFileTree(targetDir); treeErr == nil {
			fmt.Fprintln(os.Stderr, "[VERBOSE] Project structure:")
			fmt.Fprint(os.Stderr, tree)
		}
	}

	return nil
}

// approveOverwrite asks before replacing path. Missing files need no
// approval; non-interactive runs must pass --force instead of being
// prompted.
func approveOverwrite(ctx context.Context, approver propdoc.Approver, path string, force bool) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if !force && !tui.IsInteractive() {
		return fmt.Errorf("%w: '%s' already exists (use --force to overwrite)", propdoc.ErrApprovalDenied, path)
	}
	approved, err := approver.RequestApproval(ctx, path)
	if err != nil {
		return fmt.Errorf("overwrite approval failed: %w", err)
	}
	if !approved {
		return fmt.Errorf("%w: keeping existing '%s'", propdoc.ErrApprovalDenied, path)
	}
	return nil
}
