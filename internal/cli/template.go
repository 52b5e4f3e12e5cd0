package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/propdoc/propdoc/internal/render"
	"github.com/propdoc/propdoc/internal/scaffold"
	"github.com/propdoc/propdoc/internal/tui"
	"github.com/propdoc/propdoc/internal/ui"
	"github.com/propdoc/propdoc/pkg/propdoc"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Inspect and extract the document template",
	Long: `Inspect the embedded document template or extract it for customization.

The generated markdown is produced by a Go text/template. The embedded
default renders one section per namespace with a property table. Extract
it, adjust the layout, and point propdoc at your copy with -t or the
'template' key in propdoc.yaml.`,
}

var templateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the embedded default template",
	Long: `Print the embedded default template to stdout.

Useful as a starting point for a custom template:
  propdoc template show > my-template.md.tmpl`,
	Args: cobra.NoArgs,
	RunE: runTemplateShow,
}

var templateExtractCmd = &cobra.Command{
	Use:   "extract [path]",
	Short: "Write the default template to a file",
	Long: `Write the embedded default template to a file (default: propdoc.md.tmpl).

An existing file is only replaced after confirmation, or with --force.

Examples:
  propdoc template extract
  propdoc template extract docs/custom.md.tmpl
  propdoc template extract --force`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeTemplateFiles,
	RunE:              runTemplateExtract,
}

var templateExtractForce bool

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateExtractCmd)

	templateExtractCmd.Flags().BoolVar(&templateExtractForce, "force", false,
		"Overwrite an existing file without asking")
}

func runTemplateShow(cmd *cobra.Command, args []string) error {
	fmt.Fprint(cmd.OutOrStdout(), render.DefaultTemplateText())
	return nil
}

func runTemplateExtract(cmd *cobra.Command, args []string) error {
	path := propdoc.DefaultTemplateFileName
	if len(args) > 0 {
		path = args[0]
	}
	verbose := getVerboseFlag(cmd)

	// Select approver implementation based on --force flag
	var approver propdoc.Approver
	if templateExtractForce {
		approver = ui.NewForcedApprover(verbose)
	} else {
		approver = ui.NewInteractiveApprover(verbose)
	}
	if err := approveOverwrite(context.Background(), approver, path, templateExtractForce); err != nil {
		return err
	}

	progress := tui.NewProgressDisplay()
	progress.Start(fmt.Sprintf("Extracting default template to %s ...", path))
	if err := scaffold.NewScaffolder(verbose).ExtractDefaultTemplate(path); err != nil {
		progress.Error("Failed to extract default template")
		return fmt.Errorf("failed to extract default template: %w", err)
	}
	progress.Success(fmt.Sprintf("Wrote %s", path))

	fmt.Fprintf(os.Stderr, "\nReference it from propdoc.yaml:\n  template: %s\n", path)
	return nil
}
