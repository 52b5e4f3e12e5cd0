package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/propdoc/propdoc/internal/render"
	"github.com/propdoc/propdoc/pkg/propdoc"
)

//go:embed all:templates
var templatesFS embed.FS

// GetTemplatesFS returns the embedded templates filesystem for testing purposes.
// This allows tests to access embedded templates without filesystem I/O.
func GetTemplatesFS() embed.FS {
	return templatesFS
}

// ConfigValues feed the propdoc.yaml starter file written by propdoc init.
// Zero values fall back to the standard defaults.
type ConfigValues struct {
	Output          string
	Template        string // empty keeps the embedded default template
	MetadataFolders []string
}

// Scaffolder writes the files propdoc init produces.
type Scaffolder struct {
	verbose bool
}

// NewScaffolder creates a new Scaffolder instance
func NewScaffolder(verbose bool) *Scaffolder {
	return &Scaffolder{
		verbose: verbose,
	}
}

// RenderProjectConfig produces the documented propdoc.yaml content for the
// given values.
func RenderProjectConfig(values ConfigValues) (string, error) {
	content, err := templatesFS.ReadFile("templates/propdoc.yaml.tmpl")
	if err != nil {
		return "", fmt.Errorf("embedded config template missing: %w", err)
	}

	output := values.Output
	if output == "" {
		output = propdoc.DefaultOutputFileName
	}

	folders := values.MetadataFolders
	if len(folders) == 0 {
		folders = []string{propdoc.DefaultMetadataFolder}
	}
	items := make([]string, 0, len(folders))
	for _, folder := range folders {
		items = append(items, "  - "+folder)
	}

	// Without a custom template the line stays present but commented out,
	// documenting how to opt in later.
	templateLine := "# template: " + propdoc.DefaultTemplateFileName
	if values.Template != "" {
		templateLine = "template: " + values.Template
	}

	text := string(content)
	text = strings.ReplaceAll(text, "{{OUTPUT}}", output)
	text = strings.ReplaceAll(text, "{{METADATA_FOLDERS}}", strings.Join(items, "\n"))
	text = strings.ReplaceAll(text, "{{TEMPLATE}}", templateLine)
	return text, nil
}

// WriteProjectConfig renders the starter config and writes it into dir,
// creating dir first when missing. It returns the path of the written file.
func (s *Scaffolder) WriteProjectConfig(dir string, values ConfigValues) (string, error) {
	content, err := RenderProjectConfig(values)
	if err != nil {
		return "", err
	}

	if err := ensureTargetDir(dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, propdoc.ProjectConfigFileName)
	s.logVerbose("Creating file: %s", path)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// ExtractDefaultTemplate writes the embedded render template to path so it
// can be edited and passed back with --template.
func (s *Scaffolder) ExtractDefaultTemplate(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := ensureTargetDir(dir); err != nil {
			return err
		}
	}

	s.logVerbose("Creating file: %s", path)
	if err := os.WriteFile(path, []byte(render.DefaultTemplateText()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (s *Scaffolder) logVerbose(format string, args ...interface{}) {
	if s.verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] "+format+"\n", args...)
	}
}

// ensureTargetDir creates path when missing.
// Returns an error if path exists and is not a directory.
func ensureTargetDir(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path '%s' exists but is not a directory", path)
	}
	return nil
}

// BuildFileTree creates a visual tree representation of the directory structure.
// Returns a formatted string showing files and directories in tree format.
func BuildFileTree(rootPath string) (string, error) {
	var sb strings.Builder

	// Get absolute path for display
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		absPath = rootPath
	}

	sb.WriteString(absPath + "/\n")

	err = filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip root directory itself
		if path == rootPath {
			return nil
		}

		relPath, err := filepath.Rel(rootPath, path)
		if err != nil {
			return err
		}

		depth := strings.Count(relPath, string(os.PathSeparator))

		indent := ""
		for i := 0; i < depth; i++ {
			indent += "│   "
		}

		// Determine if this is the last item in its directory
		parentDir := filepath.Dir(path)
		entries, err := os.ReadDir(parentDir)
		if err != nil {
			return err
		}

		isLast := false
		baseName := filepath.Base(path)
		for i, entry := range entries {
			if entry.Name() == baseName && i == len(entries)-1 {
				isLast = true
				break
			}
		}

		branch := "├── "
		if isLast {
			branch = "└── "
			if depth > 0 {
				indent = indent[:len(indent)-4] + "    "
			}
		}

		name := info.Name()
		if info.IsDir() {
			name += "/"
		}

		sb.WriteString(indent + branch + name + "\n")

		return nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to build file tree: %w", err)
	}

	return sb.String(), nil
}
