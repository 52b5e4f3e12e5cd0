package wizards

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/propdoc/propdoc/internal/scaffold"
	"github.com/propdoc/propdoc/pkg/propdoc"
)

// templateChoice is one option on the template step.
type templateChoice struct {
	Name        string
	Description string
	Extract     bool
}

// templateChoices returns the ways a new project can obtain its document template.
func templateChoices() []templateChoice {
	return []templateChoice{
		{
			Name:        "Embedded default",
			Description: "Render with the built-in template. Nothing extra is written.",
			Extract:     false,
		},
		{
			Name:        "Extract for customization",
			Description: fmt.Sprintf("Write the default template to %s and reference it from the config.", propdoc.DefaultTemplateFileName),
			Extract:     true,
		},
	}
}

// InitResult holds the result of the init wizard.
type InitResult struct {
	Cancelled       bool
	Output          string
	MetadataFolders []string
	ExtractTemplate bool
}

// InitWizard guides users through creating a propdoc.yaml.
type InitWizard struct {
	step initStep

	// Values form
	inputs        []textinput.Model
	focusIndex    int
	validationErr string

	// Template selection
	choices   []templateChoice
	choiceIdx int

	// Result
	result InitResult

	// Dimensions
	width  int
	height int

	// Styles and keys
	styles wizardStyles
	keys   wizardKeys
}

type initStep int

const (
	initStepValues initStep = iota
	initStepTemplate
	initStepConfirm
	initStepDone
)

// NewInitWizard creates a new init wizard. The form starts pre-filled with
// the same defaults the non-interactive path uses.
func NewInitWizard() InitWizard {
	output := textinput.New()
	output.SetValue(propdoc.DefaultOutputFileName)
	output.CharLimit = 256
	output.Width = 48
	output.Focus()

	folders := textinput.New()
	folders.SetValue(propdoc.DefaultMetadataFolder)
	folders.Placeholder = "./, build/"
	folders.CharLimit = 512
	folders.Width = 48

	return InitWizard{
		step:    initStepValues,
		inputs:  []textinput.Model{output, folders},
		choices: templateChoices(),
		width:   80,
		height:  24,
		styles:  defaultWizardStyles(),
		keys:    defaultWizardKeys(),
	}
}

// Init implements tea.Model.
func (w InitWizard) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (w InitWizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		return w, nil

	case tea.KeyMsg:
		// ctrl+c always quits
		if msg.String() == "ctrl+c" {
			w.result.Cancelled = true
			return w, tea.Quit
		}

		switch w.step {
		case initStepValues:
			return w.updateValues(msg)
		case initStepTemplate:
			return w.updateTemplate(msg)
		case initStepConfirm:
			return w.updateConfirm(msg)
		}

	default:
		// Forward non-key messages (focus, blink cursor) to active text input
		if w.step == initStepValues && w.focusIndex >= 0 && w.focusIndex < len(w.inputs) {
			var cmd tea.Cmd
			w.inputs[w.focusIndex], cmd = w.inputs[w.focusIndex].Update(msg)
			return w, cmd
		}
	}

	return w, nil
}

func (w InitWizard) updateValues(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Tab), msg.String() == "down":
		if w.focusIndex < len(w.inputs)-1 {
			w.inputs[w.focusIndex].Blur()
			w.focusIndex++
			return w, w.inputs[w.focusIndex].Focus()
		}
	case msg.String() == "shift+tab", msg.String() == "up":
		if w.focusIndex > 0 {
			w.inputs[w.focusIndex].Blur()
			w.focusIndex--
			return w, w.inputs[w.focusIndex].Focus()
		}
	case key.Matches(msg, w.keys.Select):
		// Enter on non-last field advances to next field
		if w.focusIndex < len(w.inputs)-1 {
			w.inputs[w.focusIndex].Blur()
			w.focusIndex++
			return w, w.inputs[w.focusIndex].Focus()
		}
		// Enter on last field submits the form
		if err := w.validateValues(); err != nil {
			w.validationErr = err.Error()
			return w, nil
		}
		w.validationErr = ""
		w.step = initStepTemplate
		return w, nil
	case key.Matches(msg, w.keys.Back):
		w.result.Cancelled = true
		return w, tea.Quit
	default:
		w.validationErr = ""
		var cmd tea.Cmd
		w.inputs[w.focusIndex], cmd = w.inputs[w.focusIndex].Update(msg)
		return w, cmd
	}
	return w, nil
}

func (w InitWizard) updateTemplate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Quit):
		w.result.Cancelled = true
		return w, tea.Quit
	case key.Matches(msg, w.keys.Up):
		if w.choiceIdx > 0 {
			w.choiceIdx--
		}
	case key.Matches(msg, w.keys.Down):
		if w.choiceIdx < len(w.choices)-1 {
			w.choiceIdx++
		}
	case key.Matches(msg, w.keys.Select):
		w.step = initStepConfirm
	case key.Matches(msg, w.keys.Back):
		w.step = initStepValues
	}
	return w, nil
}

func (w InitWizard) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Quit):
		w.result.Cancelled = true
		return w, tea.Quit
	case key.Matches(msg, w.keys.Select):
		w.buildResult()
		w.step = initStepDone
		return w, tea.Quit
	case key.Matches(msg, w.keys.Back):
		w.step = initStepTemplate
	}
	return w, nil
}

func (w *InitWizard) validateValues() error {
	if strings.TrimSpace(w.inputs[0].Value()) == "" {
		return fmt.Errorf("output file is required")
	}
	if len(splitFolders(w.inputs[1].Value())) == 0 {
		return fmt.Errorf("at least one metadata folder is required")
	}
	return nil
}

func (w *InitWizard) buildResult() {
	w.result = InitResult{
		Output:          strings.TrimSpace(w.inputs[0].Value()),
		MetadataFolders: splitFolders(w.inputs[1].Value()),
		ExtractTemplate: w.choices[w.choiceIdx].Extract,
	}
}

// configValues maps the current answers to the scaffold input used for the
// confirm-step preview.
func (w InitWizard) configValues() scaffold.ConfigValues {
	values := scaffold.ConfigValues{
		Output:          strings.TrimSpace(w.inputs[0].Value()),
		MetadataFolders: splitFolders(w.inputs[1].Value()),
	}
	if w.choices[w.choiceIdx].Extract {
		values.Template = propdoc.DefaultTemplateFileName
	}
	return values
}

// splitFolders parses a comma-separated folder list, dropping blank entries.
func splitFolders(raw string) []string {
	var folders []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			folders = append(folders, part)
		}
	}
	return folders
}

// View implements tea.Model.
func (w InitWizard) View() string {
	var b strings.Builder

	b.WriteString(w.styles.Title.Render("propdoc init - Project Setup"))
	b.WriteString("\n")

	switch w.step {
	case initStepValues:
		b.WriteString(w.viewValues())
	case initStepTemplate:
		b.WriteString(w.viewTemplate())
	case initStepConfirm:
		b.WriteString(w.viewConfirm())
	}

	return b.String()
}

type formConfig struct {
	subtitle string
	labels   []string
	hints    map[int]string
}

func (w InitWizard) viewForm(fc formConfig) string {
	var b strings.Builder

	b.WriteString(w.styles.Subtitle.Render(fc.subtitle))
	b.WriteString("\n\n")

	for i, input := range w.inputs {
		style := w.styles.Box
		if i == w.focusIndex {
			style = w.styles.FocusedBox
		}
		b.WriteString(w.styles.Label.Render(fc.labels[i]))
		b.WriteString("\n")
		b.WriteString(style.Render(input.View()))
		if hint, ok := fc.hints[i]; ok {
			b.WriteString("\n")
			b.WriteString(w.styles.Description.Render(hint))
		}
		b.WriteString("\n\n")
	}

	if w.validationErr != "" {
		b.WriteString(w.styles.Error.Render("Error: " + w.validationErr))
		b.WriteString("\n\n")
	}

	b.WriteString(w.styles.Help.Render("tab/↓ next • shift+tab/↑ prev • enter submit • esc cancel"))

	return b.String()
}

func (w InitWizard) viewValues() string {
	return w.viewForm(formConfig{
		subtitle: "Where should propdoc look, and what should it write?",
		labels:   []string{"Output file:", "Metadata folders:"},
		hints: map[int]string{
			0: "markdown document the generator writes",
			1: "comma-separated roots scanned for spring-configuration-metadata.json",
		},
	})
}

func (w InitWizard) viewTemplate() string {
	var b strings.Builder

	b.WriteString(w.styles.Subtitle.Render("How should the document be rendered?"))
	b.WriteString("\n\n")

	for i, c := range w.choices {
		cursor := "  "
		style := w.styles.Unselected
		symbol := "○"

		if i == w.choiceIdx {
			cursor = ""
			style = w.styles.Selected
			symbol = "●"
		}

		b.WriteString(cursor)
		b.WriteString(style.Render(symbol + " " + c.Name))
		b.WriteString("\n")
		b.WriteString(w.styles.Description.Render(c.Description))
		b.WriteString("\n")
	}

	b.WriteString(w.styles.Help.Render("\n↑/↓ navigate • enter select • esc back • q quit"))

	return b.String()
}

func (w InitWizard) viewConfirm() string {
	var b strings.Builder

	b.WriteString(w.styles.Subtitle.Render(fmt.Sprintf("Review %s before it is written", propdoc.ProjectConfigFileName)))
	b.WriteString("\n\n")

	if preview, err := scaffold.RenderProjectConfig(w.configValues()); err == nil {
		b.WriteString(w.styles.Box.Render(strings.TrimRight(preview, "\n")))
		b.WriteString("\n\n")
	}

	if w.choices[w.choiceIdx].Extract {
		b.WriteString(w.styles.Description.Render(fmt.Sprintf("The default template will be extracted to %s.", propdoc.DefaultTemplateFileName)))
		b.WriteString("\n\n")
	}

	b.WriteString(w.styles.Help.Render("enter write files • esc back • q quit"))

	return b.String()
}

// Result returns the wizard result.
func (w InitWizard) Result() InitResult {
	return w.result
}

// RunInitWizard executes the init wizard.
func RunInitWizard() (InitResult, error) {
	wizard := NewInitWizard()
	p := tea.NewProgram(wizard, tea.WithAltScreen())

	model, err := p.Run()
	if err != nil {
		return InitResult{Cancelled: true}, err
	}

	return model.(InitWizard).Result(), nil
}

// ShowInitComplete displays the completion message after the files are written.
func ShowInitComplete(targetDir string, files []string) {
	absPath, _ := filepath.Abs(targetDir)

	fmt.Println()
	fmt.Println("✓ Project initialized!")
	fmt.Println()
	fmt.Printf("%s/\n", absPath)

	for _, f := range files {
		rel, _ := filepath.Rel(targetDir, f)
		fmt.Printf("├── %s\n", rel)
	}

	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  1. Review %s and adjust the metadata folders\n", propdoc.ProjectConfigFileName)
	fmt.Println("  2. Run: propdoc")
	fmt.Println()
}
