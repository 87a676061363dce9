package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// DescriptorResult holds the fields collected by the descriptor wizard.
type DescriptorResult struct {
	Cancelled    bool
	Name         string
	FriendlyName string
	Homepage     string
	Version      string
	License      string
}

// wizardField pairs a prompt with its input model.
type wizardField struct {
	label    string
	required bool
	input    textinput.Model
}

// DescriptorWizard walks the user through the project descriptor fields one
// input at a time.
type DescriptorWizard struct {
	fields  []wizardField
	current int
	errMsg  string
	result  DescriptorResult
	done    bool
}

// NewDescriptorWizard creates a wizard pre-filled with defaults (typically
// the target directory name as project name).
func NewDescriptorWizard(defaultName string) DescriptorWizard {
	mk := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 256
		ti.Width = 40
		return ti
	}

	fields := []wizardField{
		{label: "Project name", required: true, input: mk(defaultName)},
		{label: "Friendly name", input: mk("")},
		{label: "Homepage", input: mk("https://")},
		{label: "Version", required: true, input: mk("0.1.0")},
		{label: "License", input: mk("Apache-2.0")},
	}
	fields[0].input.SetValue(defaultName)
	fields[3].input.SetValue("0.1.0")
	fields[0].input.Focus()

	return DescriptorWizard{fields: fields}
}

// Result returns the collected values after the wizard finishes.
func (w DescriptorWizard) Result() DescriptorResult { return w.result }

// Init implements tea.Model.
func (w DescriptorWizard) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (w DescriptorWizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			w.result.Cancelled = true
			w.done = true
			return w, tea.Quit

		case tea.KeyEnter:
			field := &w.fields[w.current]
			value := strings.TrimSpace(field.input.Value())
			if field.required && value == "" {
				w.errMsg = fmt.Sprintf("%s is required", field.label)
				return w, nil
			}
			w.errMsg = ""
			field.input.Blur()

			if w.current == len(w.fields)-1 {
				w.result = w.collect()
				w.done = true
				return w, tea.Quit
			}
			w.current++
			w.fields[w.current].input.Focus()
			return w, nil
		}
	}

	var cmd tea.Cmd
	w.fields[w.current].input, cmd = w.fields[w.current].input.Update(msg)
	return w, cmd
}

// View implements tea.Model.
func (w DescriptorWizard) View() string {
	if w.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("pakmeta init") + "\n")

	for i := range w.fields {
		field := w.fields[i]
		marker := "  "
		if i < w.current {
			marker = SuccessStyle.Render(SymbolCheck) + " "
		} else if i == w.current {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s: %s\n", marker, KeyStyle.Render(field.label), field.input.View()))
	}

	if w.errMsg != "" {
		b.WriteString(ErrorStyle.Render(SymbolCross+" "+w.errMsg) + "\n")
	}
	b.WriteString(HelpStyle.Render("enter: next field • esc: cancel"))
	return b.String()
}

func (w DescriptorWizard) collect() DescriptorResult {
	value := func(i int) string { return strings.TrimSpace(w.fields[i].input.Value()) }
	homepage := value(2)
	if homepage == "https://" {
		homepage = ""
	}
	return DescriptorResult{
		Name:         value(0),
		FriendlyName: value(1),
		Homepage:     homepage,
		Version:      value(3),
		License:      value(4),
	}
}

// RunDescriptorWizard runs the wizard on the current terminal and returns
// the collected fields.
func RunDescriptorWizard(defaultName string) (DescriptorResult, error) {
	model, err := tea.NewProgram(NewDescriptorWizard(defaultName)).Run()
	if err != nil {
		return DescriptorResult{Cancelled: true}, err
	}

	wizard, ok := model.(DescriptorWizard)
	if !ok {
		return DescriptorResult{Cancelled: true}, fmt.Errorf("unexpected wizard model type %T", model)
	}
	return wizard.Result(), nil
}
