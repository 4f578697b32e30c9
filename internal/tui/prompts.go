package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	gberrors "gitbatch.dev/gitbatch/internal/errors"
)

// ErrCanceled is returned when the user aborts a prompt
var ErrCanceled = errors.New("canceled")

func checkInteractiveAllowed() error {
	if !IsTTY() {
		return gberrors.ErrInteractiveDisabled
	}
	return nil
}

// confirmModel is a simple yes/no confirmation prompt model
type confirmModel struct {
	prompt string
	choice bool
	done   bool
	err    error
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrCanceled
			m.done = true
			return m, tea.Quit
		case tea.KeyRunes:
			switch strings.ToLower(string(msg.Runes)) {
			case "y":
				m.choice = true
				m.done = true
				return m, tea.Quit
			case "n":
				m.choice = false
				m.done = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yesNo := "[y/N]"
	if m.choice {
		yesNo = "[Y/n]"
	}
	return lipgloss.NewStyle().Margin(1, 0).
		Render(fmt.Sprintf("%s %s\n\n(Press y or n, Enter to accept the default, Ctrl+C to cancel)", m.prompt, yesNo))
}

// PromptConfirm prompts the user for yes/no confirmation
func PromptConfirm(prompt string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	p := tea.NewProgram(confirmModel{prompt: prompt, choice: defaultValue})
	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(confirmModel)
	if !ok {
		return false, fmt.Errorf("unexpected model type %T", final)
	}
	if m.err != nil {
		return false, m.err
	}
	return m.choice, nil
}

// messageEditorModel edits a multi-line commit message in place
type messageEditorModel struct {
	textarea textarea.Model
	done     bool
	err      error
}

func newMessageEditorModel(message string) messageEditorModel {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(16)
	ta.SetValue(message)
	ta.Focus()
	return messageEditorModel{textarea: ta}
}

func (m messageEditorModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m messageEditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlS, tea.KeyCtrlD:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrCanceled
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m messageEditorModel) View() string {
	if m.done {
		return ""
	}
	return lipgloss.NewStyle().Margin(1, 0).
		Render(fmt.Sprintf("Commit message:\n%s\n\n(Ctrl+S to save, Esc to cancel)", m.textarea.View()))
}

// PromptEditMessage lets the user edit a multi-line message and returns the result
func PromptEditMessage(message string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	p := tea.NewProgram(newMessageEditorModel(message))
	final, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := final.(messageEditorModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type %T", final)
	}
	if m.err != nil {
		return "", m.err
	}
	return m.textarea.Value(), nil
}

// PromptSelect asks the user to pick a subset of options and returns the chosen
// indices in their original order. All options are selected by default.
func PromptSelect(message string, options []string) ([]int, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return nil, err
	}

	labels := make([]string, len(options))
	index := make(map[string]int, len(options))
	for i, opt := range options {
		labels[i] = fmt.Sprintf("%d. %s", i+1, opt)
		index[labels[i]] = i
	}

	var selected []string
	prompt := &survey.MultiSelect{
		Message:  message,
		Options:  labels,
		Default:  labels,
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return nil, err
	}

	picked := make([]bool, len(options))
	for _, label := range selected {
		picked[index[label]] = true
	}
	var indices []int
	for i, ok := range picked {
		if ok {
			indices = append(indices, i)
		}
	}
	return indices, nil
}
