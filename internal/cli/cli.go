// Package cli is the command-line caller of the ledger services.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

func printSuccess(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		successStyle.Render(successSymbol),
		message,
	)
}

func printSuccessf(w io.Writer, format string, args ...any) {
	printSuccess(w, fmt.Sprintf(format, args...))
}

func printError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		errorStyle.Render(errorSymbol),
		errorStyle.Render(message),
	)
}

func printInfof(w io.Writer, format string, args ...any) {
	formatted := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(w, "%s %s\n",
		infoStyle.Render(infoSymbol),
		formatted,
	)
}

// Prompter asks the operator for confirmations and credentials.
type Prompter interface {
	Confirm(question string) (bool, error)
	Credentials(title string, username, password *string) error
}

// terminalPrompter prompts through huh forms, and declines everything when stdin is not a terminal.
type terminalPrompter struct{}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Confirm returns false by default if stdin is not a terminal.
func (terminalPrompter) Confirm(question string) (bool, error) {
	if !isTerminal() {
		return false, nil
	}

	var confirm bool
	err := huh.NewConfirm().
		Title(question).
		WithButtonAlignment(lipgloss.Left).
		Value(&confirm).
		Run()
	if err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}
	return confirm, nil
}

// Credentials fills the blank fields of username and password. Without a terminal it leaves them as
// they are and the credential check reports what is missing.
func (terminalPrompter) Credentials(title string, username, password *string) error {
	if !isTerminal() || (*username != "" && *password != "") {
		return nil
	}

	var fields []huh.Field
	if *username == "" {
		fields = append(fields, huh.NewInput().Title("Username").Value(username))
	}
	if *password == "" {
		fields = append(fields, huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(password))
	}
	if err := huh.NewForm(huh.NewGroup(fields...).Title(title)).Run(); err != nil {
		return fmt.Errorf("failed to read credentials: %w", err)
	}
	return nil
}
