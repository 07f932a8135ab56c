package notify

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Terminal prints toasts as styled lines.
type Terminal struct {
	Out io.Writer
}

func (t Terminal) Notify(kind Kind, message string) {
	style := successStyle
	prefix := "✔"
	if kind == Error {
		style = errorStyle
		prefix = "✘"
	}
	fmt.Fprintln(t.Out, style.Render(prefix+" "+message))
}
