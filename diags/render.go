package diags

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Renderer struct {
	Name  string
	Lines []string
	Color bool
}

func NewRenderer(name string, source string, color bool) *Renderer {
	return &Renderer{
		Name:  name,
		Lines: strings.Split(source, "\n"),
		Color: color,
	}
}

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	caretStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func (r *Renderer) style(s lipgloss.Style, str string) string {
	if !r.Color {
		return str
	}
	return s.Render(str)
}

// Render formats one diagnostic with the offending line and a caret:
//
//	semantic error: type mismatch: cannot assign string to a of type int
//	  --> main.clip:3:3
//	   |
//	 3 | a = "oops";
//	   | ^
func (r *Renderer) Render(d Diagnostic) string {
	var sb strings.Builder
	sb.WriteString(r.style(headerStyle, fmt.Sprintf("%s error: %s", d.Phase, d.Message)))
	sb.WriteString("\n")

	name := r.Name
	if name == "" {
		name = "<input>"
	}
	lineNum := fmt.Sprintf("%d", d.Pos.Line)
	margin := strings.Repeat(" ", len(lineNum))
	sb.WriteString(fmt.Sprintf("%s%s %s:%d:%d\n", margin, r.style(gutterStyle, "-->"), name, d.Pos.Line, d.Pos.Column))

	idx := d.Pos.Line - 1
	if idx < 0 || idx >= len(r.Lines) {
		return sb.String()
	}
	line := strings.TrimRight(r.Lines[idx], "\r")
	bar := r.style(gutterStyle, "|")
	sb.WriteString(fmt.Sprintf("%s %s\n", margin, bar))
	sb.WriteString(fmt.Sprintf("%s %s %s\n", r.style(gutterStyle, lineNum), bar, line))

	// caret
	var pad strings.Builder
	col := d.Pos.Column - 1
	for i, c := range []rune(line) {
		if i >= col {
			break
		}
		if c == '\t' {
			pad.WriteRune('\t')
		} else {
			pad.WriteString(strings.Repeat(" ", lipgloss.Width(string(c))))
		}
	}
	sb.WriteString(fmt.Sprintf("%s %s %s%s\n", margin, bar, pad.String(), r.style(caretStyle, "^")))

	return sb.String()
}

func (r *Renderer) RenderAll(w io.Writer, list []Diagnostic) error {
	for _, d := range list {
		if _, err := io.WriteString(w, r.Render(d)); err != nil {
			return err
		}
	}
	return nil
}
