package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used for terminal output. They are bound
// to a renderer so colour is dropped automatically when the writer is not a
// terminal.
type Styles struct {
	H1     lipgloss.Style
	H2     lipgloss.Style
	H3     lipgloss.Style
	Bullet lipgloss.Style
	Code   lipgloss.Style
	Bold   lipgloss.Style
	Banner lipgloss.Style
	Title  lipgloss.Style
	Day    lipgloss.Style
	Item   lipgloss.Style
	Muted  lipgloss.Style
}

// NewStyles builds the palette on r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		H1:     r.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		H2:     r.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		H3:     r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Bullet: r.NewStyle().Foreground(lipgloss.Color("11")),
		Code:   r.NewStyle().Background(lipgloss.Color("0")).Foreground(lipgloss.Color("15")),
		Bold:   r.NewStyle().Bold(true),
		Banner: r.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		Title:  r.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Day:    r.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		Item:   r.NewStyle().Foreground(lipgloss.Color("12")),
		Muted:  r.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// Printer writes styled output to a single writer.
type Printer struct {
	out    io.Writer
	styles Styles
}

// NewPrinter returns a Printer whose colour profile is detected from w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{out: w, styles: NewStyles(lipgloss.NewRenderer(w))}
}

// Styles exposes the printer palette for callers composing their own views.
func (p *Printer) Styles() Styles {
	return p.styles
}

// Markdown renders markdown content line by line.
func (p *Printer) Markdown(content string) {
	fmt.Fprint(p.out, Markdown(content, p.styles))
}

// Day prints a whole day file between a header and footer banner. footer is
// the closing label, e.g. "End of log entry".
func (p *Printer) Day(date time.Time, content, footer string) {
	fmt.Fprintln(p.out, p.styles.Banner.Render(fmt.Sprintf("=== Log entry for %s ===", date.Format("2006-01-02"))))
	p.Markdown(content)
	fmt.Fprintln(p.out, p.styles.Banner.Render(fmt.Sprintf("=== %s ===", footer)))
}

// Markdown styles headings, list items, code fences and **bold** spans. Other
// lines pass through unchanged. The result ends with a newline per input line.
func Markdown(content string, s Styles) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if content == "" {
		return ""
	}

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "# "):
			b.WriteString(s.H1.Render(line))
		case strings.HasPrefix(line, "## "):
			b.WriteString(s.H2.Render(line))
		case strings.HasPrefix(line, "### "):
			b.WriteString(s.H3.Render(line))
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
			b.WriteString(s.Bullet.Render("•"))
			b.WriteByte(' ')
			b.WriteString(inlineBold(line[2:], s.Bold))
		case strings.HasPrefix(line, "```"):
			b.WriteString(s.Code.Render(line))
		case strings.TrimSpace(line) == "":
		default:
			b.WriteString(inlineBold(line, s.Bold))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// inlineBold renders each closed **span**; an unmatched marker is left as is.
func inlineBold(line string, bold lipgloss.Style) string {
	var b strings.Builder
	rest := line
	for {
		start := strings.Index(rest, "**")
		if start < 0 {
			break
		}
		end := strings.Index(rest[start+2:], "**")
		if end < 0 {
			break
		}
		end += start + 2
		b.WriteString(rest[:start])
		b.WriteString(bold.Render(rest[start+2 : end]))
		rest = rest[end+2:]
	}
	b.WriteString(rest)
	return b.String()
}
