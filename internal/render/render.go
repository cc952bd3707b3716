package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/riffle/internal/card"
)

// palette maps a card family to its display color
var palette = map[string]string{
	"wands":     "#d9622b",
	"cups":      "#3a7bd5",
	"swords":    "#b8c2cc",
	"pentacles": "#d4af37",
	"void":      "#7a4fbf",
	"major":     "#e6e1d3",
	"white":     "#ffffff",
	"black":     "#5c5c5c",
}

func familyOf(c card.Card) string {
	switch c.Kind {
	case card.KindMinor:
		return c.Suit.String()
	case card.KindWhite:
		return "white"
	case card.KindBlack:
		return "black"
	}
	return "major"
}

// Namer returns the display name of a card
type Namer interface {
	Of(c card.Card) string
}

type defaultNames struct{}

func (defaultNames) Of(c card.Card) string { return c.Name() }

// Renderer prints piles to a terminal
type Renderer struct {
	Out     io.Writer
	Color   bool
	ShowIDs bool
	Width   int
	Names   Namer
}

// New returns a renderer writing to out, sized to the terminal on stdout
func New(out io.Writer, useColor bool, names Namer) *Renderer {
	if names == nil {
		names = defaultNames{}
	}
	return &Renderer{
		Out:   out,
		Color: useColor,
		Width: TerminalWidth(os.Stdout),
		Names: names,
	}
}

// TerminalWidth returns the width of f, or 80 if f is not a terminal
func TerminalWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// Pile prints the cards as numbered entries laid out in as many columns as fit
func (r *Renderer) Pile(cards []card.Card) {
	entries := make([]string, len(cards))
	widest := 0
	for i, c := range cards {
		entries[i] = r.entry(i+1, c)
		widest = max(widest, visibleWidth(entries[i]))
	}

	colWidth := widest + 2
	cols := max(1, (r.Width-2)/max(colWidth, 1))

	for i, e := range entries {
		fmt.Fprint(r.Out, "  ", e)
		if (i+1)%cols == 0 || i == len(entries)-1 {
			fmt.Fprintln(r.Out)
			continue
		}
		fmt.Fprint(r.Out, strings.Repeat(" ", colWidth-visibleWidth(e)))
	}
}

// Header prints a labelled line
func (r *Renderer) Header(label, value string) {
	fmt.Fprintln(r.Out, r.label(label+": ")+r.value(value))
}

// Paragraph prints text wrapped to the renderer width, indented
func (r *Renderer) Paragraph(text string, indent int) {
	pad := strings.Repeat(" ", indent)
	for _, line := range Wrap(text, r.Width-indent-2) {
		fmt.Fprintln(r.Out, pad+line)
	}
}

func (r *Renderer) entry(n int, c card.Card) string {
	name := r.Names.Of(c)
	if r.Color {
		name = trueColor(name, palette[familyOf(c)])
	}
	if r.ShowIDs {
		name = fmt.Sprintf("%-32s %s", c.ID(), name)
	}
	return fmt.Sprintf("%s %s", r.label(fmt.Sprintf("%3d.", n)), name)
}

func visibleWidth(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

func (r *Renderer) label(s string) string {
	return r.paint(colorize.FgCyan, s)
}

func (r *Renderer) value(s string) string {
	return r.paint(colorize.FgHiWhite, s)
}

func (r *Renderer) paint(attr colorize.Attribute, s string) string {
	c := colorize.New(attr)
	if r.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

// trueColor wraps s in a 24-bit foreground escape for the hex color
func trueColor(s, hex string) string {
	col, err := colorful.Hex(hex)
	if err != nil {
		return s
	}
	r, g, b := col.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
}

// Wrap wraps text to a specified width
func Wrap(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var result []string
	var currentLine string
	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
