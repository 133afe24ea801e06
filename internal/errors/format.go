package errors

import (
	"fmt"
	"io"
	"strings"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorWhite  = "\033[37m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// colorEnabled controls whether ANSI colors are used.
var colorEnabled = true

// DisableColors disables ANSI color output.
func DisableColors() {
	colorEnabled = false
}

// EnableColors enables ANSI color output.
func EnableColors() {
	colorEnabled = true
}

func color(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + colorReset
}

func red(text string) string    { return color(colorRed, text) }
func yellow(text string) string { return color(colorYellow, text) }
func white(text string) string  { return color(colorWhite, text) }
func gray(text string) string   { return color(colorGray, text) }
func bold(text string) string   { return color(colorBold, text) }

// Format returns the error formatted for terminal display.
func (e *HtmlifyError) Format() string {
	var b strings.Builder

	b.WriteString("\n")
	if e.Code != "" {
		b.WriteString(red(bold("ERROR ")))
		b.WriteString(white(bold(e.Code + ": ")))
	} else {
		b.WriteString(red(bold("ERROR: ")))
	}
	b.WriteString(white(e.Message))
	b.WriteString("\n\n")

	if e.Wrapped != nil {
		b.WriteString("  ")
		b.WriteString(gray(e.Wrapped.Error()))
		b.WriteString("\n\n")
	}

	if e.Detail != "" {
		for _, line := range wrapText(e.Detail, 70) {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if e.Suggestion != "" {
		b.WriteString("  ")
		b.WriteString(yellow("Hint: "))
		b.WriteString(e.Suggestion)
		b.WriteString("\n\n")
	}

	return b.String()
}

// FormatCompact returns a compact single-line error format.
func (e *HtmlifyError) FormatCompact() string {
	var b strings.Builder
	if e.Code != "" {
		b.WriteString(e.Code)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Wrapped != nil {
		b.WriteString(": ")
		b.WriteString(e.Wrapped.Error())
	}
	return b.String()
}

// wrapText wraps text to the specified width.
func wrapText(text string, width int) []string {
	if text == "" {
		return nil
	}
	if len(text) <= width {
		return []string{text}
	}

	var lines []string
	var current strings.Builder

	for _, word := range strings.Fields(text) {
		if current.Len()+len(word)+1 > width && current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}

	return lines
}

// PrintError writes a formatted error to w.
func PrintError(w io.Writer, err error) {
	if he, ok := err.(*HtmlifyError); ok {
		fmt.Fprint(w, he.Format())
		return
	}
	fmt.Fprintf(w, "\n%s %s\n\n", red(bold("ERROR:")), err.Error())
}
