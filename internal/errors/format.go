package errors

import (
	"os"
	"strings"
)

// style is an ANSI SGR sequence.
type style string

const (
	styleReset style = "\033[0m"
	styleError style = "\033[1;31m"
	styleCode  style = "\033[1m"
	styleCause style = "\033[90m"
	styleHint  style = "\033[33m"
)

// detailWidth is the column at which Detail text wraps.
const detailWidth = 72

// colorEnabled controls whether Format emits ANSI sequences. NO_COLOR
// disables them at startup.
var colorEnabled = os.Getenv("NO_COLOR") == ""

// DisableColors disables ANSI color output.
func DisableColors() { colorEnabled = false }

// EnableColors enables ANSI color output.
func EnableColors() { colorEnabled = true }

func (s style) apply(text string) string {
	if !colorEnabled || text == "" {
		return text
	}
	return string(s) + text + string(styleReset)
}

// Format returns the error formatted for terminal display:
//
//	ERROR N001: Leaf node requires a value
//
//	  A leaf was rendered without a value.
//
//	  Caused by: ...
//
//	  Hint: ...
func (e *Error) Format() string {
	var b strings.Builder

	b.WriteByte('\n')
	if e.Code == "" {
		b.WriteString(styleError.apply("ERROR:"))
	} else {
		b.WriteString(styleError.apply("ERROR"))
		b.WriteByte(' ')
		b.WriteString(styleCode.apply(e.Code + ":"))
	}
	b.WriteByte(' ')
	b.WriteString(e.Message)
	b.WriteString("\n\n")

	section := func(lines ...string) {
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	if e.Detail != "" {
		section(wrapText(e.Detail, detailWidth)...)
	}
	if e.Wrapped != nil {
		section(styleCause.apply("Caused by: " + e.Wrapped.Error()))
	}
	if e.Suggestion != "" {
		section(styleHint.apply("Hint:") + " " + e.Suggestion)
	}

	return b.String()
}

// wrapText splits text into lines no longer than width, breaking on spaces.
// A single word longer than width gets a line of its own.
func wrapText(text string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
