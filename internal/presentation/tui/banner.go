package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner of the CLI.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	// Teal to blue, one shade per row
	lines := []struct{ text, color string }{
		{`      _        _                                  `, "#2dd4bf"},
		{`  ___| |_ __ _| |_ ___  ___ _ __   __ _  ___ ___  `, "#22d3ee"},
		{` / __| __/ _' | __/ _ \/ __| '_ \ / _' |/ __/ _ \ `, "#38bdf8"},
		{` \__ \ || (_| | ||  __/\__ \ |_) | (_| | (_|  __/ `, "#60a5fa"},
		{` |___/\__\__,_|\__\___||___/ .__/ \__,_|\___\___| `, "#818cf8"},
		{`                           |_|                    `, "#a78bfa"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	if v := strings.TrimSpace(version); v != "" {
		fmt.Fprintln(w, termenv.String("  v"+v).Faint())
	}
	fmt.Fprintln(w)
}
