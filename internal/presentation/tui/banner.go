package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"            __       _    _ _   ", "#818cf8"},
	{"  ___  ___ / _| __ _| | _(_) |_ ", "#a78bfa"},
	{" / __|/ _ \\ |_ / _` | |/ / | __|", "#c084fc"},
	{" \\__ \\ (_) |  _| (_| |   <| | |_ ", "#e879f9"},
	{" |___/\\___/|_|  \\__,_|_|\\_\\_|\\__|", "#f472b6"},
}

// PrintBanner writes the sofakit ASCII banner to w, colored when the
// terminal supports it.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
