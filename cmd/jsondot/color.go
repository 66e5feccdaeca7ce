package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var useColor = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

var (
	keyColor  = color.New(color.FgCyan)
	jsonColor = color.New(color.FgGreen)
)

func colorKey(s string) string {
	if !useColor {
		return s
	}
	return keyColor.Sprint(s)
}

func colorJSON(s string) string {
	if !useColor {
		return s
	}
	return jsonColor.Sprint(s)
}
