// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"

	"github.com/usagetree/docopt"
)

var stdoutIsTerminal = isatty.IsTerminal(os.Stdout.Fd())

var (
	titleFmt = color.New(color.FgBlue, color.Bold).SprintFunc()
	okFmt    = color.New(color.FgGreen).SprintFunc()
	errFmt   = color.New(color.FgHiRed).SprintFunc()
	dimFmt   = color.New(color.FgHiBlack).SprintFunc()
)

func init() {
	color.NoColor = !stdoutIsTerminal
}

func printArgs(args map[string]*docopt.Argument) {
	names := make([]string, 0, len(args))
	width := 0
	for name := range args {
		names = append(names, name)
		if w := runewidth.StringWidth(name); w > width {
			width = w
		}
	}
	sort.Strings(names)
	for _, name := range names {
		a := args[name]
		pad := strings.Repeat(" ", width-runewidth.StringWidth(name))
		fmt.Printf("%s%s  count=%d values=%v\n", titleFmt(name), pad, a.Count, a.Values)
	}
}

func printDiagnostics(diags docopt.Diagnostics) {
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, errFmt(string(d.Code))+":", d.Error())
	}
}

func loadParser(path string) (*docopt.Parser, docopt.Diagnostics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	p := docopt.New(string(data))
	diags := p.Preflight()
	return p, diags, nil
}
