// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run DOC ARGS...",
		Short: "Parse ARGS against DOC and print the bound argument map",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, diags, err := loadParser(args[0])
			if err != nil {
				return err
			}
			printDiagnostics(diags)
			if !p.Ready() {
				return fmt.Errorf("%s has no usable Usage: section", args[0])
			}
			bound, unused, argvDiags := p.Parse(args[1:], flagsFromPflag(cmd.Flags()))
			printDiagnostics(argvDiags)
			printArgs(bound)
			if len(unused) > 0 {
				fmt.Println(dimFmt("unused argv indices:"), unused)
			}
			return nil
		},
	}
	addMatchFlags(cmd)
	return cmd
}
