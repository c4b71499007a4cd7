// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/usagetree/docopt"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate DOC ARGS...",
		Short: "Print valid/invalid status for each ARGS slot",
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
			argv := args[1:]
			statuses := p.Validate(argv, flagsFromPflag(cmd.Flags()))
			for i, s := range statuses {
				label := okFmt("valid")
				if s == docopt.StatusInvalid {
					label = errFmt("invalid")
				}
				fmt.Printf("%d: %-20s %s\n", i, argv[i], label)
			}
			return nil
		},
	}
	addMatchFlags(cmd)
	return cmd
}

func newSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest DOC ARGS...",
		Short: "Print next-argument suggestions for ARGS",
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
			for _, s := range p.Suggest(args[1:], flagsFromPflag(cmd.Flags())) {
				fmt.Println(s)
			}
			return nil
		},
	}
	addMatchFlags(cmd)
	return cmd
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe DOC OPTION",
		Short: "Print the description text for OPTION",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, diags, err := loadParser(args[0])
			if err != nil {
				return err
			}
			printDiagnostics(diags)
			if !p.Ready() {
				return fmt.Errorf("%s has no usable Usage: section", args[0])
			}
			desc, ok := p.DescriptionFor(args[1])
			if !ok {
				return fmt.Errorf("no such option: %s", args[1])
			}
			fmt.Println(strings.TrimSpace(desc))
			return nil
		},
	}
}

func newCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands DOC",
		Short: "Print the program names from every Usage: line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, diags, err := loadParser(args[0])
			if err != nil {
				return err
			}
			printDiagnostics(diags)
			if !p.Ready() {
				return fmt.Errorf("%s has no usable Usage: section", args[0])
			}
			for _, name := range p.GetCommandNames() {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func newVariablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variables DOC",
		Short: "Print every variable named in DOC, sorted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, diags, err := loadParser(args[0])
			if err != nil {
				return err
			}
			printDiagnostics(diags)
			if !p.Ready() {
				return fmt.Errorf("%s has no usable Usage: section", args[0])
			}
			for _, v := range p.GetVariables() {
				fmt.Println(v)
			}
			return nil
		},
	}
}
