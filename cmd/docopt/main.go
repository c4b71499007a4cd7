// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

// Command docopt is a thin presentation binary over the docopt library:
// every subcommand loads a usage document and calls straight through to
// the library's public surface, the way kitty's kittens wrap tools/cli.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/usagetree/docopt"
)

func flagsFromPflag(fs *pflag.FlagSet) docopt.Flags {
	var f docopt.Flags
	if v, _ := fs.GetBool("resolve-prefixes"); v {
		f |= docopt.ResolveUnambiguousPrefixes
	}
	if v, _ := fs.GetBool("strict-separators"); v {
		f |= docopt.ShortOptionsStrictSeparators
	}
	if v, _ := fs.GetBool("empty-args"); v {
		f |= docopt.GenerateEmptyArgs
	}
	if v, _ := fs.GetBool("allow-incomplete"); v {
		f |= docopt.MatchAllowIncomplete
	}
	return f
}

func addMatchFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("resolve-prefixes", false, "allow unambiguous long-option prefixes")
	cmd.Flags().Bool("strict-separators", false, "require the declared option separator style")
	cmd.Flags().Bool("empty-args", false, "fill in empty entries for unbound options/variables/commands")
	cmd.Flags().Bool("allow-incomplete", false, "accept states with pending positionals or options")
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "docopt",
		Short:         "Match argv against a docopt-style usage document",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newValidateCmd(), newSuggestCmd(), newDescribeCmd(), newCommandsCmd(), newVariablesCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errFmt(err.Error()))
		os.Exit(1)
	}
}
