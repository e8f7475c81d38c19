package main

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version is the semantic version of the CLI. It may be overridden at build
// time via -ldflags.
var Version = "0.1.0"

var (
	versionNameColor = color.New(color.FgYellow, color.Bold)
	versionColor     = color.New(color.FgGreen)
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			versionNameColor.Fprint(out, "bigint")
			fmt.Fprint(out, " ")
			versionColor.Fprint(out, Version)
			fmt.Fprintf(out, " (%s %s/%s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)

			return nil
		},
	}
}
