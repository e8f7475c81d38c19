package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/calebcase/bigint"
)

var labelColor = color.New(color.FgCyan)

func formatDigits(ds []byte) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = fmt.Sprint(d)
	}

	return strings.Join(parts, " ")
}

func newConvertCmd(opts *options) *cobra.Command {
	var (
		from   int
		to     []int
		digits uint32
	)

	cmd := &cobra.Command{
		Use:   "convert value...",
		Short: "Print values in other radixes",
		Example: `  bigint convert 255
  bigint convert --from 16 --to 2,36 -- -ff
  bigint convert --digits 256 65535`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("from") {
				from = opts.Radix
			}

			for _, r := range to {
				if r < bigint.MinRadix || r > bigint.MaxRadix {
					return ConfigError.New("radix %d out of range [%d, %d]", r, bigint.MinRadix, bigint.MaxRadix)
				}
			}

			if digits != 0 && (digits < 2 || digits > 256) {
				return ConfigError.New("digit radix %d out of range [2, 256]", digits)
			}

			out := cmd.OutOrStdout()

			for _, arg := range args {
				x, err := bigint.Parse(arg, from)
				if err != nil {
					return err
				}

				for _, r := range to {
					labelColor.Fprintf(out, "%2d: ", r)
					fmt.Fprintln(out, x.Text(r))
				}

				if digits != 0 {
					sign, ds := x.Radix(digits)

					labelColor.Fprintf(out, "%d digits: ", digits)
					fmt.Fprintf(out, "%s [%s]\n", sign, formatDigits(ds))
				}
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&from, "from", 10, "radix of the input values (--radix if unset)")
	flags.IntSliceVar(&to, "to", []int{2, 8, 10, 16}, "output radixes")
	flags.Uint32Var(&digits, "digits", 0, "also print the digits in this radix (2-256)")

	return cmd
}
