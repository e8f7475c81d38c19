package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/bigint"
)

// encodeBytes returns the hex byte form of x. Unsigned forms carry the sign
// as a leading '-'.
func encodeBytes(x *bigint.Int, signed, le bool) string {
	switch {
	case signed && le:
		return hex.EncodeToString(x.SignedBytesLE())
	case signed:
		return hex.EncodeToString(x.SignedBytes())
	}

	var (
		sign bigint.Sign
		b    []byte
	)

	if le {
		sign, b = x.BytesLE()
	} else {
		sign, b = x.Bytes()
	}

	if sign == bigint.Negative {
		return "-" + hex.EncodeToString(b)
	}

	return hex.EncodeToString(b)
}

// decodeBytes is the inverse of encodeBytes.
func decodeBytes(s string, signed, le bool) (*bigint.Int, error) {
	sign := bigint.Positive
	if !signed && len(s) > 0 && s[0] == '-' {
		sign = bigint.Negative
		s = s[1:]
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, bigint.ParseError.Wrap(err)
	}

	switch {
	case signed && le:
		return bigint.FromSignedBytesLE(b), nil
	case signed:
		return bigint.FromSignedBytes(b), nil
	case le:
		return bigint.FromBytesLE(sign, b), nil
	}

	return bigint.FromBytes(sign, b), nil
}

func newBytesCmd(opts *options) *cobra.Command {
	var (
		decode bool
		signed bool
		le     bool
	)

	cmd := &cobra.Command{
		Use:   "bytes value...",
		Short: "Convert values to and from their byte form",
		Long: `Print the hex byte form of each value. The signed form is two's
complement; the unsigned form is the magnitude with a leading '-' for
negative values.`,
		Example: `  bigint bytes -- -1125
  bigint bytes --signed=false --le 65536
  bigint bytes --decode fb9b`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("signed") {
				signed = opts.SignedBytes
			}
			if !flags.Changed("le") {
				le = opts.LittleEndian
			}

			out := cmd.OutOrStdout()

			for _, arg := range args {
				if decode {
					x, err := decodeBytes(arg, signed, le)
					if err != nil {
						return err
					}

					fmt.Fprintln(out, x.Text(opts.Radix))

					continue
				}

				x, err := bigint.Parse(arg, opts.Radix)
				if err != nil {
					return err
				}

				fmt.Fprintln(out, encodeBytes(x, signed, le))
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&decode, "decode", false, "decode hex bytes instead of encoding values")
	flags.BoolVar(&signed, "signed", true, "use the two's complement form")
	flags.BoolVar(&le, "le", false, "use little-endian byte order")

	return cmd
}
