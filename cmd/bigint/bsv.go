package main

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/bigint"
	"github.com/calebcase/bigint/control"
	"github.com/calebcase/bigint/integer"
)

// encodeBSV writes values as BSV integers, or as one unbounded container
// when slice is set. The literal "null" encodes nil.
func encodeBSV(schema integer.Schema, values []string, radix int, slice bool) ([]byte, error) {
	xs := make([]*bigint.Int, 0, len(values))
	for _, v := range values {
		if v == "null" {
			xs = append(xs, nil)
			continue
		}

		x, err := bigint.Parse(v, radix)
		if err != nil {
			return nil, err
		}

		xs = append(xs, x)
	}

	buf := &bytes.Buffer{}
	e := integer.NewEncoder(schema, control.NewEncoder(buf))

	if slice {
		err := e.EncodeSlice(xs)
		if err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	}

	for _, x := range xs {
		err := e.Encode(x)
		if err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// decodeBSV reads every top level field of data. Containers are flattened.
func decodeBSV(schema integer.Schema, data []byte) (xs []*bigint.Int, err error) {
	r := bytes.NewReader(data)
	d := integer.NewDecoder(schema, control.NewDecoder(r))

	// The control decoder reads fields exactly, so the reader position is
	// always at the start of the next field.
	for r.Len() > 0 {
		next := data[len(data)-r.Len()]

		if control.ContainerUnbounded.Match(next) {
			ys, err := d.DecodeSlice()
			if err != nil {
				return nil, err
			}

			xs = append(xs, ys...)

			continue
		}

		x, err := d.Decode()
		if err != nil {
			return nil, err
		}

		xs = append(xs, x)
	}

	return xs, nil
}

func newBSVCmd(opts *options) *cobra.Command {
	var (
		decode   bool
		slice    bool
		unsigned bool
		bits     uint64
	)

	cmd := &cobra.Command{
		Use:   "bsv value...",
		Short: "Encode values as BSV integers",
		Example: `  bigint bsv 1 -- -63 4096
  bigint bsv --slice 1 null 3
  bigint bsv --decode 82ff`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema := integer.Schema{
				Bits:     bits,
				Signed:   !unsigned,
				Nullable: true,
			}

			out := cmd.OutOrStdout()

			if !decode {
				data, err := encodeBSV(schema, args, opts.Radix, slice)
				if err != nil {
					return err
				}

				fmt.Fprintln(out, hex.EncodeToString(data))

				return nil
			}

			for _, arg := range args {
				data, err := hex.DecodeString(arg)
				if err != nil {
					return bigint.ParseError.Wrap(err)
				}

				xs, err := decodeBSV(schema, data)
				if err != nil {
					return err
				}

				for _, x := range xs {
					if x == nil {
						fmt.Fprintln(out, "null")
						continue
					}

					fmt.Fprintln(out, x.Text(opts.Radix))
				}
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&decode, "decode", false, "decode hex BSV instead of encoding values")
	flags.BoolVar(&slice, "slice", false, "encode the values as one unbounded container")
	flags.BoolVar(&unsigned, "unsigned", false, "use the unsigned schema")
	flags.Uint64Var(&bits, "bits", 0, "bound values to this many bits (0 is unbounded)")

	return cmd
}
