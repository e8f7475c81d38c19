package integer

import (
	"io"

	"github.com/calebcase/bigint"
	"github.com/calebcase/bigint/control"
)

// Decoder reads integers from a control decoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// next moves to the next field. It returns io.EOF at the end of the input.
func (d *Decoder) next() (err error) {
	if d.cd.Next() {
		return nil
	}

	if d.cd.Err() != nil {
		return d.cd.Err()
	}

	return io.EOF
}

// Decode reads the next integer. A Null block decodes to nil for nullable
// schemas. It returns a bare io.EOF when there are no more fields and wraps
// every other error in Error.
func (d *Decoder) Decode() (x *bigint.Int, err error) {
	err = d.next()
	if err == io.EOF {
		return nil, err
	}

	defer Error.WrapP(&err)

	if err != nil {
		return nil, err
	}

	return d.decode()
}

// decode reads the current field.
func (d *Decoder) decode() (x *bigint.Int, err error) {
	t := d.cd.Type()

	switch {
	case t == control.Null:
		if !d.schema.Nullable {
			return nil, Error.New("null value (schema not nullable)")
		}

		return nil, nil
	case control.IsData(t):
		data, err := d.cd.Data()
		if err != nil {
			return nil, err
		}

		x = d.schema.unmarshal(data)

		err = d.schema.Check(x)
		if err != nil {
			return nil, err
		}

		return x, nil
	}

	return nil, Error.New("unexpected field: %s", t)
}

// DecodeSlice reads a slice written by EncodeSlice.
func (d *Decoder) DecodeSlice() (xs []*bigint.Int, err error) {
	err = d.next()
	if err == io.EOF {
		return nil, err
	}

	defer Error.WrapP(&err)

	if err != nil {
		return nil, err
	}

	if d.cd.Type() != control.ContainerUnbounded {
		return nil, Error.New("unexpected field: %s (want %s)", d.cd.Type(), control.ContainerUnbounded)
	}

	err = d.cd.Enter()
	if err != nil {
		return nil, err
	}

	depth := d.cd.Depth()
	xs = []*bigint.Int{}

	for {
		err = d.next()
		if err == io.EOF {
			return nil, Error.New("unterminated slice")
		}
		if err != nil {
			return nil, err
		}

		if d.cd.Type() == control.ContainerEnd && d.cd.Depth() == depth-1 {
			return xs, nil
		}

		x, err := d.decode()
		if err != nil {
			return nil, err
		}

		xs = append(xs, x)
	}
}
