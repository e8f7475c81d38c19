package integer

import (
	"github.com/calebcase/bigint"
	"github.com/calebcase/bigint/control"
)

// Encoder writes integers to a control encoder.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes x. A nil x is written as a Null block if the schema is
// nullable.
func (e *Encoder) Encode(x *bigint.Int) (err error) {
	defer Error.WrapP(&err)

	if x == nil {
		if !e.schema.Nullable {
			return Error.New("nil value (schema not nullable)")
		}

		return e.ce.Null()
	}

	err = e.schema.Check(x)
	if err != nil {
		return err
	}

	return e.ce.Data(e.schema.marshal(x))
}

// EncodeSlice writes xs as an unbounded container.
func (e *Encoder) EncodeSlice(xs []*bigint.Int) (err error) {
	defer Error.WrapP(&err)

	return e.ce.Unbound(func(ce control.Encoder) error {
		ee := NewEncoder(e.schema, ce)

		for _, x := range xs {
			err := ee.Encode(x)
			if err != nil {
				return err
			}
		}

		return nil
	})
}
