package control

import (
	"encoding/binary"
	"io"
	"math/bits"

	"github.com/calebcase/oops"
)

type Encoder interface {
	Data(data []byte) (err error)
	Unbound(fn func(Encoder) error) (err error)
	Empty() (err error)
	Null() (err error)

	Written() uint64
}

type encoder struct {
	w io.Writer

	written uint64
}

func NewEncoder(w io.Writer) Encoder {
	return &encoder{
		w: w,
	}
}

func (e *encoder) write(p []byte) (err error) {
	n, err := e.w.Write(p)
	e.written += uint64(n)
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

// Data writes data using the shortest data block able to hold it.
func (e *encoder) Data(data []byte) (err error) {
	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		return e.write([]byte{
			Data.Prefix | data[0],
		})
	case size == 2 && data[0]&Data1.Mask == data[0]:
		return e.write([]byte{
			Data1.Prefix | data[0],
			data[1],
		})
	case size == 3 && data[0]&Data2.Mask == data[0]:
		return e.write([]byte{
			Data2.Prefix | data[0],
			data[1],
			data[2],
		})
	case size <= 64:
		err = e.write([]byte{
			DataSize.Prefix | byte(size-1),
		})
		if err != nil {
			return err
		}
	default:
		s := uint64(size - 1)

		var sb [8]byte
		binary.BigEndian.PutUint64(sb[:], s)

		// Size bytes needed for s; s >= 64 so at least one.
		n := 8 - bits.LeadingZeros64(s)/8

		err = e.write([]byte{
			DataSizeSize.Prefix | byte(n-1),
		})
		if err != nil {
			return err
		}

		err = e.write(sb[8-n:])
		if err != nil {
			return err
		}
	}

	return e.write(data)
}

// Unbound writes an unbounded container holding the fields written by fn.
func (e *encoder) Unbound(fn func(Encoder) error) (err error) {
	err = e.write([]byte{
		ContainerUnbounded.Prefix,
	})
	if err != nil {
		return err
	}

	err = fn(e)
	if err != nil {
		return err
	}

	return e.write([]byte{
		ContainerEnd.Prefix,
	})
}

func (e *encoder) Empty() (err error) {
	return e.write([]byte{
		Empty.Prefix,
	})
}

func (e *encoder) Null() (err error) {
	return e.write([]byte{
		Null.Prefix,
	})
}

// Written returns the number of bytes written so far.
func (e *encoder) Written() uint64 {
	return e.written
}
