// Package host provides an in-process implementation of the backend Data
// contract: plain byte buffers tagged with a shape and a device identity.
// It backs the tests, the examples, and the CLI; real accelerators plug in
// through their own adapters.
package host

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/x448/float16"

	"github.com/laze-ml/laze/internal/backend"
	"github.com/laze-ml/laze/internal/shape"
)

// Buffer is host memory registered as device-resident data. Each buffer
// carries a unique id so logs and dumps can tell handles apart even when
// their shapes match.
type Buffer struct {
	id     uuid.UUID
	shape  shape.Shape
	device backend.Device
	data   []byte
}

// Alloc returns a zero-filled buffer for the shape.
func Alloc(dev backend.Device, sh shape.Shape) *Buffer {
	return &Buffer{
		id:     uuid.New(),
		shape:  sh,
		device: dev,
		data:   make([]byte, sh.ByteSize()),
	}
}

// FromSlice copies a Go slice into a fresh buffer. The element type is
// inferred from T; the value count must match the dimensions.
func FromSlice[T shape.Element](dev backend.Device, values []T, dims ...int) (*Buffer, error) {
	sh := shape.New(shape.DataTypeOf[T](), dims...)
	if len(values) != sh.NumElements() {
		return nil, errors.Errorf("host: %d values for shape %s (want %d)", len(values), sh, sh.NumElements())
	}
	buf := Alloc(dev, sh)
	writeSlice(buf.data, values)
	return buf, nil
}

// FromFloat32s converts float32 source values into a fresh buffer with
// the shape's element type. Float16 targets use IEEE 754 binary16;
// integer targets truncate.
func FromFloat32s(dev backend.Device, sh shape.Shape, values []float32) (*Buffer, error) {
	if len(values) != sh.NumElements() {
		return nil, errors.Errorf("host: %d values for shape %s (want %d)", len(values), sh, sh.NumElements())
	}
	buf := Alloc(dev, sh)
	switch sh.DType() {
	case shape.Float32:
		for i, v := range values {
			binary.LittleEndian.PutUint32(buf.data[i*4:], math.Float32bits(v))
		}
	case shape.Float64:
		for i, v := range values {
			binary.LittleEndian.PutUint64(buf.data[i*8:], math.Float64bits(float64(v)))
		}
	case shape.Float16:
		for i, v := range values {
			binary.LittleEndian.PutUint16(buf.data[i*2:], float16.Fromfloat32(v).Bits())
		}
	case shape.Int32:
		for i, v := range values {
			binary.LittleEndian.PutUint32(buf.data[i*4:], uint32(int32(v)))
		}
	case shape.Int64:
		for i, v := range values {
			binary.LittleEndian.PutUint64(buf.data[i*8:], uint64(int64(v)))
		}
	case shape.Uint8:
		for i, v := range values {
			buf.data[i] = uint8(v)
		}
	case shape.Bool:
		for i, v := range values {
			if v != 0 {
				buf.data[i] = 1
			}
		}
	}
	return buf, nil
}

func writeSlice[T shape.Element](dst []byte, values []T) {
	switch vs := any(values).(type) {
	case []float32:
		for i, v := range vs {
			binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(v))
		}
	case []float64:
		for i, v := range vs {
			binary.LittleEndian.PutUint64(dst[i*8:], math.Float64bits(v))
		}
	case []int32:
		for i, v := range vs {
			binary.LittleEndian.PutUint32(dst[i*4:], uint32(v))
		}
	case []int64:
		for i, v := range vs {
			binary.LittleEndian.PutUint64(dst[i*8:], uint64(v))
		}
	case []uint8:
		copy(dst, vs)
	case []bool:
		for i, v := range vs {
			if v {
				dst[i] = 1
			}
		}
	default:
		panic("unsupported element type")
	}
}

// ID returns the buffer's unique identity.
func (b *Buffer) ID() uuid.UUID {
	return b.id
}

// Shape returns the shape of the buffered tensor.
func (b *Buffer) Shape() shape.Shape {
	return b.shape
}

// Device returns the device identity the buffer is registered under.
func (b *Buffer) Device() backend.Device {
	return b.device
}

// Bytes returns a copy of the raw buffer contents.
func (b *Buffer) Bytes() []byte {
	cloned := make([]byte, len(b.data))
	copy(cloned, b.data)
	return cloned
}

// String renders a short identity for logs.
func (b *Buffer) String() string {
	return fmt.Sprintf("host:%s %s on %s", b.id.String()[:8], b.shape, b.device)
}
