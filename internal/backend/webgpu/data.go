//go:build windows

// Package webgpu adapts WebGPU buffers to the backend Data contract so
// GPU-resident tensors can appear as IR leaves without a host round trip.
package webgpu

import (
	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/pkg/errors"

	"github.com/laze-ml/laze/internal/backend"
	"github.com/laze-ml/laze/internal/shape"
)

// Data wraps a GPU buffer as device-resident tensor data. The wrapper
// owns the buffer once WrapBuffer succeeds; Release frees it.
type Data struct {
	buffer *wgpu.Buffer
	size   uint64
	shape  shape.Shape
	device backend.Device
}

// WrapBuffer registers a GPU buffer as tensor data. The buffer must hold
// at least the shape's byte size.
func WrapBuffer(buffer *wgpu.Buffer, size uint64, sh shape.Shape, dev backend.Device) (*Data, error) {
	if buffer == nil {
		return nil, errors.New("webgpu: nil buffer")
	}
	if size < uint64(sh.ByteSize()) {
		return nil, errors.Errorf("webgpu: buffer of %d bytes cannot hold %s (%d bytes)", size, sh, sh.ByteSize())
	}
	return &Data{buffer: buffer, size: size, shape: sh, device: dev}, nil
}

// Shape returns the shape of the buffered tensor.
func (d *Data) Shape() shape.Shape {
	return d.shape
}

// Device returns the device the buffer lives on.
func (d *Data) Device() backend.Device {
	return d.device
}

// Buffer returns the underlying GPU buffer, or nil after Release.
func (d *Data) Buffer() *wgpu.Buffer {
	return d.buffer
}

// Size returns the buffer's byte capacity.
func (d *Data) Size() uint64 {
	return d.size
}

// Release frees the GPU buffer. Safe to call more than once.
func (d *Data) Release() {
	if d.buffer != nil {
		d.buffer.Release()
		d.buffer = nil
	}
}
