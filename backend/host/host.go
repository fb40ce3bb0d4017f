// Copyright 2026 Laze ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package host provides a host-memory backend: plain byte buffers that
// satisfy the backend.Data contract without any device runtime.
//
// Host buffers are what tests, examples, and the CLI use for leaf
// tensors. Each buffer carries a unique id so two buffers with the same
// shape remain distinguishable.
//
// Example:
//
//	dev, _ := backend.ParseDevice("cpu:0")
//	buf, err := host.FromSlice(dev, []float32{1, 2, 3, 4}, 2, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(buf.Shape()) // float32[2,2]
package host

import (
	"github.com/laze-ml/laze/internal/backend"
	"github.com/laze-ml/laze/internal/backend/host"
	"github.com/laze-ml/laze/internal/shape"
)

// Buffer is a tensor held in host memory.
type Buffer = host.Buffer

// Alloc creates a zero-filled host buffer for the given shape.
func Alloc(dev backend.Device, sh shape.Shape) *Buffer {
	return host.Alloc(dev, sh)
}

// FromSlice creates a host buffer from a Go slice, inferring the data
// type from the element type. The element count must match the
// dimensions.
//
// Example:
//
//	buf, err := host.FromSlice(dev, []int32{1, 2, 3}, 3)
func FromSlice[T shape.Element](dev backend.Device, values []T, dims ...int) (*Buffer, error) {
	return host.FromSlice(dev, values, dims...)
}

// FromFloat32s creates a host buffer of any data type from float32
// values, converting each element to the shape's data type.
func FromFloat32s(dev backend.Device, sh shape.Shape, values []float32) (*Buffer, error) {
	return host.FromFloat32s(dev, sh, values)
}
