// Copyright 2026 Laze ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides the public API for concrete Laze node types
// that carry payloads beyond the common node fields.
//
// Example:
//
//	tc := trace.New()
//	buf, _ := host.FromSlice(dev, []float32{1, 2, 3, 4}, 2, 2)
//	leaf := ops.NewDeviceData(tc, buf)
//	if dd, ok := ops.CastDeviceData(leaf); ok {
//	    fmt.Println(dd.Data().Device())
//	}
package ops

import (
	"github.com/laze-ml/laze/internal/backend"
	"github.com/laze-ml/laze/internal/ir"
	"github.com/laze-ml/laze/internal/ir/ops"
	"github.com/laze-ml/laze/internal/shape"
	"github.com/laze-ml/laze/internal/trace"
)

// DeviceData is the leaf node for a tensor already materialized on a
// device.
type DeviceData = ops.DeviceData

// Scalar is the leaf node for a compile-time constant value.
type Scalar = ops.Scalar

// NewDeviceData builds a device data leaf over an external data handle,
// reusing a cached node when the context allows it. The handle never
// participates in node identity.
func NewDeviceData(tc *trace.Context, data backend.Data) ir.Node {
	return ops.NewDeviceData(tc, data)
}

// CastDeviceData downcasts a node to *DeviceData, checking its kind.
func CastDeviceData(n ir.Node) (*DeviceData, bool) {
	return ops.CastDeviceData(n)
}

// NewScalar builds a constant scalar leaf. The value is folded into the
// node's hash seed, so scalars with different values never unify.
func NewScalar(tc *trace.Context, sh shape.Shape, value float64) ir.Node {
	return ops.NewScalar(tc, sh, value)
}

// CastScalar downcasts a node to *Scalar, checking its kind.
func CastScalar(n ir.Node) (*Scalar, bool) {
	return ops.CastScalar(n)
}

// ScalarSeed derives the hash seed a scalar of the given data type and
// value would use.
func ScalarSeed(dtype shape.DataType, value float64) uint32 {
	return ops.ScalarSeed(dtype, value)
}
