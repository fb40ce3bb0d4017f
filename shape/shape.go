// Copyright 2026 Laze ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package shape provides the public API for tensor shapes in the Laze
// deferred IR.
//
// A Shape pairs an element data type with a list of dimension sizes and
// is immutable once built. Shapes are the only structural metadata a
// graph node carries, so everything that distinguishes two tensors at
// trace time lives here.
//
// Example:
//
//	sh := shape.New(shape.Float32, 32, 128)
//	fmt.Println(sh)              // float32[32,128]
//	fmt.Println(sh.NumElements()) // 4096
package shape

import (
	"github.com/laze-ml/laze/internal/shape"
)

// Element is a constraint covering the Go types tensors can hold.
type Element = shape.Element

// DataType identifies the element type of a tensor.
type DataType = shape.DataType

// Data type constants.
const (
	Float32 DataType = shape.Float32
	Float64 DataType = shape.Float64
	Float16 DataType = shape.Float16
	Int32   DataType = shape.Int32
	Int64   DataType = shape.Int64
	Uint8   DataType = shape.Uint8
	Bool    DataType = shape.Bool
)

// Shape is an immutable data type plus dimension list.
type Shape = shape.Shape

// New creates a shape from a data type and dimension sizes. No
// dimensions means a scalar. Invalid data types and non-positive
// dimensions panic.
//
// Example:
//
//	vec := shape.New(shape.Float32, 10)
//	mat := shape.New(shape.Int64, 3, 4)
func New(dtype DataType, dims ...int) Shape {
	return shape.New(dtype, dims...)
}

// ParseDataType converts a name like "float32" back to a DataType.
func ParseDataType(name string) (DataType, error) {
	return shape.ParseDataType(name)
}

// DataTypeOf returns the DataType for a Go element type.
//
// Example:
//
//	dt := shape.DataTypeOf[float32]() // shape.Float32
func DataTypeOf[T Element]() DataType {
	return shape.DataTypeOf[T]()
}
