//go:build windows

// Copyright 2026 Laze ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu adapts WebGPU buffers to the backend.Data contract so
// GPU-resident tensors can appear as leaf nodes in a Laze graph.
//
// The adapter wraps a wgpu.Buffer the caller already allocated. Laze
// never submits GPU work itself; it only keeps the buffer reachable
// while graph nodes reference it.
//
// Example:
//
//	data, err := webgpu.WrapBuffer(buf, size, sh, dev)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	leaf := ops.NewDeviceData(tc, data)
package webgpu

import (
	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/laze-ml/laze/internal/backend"
	internalwebgpu "github.com/laze-ml/laze/internal/backend/webgpu"
	"github.com/laze-ml/laze/internal/shape"
)

// Data is a WebGPU-backed tensor handle.
type Data = internalwebgpu.Data

// WrapBuffer wraps an existing GPU buffer as a Data handle. The buffer
// must be at least as large as the shape's byte size.
func WrapBuffer(buffer *wgpu.Buffer, size uint64, sh shape.Shape, dev backend.Device) (*Data, error) {
	return internalwebgpu.WrapBuffer(buffer, size, sh, dev)
}
